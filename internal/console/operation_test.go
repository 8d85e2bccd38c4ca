package console

import (
	"errors"
	"testing"

	"github.com/pengelbrecht/calc/internal/calculator"
)

func TestLookup(t *testing.T) {
	for choice := 1; choice <= 5; choice++ {
		op, ok := Lookup(choice)
		if !ok {
			t.Fatalf("Lookup(%d) not found", choice)
		}
		if int(op.Choice) != choice {
			t.Errorf("Lookup(%d) returned choice %d", choice, op.Choice)
		}
	}
	for _, choice := range []int{-1, 0, 6, 42} {
		if _, ok := Lookup(choice); ok {
			t.Errorf("Lookup(%d) should fail", choice)
		}
	}
}

func TestOperationEval(t *testing.T) {
	cases := []struct {
		choice   Choice
		operands []int
		want     string
	}{
		{ChoiceAdd, []int{4, 6}, "4 + 6 = 10"},
		{ChoiceSubtract, []int{4, 2}, "4 - 2 = 2"},
		{ChoiceMultiply, []int{3, 4}, "3 * 4 = 12"},
		{ChoiceDivide, []int{10, 2}, "10 / 2 = 5.0"},
		{ChoiceDivide, []int{1, 4}, "1 / 4 = 0.25"},
		{ChoiceDivide, []int{-7, 2}, "-7 / 2 = -3.5"},
		{ChoiceEven, []int{0}, "0 is even"},
		{ChoiceEven, []int{7}, "7 is odd"},
	}

	for _, tc := range cases {
		op, _ := Lookup(int(tc.choice))
		got, err := op.Eval(tc.operands...)
		if err != nil {
			t.Fatalf("%s%v: unexpected error: %v", op.Name, tc.operands, err)
		}
		if got != tc.want {
			t.Errorf("%s%v = %q, want %q", op.Name, tc.operands, got, tc.want)
		}
	}
}

func TestOperationEvalDivideByZero(t *testing.T) {
	op, _ := Lookup(int(ChoiceDivide))
	if _, err := op.Eval(6, 0); !errors.Is(err, calculator.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestOperationEvalOperandCount(t *testing.T) {
	op, _ := Lookup(int(ChoiceAdd))
	if _, err := op.Eval(1); err == nil {
		t.Fatalf("expected operand count error")
	}
}

func TestFormatQuotient(t *testing.T) {
	cases := map[float64]string{
		2:    "2.0",
		-4:   "-4.0",
		0:    "0.0",
		2.5:  "2.5",
		0.1:  "0.1",
		-0.5: "-0.5",
	}
	for q, want := range cases {
		if got := FormatQuotient(q); got != want {
			t.Errorf("FormatQuotient(%v) = %q, want %q", q, got, want)
		}
	}
}

func TestOperationCompute(t *testing.T) {
	cases := []struct {
		choice   Choice
		operands []int
		want     any
	}{
		{ChoiceAdd, []int{2, 2}, 4},
		{ChoiceSubtract, []int{2, 3}, -1},
		{ChoiceMultiply, []int{2, 3}, 6},
		{ChoiceDivide, []int{5, 2}, 2.5},
		{ChoiceEven, []int{-6}, true},
	}
	for _, tc := range cases {
		op, _ := Lookup(int(tc.choice))
		got, err := op.Compute(tc.operands...)
		if err != nil {
			t.Fatalf("%s%v: unexpected error: %v", op.Name, tc.operands, err)
		}
		if got != tc.want {
			t.Errorf("%s%v = %v (%T), want %v (%T)", op.Name, tc.operands, got, got, tc.want, tc.want)
		}
	}
}
