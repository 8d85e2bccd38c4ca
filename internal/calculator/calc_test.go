package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive numbers", 2, 3, 5},
		{"two plus two", 2, 2, 4},
		{"four plus six", 4, 6, 10},
		{"zeros", 0, 0, 0},
		{"negative and positive", -1, 1, 0},
		{"both negative", -2, -3, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Add(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Add(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
			if swapped := Add(tc.b, tc.a); swapped != result {
				t.Errorf("Add(%d, %d) = %d, not commutative with %d", tc.b, tc.a, swapped, result)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive result", 7, 3, 4},
		{"zeros", 0, 0, 0},
		{"negative result", 2, 3, -1},
		{"negative operands", -4, -9, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Subtract(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Subtract(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
			if reversed := Subtract(tc.b, tc.a); reversed != -result {
				t.Errorf("Subtract(%d, %d) = %d, want %d", tc.b, tc.a, reversed, -result)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"positive numbers", 2, 3, 6},
		{"squares", 3, 3, 9},
		{"multiply by zero", 0, 5, 0},
		{"negative and positive", -2, 3, -6},
		{"both negative", -3, -4, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Multiply(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Multiply(%d, %d) = %d, want %d", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		expected float64
	}{
		{"exact quotient", 6, 3, 2.0},
		{"ten by two", 10, 2, 5.0},
		{"fractional quotient", 5, 2, 2.5},
		{"negative divisor", 7, -2, -3.5},
		{"zero dividend", 0, 9, 0},
		{"repeating fraction", 1, 3, 1.0 / 3.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Divide(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Divide(%d, %d) unexpected error: %v", tc.a, tc.b, err)
			}
			if math.Abs(result-tc.expected) > 0.001 {
				t.Errorf("Divide(%d, %d) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
			if back := result * float64(tc.b); math.Abs(back-float64(tc.a)) > 0.001 {
				t.Errorf("Divide(%d, %d) * %d = %v, want %d", tc.a, tc.b, tc.b, back, tc.a)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []int{6, 10, 0, -1, math.MaxInt, math.MinInt} {
		_, err := Divide(a, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("Divide(%d, 0) error = %v, want ErrDivisionByZero", a, err)
		}
		if err.Error() != "Cannot divide by zero" {
			t.Errorf("Divide(%d, 0) message = %q", a, err.Error())
		}
	}
}

func TestIsEven(t *testing.T) {
	cases := []struct {
		n    int
		want bool
	}{
		{0, true},
		{2, true},
		{4, true},
		{6, true},
		{8, true},
		{5, false},
		{1, false},
		{-1, false},
		{-3, false},
		{-4, true},
		{math.MaxInt, false},
		{math.MinInt, true},
	}

	for _, tc := range cases {
		if got := IsEven(tc.n); got != tc.want {
			t.Errorf("IsEven(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestIsEvenSymmetric(t *testing.T) {
	for k := -50; k <= 50; k++ {
		if !IsEven(2 * k) {
			t.Errorf("IsEven(%d) = false, want true", 2*k)
		}
		if IsEven(2*k + 1) {
			t.Errorf("IsEven(%d) = true, want false", 2*k+1)
		}
		if IsEven(k) != IsEven(-k) {
			t.Errorf("IsEven(%d) != IsEven(%d)", k, -k)
		}
	}
}
