package console

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pengelbrecht/calc/internal/calculator"
)

// Choice is a menu selection number.
type Choice int

const (
	ChoiceAdd Choice = iota + 1
	ChoiceSubtract
	ChoiceMultiply
	ChoiceDivide
	ChoiceEven
)

// Operation is one entry of the calculator menu.
type Operation struct {
	Choice   Choice
	Name     string
	Label    string
	Prompt   string
	Symbol   string
	Operands int
}

// Operations lists the menu in display order.
var Operations = []Operation{
	{Choice: ChoiceAdd, Name: "add", Label: "Add", Prompt: "Enter two numbers to add:", Symbol: "+", Operands: 2},
	{Choice: ChoiceSubtract, Name: "subtract", Label: "Subtract", Prompt: "Enter two numbers to subtract:", Symbol: "-", Operands: 2},
	{Choice: ChoiceMultiply, Name: "multiply", Label: "Multiply", Prompt: "Enter two numbers to multiply:", Symbol: "*", Operands: 2},
	{Choice: ChoiceDivide, Name: "divide", Label: "Divide", Prompt: "Enter two numbers to divide:", Symbol: "/", Operands: 2},
	{Choice: ChoiceEven, Name: "even", Label: "Check if a number is even", Prompt: "Enter a number to check if it is even:", Operands: 1},
}

// Lookup returns the operation for a menu selection.
func Lookup(choice int) (Operation, bool) {
	for _, op := range Operations {
		if int(op.Choice) == choice {
			return op, true
		}
	}
	return Operation{}, false
}

// Compute applies the operation and returns its raw result: an int for add,
// subtract and multiply, a float64 for divide and a bool for the parity check.
func (op Operation) Compute(operands ...int) (any, error) {
	if len(operands) != op.Operands {
		return nil, fmt.Errorf("%s expects %d operands, got %d", op.Name, op.Operands, len(operands))
	}

	switch op.Choice {
	case ChoiceAdd:
		return calculator.Add(operands[0], operands[1]), nil
	case ChoiceSubtract:
		return calculator.Subtract(operands[0], operands[1]), nil
	case ChoiceMultiply:
		return calculator.Multiply(operands[0], operands[1]), nil
	case ChoiceDivide:
		q, err := calculator.Divide(operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		return q, nil
	case ChoiceEven:
		return calculator.IsEven(operands[0]), nil
	default:
		return nil, fmt.Errorf("unknown operation %d", op.Choice)
	}
}

// Eval applies the operation and returns the expression text, e.g. "2 + 3 = 5"
// or "7 is odd". Divide returns calculator.ErrDivisionByZero for a zero divisor.
func (op Operation) Eval(operands ...int) (string, error) {
	v, err := op.Compute(operands...)
	if err != nil {
		return "", err
	}

	switch r := v.(type) {
	case bool:
		parity := "odd"
		if r {
			parity = "even"
		}
		return fmt.Sprintf("%d is %s", operands[0], parity), nil
	case float64:
		return op.expression(operands, FormatQuotient(r)), nil
	case int:
		return op.expression(operands, strconv.Itoa(r)), nil
	default:
		return "", fmt.Errorf("unexpected %s result %T", op.Name, v)
	}
}

func (op Operation) expression(operands []int, result string) string {
	return fmt.Sprintf("%d %s %d = %s", operands[0], op.Symbol, operands[1], result)
}

// FormatQuotient prints whole quotients with a trailing ".0" and everything
// else in the shortest form that round-trips.
func FormatQuotient(q float64) string {
	if q == math.Trunc(q) && !math.IsInf(q, 0) {
		return strconv.FormatFloat(q, 'f', 1, 64)
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}
