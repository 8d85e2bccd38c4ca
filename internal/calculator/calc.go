// Package calculator provides basic arithmetic operations.
package calculator

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("Cannot divide by zero")

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a divided by b as a floating-point quotient.
// It returns ErrDivisionByZero when b is zero.
func Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}

// IsEven reports whether n is divisible by 2.
// Go's remainder keeps the sign of n, so odd negatives yield -1 and compare unequal to zero.
func IsEven(n int) bool {
	return n%2 == 0
}
