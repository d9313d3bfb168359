package homework

import (
	"errors"
	"fmt"
)

// MaxFibTerms is the longest sequence whose terms all fit in a uint64.
const MaxFibTerms = 94

var ErrFibRange = errors.New("fibonacci: term count out of range")

// Fibonacci returns the first n terms, starting 0, 1.
func Fibonacci(n int) ([]uint64, error) {
	if n < 0 || n > MaxFibTerms {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrFibRange, n, MaxFibTerms)
	}
	fibs := make([]uint64, 0, n)
	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		fibs = append(fibs, a)
		a, b = b, a+b
	}
	return fibs, nil
}
