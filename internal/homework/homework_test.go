package homework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFahrenheitToCelsius(t *testing.T) {
	assert.InDelta(t, 100.0, FahrenheitToCelsius(212), 1e-9)
	assert.InDelta(t, 0.0, FahrenheitToCelsius(32), 1e-9)
	assert.InDelta(t, -40.0, FahrenheitToCelsius(-40), 1e-9)
}

func TestFibonacci(t *testing.T) {
	fibs, err := Fibonacci(5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 1, 2, 3}, fibs)

	fibs, err = Fibonacci(0)
	require.NoError(t, err)
	assert.Empty(t, fibs)

	fibs, err = Fibonacci(MaxFibTerms)
	require.NoError(t, err)
	assert.Equal(t, uint64(12200160415121876738), fibs[MaxFibTerms-1])

	_, err = Fibonacci(-1)
	assert.ErrorIs(t, err, ErrFibRange)
	_, err = Fibonacci(MaxFibTerms + 1)
	assert.ErrorIs(t, err, ErrFibRange)
}

func TestMedianMode(t *testing.T) {
	values := []int{0, 1, 3, 4, 5, 5, 5, 6, 9, 2, 4, 9}
	st, err := MedianMode(values)
	require.NoError(t, err)
	assert.Equal(t, Stats{Median: 4.5, Mode: 5}, st)
	assert.Equal(t, 0, values[0], "input must not be reordered")

	st, err = MedianMode([]int{7, 3, 3, 7, 1})
	require.NoError(t, err)
	assert.Equal(t, Stats{Median: 3, Mode: 3}, st)

	_, err = MedianMode(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestPigLatin(t *testing.T) {
	cases := map[string]string{
		"first apple":          "irst-fay apple-hay",
		"happy birth day":      "appy-hay irth-bay ay-day",
		"my dude!":             "y-may ude-day!",
		"\"Apple\"":            "\"Apple-hay\"",
		"здравствуй мир":       "дравствуй-зay ир-мay",
		"42 🙂":                 "42 🙂",
		"  spaced   out  ":     "paced-say out-hay",
		"":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, PigLatin(in), "input %q", in)
	}
}
