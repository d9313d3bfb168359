// Package homework holds small numeric and string exercises: temperature
// conversion, Fibonacci terms, median and mode, and pig latin.
package homework
