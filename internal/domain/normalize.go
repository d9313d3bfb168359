package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize upper-cases the first rune of s and lower-cases the rest.
// Invalid UTF-8 comes back as U+FFFD; use ValidText to reject it first.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func ValidText(s string) bool {
	return utf8.ValidString(s)
}

// NewEmployee builds a normalized record, rejecting blank fields and
// invalid UTF-8.
func NewEmployee(name, department string) (Employee, error) {
	if !ValidText(name) || !ValidText(department) {
		return Employee{}, ErrInvalidText
	}
	e := Employee{Name: Normalize(name), Department: Normalize(department)}
	if e.Name == "" || e.Department == "" {
		return Employee{}, ErrEmptyField
	}
	return e, nil
}
