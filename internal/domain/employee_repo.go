package domain

import (
	"context"
	"errors"
)

var (
	ErrEmptyField  = errors.New("name and department must not be empty")
	ErrInvalidText = errors.New("name and department must be valid UTF-8")
)

// EmployeeRepo implementations return employees ordered by name.
type EmployeeRepo interface {
	// AddIfAbsent stores e unless its name is already taken. It returns the
	// record that ends up stored and whether e was inserted.
	AddIfAbsent(ctx context.Context, e Employee) (Employee, bool, error)
	GetAllEmployees(ctx context.Context) ([]Employee, error)
	GetByDepartment(ctx context.Context, department string) ([]Employee, error)
}

type Employee struct {
	Name       string
	Department string
}
