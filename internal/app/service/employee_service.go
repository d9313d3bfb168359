package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"staff-directory/internal/domain"
)

type EmployeeService struct {
	Repo   domain.EmployeeRepo
	Logger *zap.Logger
}

func NewEmployeeService(repo domain.EmployeeRepo, logger *zap.Logger) *EmployeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{Repo: repo, Logger: logger}
}

// Add normalizes name and department and stores them unless the name is
// already present. The stored record is returned either way; added reports
// whether this call inserted it.
func (s *EmployeeService) Add(ctx context.Context, name, department string) (domain.Employee, bool, error) {
	e, err := domain.NewEmployee(name, department)
	if err != nil {
		return domain.Employee{}, false, err
	}
	stored, added, err := s.Repo.AddIfAbsent(ctx, e)
	if err != nil {
		return domain.Employee{}, false, fmt.Errorf("add %s: %w", e.Name, err)
	}
	if added {
		s.Logger.Debug("employee added", zap.String("name", stored.Name), zap.String("department", stored.Department))
	} else {
		s.Logger.Debug("employee already present",
			zap.String("name", stored.Name),
			zap.String("department", stored.Department),
			zap.String("ignored_department", e.Department))
	}
	return stored, added, nil
}

func (s *EmployeeService) ListAll(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.Repo.GetAllEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// ListDepartment returns the sorted names of everyone in department. An
// unknown department yields an empty slice.
func (s *EmployeeService) ListDepartment(ctx context.Context, department string) ([]string, error) {
	if !domain.ValidText(department) {
		return nil, domain.ErrInvalidText
	}
	dept := domain.Normalize(department)
	names := []string{}
	if dept == "" {
		return names, nil
	}
	employees, err := s.Repo.GetByDepartment(ctx, dept)
	if err != nil {
		return nil, fmt.Errorf("list department %s: %w", dept, err)
	}
	for _, e := range employees {
		names = append(names, e.Name)
	}
	return names, nil
}

func (s *EmployeeService) Departments(ctx context.Context) ([]string, error) {
	roster, err := s.Roster(ctx)
	if err != nil {
		return nil, err
	}
	departments := make([]string, 0, len(roster))
	for dept := range roster {
		departments = append(departments, dept)
	}
	sort.Strings(departments)
	return departments, nil
}

// Roster groups every employee by department, names sorted within each.
func (s *EmployeeService) Roster(ctx context.Context) (map[string][]string, error) {
	employees, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	roster := make(map[string][]string)
	for _, e := range employees {
		roster[e.Department] = append(roster[e.Department], e.Name)
	}
	return roster, nil
}
