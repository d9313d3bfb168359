package memory

import (
	"context"
	"sort"
	"sync"

	"staff-directory/internal/domain"
)

// EmployeeRepo keeps the directory in a map for the lifetime of the process.
type EmployeeRepo struct {
	mu        sync.RWMutex
	employees map[string]string
}

func NewEmployeeRepo() *EmployeeRepo {
	return &EmployeeRepo{employees: make(map[string]string)}
}

func (r *EmployeeRepo) AddIfAbsent(_ context.Context, e domain.Employee) (domain.Employee, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dept, ok := r.employees[e.Name]; ok {
		return domain.Employee{Name: e.Name, Department: dept}, false, nil
	}
	r.employees[e.Name] = e.Department
	return e, true, nil
}

func (r *EmployeeRepo) GetAllEmployees(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employees := make([]domain.Employee, 0, len(r.employees))
	for name, dept := range r.employees {
		employees = append(employees, domain.Employee{Name: name, Department: dept})
	}
	sortByName(employees)
	return employees, nil
}

func (r *EmployeeRepo) GetByDepartment(_ context.Context, department string) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employees := []domain.Employee{}
	for name, dept := range r.employees {
		if dept == department {
			employees = append(employees, domain.Employee{Name: name, Department: dept})
		}
	}
	sortByName(employees)
	return employees, nil
}

func sortByName(employees []domain.Employee) {
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Name < employees[j].Name
	})
}
