package sqlite

import (
	"context"
	"database/sql"

	"staff-directory/internal/domain"
)

type SqliteEmployeeRepo struct {
	db *sql.DB
}

func NewSqliteEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db}
}

func (r *SqliteEmployeeRepo) AddIfAbsent(ctx context.Context, e domain.Employee) (domain.Employee, bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (name, department) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
		e.Name, e.Department,
	)
	if err != nil {
		return domain.Employee{}, false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Employee{}, false, err
	}
	if rows == 1 {
		return e, true, nil
	}

	var stored domain.Employee
	err = r.db.QueryRowContext(ctx, `SELECT name, department FROM employees WHERE name = ?`, e.Name).
		Scan(&stored.Name, &stored.Department)
	return stored, false, err
}

func (r *SqliteEmployeeRepo) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, department FROM employees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return scanEmployees(rows)
}

func (r *SqliteEmployeeRepo) GetByDepartment(ctx context.Context, department string) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, department FROM employees WHERE department = ? ORDER BY name`,
		department,
	)
	if err != nil {
		return nil, err
	}
	return scanEmployees(rows)
}

func scanEmployees(rows *sql.Rows) ([]domain.Employee, error) {
	defer rows.Close()
	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.Name, &e.Department); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
