package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    name TEXT PRIMARY KEY,
    department TEXT NOT NULL
);
`

const createDepartmentIndex = `
CREATE INDEX IF NOT EXISTS idx_employees_department ON employees (department);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createEmployeesTable); err != nil {
		return err
	}
	if _, err := db.Exec(createDepartmentIndex); err != nil {
		return err
	}
	return nil
}

// Open opens the database at path and applies migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return db, nil
}
