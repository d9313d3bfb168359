package flows

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"staff-directory/internal/app/service"
	"staff-directory/internal/delivery/router"
	"staff-directory/internal/domain"
)

const Help = `commands:
  add <name> to <department>
  add <name> <department>
  list all
  list <department>
  exit`

func RegisterDirectory(r *router.CommandRouter, employees *service.EmployeeService) {
	r.Register("add", func(ctx context.Context, args []string) (router.Result, error) {
		var name, dept string
		switch {
		case len(args) == 2:
			name, dept = args[0], args[1]
		case len(args) == 3 && strings.EqualFold(args[1], "to"):
			name, dept = args[0], args[2]
		default:
			return router.Result{}, router.Usagef("add <name> to <department> or add <name> <department>")
		}
		stored, added, err := employees.Add(ctx, name, dept)
		if err != nil {
			return router.Result{}, asUsage(err)
		}
		if !added {
			return router.Result{Output: fmt.Sprintf("%s is already in %s", stored.Name, stored.Department)}, nil
		}
		return router.Result{Output: fmt.Sprintf("Added %s to %s", stored.Name, stored.Department)}, nil
	})

	r.Register("list", func(ctx context.Context, args []string) (router.Result, error) {
		if len(args) != 1 {
			return router.Result{}, router.Usagef("list all or list <department>")
		}
		if strings.EqualFold(args[0], "all") {
			all, err := employees.ListAll(ctx)
			if err != nil {
				return router.Result{}, err
			}
			return router.Result{Output: FormatDirectory(all)}, nil
		}
		names, err := employees.ListDepartment(ctx, args[0])
		if err != nil {
			return router.Result{}, asUsage(err)
		}
		return router.Result{Output: FormatNames(names)}, nil
	})

	r.Register("exit", func(_ context.Context, args []string) (router.Result, error) {
		if len(args) != 0 {
			return router.Result{}, router.Usagef("exit takes no arguments")
		}
		return router.Result{Status: router.Exit}, nil
	})
}

// asUsage turns rejected input into a usage error; storage errors pass through.
func asUsage(err error) error {
	if errors.Is(err, domain.ErrInvalidText) || errors.Is(err, domain.ErrEmptyField) {
		return router.Usagef("%v", err)
	}
	return err
}

// FormatNames renders names as ["Ray", "Sally"].
func FormatNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// FormatDirectory renders records as {"Amir": "Sales"} in the order given.
func FormatDirectory(employees []domain.Employee) string {
	pairs := make([]string, len(employees))
	for i, e := range employees {
		pairs[i] = strconv.Quote(e.Name) + ": " + strconv.Quote(e.Department)
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// FormatRoster renders one line per department, in the order of departments.
func FormatRoster(departments []string, roster map[string][]string) string {
	if len(departments) == 0 {
		return "no employees"
	}
	lines := make([]string, len(departments))
	for i, dept := range departments {
		lines[i] = dept + ": " + FormatNames(roster[dept])
	}
	return strings.Join(lines, "\n")
}
