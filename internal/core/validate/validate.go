// Package validate contains the pure validation rules for candidate time
// entries. This is part of the Functional Core - no I/O, only pure functions.
//
// Validation failures are data, not errors: the rules accumulate
// human-readable strings and an empty slice means the candidate passes.
package validate

import (
	"fmt"

	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/core/dates"
)

// Candidate carries everything the rules need, resolved by the caller.
// The service layer looks up the employee and project; the rules only see
// whether the lookups succeeded.
type Candidate struct {
	EmployeeExists bool
	Contract       contract.Type
	ProjectExists  bool
	Date           string
	Hours          float64
	DateFormat     dates.Format
}

// Check evaluates a candidate entry and returns the list of failures.
// An absent employee or project short-circuits; every other rule
// accumulates so the caller sees all content failures at once.
func Check(c Candidate) []string {
	if !c.EmployeeExists {
		return []string{"employee does not exist"}
	}
	if !c.ProjectExists {
		return []string{"project does not exist"}
	}

	var errs []string

	max := contract.MaxDailyHours(c.Contract)
	if c.Hours > max {
		errs = append(errs, fmt.Sprintf("overage: %.1fh > %.1fh max for %s", c.Hours, max, c.Contract.Label()))
	}
	if c.Hours <= 0 {
		errs = append(errs, "hours must be positive")
	}
	if msg := dates.CheckLayout(c.Date, c.DateFormat); msg != "" {
		errs = append(errs, msg)
	}

	return errs
}
