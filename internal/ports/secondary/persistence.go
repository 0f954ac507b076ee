// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// storage and notification delivery.
package secondary

import (
	"context"
	"errors"

	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/core/entry"
)

// ErrNotFound is returned by repositories when a lookup misses.
// Callers that silently skip unresolved references test with errors.Is.
var ErrNotFound = errors.New("not found")

// EmployeeRecord represents an employee as stored in persistence.
type EmployeeRecord struct {
	ID         int
	Surname    string
	GivenName  string
	Phone      string
	Email      string
	HireDate   string // DD/MM/YYYY
	Contract   contract.Type
	HourlyRate float64
}

// EmployeeRepository defines the secondary port for employee persistence.
type EmployeeRepository interface {
	// Add persists a new employee. IDs are caller-assigned.
	Add(ctx context.Context, employee *EmployeeRecord) error

	// GetByID retrieves an employee, ErrNotFound when absent.
	GetByID(ctx context.Context, id int) (*EmployeeRecord, error)

	// List retrieves all employees in insertion order.
	List(ctx context.Context) ([]*EmployeeRecord, error)

	// Update overwrites the stored fields of an existing employee.
	Update(ctx context.Context, employee *EmployeeRecord) error
}

// ProjectRecord represents a project as stored in persistence.
// HourBudget is advisory; nothing enforces it against logged hours.
type ProjectRecord struct {
	ID         int
	Name       string
	Code       string
	HourBudget int
}

// ProjectRepository defines the secondary port for project persistence.
type ProjectRepository interface {
	Add(ctx context.Context, project *ProjectRecord) error
	GetByID(ctx context.Context, id int) (*ProjectRecord, error)
	List(ctx context.Context) ([]*ProjectRecord, error)
}

// EntryRecord represents a time entry as stored in persistence.
// EmployeeID and ProjectID are plain references; only the validation
// pre-check verifies they resolve.
type EntryRecord struct {
	ID          int // assigned by the repository on Add
	EmployeeID  int
	ProjectID   int
	Date        string // DD/MM/YYYY
	Hours       float64
	Description string
	Status      entry.Status
}

// EntryRepository defines the secondary port for time entry persistence.
type EntryRepository interface {
	// Add persists a new entry and assigns its ID.
	Add(ctx context.Context, e *EntryRecord) error

	// GetByID retrieves an entry, ErrNotFound when absent.
	GetByID(ctx context.Context, id int) (*EntryRecord, error)

	// List retrieves all entries in insertion order.
	List(ctx context.Context) ([]*EntryRecord, error)

	// UpdateStatus overwrites the status of an existing entry.
	UpdateStatus(ctx context.Context, id int, status entry.Status) error
}

// AuditLog defines the secondary port for the service audit trail.
type AuditLog interface {
	// Append records one audit line.
	Append(ctx context.Context, line string) error

	// Lines retrieves all audit lines in append order.
	Lines(ctx context.Context) ([]string, error)
}
