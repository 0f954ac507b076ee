// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the outside world
// drives the timesheet system.
package primary

import (
	"context"

	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/core/entry"
)

// TimesheetService defines the primary port for timesheet operations.
type TimesheetService interface {
	// AddEmployee registers an employee and writes an audit line.
	AddEmployee(ctx context.Context, req AddEmployeeRequest) (*Employee, error)

	// AddProject registers a project and writes an audit line.
	AddProject(ctx context.Context, req AddProjectRequest) (*Project, error)

	// RecordEntry stores a draft time entry. No validation runs here;
	// ValidateEntry is the separate opt-in pre-check.
	RecordEntry(ctx context.Context, req RecordEntryRequest) (*Entry, error)

	// ValidateEntry runs the pre-check for a candidate entry and returns
	// the list of validation failures (empty = valid).
	ValidateEntry(ctx context.Context, req RecordEntryRequest) ([]string, error)

	// GetEmployee retrieves an employee by id.
	GetEmployee(ctx context.Context, employeeID int) (*Employee, error)

	// ListEmployees lists all employees in insertion order.
	ListEmployees(ctx context.Context) ([]*Employee, error)

	// ListProjects lists all projects in insertion order.
	ListProjects(ctx context.Context) ([]*Project, error)

	// ListEntries lists all entries in insertion order.
	ListEntries(ctx context.Context) ([]*Entry, error)

	// TotalHoursForEmployee sums hours logged by an employee in a month.
	TotalHoursForEmployee(ctx context.Context, employeeID, month, year int) (float64, error)

	// TotalCostForProject sums hours x rate over a project's entries in a
	// month. Entries whose employee cannot be resolved contribute zero.
	TotalCostForProject(ctx context.Context, projectID, month, year int) (float64, error)

	// MonthlyReport renders the monthly report text for an employee.
	// An unresolved employee yields the sentinel text "Employee not found".
	MonthlyReport(ctx context.Context, employeeID, month, year int) (string, error)

	// ExportCSV renders the employee's monthly entries as CSV text.
	ExportCSV(ctx context.Context, employeeID, month, year int) (string, error)

	// Notify sends a message to an employee. Unresolved employees are a
	// silent no-op.
	Notify(ctx context.Context, employeeID int, message string) error

	// Statistics aggregates all entries of a month across employees.
	Statistics(ctx context.Context, month, year int) (*Statistics, error)

	// Notifications returns the messages emitted by Notify, in order.
	Notifications(ctx context.Context) []string

	// AuditTrail returns the audit log lines, in order.
	AuditTrail(ctx context.Context) ([]string, error)

	// FormatDate re-renders a DD/MM/YYYY date in the configured format.
	FormatDate(date string) string
}

// AddEmployeeRequest contains parameters for registering an employee.
type AddEmployeeRequest struct {
	ID         int
	Surname    string
	GivenName  string
	Phone      string
	Email      string
	HireDate   string
	Contract   contract.Type
	HourlyRate float64
}

// AddProjectRequest contains parameters for registering a project.
type AddProjectRequest struct {
	ID         int
	Name       string
	Code       string
	HourBudget int
}

// RecordEntryRequest contains parameters for recording or validating a
// time entry.
type RecordEntryRequest struct {
	EmployeeID  int
	ProjectID   int
	Date        string
	Hours       float64
	Description string
}

// Employee is the service-level view of an employee.
type Employee struct {
	ID         int
	Surname    string
	GivenName  string
	Phone      string
	Email      string
	HireDate   string
	Contract   contract.Type
	HourlyRate float64
}

// Project is the service-level view of a project.
type Project struct {
	ID         int
	Name       string
	Code       string
	HourBudget int
}

// Entry is the service-level view of a time entry.
type Entry struct {
	ID          int
	EmployeeID  int
	ProjectID   int
	Date        string
	Hours       float64
	Description string
	Status      entry.Status
}

// Statistics aggregates one month of entries across all employees.
type Statistics struct {
	TotalHours   float64
	EntryCount   int
	AverageHours float64
	MaxHours     float64
}
