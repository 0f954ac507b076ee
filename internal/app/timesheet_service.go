package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/core/dates"
	coreentry "github.com/example/pointage/internal/core/entry"
	"github.com/example/pointage/internal/core/report"
	"github.com/example/pointage/internal/core/validate"
	"github.com/example/pointage/internal/ports/primary"
	"github.com/example/pointage/internal/ports/secondary"
)

// Settings carries the rendering configuration of the timesheet service.
type Settings struct {
	DateFormat   dates.Format
	CSVSeparator string
	Currency     string
}

// DefaultSettings returns the legacy defaults: FR dates, semicolon CSV, EUR.
func DefaultSettings() Settings {
	return Settings{
		DateFormat:   dates.FormatFR,
		CSVSeparator: ";",
		Currency:     "EUR",
	}
}

// TimesheetServiceImpl implements the TimesheetService interface.
type TimesheetServiceImpl struct {
	employees secondary.EmployeeRepository
	projects  secondary.ProjectRepository
	entries   secondary.EntryRepository
	audit     secondary.AuditLog
	settings  Settings
	out       io.Writer

	mu            sync.Mutex
	notifications []string
}

// NewTimesheetService creates a TimesheetService with injected dependencies.
// Notifications sent via Notify are appended to an internal log and emitted
// to out.
func NewTimesheetService(
	employees secondary.EmployeeRepository,
	projects secondary.ProjectRepository,
	entries secondary.EntryRepository,
	audit secondary.AuditLog,
	settings Settings,
	out io.Writer,
) *TimesheetServiceImpl {
	if settings.CSVSeparator == "" {
		settings.CSVSeparator = ";"
	}
	if settings.Currency == "" {
		settings.Currency = "EUR"
	}
	if settings.DateFormat == "" {
		settings.DateFormat = dates.FormatFR
	}
	return &TimesheetServiceImpl{
		employees: employees,
		projects:  projects,
		entries:   entries,
		audit:     audit,
		settings:  settings,
		out:       out,
	}
}

// AddEmployee registers an employee and writes an audit line.
func (s *TimesheetServiceImpl) AddEmployee(ctx context.Context, req primary.AddEmployeeRequest) (*primary.Employee, error) {
	record := &secondary.EmployeeRecord{
		ID:         req.ID,
		Surname:    req.Surname,
		GivenName:  req.GivenName,
		Phone:      req.Phone,
		Email:      req.Email,
		HireDate:   req.HireDate,
		Contract:   req.Contract,
		HourlyRate: req.HourlyRate,
	}
	if err := s.employees.Add(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add employee: %w", err)
	}
	if err := s.audit.Append(ctx, fmt.Sprintf("Employee added: %s %s", record.Surname, record.GivenName)); err != nil {
		return nil, fmt.Errorf("failed to write audit line: %w", err)
	}
	return employeeView(record), nil
}

// AddProject registers a project and writes an audit line.
func (s *TimesheetServiceImpl) AddProject(ctx context.Context, req primary.AddProjectRequest) (*primary.Project, error) {
	record := &secondary.ProjectRecord{
		ID:         req.ID,
		Name:       req.Name,
		Code:       req.Code,
		HourBudget: req.HourBudget,
	}
	if err := s.projects.Add(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add project: %w", err)
	}
	if err := s.audit.Append(ctx, fmt.Sprintf("Project added: %s", record.Name)); err != nil {
		return nil, fmt.Errorf("failed to write audit line: %w", err)
	}
	return projectView(record), nil
}

// RecordEntry stores a draft time entry. Deliberately no validation here:
// the two-phase design lets callers skip the pre-check, and nothing stops
// them from committing an invalid entry.
func (s *TimesheetServiceImpl) RecordEntry(ctx context.Context, req primary.RecordEntryRequest) (*primary.Entry, error) {
	record := &secondary.EntryRecord{
		EmployeeID:  req.EmployeeID,
		ProjectID:   req.ProjectID,
		Date:        req.Date,
		Hours:       req.Hours,
		Description: req.Description,
		Status:      coreentry.InitialStatus(),
	}
	if err := s.entries.Add(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}
	return entryView(record), nil
}

// ValidateEntry runs the opt-in pre-check for a candidate entry.
func (s *TimesheetServiceImpl) ValidateEntry(ctx context.Context, req primary.RecordEntryRequest) ([]string, error) {
	candidate := validate.Candidate{
		Date:       req.Date,
		Hours:      req.Hours,
		DateFormat: s.settings.DateFormat,
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	switch {
	case err == nil:
		candidate.EmployeeExists = true
		candidate.Contract = emp.Contract
	case errors.Is(err, secondary.ErrNotFound):
		// absent employee is a validation failure, not a service error
	default:
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	if candidate.EmployeeExists {
		_, err := s.projects.GetByID(ctx, req.ProjectID)
		switch {
		case err == nil:
			candidate.ProjectExists = true
		case errors.Is(err, secondary.ErrNotFound):
		default:
			return nil, fmt.Errorf("failed to look up project: %w", err)
		}
	}

	return validate.Check(candidate), nil
}

// GetEmployee retrieves an employee by id.
func (s *TimesheetServiceImpl) GetEmployee(ctx context.Context, employeeID int) (*primary.Employee, error) {
	record, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return employeeView(record), nil
}

// ListEmployees lists all employees in insertion order.
func (s *TimesheetServiceImpl) ListEmployees(ctx context.Context) ([]*primary.Employee, error) {
	records, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	out := make([]*primary.Employee, len(records))
	for i, r := range records {
		out[i] = employeeView(r)
	}
	return out, nil
}

// ListProjects lists all projects in insertion order.
func (s *TimesheetServiceImpl) ListProjects(ctx context.Context) ([]*primary.Project, error) {
	records, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	out := make([]*primary.Project, len(records))
	for i, r := range records {
		out[i] = projectView(r)
	}
	return out, nil
}

// ListEntries lists all entries in insertion order.
func (s *TimesheetServiceImpl) ListEntries(ctx context.Context) ([]*primary.Entry, error) {
	records, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	out := make([]*primary.Entry, len(records))
	for i, r := range records {
		out[i] = entryView(r)
	}
	return out, nil
}

// TotalHoursForEmployee sums hours logged by an employee in a month.
func (s *TimesheetServiceImpl) TotalHoursForEmployee(ctx context.Context, employeeID, month, year int) (float64, error) {
	monthly, err := s.monthlyEntries(ctx, func(e *secondary.EntryRecord) bool { return e.EmployeeID == employeeID }, month, year)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range monthly {
		total += e.Hours
	}
	return total, nil
}

// TotalCostForProject sums hours x employee rate over a project's entries
// in a month. Entries whose employee cannot be resolved are skipped.
func (s *TimesheetServiceImpl) TotalCostForProject(ctx context.Context, projectID, month, year int) (float64, error) {
	monthly, err := s.monthlyEntries(ctx, func(e *secondary.EntryRecord) bool { return e.ProjectID == projectID }, month, year)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range monthly {
		emp, err := s.employees.GetByID(ctx, e.EmployeeID)
		if errors.Is(err, secondary.ErrNotFound) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to look up employee: %w", err)
		}
		total += e.Hours * emp.HourlyRate
	}
	return total, nil
}

// MonthlyReport renders the monthly report text for an employee.
func (s *TimesheetServiceImpl) MonthlyReport(ctx context.Context, employeeID, month, year int) (string, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if errors.Is(err, secondary.ErrNotFound) {
		return "Employee not found", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up employee: %w", err)
	}

	monthly, err := s.monthlyEntries(ctx, func(e *secondary.EntryRecord) bool { return e.EmployeeID == employeeID }, month, year)
	if err != nil {
		return "", err
	}

	// Group hours by project, first-seen order.
	var projectOrder []int
	hoursByProject := map[int]float64{}
	for _, e := range monthly {
		if _, seen := hoursByProject[e.ProjectID]; !seen {
			projectOrder = append(projectOrder, e.ProjectID)
		}
		hoursByProject[e.ProjectID] += e.Hours
	}

	var totalHours float64
	for _, h := range hoursByProject {
		totalHours += h
	}
	totalCost := totalHours * emp.HourlyRate

	var b strings.Builder
	fmt.Fprintf(&b, "=== Rapport mensuel %02d/%d ===\n", month, year)
	fmt.Fprintf(&b, "Employe: %s %s\n", emp.Surname, emp.GivenName)
	fmt.Fprintf(&b, "Contrat: %s\n", emp.Contract.Label())
	fmt.Fprintf(&b, "Taux horaire: %.2f %s\n", emp.HourlyRate, s.settings.Currency)
	b.WriteString(strings.Repeat("-", 40) + "\n")

	for _, projectID := range projectOrder {
		name := s.projectName(ctx, projectID)
		fmt.Fprintf(&b, "  %s\n", report.FormatLine(name, hoursByProject[projectID], emp.HourlyRate, s.settings.Currency))
	}

	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Total: %.1fh - %.2f %s\n", totalHours, totalCost, s.settings.Currency)

	if threshold, ok := contract.MonthlyThreshold(emp.Contract); ok && totalHours > threshold {
		b.WriteString("ATTENTION: Depassement du forfait mensuel!\n")
	}

	return b.String(), nil
}

// ExportCSV renders the employee's monthly entries as CSV text.
// A missing employee here is a precondition violation and fails the export.
func (s *TimesheetServiceImpl) ExportCSV(ctx context.Context, employeeID, month, year int) (string, error) {
	sep := s.settings.CSVSeparator
	lines := []string{fmt.Sprintf("Date%sProjet%sHeures%sDescription%sCout (%s)", sep, sep, sep, sep, s.settings.Currency)}

	monthly, err := s.monthlyEntries(ctx, func(e *secondary.EntryRecord) bool { return e.EmployeeID == employeeID }, month, year)
	if err != nil {
		return "", err
	}

	for _, e := range monthly {
		emp, err := s.employees.GetByID(ctx, employeeID)
		if err != nil {
			return "", fmt.Errorf("failed to look up employee %d for cost: %w", employeeID, err)
		}
		cost := e.Hours * emp.HourlyRate
		lines = append(lines, strings.Join([]string{
			dates.Reformat(e.Date, s.settings.DateFormat),
			s.projectName(ctx, e.ProjectID),
			strconv.FormatFloat(e.Hours, 'g', -1, 64),
			e.Description,
			fmt.Sprintf("%.2f %s", cost, s.settings.Currency),
		}, sep))
	}

	return strings.Join(lines, "\n"), nil
}

// Notify sends a message to an employee. An unresolved employee is a
// silent no-op.
func (s *TimesheetServiceImpl) Notify(ctx context.Context, employeeID int, message string) error {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up employee: %w", err)
	}

	notification := fmt.Sprintf("[%s] %s", emp.Surname, message)
	s.mu.Lock()
	s.notifications = append(s.notifications, notification)
	s.mu.Unlock()
	fmt.Fprintln(s.out, notification)
	return nil
}

// Statistics aggregates all entries of a month across employees.
func (s *TimesheetServiceImpl) Statistics(ctx context.Context, month, year int) (*primary.Statistics, error) {
	monthly, err := s.monthlyEntries(ctx, func(*secondary.EntryRecord) bool { return true }, month, year)
	if err != nil {
		return nil, err
	}

	hours := make([]float64, len(monthly))
	for i, e := range monthly {
		hours[i] = e.Hours
	}
	return &primary.Statistics{
		TotalHours:   report.Total(hours),
		EntryCount:   len(hours),
		AverageHours: report.Average(hours),
		MaxHours:     report.Max(hours),
	}, nil
}

// Notifications returns the messages emitted by Notify, in order.
func (s *TimesheetServiceImpl) Notifications(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// AuditTrail returns the audit log lines, in order.
func (s *TimesheetServiceImpl) AuditTrail(ctx context.Context) ([]string, error) {
	return s.audit.Lines(ctx)
}

// FormatDate re-renders a DD/MM/YYYY date in the configured format.
func (s *TimesheetServiceImpl) FormatDate(date string) string {
	return dates.Reformat(date, s.settings.DateFormat)
}

// monthlyEntries filters entries by predicate and month/year, preserving
// insertion order. Entry dates are assumed DD/MM/YYYY; a malformed date is
// a stored-data fault and the error propagates.
func (s *TimesheetServiceImpl) monthlyEntries(ctx context.Context, keep func(*secondary.EntryRecord) bool, month, year int) ([]*secondary.EntryRecord, error) {
	all, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	var monthly []*secondary.EntryRecord
	for _, e := range all {
		m, y, err := dates.MonthYear(e.Date)
		if err != nil {
			return nil, err
		}
		if keep(e) && m == month && y == year {
			monthly = append(monthly, e)
		}
	}
	return monthly, nil
}

// projectName resolves a project name, "Inconnu" when the project is gone.
func (s *TimesheetServiceImpl) projectName(ctx context.Context, projectID int) string {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return "Inconnu"
	}
	return project.Name
}

func employeeView(r *secondary.EmployeeRecord) *primary.Employee {
	return &primary.Employee{
		ID:         r.ID,
		Surname:    r.Surname,
		GivenName:  r.GivenName,
		Phone:      r.Phone,
		Email:      r.Email,
		HireDate:   r.HireDate,
		Contract:   r.Contract,
		HourlyRate: r.HourlyRate,
	}
}

func projectView(r *secondary.ProjectRecord) *primary.Project {
	return &primary.Project{
		ID:         r.ID,
		Name:       r.Name,
		Code:       r.Code,
		HourBudget: r.HourBudget,
	}
}

func entryView(r *secondary.EntryRecord) *primary.Entry {
	return &primary.Entry{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		ProjectID:   r.ProjectID,
		Date:        r.Date,
		Hours:       r.Hours,
		Description: r.Description,
		Status:      r.Status,
	}
}
