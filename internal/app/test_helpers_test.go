package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/example/pointage/internal/adapters/memory"
	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/core/entry"
	"github.com/example/pointage/internal/ports/primary"
	"github.com/example/pointage/internal/ports/secondary"
)

// testEnv bundles a service wired against in-memory adapters, the way the
// CLI wires it against sqlite.
type testEnv struct {
	service   *TimesheetServiceImpl
	employees *memory.EmployeeRepository
	projects  *memory.ProjectRepository
	entries   *memory.EntryRepository
	audit     *memory.AuditLog
	out       *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		employees: memory.NewEmployeeRepository(),
		projects:  memory.NewProjectRepository(),
		entries:   memory.NewEntryRepository(),
		audit:     memory.NewAuditLog(),
		out:       &bytes.Buffer{},
	}
	env.service = NewTimesheetService(env.employees, env.projects, env.entries, env.audit, DefaultSettings(), env.out)
	return env
}

// seedStandardFixtures loads the canonical demo data set: three employees,
// three projects and the March 2024 entries.
func (env *testEnv) seedStandardFixtures(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	employees := []primary.AddEmployeeRequest{
		{ID: 1, Surname: "Dupont", GivenName: "Marie", Phone: "0612345678", Email: "marie@example.com", HireDate: "15/01/2023", Contract: contract.Permanent, HourlyRate: 35.0},
		{ID: 2, Surname: "Martin", GivenName: "Pierre", Phone: "0698765432", Email: "pierre@example.com", HireDate: "01/06/2022", Contract: contract.FixedTerm, HourlyRate: 28.0},
		{ID: 3, Surname: "Durand", GivenName: "Sophie", Phone: "0655443322", Email: "sophie@example.com", HireDate: "01/09/2023", Contract: contract.Internship, HourlyRate: 15.0},
	}
	for _, req := range employees {
		if _, err := env.service.AddEmployee(ctx, req); err != nil {
			t.Fatalf("seed employee %d: %v", req.ID, err)
		}
	}

	projects := []primary.AddProjectRequest{
		{ID: 1, Name: "Site Web Corporate", Code: "WEB01", HourBudget: 500},
		{ID: 2, Name: "Application Mobile", Code: "MOB01", HourBudget: 300},
		{ID: 3, Name: "Migration Base de Donnees", Code: "DB01", HourBudget: 200},
	}
	for _, req := range projects {
		if _, err := env.service.AddProject(ctx, req); err != nil {
			t.Fatalf("seed project %d: %v", req.ID, err)
		}
	}

	entries := []primary.RecordEntryRequest{
		{EmployeeID: 1, ProjectID: 1, Date: "01/03/2024", Hours: 8.0, Description: "Developpement page accueil"},
		{EmployeeID: 1, ProjectID: 1, Date: "02/03/2024", Hours: 7.5, Description: "Tests unitaires page accueil"},
		{EmployeeID: 1, ProjectID: 2, Date: "03/03/2024", Hours: 6.0, Description: "Revue de code mobile"},
		{EmployeeID: 2, ProjectID: 2, Date: "01/03/2024", Hours: 7.0, Description: "Maquettes ecran principal"},
		{EmployeeID: 2, ProjectID: 2, Date: "02/03/2024", Hours: 7.5, Description: "Integration maquettes"},
		{EmployeeID: 3, ProjectID: 3, Date: "01/03/2024", Hours: 5.0, Description: "Analyse schema existant"},
		{EmployeeID: 3, ProjectID: 3, Date: "02/03/2024", Hours: 6.0, Description: "Script de migration"},
	}
	for _, req := range entries {
		if _, err := env.service.RecordEntry(ctx, req); err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}
}

func recordRequest(employeeID, projectID int, date string, hours float64, description string) primary.RecordEntryRequest {
	return primary.RecordEntryRequest{
		EmployeeID:  employeeID,
		ProjectID:   projectID,
		Date:        date,
		Hours:       hours,
		Description: description,
	}
}

// ============================================================================
// Error-injecting mocks
// ============================================================================

var errStorage = errors.New("storage down")

// failingEmployeeRepo fails every operation, for storage error paths.
type failingEmployeeRepo struct{}

func (failingEmployeeRepo) Add(ctx context.Context, e *secondary.EmployeeRecord) error {
	return errStorage
}

func (failingEmployeeRepo) GetByID(ctx context.Context, id int) (*secondary.EmployeeRecord, error) {
	return nil, errStorage
}

func (failingEmployeeRepo) List(ctx context.Context) ([]*secondary.EmployeeRecord, error) {
	return nil, errStorage
}

func (failingEmployeeRepo) Update(ctx context.Context, e *secondary.EmployeeRecord) error {
	return errStorage
}

var _ secondary.EmployeeRepository = failingEmployeeRepo{}

// failingEntryRepo fails every operation.
type failingEntryRepo struct{}

func (failingEntryRepo) Add(ctx context.Context, e *secondary.EntryRecord) error { return errStorage }

func (failingEntryRepo) GetByID(ctx context.Context, id int) (*secondary.EntryRecord, error) {
	return nil, errStorage
}

func (failingEntryRepo) List(ctx context.Context) ([]*secondary.EntryRecord, error) {
	return nil, errStorage
}

func (failingEntryRepo) UpdateStatus(ctx context.Context, id int, status entry.Status) error {
	return errStorage
}

var _ secondary.EntryRepository = failingEntryRepo{}
