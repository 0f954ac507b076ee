package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/core/entry"
	"github.com/example/pointage/internal/ports/secondary"
)

func TestEmployeeRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	err := repo.Add(ctx, &secondary.EmployeeRecord{
		ID: 1, Surname: "Dupont", GivenName: "Marie", Contract: contract.Permanent, HourlyRate: 35.0,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Surname != "Dupont" || got.HourlyRate != 35.0 {
		t.Errorf("GetByID() = %+v", got)
	}

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("GetByID(99) error = %v, want ErrNotFound", err)
	}
}

func TestEmployeeRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	_ = repo.Add(ctx, &secondary.EmployeeRecord{ID: 1, Surname: "Dupont", HourlyRate: 35.0})

	if err := repo.Update(ctx, &secondary.EmployeeRecord{ID: 1, Surname: "Dupont", HourlyRate: 40.0}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, _ := repo.GetByID(ctx, 1)
	if got.HourlyRate != 40.0 {
		t.Errorf("rate after update = %v, want 40.0", got.HourlyRate)
	}

	if err := repo.Update(ctx, &secondary.EmployeeRecord{ID: 7}); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestEmployeeRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()
	_ = repo.Add(ctx, &secondary.EmployeeRecord{ID: 1, Surname: "Dupont"})

	got, _ := repo.GetByID(ctx, 1)
	got.Surname = "Mutated"

	again, _ := repo.GetByID(ctx, 1)
	if again.Surname != "Dupont" {
		t.Errorf("stored record mutated through returned copy: %q", again.Surname)
	}
}

func TestEntryRepositoryAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()

	for i := 0; i < 3; i++ {
		e := &secondary.EntryRecord{EmployeeID: 1, ProjectID: 1, Date: "01/03/2024", Hours: 8, Status: entry.StatusDraft}
		if err := repo.Add(ctx, e); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if e.ID != i+1 {
			t.Errorf("assigned ID = %d, want %d", e.ID, i+1)
		}
	}
}

func TestEntryRepositoryPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()
	dates := []string{"03/03/2024", "01/03/2024", "02/03/2024"}
	for _, d := range dates {
		_ = repo.Add(ctx, &secondary.EntryRecord{EmployeeID: 1, ProjectID: 1, Date: d, Hours: 8, Status: entry.StatusDraft})
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for i, d := range dates {
		if all[i].Date != d {
			t.Errorf("List()[%d].Date = %q, want %q", i, all[i].Date, d)
		}
	}
}

func TestEntryRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()
	e := &secondary.EntryRecord{EmployeeID: 1, ProjectID: 1, Date: "01/03/2024", Hours: 8, Status: entry.StatusDraft}
	_ = repo.Add(ctx, e)

	if err := repo.UpdateStatus(ctx, e.ID, entry.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	got, _ := repo.GetByID(ctx, e.ID)
	if got.Status != entry.StatusApproved {
		t.Errorf("status = %q, want approved", got.Status)
	}

	if err := repo.UpdateStatus(ctx, 99, entry.StatusApproved); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("UpdateStatus(missing) error = %v, want ErrNotFound", err)
	}
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()
	_ = repo.Add(ctx, &secondary.ProjectRecord{ID: 1, Name: "Site Web Corporate", Code: "WEB01", HourBudget: 500})
	_ = repo.Add(ctx, &secondary.ProjectRecord{ID: 2, Name: "Application Mobile", Code: "MOB01", HourBudget: 300})

	got, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Code != "MOB01" {
		t.Errorf("Code = %q", got.Code)
	}

	all, _ := repo.List(ctx)
	if len(all) != 2 || all[0].ID != 1 {
		t.Errorf("List() = %+v", all)
	}
}

func TestAuditLogOrder(t *testing.T) {
	ctx := context.Background()
	log := NewAuditLog()
	_ = log.Append(ctx, "Employee added: Dupont Marie")
	_ = log.Append(ctx, "Project added: Site Web Corporate")

	lines, err := log.Lines(ctx)
	if err != nil {
		t.Fatalf("Lines() error = %v", err)
	}
	if len(lines) != 2 || lines[0] != "Employee added: Dupont Marie" {
		t.Errorf("Lines() = %v", lines)
	}
}
