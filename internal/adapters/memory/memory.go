// Package memory contains in-memory implementations of the repository
// interfaces. Collections are plain slices so insertion order is preserved,
// matching the legacy single-process semantics. A mutex per repository makes
// the adapters safe if ever shared, since the stores themselves assume a
// single writer.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/pointage/internal/core/entry"
	"github.com/example/pointage/internal/ports/secondary"
)

// EmployeeRepository implements secondary.EmployeeRepository in memory.
type EmployeeRepository struct {
	mu      sync.Mutex
	records []*secondary.EmployeeRecord
}

// NewEmployeeRepository creates an empty in-memory employee repository.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

// Add persists a new employee. ID uniqueness is assumed, not enforced.
func (r *EmployeeRepository) Add(ctx context.Context, employee *secondary.EmployeeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *employee
	r.records = append(r.records, &copied)
	return nil
}

// GetByID retrieves an employee, ErrNotFound when absent.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (*secondary.EmployeeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.records {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("employee %d: %w", id, secondary.ErrNotFound)
}

// List retrieves all employees in insertion order.
func (r *EmployeeRepository) List(ctx context.Context) ([]*secondary.EmployeeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*secondary.EmployeeRecord, len(r.records))
	for i, e := range r.records {
		copied := *e
		out[i] = &copied
	}
	return out, nil
}

// Update overwrites the stored fields of an existing employee.
func (r *EmployeeRepository) Update(ctx context.Context, employee *secondary.EmployeeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.records {
		if e.ID == employee.ID {
			copied := *employee
			r.records[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("employee %d: %w", employee.ID, secondary.ErrNotFound)
}

// ProjectRepository implements secondary.ProjectRepository in memory.
type ProjectRepository struct {
	mu      sync.Mutex
	records []*secondary.ProjectRecord
}

// NewProjectRepository creates an empty in-memory project repository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Add persists a new project.
func (r *ProjectRepository) Add(ctx context.Context, project *secondary.ProjectRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *project
	r.records = append(r.records, &copied)
	return nil
}

// GetByID retrieves a project, ErrNotFound when absent.
func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*secondary.ProjectRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.records {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("project %d: %w", id, secondary.ErrNotFound)
}

// List retrieves all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]*secondary.ProjectRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*secondary.ProjectRecord, len(r.records))
	for i, p := range r.records {
		copied := *p
		out[i] = &copied
	}
	return out, nil
}

// EntryRepository implements secondary.EntryRepository in memory.
type EntryRepository struct {
	mu      sync.Mutex
	nextID  int
	records []*secondary.EntryRecord
}

// NewEntryRepository creates an empty in-memory entry repository.
func NewEntryRepository() *EntryRepository {
	return &EntryRepository{}
}

// Add persists a new entry and assigns its ID.
func (r *EntryRepository) Add(ctx context.Context, e *secondary.EntryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	e.ID = r.nextID
	copied := *e
	r.records = append(r.records, &copied)
	return nil
}

// GetByID retrieves an entry, ErrNotFound when absent.
func (r *EntryRepository) GetByID(ctx context.Context, id int) (*secondary.EntryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.records {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("entry %d: %w", id, secondary.ErrNotFound)
}

// List retrieves all entries in insertion order.
func (r *EntryRepository) List(ctx context.Context) ([]*secondary.EntryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*secondary.EntryRecord, len(r.records))
	for i, e := range r.records {
		copied := *e
		out[i] = &copied
	}
	return out, nil
}

// UpdateStatus overwrites the status of an existing entry.
func (r *EntryRepository) UpdateStatus(ctx context.Context, id int, status entry.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.records {
		if e.ID == id {
			e.Status = status
			return nil
		}
	}
	return fmt.Errorf("entry %d: %w", id, secondary.ErrNotFound)
}

// AuditLog implements secondary.AuditLog in memory.
type AuditLog struct {
	mu    sync.Mutex
	lines []string
}

// NewAuditLog creates an empty in-memory audit log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Append records one audit line.
func (l *AuditLog) Append(ctx context.Context, line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	return nil
}

// Lines retrieves all audit lines in append order.
func (l *AuditLog) Lines(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out, nil
}
