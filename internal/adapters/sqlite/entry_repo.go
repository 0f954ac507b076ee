package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	coreentry "github.com/example/pointage/internal/core/entry"
	"github.com/example/pointage/internal/ports/secondary"
)

// EntryRepository implements secondary.EntryRepository with SQLite.
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new SQLite entry repository.
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Add persists a new entry and assigns its ID from the autoincrement key.
func (r *EntryRepository) Add(ctx context.Context, e *secondary.EntryRecord) error {
	if e.Status == "" {
		return fmt.Errorf("entry status must be pre-populated by service layer")
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO entries (employee_id, project_id, entry_date, hours, description, status) VALUES (?, ?, ?, ?, ?, ?)",
		e.EmployeeID, e.ProjectID, e.Date, e.Hours, e.Description, string(e.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read entry id: %w", err)
	}
	e.ID = int(id)
	return nil
}

// GetByID retrieves an entry by its ID.
func (r *EntryRepository) GetByID(ctx context.Context, id int) (*secondary.EntryRecord, error) {
	record := &secondary.EntryRecord{}
	var status string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, employee_id, project_id, entry_date, hours, description, status FROM entries WHERE id = ?",
		id,
	).Scan(&record.ID, &record.EmployeeID, &record.ProjectID, &record.Date, &record.Hours, &record.Description, &status)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("entry %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	record.Status = coreentry.Status(status)
	return record, nil
}

// List retrieves all entries in insertion order.
func (r *EntryRepository) List(ctx context.Context) ([]*secondary.EntryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, employee_id, project_id, entry_date, hours, description, status FROM entries ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var records []*secondary.EntryRecord
	for rows.Next() {
		record := &secondary.EntryRecord{}
		var status string
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.ProjectID, &record.Date, &record.Hours, &record.Description, &status); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		record.Status = coreentry.Status(status)
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpdateStatus overwrites the status of an existing entry.
func (r *EntryRepository) UpdateStatus(ctx context.Context, id int, status coreentry.Status) error {
	res, err := r.db.ExecContext(ctx, "UPDATE entries SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update entry status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update entry status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d: %w", id, secondary.ErrNotFound)
	}
	return nil
}
