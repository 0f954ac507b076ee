package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/pointage/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository with SQLite.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Add persists a new project.
func (r *ProjectRepository) Add(ctx context.Context, project *secondary.ProjectRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, name, code, hour_budget) VALUES (?, ?, ?, ?)",
		project.ID, project.Name, project.Code, project.HourBudget,
	)
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}
	return nil
}

// GetByID retrieves a project by its ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*secondary.ProjectRecord, error) {
	record := &secondary.ProjectRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, code, hour_budget FROM projects WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Code, &record.HourBudget)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return record, nil
}

// List retrieves all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]*secondary.ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, code, hour_budget FROM projects ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ProjectRecord
	for rows.Next() {
		record := &secondary.ProjectRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Code, &record.HourBudget); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
