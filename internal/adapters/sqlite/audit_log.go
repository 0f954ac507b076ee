package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// AuditLog implements secondary.AuditLog with SQLite, so the audit trail
// survives between CLI invocations.
type AuditLog struct {
	db *sql.DB
}

// NewAuditLog creates a new SQLite audit log.
func NewAuditLog(db *sql.DB) *AuditLog {
	return &AuditLog{db: db}
}

// Append records one audit line.
func (l *AuditLog) Append(ctx context.Context, line string) error {
	if _, err := l.db.ExecContext(ctx, "INSERT INTO audit_log (line) VALUES (?)", line); err != nil {
		return fmt.Errorf("failed to append audit line: %w", err)
	}
	return nil
}

// Lines retrieves all audit lines in append order.
func (l *AuditLog) Lines(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, "SELECT line FROM audit_log ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan audit line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
