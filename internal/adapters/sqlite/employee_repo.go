// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/ports/secondary"
)

// EmployeeRepository implements secondary.EmployeeRepository with SQLite.
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new SQLite employee repository.
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Add persists a new employee. IDs are caller-assigned.
func (r *EmployeeRepository) Add(ctx context.Context, employee *secondary.EmployeeRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO employees (id, surname, given_name, phone, email, hire_date, contract, hourly_rate) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		employee.ID, employee.Surname, employee.GivenName, employee.Phone, employee.Email, employee.HireDate, string(employee.Contract), employee.HourlyRate,
	)
	if err != nil {
		return fmt.Errorf("failed to add employee: %w", err)
	}
	return nil
}

// GetByID retrieves an employee by its ID.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (*secondary.EmployeeRecord, error) {
	record := &secondary.EmployeeRecord{}
	var contractType string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, surname, given_name, phone, email, hire_date, contract, hourly_rate FROM employees WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Surname, &record.GivenName, &record.Phone, &record.Email, &record.HireDate, &contractType, &record.HourlyRate)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("employee %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	record.Contract = contract.Type(contractType)
	return record, nil
}

// List retrieves all employees in insertion order.
func (r *EmployeeRepository) List(ctx context.Context) ([]*secondary.EmployeeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, surname, given_name, phone, email, hire_date, contract, hourly_rate FROM employees ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var records []*secondary.EmployeeRecord
	for rows.Next() {
		record := &secondary.EmployeeRecord{}
		var contractType string
		if err := rows.Scan(&record.ID, &record.Surname, &record.GivenName, &record.Phone, &record.Email, &record.HireDate, &contractType, &record.HourlyRate); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		record.Contract = contract.Type(contractType)
		records = append(records, record)
	}
	return records, rows.Err()
}

// Update overwrites the stored fields of an existing employee.
func (r *EmployeeRepository) Update(ctx context.Context, employee *secondary.EmployeeRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE employees SET surname = ?, given_name = ?, phone = ?, email = ?, hire_date = ?, contract = ?, hourly_rate = ? WHERE id = ?",
		employee.Surname, employee.GivenName, employee.Phone, employee.Email, employee.HireDate, string(employee.Contract), employee.HourlyRate, employee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("employee %d: %w", employee.ID, secondary.ErrNotFound)
	}
	return nil
}
