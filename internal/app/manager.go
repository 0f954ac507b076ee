package app

import (
	"context"

	"github.com/example/pointage/internal/ports/primary"
	"github.com/example/pointage/internal/ports/secondary"
)

// Manager is an employee with approval capability over a team. Modeled as
// composition: an employee record plus a team name, driving the workflow
// under the employee's surname. There is no type hierarchy involved.
type Manager struct {
	Employee *secondary.EmployeeRecord
	Team     string

	workflow primary.WorkflowService
}

// NewManager wraps an employee record with approval capability.
func NewManager(employee *secondary.EmployeeRecord, team string, workflow primary.WorkflowService) *Manager {
	return &Manager{Employee: employee, Team: team, workflow: workflow}
}

// Approve approves an entry in this manager's name.
func (m *Manager) Approve(ctx context.Context, entryID int) error {
	return m.workflow.Approve(ctx, entryID, m.Employee.Surname)
}

// Reject rejects an entry in this manager's name with a reason.
func (m *Manager) Reject(ctx context.Context, entryID int, reason string) error {
	return m.workflow.Reject(ctx, entryID, m.Employee.Surname, reason)
}
