package app

import (
	"context"
	"fmt"

	coreentry "github.com/example/pointage/internal/core/entry"
	"github.com/example/pointage/internal/ports/secondary"
)

// submissionManager is the manager name attached to submissions. The
// submitter does not pick an approver; the legacy workflow hardcodes it.
const submissionManager = "Manager"

// WorkflowServiceImpl implements the WorkflowService interface.
// Status updates are unconditional: the workflow never checks the current
// status before applying a transition.
type WorkflowServiceImpl struct {
	entries   secondary.EntryRepository
	employees secondary.EmployeeRepository
	projects  secondary.ProjectRepository
	notifier  secondary.Notifier
}

// NewWorkflowService creates a WorkflowService with injected dependencies.
func NewWorkflowService(
	entries secondary.EntryRepository,
	employees secondary.EmployeeRepository,
	projects secondary.ProjectRepository,
	notifier secondary.Notifier,
) *WorkflowServiceImpl {
	return &WorkflowServiceImpl{
		entries:   entries,
		employees: employees,
		projects:  projects,
		notifier:  notifier,
	}
}

// Submit marks an entry submitted and notifies the generic manager.
func (s *WorkflowServiceImpl) Submit(ctx context.Context, entryID int) error {
	e, employee, project, err := s.transition(ctx, entryID, coreentry.StatusSubmitted)
	if err != nil {
		return err
	}
	return s.notifier.NotifySubmission(ctx, employee, submissionManager, project, e.Hours, e.Date, e.Date)
}

// Approve marks an entry approved by the named manager and notifies.
func (s *WorkflowServiceImpl) Approve(ctx context.Context, entryID int, manager string) error {
	e, employee, project, err := s.transition(ctx, entryID, coreentry.StatusApproved)
	if err != nil {
		return err
	}
	return s.notifier.NotifyApproval(ctx, employee, manager, project, e.Hours, e.Date, e.Date)
}

// Reject marks an entry rejected by the named manager and notifies with
// the reason.
func (s *WorkflowServiceImpl) Reject(ctx context.Context, entryID int, manager, reason string) error {
	e, employee, project, err := s.transition(ctx, entryID, coreentry.StatusRejected)
	if err != nil {
		return err
	}
	return s.notifier.NotifyRejection(ctx, employee, manager, project, e.Hours, reason)
}

// transition applies the status change and resolves the names the
// notification needs. An entry referencing a missing employee or project
// is a broken precondition and fails the whole operation.
func (s *WorkflowServiceImpl) transition(ctx context.Context, entryID int, target coreentry.Status) (*secondary.EntryRecord, string, string, error) {
	e, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, "", "", fmt.Errorf("entry %d not found: %w", entryID, err)
	}

	if err := s.entries.UpdateStatus(ctx, entryID, coreentry.ApplyTransition(target)); err != nil {
		return nil, "", "", fmt.Errorf("failed to update entry status: %w", err)
	}
	e.Status = target

	employee, err := s.employees.GetByID(ctx, e.EmployeeID)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to resolve employee %d: %w", e.EmployeeID, err)
	}
	project, err := s.projects.GetByID(ctx, e.ProjectID)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to resolve project %d: %w", e.ProjectID, err)
	}

	return e, employee.Surname, project.Name, nil
}
