package primary

import "context"

// WorkflowService defines the primary port for the approval workflow.
// Every operation sets the entry status unconditionally and fires the
// matching notification; the current status is never inspected.
type WorkflowService interface {
	// Submit marks an entry submitted on behalf of the generic manager.
	Submit(ctx context.Context, entryID int) error

	// Approve marks an entry approved by the named manager.
	Approve(ctx context.Context, entryID int, manager string) error

	// Reject marks an entry rejected by the named manager with a reason.
	Reject(ctx context.Context, entryID int, manager, reason string) error
}
