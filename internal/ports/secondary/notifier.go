package secondary

import "context"

// Notifier defines the secondary port for workflow notifications.
// Implementations keep an ordered log of every message they emit.
type Notifier interface {
	// NotifySubmission announces a timesheet submission.
	NotifySubmission(ctx context.Context, employee, manager, project string, hours float64, dateStart, dateEnd string) error

	// NotifyApproval announces an approval by a manager.
	NotifyApproval(ctx context.Context, employee, manager, project string, hours float64, dateStart, dateEnd string) error

	// NotifyRejection announces a rejection with its reason.
	NotifyRejection(ctx context.Context, employee, manager, project string, hours float64, reason string) error

	// Sent returns every message emitted so far, in order.
	Sent(ctx context.Context) ([]string, error)
}
