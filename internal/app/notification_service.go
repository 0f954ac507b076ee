package app

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// overageAlertRate is the flat rate used to estimate the cost printed in
// the over-40-hour alert lines. It is deliberately independent of the
// employee's actual hourly rate; the legacy system behaves this way and
// the behavior is kept verbatim.
const overageAlertRate = 35.0

// overageAlertHours is the weekly hour count above which submission and
// approval notifications print an extra alert line.
const overageAlertHours = 40.0

// NotificationServiceImpl implements secondary.Notifier. Messages are
// appended to an in-memory log and emitted to the configured writer.
// Alert lines are emitted only, never logged.
type NotificationServiceImpl struct {
	mu   sync.Mutex
	sent []string
	out  io.Writer
}

// NewNotificationService creates a notifier writing to the given output.
func NewNotificationService(out io.Writer) *NotificationServiceImpl {
	return &NotificationServiceImpl{out: out}
}

// NotifySubmission announces a timesheet submission.
func (n *NotificationServiceImpl) NotifySubmission(ctx context.Context, employee, manager, project string, hours float64, dateStart, dateEnd string) error {
	msg := fmt.Sprintf("Soumission de %s sur %s: %.1fh (%s - %s)", employee, project, hours, dateStart, dateEnd)
	n.emit(msg)
	if hours > overageAlertHours {
		cost := hours * overageAlertRate
		fmt.Fprintf(n.out, "  ALERTE: Depassement heures pour %s - Cout estime: %.2f EUR\n", employee, cost)
	}
	return nil
}

// NotifyApproval announces an approval by a manager.
func (n *NotificationServiceImpl) NotifyApproval(ctx context.Context, employee, manager, project string, hours float64, dateStart, dateEnd string) error {
	msg := fmt.Sprintf("Approbation par %s pour %s sur %s: %.1fh (%s - %s)", manager, employee, project, hours, dateStart, dateEnd)
	n.emit(msg)
	if hours > overageAlertHours {
		cost := hours * overageAlertRate
		fmt.Fprintf(n.out, "  INFO: Heures supplementaires pour %s - Cout: %.2f EUR\n", employee, cost)
	}
	return nil
}

// NotifyRejection announces a rejection with its reason. No overage line.
func (n *NotificationServiceImpl) NotifyRejection(ctx context.Context, employee, manager, project string, hours float64, reason string) error {
	msg := fmt.Sprintf("Rejet par %s pour %s sur %s: %.1fh - Raison: %s", manager, employee, project, hours, reason)
	n.emit(msg)
	return nil
}

// Sent returns every message emitted so far, in order.
func (n *NotificationServiceImpl) Sent(ctx context.Context) ([]string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.sent))
	copy(out, n.sent)
	return out, nil
}

func (n *NotificationServiceImpl) emit(msg string) {
	n.mu.Lock()
	n.sent = append(n.sent, msg)
	n.mu.Unlock()
	fmt.Fprintln(n.out, msg)
}
