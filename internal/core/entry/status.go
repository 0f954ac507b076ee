// Package entry contains the pure business rules for time entry lifecycle.
// This is part of the Functional Core - no I/O, only pure functions.
package entry

import "strings"

// Status represents the possible states of a time entry.
type Status string

const (
	StatusDraft     Status = "brouillon"
	StatusSubmitted Status = "soumis"
	StatusApproved  Status = "approuve"
	StatusRejected  Status = "rejete"
)

// InitialStatus returns the status assigned to a freshly recorded entry.
// Entries always start as drafts; validation is a separate opt-in step.
func InitialStatus() Status {
	return StatusDraft
}

// ParseStatus normalizes free-text status input to a closed Status.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brouillon", "draft":
		return StatusDraft, true
	case "soumis", "submitted":
		return StatusSubmitted, true
	case "approuve", "approved":
		return StatusApproved, true
	case "rejete", "rejected":
		return StatusRejected, true
	}
	return "", false
}

// ApplyTransition returns the status an entry takes after a workflow step.
// The workflow never inspects the current status: submitting an approved
// entry puts it back to submitted, approving a draft approves it. That is
// the documented behavior, not an oversight to guard against.
func ApplyTransition(target Status) Status {
	return target
}

// IsTerminal reports whether no further workflow step is expected.
// Informational only - nothing enforces it.
func IsTerminal(s Status) bool {
	return s == StatusApproved || s == StatusRejected
}
