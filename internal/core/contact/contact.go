// Package contact contains the pure helpers for employee contact details.
package contact

import "strings"

// ValidEmail performs the minimal shape check used at employee creation:
// the address must contain an @ and a dot.
func ValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// FormatPhone renders a 10-digit French phone number in pairs
// ("0612345678" -> "06 12 34 56 78"). Other lengths are returned unchanged.
func FormatPhone(tel string) string {
	if len(tel) != 10 {
		return tel
	}
	return strings.Join([]string{tel[0:2], tel[2:4], tel[4:6], tel[6:8], tel[8:10]}, " ")
}
