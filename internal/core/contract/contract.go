// Package contract contains the pure business rules for employment contracts.
// This is part of the Functional Core - no I/O, only pure functions.
package contract

import "strings"

// Type represents an employment contract type.
type Type string

const (
	Permanent      Type = "CDI"
	FixedTerm      Type = "CDD"
	Internship     Type = "Stage"
	Apprenticeship Type = "Alternance"
	Freelance      Type = "Freelance"
)

// Payroll constants carried over from the legacy configuration.
const (
	VATRate             = 0.20
	AnnualHourLimit     = 1607
	BusinessDaysPerYear = 218
)

// DefaultMaxDailyHours applies to contract types without a specific ceiling.
const DefaultMaxDailyHours = 8.0

// Parse normalizes free-text contract type input to a closed Type.
// Both the French labels and English aliases are accepted.
func Parse(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cdi", "permanent":
		return Permanent, true
	case "cdd", "fixed-term", "fixedterm":
		return FixedTerm, true
	case "stage", "internship":
		return Internship, true
	case "alternance", "apprenticeship":
		return Apprenticeship, true
	case "freelance":
		return Freelance, true
	}
	return "", false
}

// Label returns the display label used in reports and validation messages.
func (t Type) Label() string {
	return string(t)
}

// MaxDailyHours returns the daily hour ceiling for a contract type.
// Unrecognized types fall back to the default ceiling.
func MaxDailyHours(t Type) float64 {
	switch t {
	case Permanent:
		return 8.0
	case FixedTerm:
		return 7.5
	case Internship:
		return 6.0
	case Apprenticeship:
		return 7.0
	case Freelance:
		return 10.0
	default:
		return DefaultMaxDailyHours
	}
}

// MonthlyThreshold returns the monthly hour threshold above which the
// report prints an overage warning. The second return value is false for
// contract types that never warn.
func MonthlyThreshold(t Type) (float64, bool) {
	switch t {
	case Permanent:
		return 151.67, true
	case FixedTerm:
		return 140, true
	case Internship:
		return 120, true
	default:
		return 0, false
	}
}
