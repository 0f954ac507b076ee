// Package report contains the pure formatting and aggregation helpers for
// timesheet reports. This is part of the Functional Core - no I/O.
package report

import "fmt"

// FormatLine renders a per-project report line with its cost.
func FormatLine(projectName string, hours, rate float64, currency string) string {
	return fmt.Sprintf("%s: %.1fh - %.2f %s", projectName, hours, hours*rate, currency)
}

// FormatTotal renders the standalone uppercase total line. The monthly
// report's closing line uses lowercase "Total:" and is rendered separately.
func FormatTotal(totalHours, rate float64, currency string) string {
	return fmt.Sprintf("TOTAL: %.1fh - %.2f %s", totalHours, totalHours*rate, currency)
}

// Total sums an hour series.
func Total(hours []float64) float64 {
	var total float64
	for _, h := range hours {
		total += h
	}
	return total
}

// Average returns the mean of an hour series, 0 for an empty series.
func Average(hours []float64) float64 {
	if len(hours) == 0 {
		return 0
	}
	return Total(hours) / float64(len(hours))
}

// Max returns the largest value of an hour series, 0 for an empty series.
func Max(hours []float64) float64 {
	if len(hours) == 0 {
		return 0
	}
	max := hours[0]
	for _, h := range hours {
		if h > max {
			max = h
		}
	}
	return max
}
