// Package period handles the month-year labels ("Jan-2025") used as the
// grouping key for task logs, payroll and the profit & loss report.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month abbreviations as the studio writes them. Indexes are 0-based months.
var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// Parse validates a period label and returns its month and year.
func Parse(label string) (month time.Month, year int, err error) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid period %q: expected format Jan-2025", label)
	}

	monthIdx := -1
	for i, name := range monthNames {
		if parts[0] == name {
			monthIdx = i
			break
		}
	}
	if monthIdx == -1 {
		return 0, 0, fmt.Errorf("invalid period %q: unknown month %q", label, parts[0])
	}

	year, convErr := strconv.Atoi(parts[1])
	if convErr != nil || year < 2000 || year > 9999 {
		return 0, 0, fmt.Errorf("invalid period %q: bad year %q", label, parts[1])
	}

	return time.Month(monthIdx + 1), year, nil
}

// IsValid reports whether label parses as a period.
func IsValid(label string) bool {
	_, _, err := Parse(label)
	return err == nil
}

// FromDate returns the period label for a calendar date.
func FromDate(t time.Time) string {
	return fmt.Sprintf("%s-%d", monthNames[int(t.Month())-1], t.Year())
}

// DateRange returns the first and last day of the period's month.
func DateRange(label string) (start, end time.Time, err error) {
	month, year, err := Parse(label)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end, nil
}
