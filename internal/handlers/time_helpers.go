package handlers

import (
	"time"

	"github.com/navalhaapps/barbershop-api/internal/timezone"
)

// parseInstant accepts an ISO-8601 instant ("2023-12-25T14:00:00Z" or
// with offset).
func parseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// parseRangeBound accepts either a full instant or a bare date; bare
// dates are anchored at midnight in the business timezone.
func parseRangeBound(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(
		"2006-01-02",
		s,
		timezone.Location(timezone.DefaultTimezone),
	)
}
