package booking

import "time"

// Filter is the typed query spec handed to the repository for listings.
// Exactly one of ClientID / BarberID is set by the list use case; the
// date range only applies when both bounds are present.
type Filter struct {
	ClientID string
	BarberID string

	From *time.Time
	To   *time.Time
}

// ForRequester scopes the filter by caller identity: barbers see their
// own agenda, every other role sees the bookings they own as client.
func ForRequester(requesterID string, role Role) Filter {
	if role == RoleBarbeiro {
		return Filter{BarberID: requesterID}
	}
	return Filter{ClientID: requesterID}
}

// WithRange activates inclusive date filtering only when both bounds are
// given; a single bound is ignored, not an error.
func (f Filter) WithRange(from, to *time.Time) Filter {
	if from == nil || to == nil {
		return f
	}
	f.From = from
	f.To = to
	return f
}
