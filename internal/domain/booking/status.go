package booking

import "github.com/navalhaapps/barbershop-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	// Representable but not driven by any flow yet.
	StatusCompleted Status = "COMPLETED"
)

// ===============================
// Validations
// ===============================

// CanCancel gates the only mutation a booking supports. CANCELLED is
// terminal; there is no un-cancel.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
