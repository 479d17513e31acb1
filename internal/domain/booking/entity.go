package booking

import (
	"time"

	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Authorize decides whether the requester may cancel the booking:
// the owning client or the assigned barber, nobody else.
func Authorize(b *models.Booking, requesterID string, role Role) error {
	switch role {
	case RoleCliente:
		if b.ClientID != requesterID {
			return httperr.ErrBusiness("cancel_forbidden")
		}
	case RoleBarbeiro:
		if b.BarberID != requesterID {
			return httperr.ErrBusiness("cancel_forbidden")
		}
	default:
		return httperr.ErrBusiness("cancel_forbidden")
	}
	return nil
}

// Cancel transitions the booking to CANCELLED after the state and
// temporal guards pass. Bookings whose date has already elapsed stay
// untouched.
func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	if b.Date.Before(now) {
		return httperr.ErrBusiness("past_booking")
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}
