package booking

import (
	"context"
	"errors"

	"github.com/navalhaapps/barbershop-api/internal/models"
)

// ErrNotFound reports an absent or filtered-out record. Implementations
// translate their driver's own sentinel into it, so use cases can tell
// a missing record from a failing store.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Directory --------
	FindActiveBarberByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	FindActiveServiceByID(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Booking (create) --------

	// CreateBooking must perform the slot-conflict check and the insert
	// as one atomic unit: no two non-cancelled bookings may share the
	// same (barber, date) pair even under concurrent calls. A taken slot
	// surfaces as the slot_taken business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read) --------
	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		f Filter,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
