package booking

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/navalhaapps/barbershop-api/internal/audit"
	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/models"
	"github.com/navalhaapps/barbershop-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
	requesterID string,
	role domain.Role,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		uc.log.Error().Err(err).Str("booking_id", bookingID).Msg("booking lookup failed")
		return nil, err
	}

	if err := domain.Authorize(b, requesterID, role); err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		uc.log.Error().Err(err).Str("booking_id", b.ID).Msg("failed to cancel booking")
		return nil, err
	}

	uc.log.Info().
		Str("booking_id", b.ID).
		Str("requester_id", requesterID).
		Str("role", role.String()).
		Msg("booking cancelled")

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
