package booking

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/navalhaapps/barbershop-api/internal/audit"
	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/models"
	"github.com/navalhaapps/barbershop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID  string
	BarberID  string
	ServiceID string
	Date      time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// 1. Slot must be strictly in the future.
	now := timezone.Now()
	if !in.Date.After(now) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// 2. Barber must exist, carry the barber role and be active.
	barber, err := uc.repo.FindActiveBarberByID(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		uc.log.Error().Err(err).Str("barber_id", in.BarberID).Msg("barber lookup failed")
		return nil, err
	}

	// 3. Service must exist and be active.
	service, err := uc.repo.FindActiveServiceByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		uc.log.Error().Err(err).Str("service_id", in.ServiceID).Msg("service lookup failed")
		return nil, err
	}

	// 4+5. Conflict check and insert run as one atomic unit inside the
	// repository; a taken (barber, date) slot comes back as slot_taken.
	b := &models.Booking{
		ClientID:  in.ClientID,
		BarberID:  barber.ID,
		ServiceID: service.ID,
		Date:      in.Date,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			return nil, err
		}
		uc.log.Error().Err(err).
			Str("barber_id", in.BarberID).
			Time("date", in.Date).
			Msg("failed to create booking")
		return nil, err
	}

	uc.log.Info().
		Str("booking_id", b.ID).
		Str("barber_id", b.BarberID).
		Time("date", b.Date).
		Msg("booking created")

	uc.audit.Dispatch(audit.Event{
		UserID:   &b.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	// 6. Return enriched with service and counterpart display fields.
	created, err := uc.repo.GetBookingByID(ctx, b.ID)
	if err != nil {
		return b, nil
	}
	return created, nil
}
