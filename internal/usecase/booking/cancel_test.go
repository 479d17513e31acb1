package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/models"
)

func newCancelUC(repo *stubRepo) *CancelBooking {
	return NewCancelBooking(repo, testDispatcher(), zerolog.Nop())
}

func seedBooking(repo *stubRepo, clientID, barberID string, date time.Time) string {
	return repo.addBooking(models.Booking{
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: "service-1",
		Date:      date,
		Status:    string(domain.StatusConfirmed),
	})
}

func TestCancelBooking_NotFound(t *testing.T) {
	repo := newStubRepo()
	uc := newCancelUC(repo)

	_, err := uc.Execute(context.Background(), "missing-id", "client-1", domain.RoleCliente)
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

func TestCancelBooking_LookupFailurePropagatesRaw(t *testing.T) {
	repo := newStubRepo()
	uc := newCancelUC(repo)

	id := seedBooking(repo, "client-1", "barber-1", futureDate(24*time.Hour))

	boom := errors.New("connection refused")
	repo.getErr = boom

	_, err := uc.Execute(context.Background(), id, "client-1", domain.RoleCliente)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the raw store error, got %v", err)
	}
	if code := httperr.BusinessCode(err); code != "" {
		t.Fatalf("store failure mapped to business code %q", code)
	}
}

func TestCancelBooking_Authorization(t *testing.T) {
	repo := newStubRepo()
	uc := newCancelUC(repo)

	id := seedBooking(repo, "client-1", "barber-1", futureDate(24*time.Hour))

	cases := []struct {
		name      string
		requester string
		role      domain.Role
	}{
		{"stranger client", "client-2", domain.RoleCliente},
		{"other barber", "barber-2", domain.RoleBarbeiro},
		{"receptionist", "recep-1", domain.RoleRecepcionista},
		{"owner", "owner-1", domain.RoleDono},
		{"owner with matching client id", "client-1", domain.RoleDono},
	}

	for _, tc := range cases {
		_, err := uc.Execute(context.Background(), id, tc.requester, tc.role)
		if !httperr.IsBusiness(err, "cancel_forbidden") {
			t.Errorf("%s: expected cancel_forbidden, got %v", tc.name, err)
		}
	}

	if repo.bookings[id].Status != string(domain.StatusConfirmed) {
		t.Fatal("booking must stay CONFIRMED after denied cancellations")
	}
}

func TestCancelBooking_ByOwningClient(t *testing.T) {
	repo := newStubRepo()
	uc := newCancelUC(repo)

	id := seedBooking(repo, "client-1", "barber-1", futureDate(24*time.Hour))

	cancelled, err := uc.Execute(context.Background(), id, "client-1", domain.RoleCliente)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cancelled.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %q, want CANCELLED", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Error("CancelledAt not set")
	}
	if repo.bookings[id].Status != string(domain.StatusCancelled) {
		t.Error("cancellation not persisted")
	}
}

func TestCancelBooking_ByAssignedBarber(t *testing.T) {
	repo := newStubRepo()
	uc := newCancelUC(repo)

	id := seedBooking(repo, "client-1", "barber-1", futureDate(24*time.Hour))

	cancelled, err := uc.Execute(context.Background(), id, "barber-1", domain.RoleBarbeiro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %q, want CANCELLED", cancelled.Status)
	}
}

func TestCancelBooking_TwiceYieldsAlreadyCancelled(t *testing.T) {
	repo := newStubRepo()
	uc := newCancelUC(repo)

	id := seedBooking(repo, "client-1", "barber-1", futureDate(24*time.Hour))

	if _, err := uc.Execute(context.Background(), id, "client-1", domain.RoleCliente); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), id, "client-1", domain.RoleCliente)
	if !httperr.IsBusiness(err, "already_cancelled") {
		t.Fatalf("expected already_cancelled, got %v", err)
	}
}

func TestCancelBooking_PastBooking(t *testing.T) {
	repo := newStubRepo()
	uc := newCancelUC(repo)

	id := seedBooking(repo, "client-1", "barber-1", time.Now().Add(-time.Hour))

	// Past bookings cannot be cancelled by anyone, owner of the booking
	// included.
	for _, tc := range []struct {
		requester string
		role      domain.Role
	}{
		{"client-1", domain.RoleCliente},
		{"barber-1", domain.RoleBarbeiro},
	} {
		_, err := uc.Execute(context.Background(), id, tc.requester, tc.role)
		if !httperr.IsBusiness(err, "past_booking") {
			t.Errorf("%s: expected past_booking, got %v", tc.requester, err)
		}
	}
}
