package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/models"
)

func seedListFixtures(repo *stubRepo) (clientID, barberID string) {
	barberID = repo.addUser(models.User{
		Name:   "Marcos",
		Role:   domain.RoleBarbeiro.String(),
		Active: true,
	})
	clientID = repo.addUser(models.User{
		Name:   "Paulo",
		Phone:  "11 99999-0000",
		Role:   domain.RoleCliente.String(),
		Active: true,
	})
	serviceID := repo.addService(models.Service{
		Name:        "Barba completa",
		Price:       35,
		DurationMin: 20,
		Active:      true,
	})

	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	// Three bookings for our client with the same barber, out of order.
	for _, offset := range []time.Duration{48 * time.Hour, 0, 24 * time.Hour} {
		repo.addBooking(models.Booking{
			ClientID:  clientID,
			BarberID:  barberID,
			ServiceID: serviceID,
			Date:      base.Add(offset),
			Status:    string(domain.StatusConfirmed),
		})
	}

	// Noise: a booking held by someone else with another barber.
	otherBarber := repo.addUser(models.User{Role: domain.RoleBarbeiro.String(), Active: true})
	otherClient := repo.addUser(models.User{Role: domain.RoleCliente.String(), Active: true})
	repo.addBooking(models.Booking{
		ClientID:  otherClient,
		BarberID:  otherBarber,
		ServiceID: serviceID,
		Date:      base.Add(12 * time.Hour),
		Status:    string(domain.StatusConfirmed),
	})

	return clientID, barberID
}

func TestListBookings_ClientSeesOnlyOwn(t *testing.T) {
	repo := newStubRepo()
	clientID, _ := seedListFixtures(repo)
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), clientID, domain.RoleCliente, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("got %d bookings, want 3", len(out))
	}

	for i := 1; i < len(out); i++ {
		if out[i].Date.Before(out[i-1].Date) {
			t.Fatalf("results not ascending by date: %v before %v", out[i].Date, out[i-1].Date)
		}
	}
}

func TestListBookings_BarberSeesOwnAgenda(t *testing.T) {
	repo := newStubRepo()
	_, barberID := seedListFixtures(repo)
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), barberID, domain.RoleBarbeiro, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("got %d bookings, want 3", len(out))
	}
}

// Receptionists and owners have no agenda of their own: scoped as
// clients, they see only bookings they personally hold.
func TestListBookings_NonBarberRolesScopeAsClient(t *testing.T) {
	repo := newStubRepo()
	seedListFixtures(repo)
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), "owner-1", domain.RoleDono, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("owner without own bookings got %d results", len(out))
	}
}

func TestListBookings_RangeInclusive(t *testing.T) {
	repo := newStubRepo()
	clientID, _ := seedListFixtures(repo)
	uc := NewListBookings(repo)

	// Bounds land exactly on the first and second booking instants.
	from := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	out, err := uc.Execute(context.Background(), clientID, domain.RoleCliente, &from, &to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("got %d bookings in range, want 2 (bounds inclusive)", len(out))
	}
}

func TestListBookings_SingleBoundIgnored(t *testing.T) {
	repo := newStubRepo()
	clientID, _ := seedListFixtures(repo)
	uc := NewListBookings(repo)

	from := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)

	out, err := uc.Execute(context.Background(), clientID, domain.RoleCliente, &from, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only one bound given: the range filter must not activate.
	if len(out) != 3 {
		t.Fatalf("got %d bookings, want all 3 when only one bound is set", len(out))
	}
}

func TestListBookings_Enrichment(t *testing.T) {
	repo := newStubRepo()
	clientID, _ := seedListFixtures(repo)
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), clientID, domain.RoleCliente, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := out[0]
	if first.Service.Name != "Barba completa" || first.Service.Price != 35 || first.Service.DurationMin != 20 {
		t.Errorf("service summary = %+v", first.Service)
	}
	if first.Barber.Name != "Marcos" {
		t.Errorf("barber summary = %+v", first.Barber)
	}
	if first.Client.Name != "Paulo" || first.Client.Phone != "11 99999-0000" {
		t.Errorf("client summary = %+v", first.Client)
	}
}
