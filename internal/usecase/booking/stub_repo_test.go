package booking

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/navalhaapps/barbershop-api/internal/audit"
	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/models"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubRepo struct {
	users    map[string]*models.User
	services map[string]*models.Service
	bookings map[string]*models.Booking

	barberErr  error // if set, FindActiveBarberByID returns this error
	serviceErr error // if set, FindActiveServiceByID returns this error
	getErr     error // if set, GetBookingByID returns this error
	createErr  error // if set, CreateBooking returns this error
	updateErr  error // if set, UpdateBooking returns this error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		users:    make(map[string]*models.User),
		services: make(map[string]*models.Service),
		bookings: make(map[string]*models.Booking),
	}
}

func (r *stubRepo) addUser(u models.User) string {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = &u
	return u.ID
}

func (r *stubRepo) addService(s models.Service) string {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	r.services[s.ID] = &s
	return s.ID
}

func (r *stubRepo) addBooking(b models.Booking) string {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	r.bookings[b.ID] = &b
	return b.ID
}

func (r *stubRepo) FindActiveBarberByID(_ context.Context, id string) (*models.User, error) {
	if r.barberErr != nil {
		return nil, r.barberErr
	}
	u, ok := r.users[id]
	if !ok || u.Role != domain.RoleBarbeiro.String() || !u.Active {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubRepo) FindActiveServiceByID(_ context.Context, id string) (*models.Service, error) {
	if r.serviceErr != nil {
		return nil, r.serviceErr
	}
	s, ok := r.services[id]
	if !ok || !s.Active {
		return nil, domain.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

// CreateBooking mirrors the real repository: the slot check and the
// insert happen inside one critical section.
func (r *stubRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}

	for _, existing := range r.bookings {
		if existing.BarberID == b.BarberID &&
			existing.Date.Equal(b.Date) &&
			existing.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

// GetBookingByID enriches the clone with its associations, as the gorm
// repository does with Preload.
func (r *stubRepo) GetBookingByID(_ context.Context, id string) (*models.Booking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	clone := *b
	if u, ok := r.users[b.ClientID]; ok {
		clone.Client = *u
	}
	if u, ok := r.users[b.BarberID]; ok {
		clone.Barber = *u
	}
	if s, ok := r.services[b.ServiceID]; ok {
		clone.Service = *s
	}
	return &clone, nil
}

func (r *stubRepo) ListBookings(_ context.Context, f domain.Filter) ([]models.Booking, error) {
	var matched []models.Booking
	for _, b := range r.bookings {
		if f.BarberID != "" && b.BarberID != f.BarberID {
			continue
		}
		if f.ClientID != "" && b.ClientID != f.ClientID {
			continue
		}
		if f.From != nil && f.To != nil {
			if b.Date.Before(*f.From) || b.Date.After(*f.To) {
				continue
			}
		}

		clone := *b
		if u, ok := r.users[b.ClientID]; ok {
			clone.Client = *u
		}
		if u, ok := r.users[b.BarberID]; ok {
			clone.Barber = *u
		}
		if s, ok := r.services[b.ServiceID]; ok {
			clone.Service = *s
		}
		matched = append(matched, clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	return matched, nil
}

func (r *stubRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

var _ domain.Repository = (*stubRepo)(nil)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil, zerolog.Nop())
}

func seedBarberAndService(r *stubRepo) (barberID, serviceID string) {
	barberID = r.addUser(models.User{
		Name:   "Marcos",
		Email:  "marcos@example.com",
		Role:   domain.RoleBarbeiro.String(),
		Active: true,
		Avatar: "https://cdn.example.com/marcos.webp",
	})
	serviceID = r.addService(models.Service{
		Name:        "Corte degradê",
		Price:       45,
		DurationMin: 30,
		Active:      true,
	})
	return barberID, serviceID
}

func futureDate(d time.Duration) time.Time {
	return time.Now().Add(d).Truncate(time.Second)
}
