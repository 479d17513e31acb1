package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/models"
)

const pgUniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *BookingGormRepository) FindActiveBarberByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ? AND active = ?", id, string(domain.RoleBarbeiro), true).
		First(&barber).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &barber, nil
}

func (r *BookingGormRepository) FindActiveServiceByID(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&service).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &service, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Booking (create)
// --------------------------------------------------

// CreateBooking inserts after locking any non-cancelled booking at the
// exact (barber_id, date) pair, all in one transaction. The partial
// unique index uq_bookings_slot catches whatever still slips through;
// its 23505 is reported the same way as a lost lock race.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Booking
		if err := slotConflictQuery(tx, &conflicts, b.BarberID, b.Date).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(b).Error
	})

	if err != nil && isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// slotConflictQuery locks and fetches the booking holding the slot, if
// any. Postgres refuses FOR UPDATE on aggregates, so this selects up to
// one row instead of counting.
func slotConflictQuery(
	tx *gorm.DB,
	dest *[]models.Booking,
	barberID string,
	date time.Time,
) *gorm.DB {
	return tx.
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID,
			date,
			string(domain.StatusCancelled),
		).
		Limit(1).
		Find(dest)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, translateNotFound(err)
	}

	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.Filter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service")

	if f.BarberID != "" {
		q = q.Where("barber_id = ?", f.BarberID)
	}
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}

	if f.From != nil && f.To != nil {
		q = q.Where("date >= ? AND date <= ?", *f.From, *f.To)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
