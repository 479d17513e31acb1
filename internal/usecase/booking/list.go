package booking

import (
	"context"
	"time"

	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns the caller's own bookings, ascending by date. Barbers
// see their agenda; any other role sees the bookings they hold as
// client. The range is inclusive and only applies when both bounds are
// present.
func (uc *ListBookings) Execute(
	ctx context.Context,
	requesterID string,
	role domain.Role,
	from *time.Time,
	to *time.Time,
) ([]dto.BookingListDTO, error) {

	filter := domain.ForRequester(requesterID, role).WithRange(from, to)

	bookings, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:     b.ID,
			Date:   b.Date,
			Status: b.Status,
			Service: dto.ServiceSummary{
				Name:        b.Service.Name,
				Price:       b.Service.Price,
				DurationMin: b.Service.DurationMin,
			},
			Barber: dto.BarberSummary{
				Name:   b.Barber.Name,
				Avatar: b.Barber.Avatar,
			},
			Client: dto.ClientSummary{
				Name:  b.Client.Name,
				Phone: b.Client.Phone,
			},
		})
	}

	return out, nil
}
