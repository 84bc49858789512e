package admin

import (
	"context"
	"strings"
	"time"

	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingReader
}

func NewService(bookings BookingReader) *Service {
	return &Service{bookings: bookings}
}

// ListBookings returns every booking regardless of owner, filtered by
// status, exact date and a name/email substring search.
func (s *Service) ListBookings(ctx context.Context, q ListBookingsQuery) (*BookingListResponse, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	f := repository.BookingFilter{Search: q.Search}

	if st := strings.ToLower(strings.TrimSpace(q.Status)); st != "" {
		if !domain.BookingStatus(st).Valid() {
			return nil, ErrInvalidFilter
		}
		f.Status = st
	}

	if raw := strings.TrimSpace(q.BookingDate); raw != "" {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, ErrInvalidFilter
		}
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		f.BookingDate = &day
	}

	rows, total, err := s.bookings.ListAll(ctx, f, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]AdminBookingDTO, 0, len(rows))
	for i := range rows {
		b := &rows[i]
		out = append(out, AdminBookingDTO{
			ID:             b.ID,
			UserID:         b.UserID,
			Name:           b.Name,
			Email:          b.Email,
			Phone:          b.Phone,
			BookingDate:    b.BookingDate.Format(dateLayout),
			BookingTime:    b.BookingTime,
			NumberOfGuests: b.NumberOfGuests,
			Status:         string(b.Status),
			CreatedOn:      b.CreatedOn,
		})
	}

	return &BookingListResponse{
		Bookings: out,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func (s *Service) Statistics(ctx context.Context) (*StatisticsResponse, error) {
	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	resp := &StatisticsResponse{
		PendingBookings:   counts[domain.BookingPending],
		ConfirmedBookings: counts[domain.BookingConfirmed],
		CancelledBookings: counts[domain.BookingCancelled],
	}
	resp.TotalBookings = resp.PendingBookings + resp.ConfirmedBookings + resp.CancelledBookings
	return resp, nil
}
