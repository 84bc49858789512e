package admin

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/domain"
	"tablebook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) ListAll(ctx context.Context, f repository.BookingFilter, limit, offset int) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingReader) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.BookingStatus]int64), args.Error(1)
}

func TestService_ListBookings_NormalizesPaging(t *testing.T) {
	reader := new(MockBookingReader)
	reader.On("ListAll", mock.Anything, repository.BookingFilter{}, 20, 0).Return([]domain.Booking{}, int64(0), nil)
	svc := NewService(reader)

	resp, err := svc.ListBookings(context.Background(), ListBookingsQuery{Page: -1, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	reader.AssertExpectations(t)
}

func TestService_ListBookings_BuildsFilter(t *testing.T) {
	wantDay := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	reader := new(MockBookingReader)
	reader.On("ListAll", mock.Anything, mock.MatchedBy(func(f repository.BookingFilter) bool {
		return f.Status == "confirmed" &&
			f.BookingDate != nil && f.BookingDate.Equal(wantDay) &&
			f.Search == "jane"
	}), 10, 10).Return([]domain.Booking{}, int64(0), nil)
	svc := NewService(reader)

	_, err := svc.ListBookings(context.Background(), ListBookingsQuery{
		Status:      "Confirmed",
		BookingDate: "2026-09-05",
		Search:      "jane",
		Page:        2,
		Limit:       10,
	})

	require.NoError(t, err)
	reader.AssertExpectations(t)
}

func TestService_ListBookings_RejectsBadFilters(t *testing.T) {
	reader := new(MockBookingReader)
	svc := NewService(reader)

	_, err := svc.ListBookings(context.Background(), ListBookingsQuery{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.ListBookings(context.Background(), ListBookingsQuery{BookingDate: "05.09.2026"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	reader.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Statistics(t *testing.T) {
	reader := new(MockBookingReader)
	reader.On("CountByStatus", mock.Anything).Return(map[domain.BookingStatus]int64{
		domain.BookingPending:   3,
		domain.BookingConfirmed: 2,
	}, nil)
	svc := NewService(reader)

	stats, err := svc.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.PendingBookings)
	assert.Equal(t, int64(2), stats.ConfirmedBookings)
	assert.Equal(t, int64(0), stats.CancelledBookings)
	assert.Equal(t, int64(5), stats.TotalBookings)
}
