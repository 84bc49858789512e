package admin

import (
	"context"

	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

// BookingReader is the read-only slice of the store the admin listing uses.
// It deliberately has no mutation methods: administrative visibility does
// not come with a mutation bypass.
type BookingReader interface {
	ListAll(ctx context.Context, f repository.BookingFilter, limit, offset int) ([]domain.Booking, int64, error)
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
}
