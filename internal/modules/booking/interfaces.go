package booking

import (
	"context"

	"tablebook/internal/domain"
)

// BookingRepository is the slice of the record store the workflow service
// uses. ListByUser takes the owner explicitly; there is no ambient scoping.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}
