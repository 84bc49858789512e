package booking

import (
	"context"
	"errors"

	"tablebook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// Create validates the submitted fields and persists a booking owned by
// userID. Nothing is written when validation fails.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	f, err := parseForm(req.Name, req.Email, req.Phone, req.BookingDate, req.BookingTime, req.NumberOfGuests, req.Status)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{UserID: userID}
	f.apply(b)

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(userID, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update loads the booking, checks ownership, merges the submitted fields
// over the stored ones and re-validates the merged form before persisting.
func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(userID, b); err != nil {
		return nil, err
	}

	name, email, phone, rawDate, rawTime, guests, status := mergeForm(b, req)
	f, err := parseForm(name, email, phone, rawDate, rawTime, guests, status)
	if err != nil {
		return nil, err
	}
	f.apply(b)

	if err := s.bookings.Update(ctx, b); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	b, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(userID, b); err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, b.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) load(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
