package booking

import (
	"time"

	"tablebook/internal/domain"
)

type CreateBookingRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	BookingDate    string `json:"booking_date"`
	BookingTime    string `json:"booking_time"`
	NumberOfGuests *int   `json:"number_of_guests"`
	Status         string `json:"status"`
}

// UpdateBookingRequest uses pointers so an omitted field keeps its stored
// value while a submitted zero value still fails validation.
type UpdateBookingRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	BookingDate    *string `json:"booking_date"`
	BookingTime    *string `json:"booking_time"`
	NumberOfGuests *int    `json:"number_of_guests"`
	Status         *string `json:"status"`
}

type BookingResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	BookingDate    string    `json:"booking_date"`
	BookingTime    string    `json:"booking_time"`
	NumberOfGuests int       `json:"number_of_guests"`
	Status         string    `json:"status"`
	CreatedOn      time.Time `json:"created_on"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		BookingDate:    b.BookingDate.Format(dateLayout),
		BookingTime:    b.BookingTime,
		NumberOfGuests: b.NumberOfGuests,
		Status:         string(b.Status),
		CreatedOn:      b.CreatedOn,
	}
}
