package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the three known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// BookingDate holds the calendar day (midnight UTC); BookingTime is the
	// zero-padded time of day, so string order equals chronological order.
	BookingDate time.Time `json:"booking_date" gorm:"type:date"`
	BookingTime string    `json:"booking_time"`

	NumberOfGuests int           `json:"number_of_guests"`
	Status         BookingStatus `json:"status"`
	CreatedOn      time.Time     `json:"created_on"`
}
