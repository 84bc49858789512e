package admin

import "time"

// ListBookingsQuery carries the raw query parameters of the listing.
type ListBookingsQuery struct {
	Status      string
	BookingDate string // YYYY-MM-DD, optional
	Search      string // substring over name and email
	Page        int
	Limit       int
}

type AdminBookingDTO struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	BookingDate    string    `json:"booking_date"`
	BookingTime    string    `json:"booking_time"`
	NumberOfGuests int       `json:"number_of_guests"`
	Status         string    `json:"status"`
	CreatedOn      time.Time `json:"created_on"`
}

type BookingListResponse struct {
	Bookings []AdminBookingDTO `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type StatisticsResponse struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
}
