package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"tablebook/internal/domain"
	pkgvalidator "tablebook/internal/pkg/validator"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	maxNameLen  = 100
	maxPhoneLen = 15
)

// bookingForm holds normalized field values ready to copy onto a booking.
type bookingForm struct {
	name      string
	email     string
	phone     string
	date      time.Time
	timeOfDay string
	guests    int
	status    domain.BookingStatus
}

// parseForm checks the raw submitted fields one by one and stops at the
// first invalid one. Omitted guests default to 1, omitted status to pending.
func parseForm(name, email, phone, rawDate, rawTime string, guests *int, status string) (*bookingForm, error) {
	f := &bookingForm{}

	f.name = strings.TrimSpace(name)
	if f.name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(f.name) > maxNameLen {
		return nil, &ValidationError{Field: "name", Reason: "must be at most 100 characters"}
	}

	f.email = strings.TrimSpace(strings.ToLower(email))
	if err := pkgvalidator.Var(f.email, "required,email"); err != nil {
		return nil, &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	f.phone = strings.TrimSpace(phone)
	if f.phone == "" {
		return nil, &ValidationError{Field: "phone", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(f.phone) > maxPhoneLen {
		return nil, &ValidationError{Field: "phone", Reason: "must be at most 15 characters"}
	}

	day, err := time.Parse(dateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		return nil, &ValidationError{Field: "booking_date", Reason: "must be a date in YYYY-MM-DD format"}
	}
	f.date = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	tod, err := time.Parse(timeLayout, strings.TrimSpace(rawTime))
	if err != nil {
		return nil, &ValidationError{Field: "booking_time", Reason: "must be a time in HH:MM format"}
	}
	// re-render zero-padded so lexicographic order stays chronological
	f.timeOfDay = tod.Format(timeLayout)

	f.guests = 1
	if guests != nil {
		if *guests < 1 {
			return nil, &ValidationError{Field: "number_of_guests", Reason: "must be at least 1"}
		}
		f.guests = *guests
	}

	f.status = domain.BookingPending
	if strings.TrimSpace(status) != "" {
		st := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
		if !st.Valid() {
			return nil, &ValidationError{Field: "status", Reason: "must be one of pending, confirmed, cancelled"}
		}
		f.status = st
	}

	return f, nil
}

func (f *bookingForm) apply(b *domain.Booking) {
	b.Name = f.name
	b.Email = f.email
	b.Phone = f.phone
	b.BookingDate = f.date
	b.BookingTime = f.timeOfDay
	b.NumberOfGuests = f.guests
	b.Status = f.status
}

// mergeForm resolves the raw field set for a partial update: submitted
// values win, everything else keeps the stored value.
func mergeForm(b *domain.Booking, req UpdateBookingRequest) (name, email, phone, rawDate, rawTime string, guests *int, status string) {
	name = b.Name
	if req.Name != nil {
		name = *req.Name
	}
	email = b.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone = b.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	rawDate = b.BookingDate.Format(dateLayout)
	if req.BookingDate != nil {
		rawDate = *req.BookingDate
	}
	rawTime = b.BookingTime
	if req.BookingTime != nil {
		rawTime = *req.BookingTime
	}
	g := b.NumberOfGuests
	guests = &g
	if req.NumberOfGuests != nil {
		guests = req.NumberOfGuests
	}
	status = string(b.Status)
	if req.Status != nil {
		status = *req.Status
	}
	return
}
