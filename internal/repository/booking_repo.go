package repository

import (
	"context"
	"strings"
	"time"

	"tablebook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	UserID         int64     `gorm:"column:user_id;not null;index"`
	Name           string    `gorm:"column:name;size:100"`
	Email          string    `gorm:"column:email"`
	Phone          string    `gorm:"column:phone;size:15"`
	BookingDate    time.Time `gorm:"column:booking_date;type:date"`
	BookingTime    string    `gorm:"column:booking_time;size:5"`
	NumberOfGuests int       `gorm:"column:number_of_guests;default:1"`
	Status         string    `gorm:"column:status"`
	CreatedOn      time.Time `gorm:"column:created_on"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		BookingDate:    m.BookingDate,
		BookingTime:    m.BookingTime,
		NumberOfGuests: m.NumberOfGuests,
		Status:         domain.BookingStatus(m.Status),
		CreatedOn:      m.CreatedOn,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:             b.ID,
		UserID:         b.UserID,
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		BookingDate:    b.BookingDate,
		BookingTime:    b.BookingTime,
		NumberOfGuests: b.NumberOfGuests,
		Status:         string(b.Status),
		CreatedOn:      b.CreatedOn,
	}
}

// mutable columns; id, user_id and created_on never change after insert
var bookingUpdateColumns = []string{
	"name", "email", "phone", "booking_date", "booking_time", "number_of_guests", "status",
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	m.CreatedOn = time.Now().UTC()
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListByUser returns the given user's bookings ordered by date then time of
// day. Owner scoping is an explicit argument on purpose: there is no
// unscoped variant outside of ListAll.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_date ASC, booking_time ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", b.ID).
		Select(bookingUpdateColumns).
		Updates(m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BookingFilter narrows the administrative listing. Zero values mean "no
// filter" for the respective field.
type BookingFilter struct {
	Status      string
	BookingDate *time.Time
	Search      string // case-insensitive substring over name and email
}

func (r *BookingRepository) ListAll(ctx context.Context, f BookingFilter, limit, offset int) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.BookingDate != nil {
		q = q.Where("booking_date = ?", *f.BookingDate)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []bookingModel
	tx := q.Order("booking_date ASC, booking_time ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	type statusCount struct {
		Status string `gorm:"column:status"`
		Total  int64  `gorm:"column:total"`
	}

	var rows []statusCount
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("status, COUNT(1) AS total").
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[domain.BookingStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.BookingStatus(row.Status)] = row.Total
	}
	return out, nil
}
