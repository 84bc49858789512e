package main

import (
	"log"
	"os"
	"time"

	"tablebook/internal/database"
	"tablebook/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tablebook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&domain.User{}, &domain.Booking{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.User{
		Email:        "staff@tablebook.dev",
		PasswordHash: string(staffHash),
		Role:         domain.RoleStaff,
		Name:         "Front Desk",
	}
	db.Create(&staff)
	log.Println("Staff created: staff@tablebook.dev / staff123")

	customers := []domain.User{}
	customerEmails := []string{"jane@example.com", "marco@example.com", "aisha@example.com"}
	customerNames := []string{"Jane Doe", "Marco Rossi", "Aisha Khan"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			Name:         customerNames[i],
		}
		db.Create(&u)
		customers = append(customers, u)
		log.Printf("Customer created: %s / customer123", email)
	}

	log.Println("Creating bookings...")

	type seedBooking struct {
		owner  int
		date   string
		tod    string
		guests int
		status domain.BookingStatus
	}
	rows := []seedBooking{
		{0, "2026-09-05", "19:00", 4, domain.BookingPending},
		{0, "2026-09-05", "12:30", 2, domain.BookingConfirmed},
		{1, "2026-09-06", "20:15", 6, domain.BookingPending},
		{2, "2026-09-07", "18:00", 3, domain.BookingCancelled},
	}
	for _, row := range rows {
		owner := customers[row.owner]
		day, _ := time.Parse("2006-01-02", row.date)
		b := domain.Booking{
			UserID:         owner.ID,
			Name:           owner.Name,
			Email:          owner.Email,
			Phone:          "5551234567",
			BookingDate:    day.UTC(),
			BookingTime:    row.tod,
			NumberOfGuests: row.guests,
			Status:         row.status,
			CreatedOn:      time.Now().UTC(),
		}
		db.Create(&b)
	}

	log.Println("Seed finished.")
}
