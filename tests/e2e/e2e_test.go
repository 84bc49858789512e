package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tablebook/internal/database"
	"tablebook/internal/domain"
	"tablebook/internal/middleware"
	"tablebook/internal/modules/admin"
	"tablebook/internal/modules/auth"
	"tablebook/internal/modules/booking"
	jwtsvc "tablebook/internal/pkg/jwt"
	"tablebook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Booking{}))

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))
	adminHandler := admin.NewHandler(admin.NewService(bookingRepo))

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)

			staff := protected.Group("/admin")
			staff.Use(middleware.StaffOnly())
			{
				adminHandler.RegisterRoutes(staff)
			}
		}
	}

	return &E2ETestSuite{router: r, db: db, jwtService: jwtService}
}

func (s *E2ETestSuite) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	}
	return w, resp
}

func (s *E2ETestSuite) registerUser(t *testing.T, name, email string) string {
	t.Helper()

	w, resp := s.do(t, "POST", "/api/v1/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp.Data["token"].(string)
}

func (s *E2ETestSuite) staffToken(t *testing.T) string {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.User{
		Email:        "staff@tablebook.dev",
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
		Name:         "Front Desk",
	}
	require.NoError(t, s.db.Create(&staff).Error)

	token, err := s.jwtService.GenerateToken(staff.ID, string(staff.Role))
	require.NoError(t, err)
	return token
}

func janeBooking() gin.H {
	return gin.H{
		"name":             "Jane Doe",
		"email":            "jane@example.com",
		"phone":            "5551234567",
		"booking_date":     "2025-12-24",
		"booking_time":     "19:00",
		"number_of_guests": 4,
	}
}

func TestBookingLifecycle(t *testing.T) {
	s := setupTestSuite(t)

	tokenA := s.registerUser(t, "Alice", "alice@example.com")
	tokenB := s.registerUser(t, "Bob", "bob@example.com")

	// Alice creates a booking
	w, resp := s.do(t, "POST", "/api/v1/bookings", tokenA, janeBooking())
	require.Equal(t, http.StatusCreated, w.Code)
	created := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, float64(4), created["number_of_guests"])
	bookingID := int64(created["id"].(float64))

	// Alice sees exactly this booking, Bob sees nothing
	w, resp = s.do(t, "GET", "/api/v1/bookings", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Data["bookings"], 1)

	w, resp = s.do(t, "GET", "/api/v1/bookings", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["bookings"], 0)

	// Bob can neither update nor delete Alice's booking
	path := fmt.Sprintf("/api/v1/bookings/%d", bookingID)

	w, resp = s.do(t, "PUT", path, tokenB, gin.H{"number_of_guests": 2})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	w, resp = s.do(t, "DELETE", path, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	// partial update by Alice: only guests change
	w, resp = s.do(t, "PUT", path, tokenA, gin.H{"number_of_guests": 6})
	require.Equal(t, http.StatusOK, w.Code)
	updated := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, float64(6), updated["number_of_guests"])
	assert.Equal(t, "Jane Doe", updated["name"])
	assert.Equal(t, "19:00", updated["booking_time"])

	// Alice deletes; the booking is gone for any caller
	w, _ = s.do(t, "DELETE", path, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.do(t, "GET", path, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestBookingValidationErrors(t *testing.T) {
	s := setupTestSuite(t)
	token := s.registerUser(t, "Alice", "alice@example.com")

	body := janeBooking()
	body["number_of_guests"] = 0

	w, resp := s.do(t, "POST", "/api/v1/bookings", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	details := resp.Error.Details.(map[string]interface{})
	assert.Equal(t, "number_of_guests", details["field"])

	// nothing was persisted
	w, resp = s.do(t, "GET", "/api/v1/bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["bookings"], 0)
}

func TestBookingListOrdering(t *testing.T) {
	s := setupTestSuite(t)
	token := s.registerUser(t, "Alice", "alice@example.com")

	slots := [][2]string{
		{"2025-12-26", "09:00"},
		{"2025-12-24", "20:30"},
		{"2025-12-24", "11:15"},
		{"2025-12-25", "18:00"},
	}
	for _, slot := range slots {
		body := janeBooking()
		body["booking_date"] = slot[0]
		body["booking_time"] = slot[1]
		w, _ := s.do(t, "POST", "/api/v1/bookings", token, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, resp := s.do(t, "GET", "/api/v1/bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := resp.Data["bookings"].([]interface{})
	require.Len(t, list, 4)

	var prev string
	for _, item := range list {
		b := item.(map[string]interface{})
		key := b["booking_date"].(string) + " " + b["booking_time"].(string)
		assert.GreaterOrEqual(t, key, prev, "list must be ordered by (date, time)")
		prev = key
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.do(t, "GET", "/api/v1/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)

	w, _ = s.do(t, "POST", "/api/v1/bookings", "", janeBooking())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListing(t *testing.T) {
	s := setupTestSuite(t)

	tokenA := s.registerUser(t, "Alice", "alice@example.com")
	tokenB := s.registerUser(t, "Bob", "bob@example.com")
	staff := s.staffToken(t)

	w, _ := s.do(t, "POST", "/api/v1/bookings", tokenA, janeBooking())
	require.Equal(t, http.StatusCreated, w.Code)

	body := janeBooking()
	body["name"] = "Marco Rossi"
	body["email"] = "marco@example.com"
	body["booking_date"] = "2025-12-25"
	body["status"] = "confirmed"
	w, _ = s.do(t, "POST", "/api/v1/bookings", tokenB, body)
	require.Equal(t, http.StatusCreated, w.Code)

	// customers are not allowed in
	w, _ = s.do(t, "GET", "/api/v1/admin/bookings", tokenA, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// staff see every owner's bookings
	w, resp := s.do(t, "GET", "/api/v1/admin/bookings", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), resp.Data["total"])

	// filter by status
	w, resp = s.do(t, "GET", "/api/v1/admin/bookings?status=confirmed", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp.Data["total"])

	// search over name/email
	w, resp = s.do(t, "GET", "/api/v1/admin/bookings?q=marco", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp.Data["total"])

	// filter by date
	w, resp = s.do(t, "GET", "/api/v1/admin/bookings?date=2025-12-24", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp.Data["total"])

	// stats
	w, resp = s.do(t, "GET", "/api/v1/admin/bookings/stats", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), resp.Data["total_bookings"])
	assert.Equal(t, float64(1), resp.Data["pending_bookings"])
	assert.Equal(t, float64(1), resp.Data["confirmed_bookings"])
}

func TestRegisterValidation(t *testing.T) {
	s := setupTestSuite(t)

	// missing password
	w, resp := s.do(t, "POST", "/api/v1/auth/register", "", gin.H{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	details := resp.Error.Details.(map[string]interface{})
	assert.Contains(t, details, "Password")

	// malformed email
	w, resp = s.do(t, "POST", "/api/v1/auth/register", "", gin.H{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	details = resp.Error.Details.(map[string]interface{})
	assert.Contains(t, details, "Email")
}

func TestCurrentUser(t *testing.T) {
	s := setupTestSuite(t)

	token := s.registerUser(t, "Alice", "alice@example.com")

	w, resp := s.do(t, "GET", "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "customer", user["role"])

	w, resp = s.do(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}

func TestDuplicateRegistration(t *testing.T) {
	s := setupTestSuite(t)

	s.registerUser(t, "Alice", "alice@example.com")

	w, resp := s.do(t, "POST", "/api/v1/auth/register", "", gin.H{
		"name":     "Alice Again",
		"email":    "Alice@Example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)
}

func TestLoginFlow(t *testing.T) {
	s := setupTestSuite(t)

	s.registerUser(t, "Alice", "alice@example.com")

	w, resp := s.do(t, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := resp.Data["token"].(string)

	w, _ = s.do(t, "GET", "/api/v1/bookings", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.do(t, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}
