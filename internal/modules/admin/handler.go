package admin

import (
	"errors"
	"net/http"
	"strconv"

	"tablebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects rg to be guarded by the staff role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/stats", h.Statistics)
}

func (h *Handler) ListBookings(c *gin.Context) {
	q := ListBookingsQuery{
		Status:      c.Query("status"),
		BookingDate: c.Query("date"),
		Search:      c.Query("q"),
		Page:        intQuery(c, "page"),
		Limit:       intQuery(c, "limit"),
	}

	resp, err := h.service.ListBookings(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "Invalid status or date filter")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute statistics")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func intQuery(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}
