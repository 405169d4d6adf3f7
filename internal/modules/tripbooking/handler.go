package tripbooking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelagent/internal/pkg/response"
	"travelagent/internal/repository"
	"travelagent/internal/saga"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the read and create endpoints. The teardown
// endpoint is registered separately so the caller can guard it.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tripBookings", h.GetTripBookings)
	rg.POST("/tripBookings", h.BookTrip)
}

// RegisterAdminRoutes registers the teardown endpoint.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/tripBookings/:id", h.CancelTrip)
}

func (h *Handler) GetTripBookings(c *gin.Context) {
	var f repository.TripBookingFilter
	f.HotelCustomerID, _ = strconv.ParseInt(c.Query("hotelCustomerId"), 10, 64)
	f.FlightCustomerID, _ = strconv.ParseInt(c.Query("flightCustomerId"), 10, 64)
	f.TaxiCustomerID, _ = strconv.ParseInt(c.Query("taxiCustomerId"), 10, 64)

	trips, err := h.service.GetTrips(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to list trip bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trip_bookings": trips})
}

func (h *Handler) BookTrip(c *gin.Context) {
	var req BookTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	trip, err := h.service.BookTrip(c.Request.Context(), req)
	if err != nil {
		h.writeBookTripError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"trip_booking": trip})
}

func (h *Handler) writeBookTripError(c *gin.Context, err error) {
	var ve *ValidationError
	var ce *saga.CompensationError
	var se *saga.StepError

	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid trip booking supplied", ve.Fields)
	case errors.Is(err, ErrEmailConflict):
		response.Error(c, http.StatusConflict, "EMAIL_CONFLICT",
			"That email is already used, please use a unique email")
	case errors.Is(err, ErrHotelDateConflict):
		response.Error(c, http.StatusConflict, "HOTEL_DATE_CONFLICT",
			"That hotel is already booked for that date")
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND",
			"No hotel with that id was found")
	case errors.As(err, &ce):
		// Cross-system state is inconsistent; an operator has to reconcile.
		response.ErrorWithDetails(c, http.StatusInternalServerError, "COMPENSATION_FAILED",
			"A rollback step failed; manual reconciliation required", gin.H{
				"failed_compensation": ce.Step,
				"compensated":         ce.Compensated,
				"cause":               ce.Cause.Error(),
			})
	case errors.As(err, &se):
		response.ErrorWithDetails(c, http.StatusInternalServerError, "REMOTE_SERVICE_ERROR",
			"A booking step failed; completed steps were rolled back", gin.H{
				"failed_step": se.Step,
				"compensated": se.Compensated,
			})
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to book trip")
	}
}

func (h *Handler) CancelTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid trip booking id")
		return
	}

	if err := h.service.CancelTrip(c.Request.Context(), id); err != nil {
		var te *TeardownError
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.Error(c, http.StatusNotFound, "TRIP_NOT_FOUND",
				"No trip booking with that id was found")
		case errors.As(err, &te):
			response.ErrorWithDetails(c, http.StatusInternalServerError, "TEARDOWN_FAILED",
				"Teardown aborted; manual reconciliation required", gin.H{
					"failed_leg": te.Leg,
				})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to cancel trip booking")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
