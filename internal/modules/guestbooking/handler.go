package guestbooking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelagent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/guestBookings", h.CreateGuestBooking)
}

func (h *Handler) CreateGuestBooking(c *gin.Context) {
	var req CreateGuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	booking, err := h.service.CreateGuestBooking(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Invalid guest booking supplied", ve.Fields)
		case errors.Is(err, ErrEmailConflict):
			response.Error(c, http.StatusConflict, "EMAIL_CONFLICT",
				"That email is already used, please use a unique email")
		case errors.Is(err, ErrHotelNotFound):
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND",
				"No hotel with that id was found")
		case errors.Is(err, ErrHotelDateConflict):
			response.Error(c, http.StatusConflict, "HOTEL_DATE_CONFLICT",
				"That hotel is already booked for that date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to create guest booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": booking})
}
