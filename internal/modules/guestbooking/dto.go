package guestbooking

type CreateGuestBookingRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	HotelID     int64  `json:"hotel_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"` // 2006-01-02
}
