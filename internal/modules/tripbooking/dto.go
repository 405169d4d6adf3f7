package tripbooking

type BookTripRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`

	HotelID   int64  `json:"hotel_id" binding:"required"`
	HotelDate string `json:"hotel_date" binding:"required"` // 2006-01-02

	FlightID   int64  `json:"flight_id" binding:"required"`
	FlightDate string `json:"flight_date" binding:"required"`

	TaxiID   int64  `json:"taxi_id" binding:"required"`
	TaxiDate string `json:"taxi_date" binding:"required"`
}
