package domain

import "time"

// TripBooking links the customer and booking ids produced by the three legs
// of a trip saga. It is written only after all three legs completed; it is
// never persisted half-populated.
type TripBooking struct {
	ID               int64     `json:"id"`
	HotelCustomerID  int64     `json:"hotel_customer_id"`
	HotelBookingID   int64     `json:"hotel_booking_id"`
	FlightCustomerID int64     `json:"flight_customer_id"`
	FlightBookingID  int64     `json:"flight_booking_id"`
	TaxiCustomerID   int64     `json:"taxi_customer_id"`
	TaxiBookingID    int64     `json:"taxi_booking_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
