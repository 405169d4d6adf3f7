package domain

import "time"

// Booking is one reserved room-day: the pair (HotelID, BookingDate) is
// unique among live bookings.
type Booking struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id" validate:"required"`
	HotelID     int64     `json:"hotel_id" validate:"required"`
	BookingDate time.Time `json:"booking_date" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NormalizeDate truncates a booking timestamp to midnight UTC so the
// hotel+date unique key compares on the calendar day only.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
