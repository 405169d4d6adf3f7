package guestbooking

import (
	"errors"
	"fmt"
)

var (
	ErrEmailConflict     = errors.New("email already used by another customer")
	ErrHotelNotFound     = errors.New("hotel not found")
	ErrHotelDateConflict = errors.New("hotel already booked for that date")
)

// ValidationError carries the field->constraint map for a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}
