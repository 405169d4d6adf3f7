package tripbooking

import (
	"errors"
	"fmt"
)

var (
	ErrTripNotFound      = errors.New("trip booking not found")
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

// TeardownError reports which teardown leg failed. The remaining legs were
// not attempted and an administrator must reconcile the leftover state
// manually; there is no automatic retry.
type TeardownError struct {
	Leg string
	Err error
}

func (e *TeardownError) Error() string {
	return fmt.Sprintf("teardown failed at %s leg: %v", e.Leg, e.Err)
}

func (e *TeardownError) Unwrap() error { return e.Err }
