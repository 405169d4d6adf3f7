package gateway

import (
	"errors"
	"fmt"
	"time"
)

// RemoteCustomer is a customer record owned entirely by one remote
// subsystem. There is no shared identity with the local store beyond the
// email it was looked up by.
type RemoteCustomer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// RemoteBooking is a booking held by a remote subsystem; only the returned
// ids are stored locally.
type RemoteBooking struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id"`
	ResourceID  int64     `json:"resource_id"`
	BookingDate time.Time `json:"booking_date"`
}

// GuestBooking creates a remote customer and a remote booking in one call.
type GuestBooking struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	ResourceID  int64     `json:"resource_id"`
	BookingDate time.Time `json:"booking_date"`
}

// ErrCustomerNotFound is returned by FindCustomerByEmail when the remote
// subsystem has no customer with that email.
var ErrCustomerNotFound = errors.New("remote customer not found")

// RemoteError is any other failure of a remote gateway call.
type RemoteError struct {
	Service    string
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s gateway: %s: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s gateway: %s: status %d: %s", e.Service, e.Op, e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }
