package gateway

import (
	"time"

	"github.com/rs/zerolog"
)

// NewFlight builds the client for the upstream flight booking service. The
// flight API keys customers under /contacts.
func NewFlight(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return New(Config{
		Name:              "flight",
		BaseURL:           baseURL,
		CustomerPath:      "/contacts/email",
		GuestBookingsPath: "/guest_bookings",
		BookingsPath:      "/bookings",
		Timeout:           timeout,
	}, log)
}

// NewTaxi builds the client for the upstream taxi booking service.
func NewTaxi(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return New(Config{
		Name:              "taxi",
		BaseURL:           baseURL,
		CustomerPath:      "/customers/email",
		GuestBookingsPath: "/guestBookings",
		BookingsPath:      "/bookings",
		Timeout:           timeout,
	}, log)
}
