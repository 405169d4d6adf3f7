package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightClient(baseURL string) *Client {
	return New(Config{
		Name:              "flight",
		BaseURL:           baseURL,
		CustomerPath:      "/contacts/email",
		GuestBookingsPath: "/guest_bookings",
		BookingsPath:      "/bookings",
		Timeout:           2 * time.Second,
	}, zerolog.Nop())
}

func TestFindCustomerByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/contacts/email/a@x.com", r.URL.Path)
		json.NewEncoder(w).Encode(RemoteCustomer{ID: 66, Email: "a@x.com"})
	}))
	defer srv.Close()

	got, err := flightClient(srv.URL).FindCustomerByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(66), got.ID)
}

func TestFindCustomerByEmail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := flightClient(srv.URL).FindCustomerByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreateGuestBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/guest_bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in GuestBooking
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "a@x.com", in.Email)
		assert.Equal(t, int64(77), in.ResourceID)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RemoteBooking{ID: 301, CustomerID: 311, ResourceID: in.ResourceID})
	}))
	defer srv.Close()

	booked, err := flightClient(srv.URL).CreateGuestBooking(context.Background(), GuestBooking{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "a@x.com",
		PhoneNumber: "07700900001",
		ResourceID:  77,
		BookingDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(301), booked.ID)
	assert.Equal(t, int64(311), booked.CustomerID)
}

func TestCreateBooking_RejectionBecomesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "seat taken", http.StatusConflict)
	}))
	defer srv.Close()

	_, err := flightClient(srv.URL).CreateBooking(context.Background(), RemoteBooking{CustomerID: 66, ResourceID: 77})

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "flight", re.Service)
	assert.Equal(t, http.StatusConflict, re.StatusCode)
	assert.Contains(t, re.Message, "seat taken")
}

func TestCancelBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/bookings/301", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, flightClient(srv.URL).CancelBooking(context.Background(), 301))
}

func TestUnreachableRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := flightClient(srv.URL).FindCustomerByEmail(context.Background(), "a@x.com")

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "findCustomerByEmail", re.Op)
	assert.Error(t, re.Err)
}
