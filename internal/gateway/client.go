package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Config describes one remote booking subsystem. The flight and taxi
// services expose the same four operations but differ in path naming.
type Config struct {
	Name              string
	BaseURL           string
	CustomerPath      string // e.g. "/customers/email"
	GuestBookingsPath string // e.g. "/guestBookings"
	BookingsPath      string // e.g. "/bookings"
	Timeout           time.Duration
}

// Client is a synchronous REST client for one remote booking subsystem.
// A hung remote blocks only the calling saga; the per-call timeout turns a
// hang into a step failure that triggers compensation.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With().Str("gateway", cfg.Name).Logger(),
	}
}

func (c *Client) Name() string { return c.cfg.Name }

func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (*RemoteCustomer, error) {
	var out RemoteCustomer
	path := c.cfg.CustomerPath + "/" + url.PathEscape(email)
	if err := c.call(ctx, http.MethodGet, path, nil, &out, "findCustomerByEmail"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateGuestBooking(ctx context.Context, gb GuestBooking) (*RemoteBooking, error) {
	var out RemoteBooking
	if err := c.call(ctx, http.MethodPost, c.cfg.GuestBookingsPath, gb, &out, "createGuestBooking"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBooking(ctx context.Context, b RemoteBooking) (*RemoteBooking, error) {
	var out RemoteBooking
	if err := c.call(ctx, http.MethodPost, c.cfg.BookingsPath, b, &out, "createBooking"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", c.cfg.BookingsPath, id)
	return c.call(ctx, http.MethodDelete, path, nil, nil, "cancelBooking")
}

func (c *Client) call(ctx context.Context, method, path string, in, out any, op string) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return &RemoteError{Service: c.cfg.Name, Op: op, Err: err}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return &RemoteError{Service: c.cfg.Name, Op: op, Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("op", op).Msg("remote call failed")
		return &RemoteError{Service: c.cfg.Name, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && op == "findCustomerByEmail" {
		return ErrCustomerNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Error().Str("op", op).Int("status", resp.StatusCode).Msg("remote call rejected")
		return &RemoteError{Service: c.cfg.Name, Op: op, StatusCode: resp.StatusCode, Message: string(msg)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RemoteError{Service: c.cfg.Name, Op: op, Err: err}
		}
	}
	return nil
}
