package tripbooking

import (
	"context"

	"travelagent/internal/domain"
	"travelagent/internal/gateway"
	"travelagent/internal/repository"
)

// RemoteGateway is one remote booking subsystem (flight or taxi).
type RemoteGateway interface {
	Name() string
	FindCustomerByEmail(ctx context.Context, email string) (*gateway.RemoteCustomer, error)
	CreateGuestBooking(ctx context.Context, gb gateway.GuestBooking) (*gateway.RemoteBooking, error)
	CreateBooking(ctx context.Context, b gateway.RemoteBooking) (*gateway.RemoteBooking, error)
	CancelBooking(ctx context.Context, id int64) error
}

// TripStore persists the composite records linking the three legs.
type TripStore interface {
	Create(ctx context.Context, t *domain.TripBooking) error
	GetByID(ctx context.Context, id int64) (*domain.TripBooking, error)
	GetAll(ctx context.Context, f repository.TripBookingFilter) ([]domain.TripBooking, error)
	Delete(ctx context.Context, id int64) error
}
