package guestbooking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"travelagent/internal/domain"
	"travelagent/internal/pkg/validator"
	"travelagent/internal/repository"
	"travelagent/internal/sqlerr"
	"travelagent/internal/uniqueness"
)

const dateLayout = "2006-01-02"

// Service creates a customer and a hotel booking as one all-or-nothing
// unit. Both writes share the local store's transaction, so a failure at
// any step rolls back without manual compensation.
type Service struct {
	store repository.LocalBookingStore
	log   zerolog.Logger
}

func NewService(store repository.LocalBookingStore, log zerolog.Logger) *Service {
	return &Service{store: store, log: log.With().Str("module", "guestbooking").Logger()}
}

func (s *Service) CreateGuestBooking(ctx context.Context, req CreateGuestBookingRequest) (*domain.Booking, error) {
	date, err := time.Parse(dateLayout, req.BookingDate)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"booking_date": "date"}}
	}

	customer := &domain.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if fields := validator.Validate(customer); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	var booking *domain.Booking
	err = s.store.InTransaction(ctx, func(tx repository.LocalBookingStore) error {
		b, err := createCustomerAndBooking(ctx, tx, customer, req.HotelID, date)
		if err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("customer_id", customer.ID).Int64("booking_id", booking.ID).
		Msg("guest booking created")
	return booking, nil
}

// createCustomerAndBooking runs the create path against whatever store it
// is given, normally a transaction-scoped one. Uniqueness checks are
// advisory; driver violations from the unique indexes are translated to
// the same conflict errors so a lost race is indistinguishable.
func createCustomerAndBooking(ctx context.Context, tx repository.LocalBookingStore,
	customer *domain.Customer, hotelID int64, date time.Time) (*domain.Booking, error) {

	conflict, err := uniqueness.CustomerEmail(tx).IsConflict(ctx, customer.Email, nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrEmailConflict
	}

	if err := tx.CreateCustomer(ctx, customer); err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, ErrEmailConflict
		}
		return nil, err
	}

	if _, err := tx.FindHotelByID(ctx, hotelID); err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	key := uniqueness.HotelDateKey{HotelID: hotelID, Date: domain.NormalizeDate(date)}
	conflict, err = uniqueness.HotelDate(tx).IsConflict(ctx, key, nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrHotelDateConflict
	}

	booking := &domain.Booking{
		CustomerID:  customer.ID,
		HotelID:     hotelID,
		BookingDate: domain.NormalizeDate(date),
	}
	if err := tx.CreateBooking(ctx, booking); err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, ErrHotelDateConflict
		}
		return nil, err
	}
	return booking, nil
}
