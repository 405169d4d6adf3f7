package tripbooking

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"travelagent/internal/domain"
	"travelagent/internal/gateway"
	"travelagent/internal/pkg/validator"
	"travelagent/internal/repository"
	"travelagent/internal/saga"
	"travelagent/internal/sqlerr"
	"travelagent/internal/uniqueness"
)

const dateLayout = "2006-01-02"

// Service orchestrates the three-service trip saga: hotel room in the
// local store, flight seat and taxi on two remote subsystems, then the
// composite TripBooking record. There is no shared transaction across the
// three systems, so later-step failures are undone by compensating the
// completed steps in reverse order.
type Service struct {
	store  repository.LocalBookingStore
	trips  TripStore
	flight RemoteGateway
	taxi   RemoteGateway
	log    zerolog.Logger
}

func NewService(store repository.LocalBookingStore, trips TripStore,
	flight, taxi RemoteGateway, log zerolog.Logger) *Service {
	return &Service{
		store:  store,
		trips:  trips,
		flight: flight,
		taxi:   taxi,
		log:    log.With().Str("module", "tripbooking").Logger(),
	}
}

// tripLegs correlates the customer and booking ids produced by the three
// legs. It is request-scoped and threaded through the saga steps; the three
// subsystems share no customer identity beyond the traveller's email.
type tripLegs struct {
	hotelCustomerID  int64
	hotelBookingID   int64
	flightCustomerID int64
	flightBookingID  int64
	taxiCustomerID   int64
	taxiBookingID    int64
	trip             *domain.TripBooking
}

// BookTrip runs the saga. On success exactly one hotel booking, one remote
// flight booking, one remote taxi booking and one TripBooking exist,
// mutually cross-referenced. On a step failure every earlier step has been
// compensated and the triggering error is reported; a compensation failure
// surfaces as *saga.CompensationError instead.
func (s *Service) BookTrip(ctx context.Context, req BookTripRequest) (*domain.TripBooking, error) {
	hotelDate, err1 := time.Parse(dateLayout, req.HotelDate)
	flightDate, err2 := time.Parse(dateLayout, req.FlightDate)
	taxiDate, err3 := time.Parse(dateLayout, req.TaxiDate)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, &ValidationError{Fields: map[string]string{"dates": "date"}}
	}

	traveller := domain.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if fields := validator.Validate(&traveller); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	legs := &tripLegs{}

	steps := []saga.Step{
		{
			Name: "hotel",
			Run: func(ctx context.Context) error {
				return s.bookHotelLeg(ctx, traveller, req.HotelID, hotelDate, legs)
			},
			Compensate: func(ctx context.Context) error {
				return s.store.DeleteBooking(ctx, legs.hotelBookingID)
			},
		},
		{
			Name: "flight",
			Run: func(ctx context.Context) error {
				customerID, bookingID, err := bookRemoteLeg(ctx, s.flight, traveller, req.FlightID, flightDate)
				if err != nil {
					return err
				}
				legs.flightCustomerID, legs.flightBookingID = customerID, bookingID
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.flight.CancelBooking(ctx, legs.flightBookingID)
			},
		},
		{
			Name: "taxi",
			Run: func(ctx context.Context) error {
				customerID, bookingID, err := bookRemoteLeg(ctx, s.taxi, traveller, req.TaxiID, taxiDate)
				if err != nil {
					return err
				}
				legs.taxiCustomerID, legs.taxiBookingID = customerID, bookingID
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.taxi.CancelBooking(ctx, legs.taxiBookingID)
			},
		},
		{
			Name: "trip-record",
			Run: func(ctx context.Context) error {
				trip := &domain.TripBooking{
					HotelCustomerID:  legs.hotelCustomerID,
					HotelBookingID:   legs.hotelBookingID,
					FlightCustomerID: legs.flightCustomerID,
					FlightBookingID:  legs.flightBookingID,
					TaxiCustomerID:   legs.taxiCustomerID,
					TaxiBookingID:    legs.taxiBookingID,
				}
				if err := s.trips.Create(ctx, trip); err != nil {
					return err
				}
				legs.trip = trip
				return nil
			},
		},
	}

	if err := saga.Execute(ctx, s.log, steps); err != nil {
		return nil, err
	}

	s.log.Info().Int64("trip_id", legs.trip.ID).
		Int64("hotel_booking_id", legs.hotelBookingID).
		Int64("flight_booking_id", legs.flightBookingID).
		Int64("taxi_booking_id", legs.taxiBookingID).
		Msg("trip booked")
	return legs.trip, nil
}

// bookHotelLeg resolves or creates the local customer by email and creates
// the hotel booking, all inside one local transaction. A failure here needs
// no compensation since nothing was created on any other system yet.
func (s *Service) bookHotelLeg(ctx context.Context, traveller domain.Customer,
	hotelID int64, date time.Time, legs *tripLegs) error {

	return s.store.InTransaction(ctx, func(tx repository.LocalBookingStore) error {
		customer, err := tx.FindCustomerByEmail(ctx, traveller.Email)
		switch {
		case err == nil:
			legs.hotelCustomerID = customer.ID
		case sqlerr.IsNotFound(err):
			created := traveller
			if err := tx.CreateCustomer(ctx, &created); err != nil {
				if sqlerr.IsUniqueViolation(err) {
					return ErrEmailConflict
				}
				return err
			}
			legs.hotelCustomerID = created.ID
		default:
			return err
		}

		if _, err := tx.FindHotelByID(ctx, hotelID); err != nil {
			if sqlerr.IsNotFound(err) {
				return ErrHotelNotFound
			}
			return err
		}

		key := uniqueness.HotelDateKey{HotelID: hotelID, Date: domain.NormalizeDate(date)}
		conflict, err := uniqueness.HotelDate(tx).IsConflict(ctx, key, nil)
		if err != nil {
			return err
		}
		if conflict {
			return ErrHotelDateConflict
		}

		booking := &domain.Booking{
			CustomerID:  legs.hotelCustomerID,
			HotelID:     hotelID,
			BookingDate: domain.NormalizeDate(date),
		}
		if err := tx.CreateBooking(ctx, booking); err != nil {
			if sqlerr.IsUniqueViolation(err) {
				return ErrHotelDateConflict
			}
			return err
		}
		legs.hotelBookingID = booking.ID
		return nil
	})
}

// bookRemoteLeg looks the traveller up by email on one remote subsystem.
// A known customer gets a plain booking; an unknown one goes through the
// guest-booking call, which creates the remote customer and booking
// atomically on that subsystem.
func bookRemoteLeg(ctx context.Context, gw RemoteGateway, traveller domain.Customer,
	resourceID int64, date time.Time) (customerID, bookingID int64, err error) {

	existing, err := gw.FindCustomerByEmail(ctx, traveller.Email)
	if err != nil && !errors.Is(err, gateway.ErrCustomerNotFound) {
		return 0, 0, err
	}

	if existing == nil || errors.Is(err, gateway.ErrCustomerNotFound) {
		booked, err := gw.CreateGuestBooking(ctx, gateway.GuestBooking{
			FirstName:   traveller.FirstName,
			LastName:    traveller.LastName,
			Email:       traveller.Email,
			PhoneNumber: traveller.PhoneNumber,
			ResourceID:  resourceID,
			BookingDate: date,
		})
		if err != nil {
			return 0, 0, err
		}
		return booked.CustomerID, booked.ID, nil
	}

	booked, err := gw.CreateBooking(ctx, gateway.RemoteBooking{
		CustomerID:  existing.ID,
		ResourceID:  resourceID,
		BookingDate: date,
	})
	if err != nil {
		return 0, 0, err
	}
	return existing.ID, booked.ID, nil
}

// CancelTrip tears a completed trip down: cancel the taxi, cancel the
// flight, delete the local hotel booking, delete the composite record.
// Each call is best-effort; the first failure aborts the remaining steps
// and is reported for manual reconciliation.
func (s *Service) CancelTrip(ctx context.Context, id int64) error {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return ErrTripNotFound
		}
		return err
	}

	if err := s.taxi.CancelBooking(ctx, trip.TaxiBookingID); err != nil {
		return &TeardownError{Leg: "taxi", Err: err}
	}
	if err := s.flight.CancelBooking(ctx, trip.FlightBookingID); err != nil {
		return &TeardownError{Leg: "flight", Err: err}
	}
	if err := s.store.DeleteBooking(ctx, trip.HotelBookingID); err != nil {
		return &TeardownError{Leg: "hotel", Err: err}
	}
	if err := s.trips.Delete(ctx, trip.ID); err != nil {
		return &TeardownError{Leg: "trip-record", Err: err}
	}

	s.log.Info().Int64("trip_id", trip.ID).Msg("trip cancelled")
	return nil
}

// GetTrips returns the stored composite records, optionally narrowed by
// one of the three customer ids.
func (s *Service) GetTrips(ctx context.Context, f repository.TripBookingFilter) ([]domain.TripBooking, error) {
	return s.trips.GetAll(ctx, f)
}
