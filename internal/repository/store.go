package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelagent/internal/domain"
)

// LocalBookingStore is the one transactional resource owning customers,
// hotels and hotel bookings. InTransaction scopes every call made through
// the callback's store to a single database transaction, which is what lets
// the guest-booking path roll back without manual compensation.
type LocalBookingStore interface {
	InTransaction(ctx context.Context, fn func(tx LocalBookingStore) error) error

	CreateCustomer(ctx context.Context, c *domain.Customer) error
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)

	FindHotelByID(ctx context.Context, id int64) (*domain.Hotel, error)
	FindHotelByPhoneNumber(ctx context.Context, phone string) (*domain.Hotel, error)

	CreateBooking(ctx context.Context, b *domain.Booking) error
	FindBookingByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindBookingByHotelAndDate(ctx context.Context, hotelID int64, date time.Time) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type Store struct {
	db        *gorm.DB
	customers *CustomerRepository
	hotels    *HotelRepository
	bookings  *BookingRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		customers: NewCustomerRepository(db),
		hotels:    NewHotelRepository(db),
		bookings:  NewBookingRepository(db),
	}
}

func (s *Store) InTransaction(ctx context.Context, fn func(tx LocalBookingStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *Store) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	return s.customers.Create(ctx, c)
}

func (s *Store) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.customers.FindByEmail(ctx, email)
}

func (s *Store) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *Store) FindHotelByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.hotels.GetByID(ctx, id)
}

func (s *Store) FindHotelByPhoneNumber(ctx context.Context, phone string) (*domain.Hotel, error) {
	return s.hotels.FindByPhoneNumber(ctx, phone)
}

func (s *Store) CreateBooking(ctx context.Context, b *domain.Booking) error {
	return s.bookings.Create(ctx, b)
}

func (s *Store) FindBookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Store) FindBookingByHotelAndDate(ctx context.Context, hotelID int64, date time.Time) (*domain.Booking, error) {
	return s.bookings.FindByHotelAndDate(ctx, hotelID, date)
}

func (s *Store) DeleteBooking(ctx context.Context, id int64) error {
	return s.bookings.Delete(ctx, id)
}
