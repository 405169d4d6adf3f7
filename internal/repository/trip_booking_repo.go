package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelagent/internal/domain"
)

type TripBookingRepository struct {
	db *gorm.DB
}

func NewTripBookingRepository(db *gorm.DB) *TripBookingRepository {
	return &TripBookingRepository{db: db}
}

type TripBookingModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	HotelCustomerID  int64     `gorm:"column:hotel_customer_id"`
	HotelBookingID   int64     `gorm:"column:hotel_booking_id"`
	FlightCustomerID int64     `gorm:"column:flight_customer_id"`
	FlightBookingID  int64     `gorm:"column:flight_booking_id"`
	TaxiCustomerID   int64     `gorm:"column:taxi_customer_id"`
	TaxiBookingID    int64     `gorm:"column:taxi_booking_id"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (TripBookingModel) TableName() string { return "trip_bookings" }

func toDomainTripBooking(m TripBookingModel) *domain.TripBooking {
	return &domain.TripBooking{
		ID:               m.ID,
		HotelCustomerID:  m.HotelCustomerID,
		HotelBookingID:   m.HotelBookingID,
		FlightCustomerID: m.FlightCustomerID,
		FlightBookingID:  m.FlightBookingID,
		TaxiCustomerID:   m.TaxiCustomerID,
		TaxiBookingID:    m.TaxiBookingID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toTripBookingModel(t *domain.TripBooking) TripBookingModel {
	return TripBookingModel{
		ID:               t.ID,
		HotelCustomerID:  t.HotelCustomerID,
		HotelBookingID:   t.HotelBookingID,
		FlightCustomerID: t.FlightCustomerID,
		FlightBookingID:  t.FlightBookingID,
		TaxiCustomerID:   t.TaxiCustomerID,
		TaxiBookingID:    t.TaxiBookingID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func (r *TripBookingRepository) Create(ctx context.Context, t *domain.TripBooking) error {
	m := toTripBookingModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTripBooking(m)
	return nil
}

func (r *TripBookingRepository) GetByID(ctx context.Context, id int64) (*domain.TripBooking, error) {
	var m TripBookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTripBooking(m), nil
}

// TripBookingFilter narrows GetAll by any of the three customer legs.
// Zero values mean no filtering on that leg.
type TripBookingFilter struct {
	HotelCustomerID  int64
	FlightCustomerID int64
	TaxiCustomerID   int64
}

func (r *TripBookingRepository) GetAll(ctx context.Context, f TripBookingFilter) ([]domain.TripBooking, error) {
	q := r.db.WithContext(ctx).Model(&TripBookingModel{}).Order("id")
	if f.HotelCustomerID != 0 {
		q = q.Where("hotel_customer_id = ?", f.HotelCustomerID)
	}
	if f.FlightCustomerID != 0 {
		q = q.Where("flight_customer_id = ?", f.FlightCustomerID)
	}
	if f.TaxiCustomerID != 0 {
		q = q.Where("taxi_customer_id = ?", f.TaxiCustomerID)
	}

	var ms []TripBookingModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.TripBooking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainTripBooking(m))
	}
	return out, nil
}

func (r *TripBookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&TripBookingModel{}, id).Error
}
