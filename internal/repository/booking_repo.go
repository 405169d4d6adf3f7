package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelagent/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) WithTx(tx *gorm.DB) *BookingRepository {
	return &BookingRepository{db: tx}
}

type BookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CustomerID  int64     `gorm:"column:customer_id"`
	HotelID     int64     `gorm:"column:hotel_id;uniqueIndex:idx_bookings_hotel_date"`
	BookingDate time.Time `gorm:"column:booking_date;uniqueIndex:idx_bookings_hotel_date"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (BookingModel) TableName() string { return "bookings" }

func toDomainBooking(m BookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		HotelID:     m.HotelID,
		BookingDate: m.BookingDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) BookingModel {
	return BookingModel{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		HotelID:     b.HotelID,
		BookingDate: domain.NormalizeDate(b.BookingDate),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m BookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) FindByHotelAndDate(ctx context.Context, hotelID int64, date time.Time) (*domain.Booking, error) {
	var m BookingModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ? AND booking_date = ?", hotelID, domain.NormalizeDate(date)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	var ms []BookingModel
	tx := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&BookingModel{}, id).Error
}
