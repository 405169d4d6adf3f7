package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelagent/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) WithTx(tx *gorm.DB) *HotelRepository {
	return &HotelRepository{db: tx}
}

type HotelModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Postcode    string    `gorm:"column:postcode"`
	PhoneNumber string    `gorm:"column:phone_number;uniqueIndex:idx_hotels_phone"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (HotelModel) TableName() string { return "hotels" }

func toDomainHotel(m HotelModel) *domain.Hotel {
	return &domain.Hotel{
		ID:          m.ID,
		Name:        m.Name,
		Postcode:    m.Postcode,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toHotelModel(h *domain.Hotel) HotelModel {
	return HotelModel{
		ID:          h.ID,
		Name:        h.Name,
		Postcode:    h.Postcode,
		PhoneNumber: h.PhoneNumber,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*h = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m HotelModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) FindByPhoneNumber(ctx context.Context, phone string) (*domain.Hotel, error) {
	var m HotelModel
	tx := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	var ms []HotelModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&HotelModel{}, id).Error
}
