package uniqueness

import (
	"context"
	"time"

	"travelagent/internal/domain"
	"travelagent/internal/repository"
)

// HotelDateKey is the composite key of one reservable room-day.
type HotelDateKey struct {
	HotelID int64
	Date    time.Time
}

// CustomerEmail checks the globally unique customer email.
func CustomerEmail(store repository.LocalBookingStore) Checker[string, domain.Customer] {
	return Checker[string, domain.Customer]{
		FindByKey: store.FindCustomerByEmail,
		FindByID:  store.FindCustomerByID,
		KeyOf:     func(c *domain.Customer) string { return c.Email },
	}
}

// HotelPhone checks the globally unique hotel phone number.
func HotelPhone(store repository.LocalBookingStore) Checker[string, domain.Hotel] {
	return Checker[string, domain.Hotel]{
		FindByKey: store.FindHotelByPhoneNumber,
		FindByID:  store.FindHotelByID,
		KeyOf:     func(h *domain.Hotel) string { return h.PhoneNumber },
	}
}

// HotelDate checks the unique (hotelId, date) pair among live bookings.
func HotelDate(store repository.LocalBookingStore) Checker[HotelDateKey, domain.Booking] {
	return Checker[HotelDateKey, domain.Booking]{
		FindByKey: func(ctx context.Context, key HotelDateKey) (*domain.Booking, error) {
			return store.FindBookingByHotelAndDate(ctx, key.HotelID, key.Date)
		},
		FindByID: store.FindBookingByID,
		KeyOf: func(b *domain.Booking) HotelDateKey {
			return HotelDateKey{HotelID: b.HotelID, Date: domain.NormalizeDate(b.BookingDate)}
		},
	}
}
