package uniqueness

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelagent/internal/domain"
)

func emailChecker(byEmail map[string]*domain.Customer, byID map[int64]*domain.Customer) Checker[string, domain.Customer] {
	return Checker[string, domain.Customer]{
		FindByKey: func(ctx context.Context, email string) (*domain.Customer, error) {
			if c, ok := byEmail[email]; ok {
				return c, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		FindByID: func(ctx context.Context, id int64) (*domain.Customer, error) {
			if c, ok := byID[id]; ok {
				return c, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		KeyOf: func(c *domain.Customer) string { return c.Email },
	}
}

func TestIsConflict_NoExistingRecord(t *testing.T) {
	check := emailChecker(nil, nil)

	conflict, err := check.IsConflict(context.Background(), "a@x.com", nil)

	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestIsConflict_KeyHeldByAnotherRecord(t *testing.T) {
	existing := &domain.Customer{ID: 7, Email: "a@x.com"}
	check := emailChecker(
		map[string]*domain.Customer{"a@x.com": existing},
		map[int64]*domain.Customer{7: existing},
	)

	conflict, err := check.IsConflict(context.Background(), "a@x.com", nil)

	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestIsConflict_UpdateKeepingOwnKey(t *testing.T) {
	existing := &domain.Customer{ID: 7, Email: "a@x.com"}
	check := emailChecker(
		map[string]*domain.Customer{"a@x.com": existing},
		map[int64]*domain.Customer{7: existing},
	)

	id := int64(7)
	conflict, err := check.IsConflict(context.Background(), "a@x.com", &id)

	require.NoError(t, err)
	assert.False(t, conflict, "a record updating in place keeps its own key")
}

func TestIsConflict_UpdateTakingSomeoneElsesKey(t *testing.T) {
	holder := &domain.Customer{ID: 7, Email: "a@x.com"}
	updating := &domain.Customer{ID: 8, Email: "b@x.com"}
	check := emailChecker(
		map[string]*domain.Customer{"a@x.com": holder, "b@x.com": updating},
		map[int64]*domain.Customer{7: holder, 8: updating},
	)

	id := int64(8)
	conflict, err := check.IsConflict(context.Background(), "a@x.com", &id)

	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestIsConflict_ExcludedRecordMissing(t *testing.T) {
	holder := &domain.Customer{ID: 7, Email: "a@x.com"}
	check := emailChecker(
		map[string]*domain.Customer{"a@x.com": holder},
		map[int64]*domain.Customer{7: holder},
	)

	id := int64(99)
	conflict, err := check.IsConflict(context.Background(), "a@x.com", &id)

	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestIsConflict_HotelDateCompositeKey(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	booking := &domain.Booking{ID: 3, HotelID: 1, BookingDate: date}
	check := Checker[HotelDateKey, domain.Booking]{
		FindByKey: func(ctx context.Context, key HotelDateKey) (*domain.Booking, error) {
			if key.HotelID == booking.HotelID && key.Date.Equal(booking.BookingDate) {
				return booking, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		FindByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			if id == booking.ID {
				return booking, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		KeyOf: func(b *domain.Booking) HotelDateKey {
			return HotelDateKey{HotelID: b.HotelID, Date: b.BookingDate}
		},
	}

	conflict, err := check.IsConflict(context.Background(),
		HotelDateKey{HotelID: 1, Date: booking.BookingDate}, nil)
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = check.IsConflict(context.Background(),
		HotelDateKey{HotelID: 2, Date: booking.BookingDate}, nil)
	require.NoError(t, err)
	assert.False(t, conflict)
}
