// Package uniqueness implements the advisory "no two live records share key
// K" check run before every create or update of a uniquely-keyed aggregate.
// It can lose a race with a concurrent writer; the storage layer's unique
// index remains the backstop (see internal/sqlerr).
package uniqueness

import (
	"context"

	"travelagent/internal/sqlerr"
)

// Checker checks one unique key of one aggregate. Callers supply the two
// lookups and the key extractor; the same algorithm then covers customer
// email, hotel phone number and the booking hotel+date pair.
type Checker[K comparable, T any] struct {
	FindByKey func(ctx context.Context, key K) (*T, error)
	FindByID  func(ctx context.Context, id int64) (*T, error)
	KeyOf     func(rec *T) K
}

// IsConflict reports whether key is already held by a live record other
// than the one identified by excludeID. Passing excludeID distinguishes
// "my own unchanged key" from "someone else holds this key" during updates.
func (c Checker[K, T]) IsConflict(ctx context.Context, key K, excludeID *int64) (bool, error) {
	existing, err := c.FindByKey(ctx, key)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if excludeID == nil {
		return true, nil
	}

	own, err := c.FindByID(ctx, *excludeID)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return true, nil
		}
		return false, err
	}
	if own != nil && c.KeyOf(own) == key {
		// The record being updated already holds this key.
		return false, nil
	}
	return true, nil
}
