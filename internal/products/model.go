// Package products implements the catalog's product resource: validation,
// orchestration, and the interchangeable memory/postgres stores.
package products

import (
	"strconv"
	"time"
)

// Product is the persisted catalog entity. UpdatedAt stays nil until the
// first successful mutation.
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Price renders as a JSON number with two-decimal, currency-like precision.
type Price float64

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(p), 'f', 2, 64), nil
}

// View is the wire representation of a Product. Timestamps are internal
// bookkeeping and never leave the service.
type View struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       Price   `json:"price"`
	Stock       int     `json:"stock"`
}
