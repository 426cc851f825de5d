package repository

import (
	"context"

	"heritage-backend/internal/domains/order/model"
)

// OrderRepository is the short-lived handoff store between checkout and
// the confirmation view. Orders are keyed by order id and expire after
// the handoff TTL. This is deliberately NOT durable order storage, it
// only closes the "reload loses the order" gap of passing the record
// through navigation state.
type OrderRepository interface {
	// Get returns the order, or (nil, nil) once the entry has expired.
	Get(ctx context.Context, orderID string) (*model.Order, error)

	// Save upserts the order, refreshing its TTL. Status advances go
	// through Save as well; everything else on the record is immutable.
	Save(ctx context.Context, order *model.Order) error

	// Delete drops the handoff entry. Absent is not an error.
	Delete(ctx context.Context, orderID string) error
}
