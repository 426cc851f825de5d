package service

import (
	"context"

	cartModel "heritage-backend/internal/domains/cart/model"
	checkoutModel "heritage-backend/internal/domains/checkout/model"
	"heritage-backend/internal/domains/order/model"
)

// OrderService builds orders and tracks their lifecycle
type OrderService interface {
	// Build converts a non-empty cart plus validated form data into an
	// immutable Order (status placed) and stores it in the handoff store.
	// Preconditions (empty cart, bad payment method) abort with no
	// partial state.
	Build(ctx context.Context, cart *cartModel.Cart, customer checkoutModel.CustomerInfo,
		delivery checkoutModel.DeliveryAddress, paymentMethod model.PaymentMethod) (*model.Order, error)

	// Get resolves an order by id for the confirmation view
	Get(ctx context.Context, orderID string) (*model.Order, error)

	// Timeline derives the stage list for display
	Timeline(ctx context.Context, orderID string) (*model.TimelineResponse, error)

	// UpdateStatus advances the lifecycle one valid stage
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)

	// Cancel cancels the order if it has not shipped
	Cancel(ctx context.Context, orderID string) (*model.Order, error)
}
