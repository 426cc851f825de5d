package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	cartService "heritage-backend/internal/domains/cart/service"
	"heritage-backend/internal/domains/checkout/model"
	orderModel "heritage-backend/internal/domains/order/model"
	orderService "heritage-backend/internal/domains/order/service"
	"heritage-backend/internal/shared/tasks"
)

// =====================================================
// CHECKOUT SERVICE
// =====================================================
// The one asynchronous operation in the storefront. Submit is the
// single suspend point: everything before the order build can be
// cancelled by the caller's context with no trace; once the build
// commits, the order exists. At-most-once, no automatic retry.

// ServiceInterface gates the cart → order transition
type ServiceInterface interface {
	// Validate runs the checkout rule-set and returns the field→message
	// map. Empty map = submittable.
	Validate(req model.CheckoutRequest) map[string]string

	// Submit validates, snapshots the cart, builds the order, clears the
	// cart, and queues the confirmation. A non-empty field map means
	// validation blocked the submission.
	Submit(ctx context.Context, sessionID string, req model.CheckoutRequest) (*orderModel.Order, map[string]string, error)
}

type CheckoutService struct {
	carts    cartService.ServiceInterface
	orders   orderService.OrderService
	enqueuer tasks.Enqueuer
}

// NewCheckoutService creates the checkout service
func NewCheckoutService(carts cartService.ServiceInterface, orders orderService.OrderService, enqueuer tasks.Enqueuer) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		orders:   orders,
		enqueuer: enqueuer,
	}
}

func (s *CheckoutService) Validate(req model.CheckoutRequest) map[string]string {
	return model.Fields(req.Validate())
}

func (s *CheckoutService) Submit(ctx context.Context, sessionID string, req model.CheckoutRequest) (*orderModel.Order, map[string]string, error) {
	// Validation gates order creation; errors are data, not exceptions
	if fields := s.Validate(req); len(fields) > 0 {
		return nil, fields, model.ErrValidationFailed
	}

	cart, err := s.carts.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot cart: %w", err)
	}

	// The suspend point. If the caller went away, stop before anything
	// commits: no partial order, the cart stays editable.
	select {
	case <-ctx.Done():
		return nil, nil, model.ErrSubmitCancelled
	default:
	}

	order, err := s.orders.Build(ctx, cart, req.Customer, req.Delivery, orderModel.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, nil, err
	}

	// The order exists now. Cart clearing and the confirmation task are
	// best effort; neither can un-place the order.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Warn().Err(err).Str("order_id", order.OrderID).Msg("Failed to clear cart after checkout")
	}

	payload := tasks.OrderConfirmationPayload{
		OrderID:       order.OrderID,
		CustomerEmail: order.Customer.Email,
		CustomerName:  order.Customer.FirstName + " " + order.Customer.LastName,
	}
	if err := s.enqueuer.EnqueueOrderConfirmation(ctx, payload); err != nil {
		log.Warn().Err(err).Str("order_id", order.OrderID).Msg("Failed to enqueue order confirmation")
	}

	return order, nil, nil
}
