package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritage-backend/internal/config"
	cartModel "heritage-backend/internal/domains/cart/model"
	cartRepo "heritage-backend/internal/domains/cart/repository"
	cartService "heritage-backend/internal/domains/cart/service"
	"heritage-backend/internal/domains/checkout/model"
	orderRepo "heritage-backend/internal/domains/order/repository"
	orderService "heritage-backend/internal/domains/order/service"
	"heritage-backend/internal/domains/pricing"
	"heritage-backend/internal/shared/tasks"
)

// capturingEnqueuer records confirmation payloads instead of queueing
type capturingEnqueuer struct {
	payloads []tasks.OrderConfirmationPayload
	err      error
}

func (e *capturingEnqueuer) EnqueueOrderConfirmation(_ context.Context, payload tasks.OrderConfirmationPayload) error {
	if e.err != nil {
		return e.err
	}
	e.payloads = append(e.payloads, payload)
	return nil
}

func newCheckoutFixture(t *testing.T) (*CheckoutService, cartService.ServiceInterface, *capturingEnqueuer) {
	t.Helper()

	cfg := config.PricingConfig{
		FreeShippingThreshold: decimal.NewFromInt(140),
		FlatShippingFee:       decimal.NewFromInt(50),
		EstimatedDeliveryDays: 5,
	}
	rules := pricing.DefaultRules()

	carts := cartService.NewCartService(cartRepo.NewMemoryRepository(time.Hour), rules, cfg)
	orders := orderService.NewOrderService(orderRepo.NewMemoryRepository(time.Hour), rules, cfg)
	enqueuer := &capturingEnqueuer{}

	return NewCheckoutService(carts, orders, enqueuer), carts, enqueuer
}

func fillCart(t *testing.T, carts cartService.ServiceInterface, sessionID string) {
	t.Helper()

	_, err := carts.SetItem(context.Background(), sessionID, cartModel.SetItemRequest{
		ProductID: "dhaka-topi",
		Name:      "Dhaka Topi",
		UnitPrice: decimal.NewFromInt(1550),
		Quantity:  2,
	})
	require.NoError(t, err)
}

func validRequest() model.CheckoutRequest {
	return model.CheckoutRequest{
		Customer: model.CustomerInfo{
			FirstName: "Asha",
			LastName:  "Verma",
			Email:     "asha@example.com",
			Phone:     "9876543210",
		},
		Delivery: model.DeliveryAddress{
			Address:  "12 Craft Lane",
			City:     "Jaipur",
			District: "Amer",
			Zone:     "North",
		},
		PaymentMethod: "cod",
	}
}

func TestSubmit_Success(t *testing.T) {
	svc, carts, enqueuer := newCheckoutFixture(t)
	fillCart(t, carts, "session-1")

	order, fields, err := svc.Submit(context.Background(), "session-1", validRequest())

	require.NoError(t, err)
	assert.Empty(t, fields)
	require.NotNil(t, order)
	assert.True(t, order.Payment.Subtotal.Equal(decimal.NewFromInt(3100)))

	// cart cleared after the order committed
	cleared, err := carts.GetCart(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Zero(t, cleared.ItemsCount)

	// confirmation queued with the order's addressing
	require.Len(t, enqueuer.payloads, 1)
	assert.Equal(t, order.OrderID, enqueuer.payloads[0].OrderID)
	assert.Equal(t, "asha@example.com", enqueuer.payloads[0].CustomerEmail)
	assert.Equal(t, "Asha Verma", enqueuer.payloads[0].CustomerName)
}

func TestSubmit_ValidationBlocksBuild(t *testing.T) {
	svc, carts, enqueuer := newCheckoutFixture(t)
	fillCart(t, carts, "session-1")

	req := validRequest()
	req.Customer.Email = ""

	order, fields, err := svc.Submit(context.Background(), "session-1", req)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, model.ErrValidationFailed)
	assert.Equal(t, "email is required", fields["email"])
	assert.Empty(t, enqueuer.payloads)

	// cart untouched
	cart, err := carts.GetCart(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.ItemsCount)
}

func TestSubmit_EmptyCart(t *testing.T) {
	svc, _, enqueuer := newCheckoutFixture(t)

	order, fields, err := svc.Submit(context.Background(), "session-without-cart", validRequest())

	assert.Nil(t, order)
	assert.Empty(t, fields)
	assert.Error(t, err)
	assert.Empty(t, enqueuer.payloads)
}

func TestSubmit_CancelledContext(t *testing.T) {
	svc, carts, enqueuer := newCheckoutFixture(t)
	fillCart(t, carts, "session-1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	order, fields, err := svc.Submit(ctx, "session-1", validRequest())

	assert.Nil(t, order)
	assert.Empty(t, fields)
	assert.ErrorIs(t, err, model.ErrSubmitCancelled)
	assert.Empty(t, enqueuer.payloads)

	// nothing committed, the cart stays editable
	cart, err := carts.GetCart(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.ItemsCount)
}

func TestSubmit_EnqueueFailureDoesNotFailCheckout(t *testing.T) {
	svc, carts, enqueuer := newCheckoutFixture(t)
	fillCart(t, carts, "session-1")
	enqueuer.err = assert.AnError

	order, _, err := svc.Submit(context.Background(), "session-1", validRequest())

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestValidate_DelegatesToRuleSet(t *testing.T) {
	svc, _, _ := newCheckoutFixture(t)

	assert.Empty(t, svc.Validate(validRequest()))

	req := validRequest()
	req.Customer.Phone = "123"
	fields := svc.Validate(req)
	assert.Contains(t, fields, "phone")
}
