package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritage-backend/internal/config"
	"heritage-backend/internal/domains/cart/model"
	"heritage-backend/internal/domains/cart/repository"
	"heritage-backend/internal/domains/pricing"
)

func newTestService() *CartService {
	repo := repository.NewMemoryRepository(time.Hour)
	cfg := config.PricingConfig{
		FreeShippingThreshold: decimal.NewFromInt(140),
		FlatShippingFee:       decimal.NewFromInt(50),
		EstimatedDeliveryDays: 5,
	}
	return NewCartService(repo, pricing.DefaultRules(), cfg)
}

func setItem(t *testing.T, svc *CartService, sessionID, productID, price string, qty int) *model.CartResponse {
	t.Helper()
	unitPrice, err := decimal.NewFromString(price)
	require.NoError(t, err)

	resp, err := svc.SetItem(context.Background(), sessionID, model.SetItemRequest{
		ProductID: productID,
		Name:      "item " + productID,
		UnitPrice: unitPrice,
		Quantity:  qty,
	})
	require.NoError(t, err)
	return resp
}

func TestGetCartCreatesEmpty(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetCart(context.Background(), "s1")
	require.NoError(t, err)

	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.ItemsCount)
	assert.True(t, resp.Pricing.Total.IsZero())
}

func TestSetItemComputesSubtotal(t *testing.T) {
	svc := newTestService()

	setItem(t, svc, "s1", "p1", "1550", 2)
	resp := setItem(t, svc, "s1", "p2", "850", 1)

	require.Len(t, resp.Items, 2)
	assert.True(t, decimal.NewFromInt(3950).Equal(resp.Pricing.Subtotal))
	assert.True(t, resp.Pricing.Shipping.IsZero(), "3950 is above the free-shipping threshold")
	assert.True(t, decimal.NewFromInt(3950).Equal(resp.Pricing.Total))
}

func TestSetItemZeroQuantityRemovesRow(t *testing.T) {
	svc := newTestService()

	setItem(t, svc, "s1", "p1", "100", 2)
	resp := setItem(t, svc, "s1", "p1", "100", 0)

	assert.Empty(t, resp.Items)
}

func TestSetItemNegativeQuantityClampsToZero(t *testing.T) {
	svc := newTestService()

	setItem(t, svc, "s1", "p1", "100", 2)
	resp := setItem(t, svc, "s1", "p1", "100", -5)

	assert.Empty(t, resp.Items)
	assert.True(t, resp.Pricing.Subtotal.IsZero())
}

func TestIncrementDecrement(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	setItem(t, svc, "s1", "p1", "100", 1)

	resp, err := svc.Increment(ctx, "s1", "p1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)

	resp, err = svc.Decrement(ctx, "s1", "p1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
}

func TestDecrementBelowZeroClampsAndRemoves(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	setItem(t, svc, "s1", "p1", "100", 1)

	resp, err := svc.Decrement(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items, "quantity hit zero, row is dropped")

	// Decrementing an absent item stays at zero, never negative
	resp, err = svc.Decrement(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Pricing.Subtotal.IsZero())
}

func TestShippingBelowThreshold(t *testing.T) {
	svc := newTestService()

	resp := setItem(t, svc, "s1", "p1", "100", 1)

	assert.True(t, decimal.NewFromInt(50).Equal(resp.Pricing.Shipping))
	assert.True(t, decimal.NewFromInt(150).Equal(resp.Pricing.Total))
}

func TestApplyCoupon(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	setItem(t, svc, "s1", "p1", "1000", 1)

	t.Run("known code discounts", func(t *testing.T) {
		resp, known, err := svc.ApplyCoupon(ctx, "s1", "WELCOME10")
		require.NoError(t, err)

		assert.True(t, known)
		assert.True(t, decimal.NewFromInt(100).Equal(resp.Pricing.Discount))
		assert.True(t, decimal.NewFromInt(900).Equal(resp.Pricing.Total))
	})

	t.Run("unknown code applies silently as zero", func(t *testing.T) {
		resp, known, err := svc.ApplyCoupon(ctx, "s1", "BOGUS")
		require.NoError(t, err)

		assert.False(t, known)
		assert.True(t, resp.Pricing.Discount.IsZero())
		assert.True(t, decimal.NewFromInt(1000).Equal(resp.Pricing.Total))
	})

	t.Run("remove coupon restores total", func(t *testing.T) {
		_, _, err := svc.ApplyCoupon(ctx, "s1", "WELCOME10")
		require.NoError(t, err)

		resp, err := svc.RemoveCoupon(ctx, "s1")
		require.NoError(t, err)

		assert.Empty(t, resp.CouponCode)
		assert.True(t, decimal.NewFromInt(1000).Equal(resp.Pricing.Total))
	})
}

func TestClear(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	setItem(t, svc, "s1", "p1", "100", 3)
	require.NoError(t, svc.Clear(ctx, "s1"))

	resp, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := newTestService()

	setItem(t, svc, "s1", "p1", "100", 1)
	resp, err := svc.GetCart(context.Background(), "s2")
	require.NoError(t, err)

	assert.Empty(t, resp.Items, "another session's cart must stay empty")
}

func TestSnapshot(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("missing cart is a precondition failure", func(t *testing.T) {
		_, err := svc.Snapshot(ctx, "nobody")
		assert.ErrorIs(t, err, model.ErrCartNotFound)
	})

	t.Run("returns raw cart", func(t *testing.T) {
		setItem(t, svc, "s1", "p1", "100", 2)

		cart, err := svc.Snapshot(ctx, "s1")
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
	})
}
