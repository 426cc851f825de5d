package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkoutModel "heritage-backend/internal/domains/checkout/model"
	"heritage-backend/internal/domains/order/model"
	"heritage-backend/internal/domains/pricing"
)

func fixedOrder() *model.Order {
	orderDate := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)
	return &model.Order{
		OrderID:   "HH-20260115083000-A1B2C3",
		OrderDate: orderDate,
		Customer: checkoutModel.CustomerInfo{
			FirstName: "Asha",
			LastName:  "Verma",
			Email:     "asha@example.com",
			Phone:     "9876543210",
		},
		Delivery: checkoutModel.DeliveryAddress{
			Address:  "12 Craft Lane",
			City:     "Jaipur",
			District: "Amer",
			Zone:     "North",
		},
		Items: []model.OrderItem{
			{
				ProductID: "allo-scarf",
				Name:      "Allo Scarf",
				UnitPrice: decimal.NewFromInt(850),
				Quantity:  1,
				Total:     decimal.NewFromInt(850),
			},
			{
				ProductID: "dhaka-topi",
				Name:      "Dhaka Topi",
				UnitPrice: decimal.NewFromInt(1550),
				Quantity:  2,
				Total:     decimal.NewFromInt(3100),
			},
		},
		Payment: pricing.Breakdown{
			Subtotal: decimal.NewFromInt(3950),
			Shipping: decimal.Zero,
			Discount: decimal.Zero,
			Total:    decimal.NewFromInt(3950),
		},
		PaymentMethod:     model.PaymentMethodCOD,
		Status:            model.OrderStatusPlaced,
		EstimatedDelivery: orderDate.AddDate(0, 0, 5),
	}
}

func TestRender_Deterministic(t *testing.T) {
	gen := NewGenerator("HeritageHaat")
	order := fixedOrder()

	first, err := gen.Render(order)
	require.NoError(t, err)
	second, err := gen.Render(order)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same order must render byte-identical receipts")
}

func TestRender_Content(t *testing.T) {
	gen := NewGenerator("HeritageHaat")

	out, err := gen.Render(fixedOrder())
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "# HeritageHaat — Order Receipt")
	assert.Contains(t, doc, "**Order ID:** HH-20260115083000-A1B2C3")
	assert.Contains(t, doc, "**Order Date:** 2026-01-15 08:30 UTC")
	assert.Contains(t, doc, "**Payment Method:** Cash on Delivery")
	assert.Contains(t, doc, "**Estimated Delivery:** 2026-01-20 08:30 UTC")
	assert.Contains(t, doc, "Asha Verma")
	assert.Contains(t, doc, "Jaipur, Amer, North")
	assert.Contains(t, doc, "| Dhaka Topi | 2 | 1550.00 | 3100.00 |")
	assert.Contains(t, doc, "| Subtotal | 3950.00 |")
	assert.Contains(t, doc, "| **Total** | **3950.00** |")

	// no discount row without a discount
	assert.NotContains(t, doc, "Discount")
	// landmark omitted when empty
	assert.NotContains(t, doc, "Landmark:")
}

func TestRender_DiscountRow(t *testing.T) {
	gen := NewGenerator("HeritageHaat")
	order := fixedOrder()
	order.CouponCode = "WELCOME10"
	order.Payment.Discount = decimal.NewFromInt(395)
	order.Payment.Total = decimal.NewFromInt(3555)

	out, err := gen.Render(order)
	require.NoError(t, err)

	assert.Contains(t, string(out), "| Discount (WELCOME10) | -395.00 |")
}

func TestRender_Landmark(t *testing.T) {
	gen := NewGenerator("HeritageHaat")
	order := fixedOrder()
	order.Delivery.Landmark = "Opposite the clock tower"

	out, err := gen.Render(order)
	require.NoError(t, err)

	assert.Contains(t, string(out), "Landmark: Opposite the clock tower")
}

func TestRender_NilOrder(t *testing.T) {
	gen := NewGenerator("HeritageHaat")

	_, err := gen.Render(nil)

	assert.Error(t, err)
}

func TestRender_DatesNormalizedToUTC(t *testing.T) {
	gen := NewGenerator("HeritageHaat")
	order := fixedOrder()
	order.OrderDate = order.OrderDate.In(time.FixedZone("IST", 5*3600+1800))

	out, err := gen.Render(order)
	require.NoError(t, err)

	assert.Contains(t, string(out), "**Order Date:** 2026-01-15 08:30 UTC")
}

func TestFilename(t *testing.T) {
	gen := NewGenerator("HeritageHaat")

	name := gen.Filename("HH-20260115083000-A1B2C3")

	assert.Equal(t, "HeritageHaat-Receipt-HH-20260115083000-A1B2C3.md", name)
	assert.False(t, strings.ContainsAny(name, " /\\"))
}
