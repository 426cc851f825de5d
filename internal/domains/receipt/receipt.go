package receipt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/shopspring/decimal"

	"heritage-backend/internal/domains/order/model"
)

// =====================================================
// RECEIPT GENERATOR
// =====================================================
// Renders a self-contained markdown document from an Order snapshot.
// Pure: no clock, no I/O, fixed formats throughout, so identical orders
// produce byte-identical documents. Delivery (download headers, print)
// is the caller's concern.

const dateLayout = "2006-01-02 15:04 MST"

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).Parse(`# {{.StoreName}} — Order Receipt

**Order ID:** {{.Order.OrderID}}
**Order Date:** {{.OrderDate}}
**Payment Method:** {{.PaymentMethod}}
**Estimated Delivery:** {{.EstimatedDelivery}}

## Customer

{{.Order.Customer.FirstName}} {{.Order.Customer.LastName}}
{{.Order.Customer.Email}}
{{.Order.Customer.Phone}}

## Delivery Address

{{.Order.Delivery.Address}}
{{.Order.Delivery.City}}, {{.Order.Delivery.District}}, {{.Order.Delivery.Zone}}
{{- if .Order.Delivery.Landmark}}
Landmark: {{.Order.Delivery.Landmark}}
{{- end}}

## Items

| Item | Qty | Unit Price | Total |
|------|----:|-----------:|------:|
{{- range .Order.Items}}
| {{.Name}} | {{.Quantity}} | {{money .UnitPrice}} | {{money .Total}} |
{{- end}}

## Payment

| | |
|---|---:|
| Subtotal | {{money .Order.Payment.Subtotal}} |
{{- if .Order.Payment.Discount.IsPositive}}
| Discount{{if .Order.CouponCode}} ({{.Order.CouponCode}}){{end}} | -{{money .Order.Payment.Discount}} |
{{- end}}
| Shipping | {{money .Order.Payment.Shipping}} |
| **Total** | **{{money .Order.Payment.Total}}** |

Thank you for shopping with {{.StoreName}}.
`))

type templateData struct {
	StoreName         string
	Order             *model.Order
	OrderDate         string
	EstimatedDelivery string
	PaymentMethod     string
}

// Generator renders receipts for one storefront
type Generator struct {
	storeName string
}

// NewGenerator creates a receipt generator
func NewGenerator(storeName string) *Generator {
	return &Generator{storeName: storeName}
}

// Render produces the receipt document for an order
func (g *Generator) Render(order *model.Order) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("order is nil")
	}

	data := templateData{
		StoreName:         g.storeName,
		Order:             order,
		OrderDate:         order.OrderDate.UTC().Format(dateLayout),
		EstimatedDelivery: order.EstimatedDelivery.UTC().Format(dateLayout),
		PaymentMethod:     paymentMethodLabel(order.PaymentMethod),
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename names the downloadable artifact deterministically
func (g *Generator) Filename(orderID string) string {
	return fmt.Sprintf("%s-Receipt-%s.md", g.storeName, orderID)
}

func paymentMethodLabel(pm model.PaymentMethod) string {
	switch pm {
	case model.PaymentMethodCOD:
		return "Cash on Delivery"
	default:
		return pm.String()
	}
}
