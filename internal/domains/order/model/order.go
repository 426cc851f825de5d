package model

import (
	"time"

	"github.com/shopspring/decimal"

	checkoutModel "heritage-backend/internal/domains/checkout/model"
	"heritage-backend/internal/domains/pricing"
)

// PaymentMethod represents valid payment methods
type PaymentMethod string

const (
	// Cash on delivery is the only supported method
	PaymentMethodCOD PaymentMethod = "cod"
)

func (pm PaymentMethod) IsValid() bool {
	return pm == PaymentMethodCOD
}

func (pm PaymentMethod) String() string {
	return string(pm)
}

// OrderStatus represents the order lifecycle stage
type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "placed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Stages returns the forward lifecycle in display order, for the
// confirmation timeline. Cancelled sits outside the forward path.
func Stages() []OrderStatus {
	return []OrderStatus{
		OrderStatusPlaced,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
	}
}

// validTransitions is the whole state machine: strictly one stage
// forward, with cancellation only before shipping.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced: {
		OrderStatusProcessing,
		OrderStatusCancelled,
	},
	OrderStatusProcessing: {
		OrderStatusShipped,
		OrderStatusCancelled,
	},
	OrderStatusShipped: {
		OrderStatusDelivered,
	},
}

// CanTransitionTo checks if the order can move to a new status.
// Skipping a stage is never allowed.
func (o *Order) CanTransitionTo(newStatus OrderStatus) bool {
	allowed, exists := validTransitions[o.Status]
	if !exists {
		return false
	}

	for _, status := range allowed {
		if status == newStatus {
			return true
		}
	}
	return false
}

// IsCancellable checks if the order can still be cancelled
func (o *Order) IsCancellable() bool {
	return o.Status == OrderStatusPlaced || o.Status == OrderStatusProcessing
}

// Order is the immutable record created at checkout. Everything in it
// is an owned copy (items, payment breakdown, customer and delivery
// details) so later cart or catalog changes cannot reach back into a
// placed order. Only Status (and its history) may change, and only
// through the status tracker.
type Order struct {
	OrderID           string                        `json:"order_id"`
	OrderDate         time.Time                     `json:"order_date"`
	Customer          checkoutModel.CustomerInfo    `json:"customer"`
	Delivery          checkoutModel.DeliveryAddress `json:"delivery"`
	Items             []OrderItem                   `json:"items"`
	Payment           pricing.Breakdown             `json:"payment"`
	PaymentMethod     PaymentMethod                 `json:"payment_method"`
	CouponCode        string                        `json:"coupon_code,omitempty"`
	Status            OrderStatus                   `json:"status"`
	StatusHistory     []StatusChange                `json:"status_history"`
	EstimatedDelivery time.Time                     `json:"estimated_delivery"`
}

// OrderItem is a line-item snapshot. Total is frozen at build time so
// the receipt never recomputes anything.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// StatusChange records one lifecycle transition
type StatusChange struct {
	From OrderStatus `json:"from,omitempty"`
	To   OrderStatus `json:"to"`
	At   time.Time   `json:"at"`
}

// =====================================================
// TIMELINE
// =====================================================

// StageState classifies a stage relative to the current status
type StageState string

const (
	StageComplete  StageState = "complete"
	StageCurrent   StageState = "current"
	StagePending   StageState = "pending"
	StageCancelled StageState = "cancelled"
)

// TimelineEntry is one row of the confirmation timeline
type TimelineEntry struct {
	Stage OrderStatus `json:"stage"`
	State StageState  `json:"state"`
}

// Timeline derives the per-stage state for display. Purely derived, no
// mutation. A cancelled order shows its completed stages and nothing
// current or pending: stages the order never reached render cancelled,
// since the lifecycle will not continue.
func (o *Order) Timeline() []TimelineEntry {
	stages := Stages()
	entries := make([]TimelineEntry, 0, len(stages))

	if o.Status == OrderStatusCancelled {
		// Stages reached before cancellation stay complete
		reached := o.lastForwardStage()
		for _, stage := range stages {
			state := StageCancelled
			if stageIndex(stage) <= stageIndex(reached) {
				state = StageComplete
			}
			entries = append(entries, TimelineEntry{Stage: stage, State: state})
		}
		return entries
	}

	currentIdx := stageIndex(o.Status)
	for i, stage := range stages {
		var state StageState
		switch {
		case i < currentIdx:
			state = StageComplete
		case i == currentIdx:
			state = StageCurrent
		default:
			state = StagePending
		}
		entries = append(entries, TimelineEntry{Stage: stage, State: state})
	}
	return entries
}

// lastForwardStage returns the furthest forward stage the order reached
// before cancellation, from the status history.
func (o *Order) lastForwardStage() OrderStatus {
	last := OrderStatusPlaced
	for _, change := range o.StatusHistory {
		if change.To != OrderStatusCancelled && stageIndex(change.To) > stageIndex(last) {
			last = change.To
		}
	}
	return last
}

func stageIndex(status OrderStatus) int {
	for i, stage := range Stages() {
		if stage == status {
			return i
		}
	}
	return -1
}
