package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func orderWithStatus(status OrderStatus) *Order {
	return &Order{
		OrderID: "HH-20260115083000-A1B2C3",
		Status:  status,
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPlaced, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, s.IsValid(), s)
	}

	assert.False(t, OrderStatus("refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPlaced.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

func TestOrder_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPlaced, OrderStatusProcessing, true},
		{OrderStatusPlaced, OrderStatusCancelled, true},
		{OrderStatusPlaced, OrderStatusShipped, false}, // no stage skipping
		{OrderStatusPlaced, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusPlaced, false}, // no going back
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false}, // too late to cancel
		{OrderStatusDelivered, OrderStatusPlaced, false},  // terminal
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			order := orderWithStatus(tt.from)
			assert.Equal(t, tt.allowed, order.CanTransitionTo(tt.to))
		})
	}
}

func TestOrder_IsCancellable(t *testing.T) {
	assert.True(t, orderWithStatus(OrderStatusPlaced).IsCancellable())
	assert.True(t, orderWithStatus(OrderStatusProcessing).IsCancellable())
	assert.False(t, orderWithStatus(OrderStatusShipped).IsCancellable())
	assert.False(t, orderWithStatus(OrderStatusDelivered).IsCancellable())
	assert.False(t, orderWithStatus(OrderStatusCancelled).IsCancellable())
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodCOD.IsValid())
	assert.False(t, PaymentMethod("card").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestOrder_Timeline_Placed(t *testing.T) {
	entries := orderWithStatus(OrderStatusPlaced).Timeline()

	assert.Equal(t, []TimelineEntry{
		{Stage: OrderStatusPlaced, State: StageCurrent},
		{Stage: OrderStatusProcessing, State: StagePending},
		{Stage: OrderStatusShipped, State: StagePending},
		{Stage: OrderStatusDelivered, State: StagePending},
	}, entries)
}

func TestOrder_Timeline_Shipped(t *testing.T) {
	entries := orderWithStatus(OrderStatusShipped).Timeline()

	assert.Equal(t, []TimelineEntry{
		{Stage: OrderStatusPlaced, State: StageComplete},
		{Stage: OrderStatusProcessing, State: StageComplete},
		{Stage: OrderStatusShipped, State: StageCurrent},
		{Stage: OrderStatusDelivered, State: StagePending},
	}, entries)
}

func TestOrder_Timeline_Delivered(t *testing.T) {
	entries := orderWithStatus(OrderStatusDelivered).Timeline()

	for i, entry := range entries {
		if i < len(entries)-1 {
			assert.Equal(t, StageComplete, entry.State)
		} else {
			assert.Equal(t, StageCurrent, entry.State)
		}
	}
}

func TestOrder_Timeline_CancelledAfterProcessing(t *testing.T) {
	now := time.Now()
	order := &Order{
		Status: OrderStatusCancelled,
		StatusHistory: []StatusChange{
			{To: OrderStatusPlaced, At: now},
			{From: OrderStatusPlaced, To: OrderStatusProcessing, At: now},
			{From: OrderStatusProcessing, To: OrderStatusCancelled, At: now},
		},
	}

	entries := order.Timeline()

	// Stages reached before cancellation stay complete; the rest render
	// cancelled, never pending
	assert.Equal(t, []TimelineEntry{
		{Stage: OrderStatusPlaced, State: StageComplete},
		{Stage: OrderStatusProcessing, State: StageComplete},
		{Stage: OrderStatusShipped, State: StageCancelled},
		{Stage: OrderStatusDelivered, State: StageCancelled},
	}, entries)
}

func TestOrder_Timeline_CancelledImmediately(t *testing.T) {
	now := time.Now()
	order := &Order{
		Status: OrderStatusCancelled,
		StatusHistory: []StatusChange{
			{To: OrderStatusPlaced, At: now},
			{From: OrderStatusPlaced, To: OrderStatusCancelled, At: now},
		},
	}

	entries := order.Timeline()

	assert.Equal(t, StageComplete, entries[0].State)
	assert.Equal(t, StageCancelled, entries[1].State)
	assert.Equal(t, StageCancelled, entries[2].State)
	assert.Equal(t, StageCancelled, entries[3].State)
}

func TestOrder_Timeline_CancelledReportsNoPendingOrCurrent(t *testing.T) {
	now := time.Now()
	histories := [][]StatusChange{
		{
			{To: OrderStatusPlaced, At: now},
			{From: OrderStatusPlaced, To: OrderStatusCancelled, At: now},
		},
		{
			{To: OrderStatusPlaced, At: now},
			{From: OrderStatusPlaced, To: OrderStatusProcessing, At: now},
			{From: OrderStatusProcessing, To: OrderStatusCancelled, At: now},
		},
	}

	for _, history := range histories {
		order := &Order{Status: OrderStatusCancelled, StatusHistory: history}

		for _, entry := range order.Timeline() {
			assert.NotEqual(t, StagePending, entry.State, entry.Stage)
			assert.NotEqual(t, StageCurrent, entry.State, entry.Stage)
		}
	}
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, UpdateStatusRequest{Status: OrderStatusShipped}.Validate())
	assert.Error(t, UpdateStatusRequest{Status: ""}.Validate())
	assert.Error(t, UpdateStatusRequest{Status: "refunded"}.Validate())
}
