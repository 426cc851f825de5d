package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"heritage-backend/internal/domains/order/service"
	"heritage-backend/internal/domains/receipt"
	"heritage-backend/internal/infrastructure/email"
	"heritage-backend/internal/shared/tasks"
)

// =====================================================
// ORDER CONFIRMATION HANDLER
// =====================================================

// ConfirmationHandler renders the receipt for a freshly placed order and
// emails it to the customer. Runs on the worker, never on the request path.
type ConfirmationHandler struct {
	orders   service.OrderService
	receipts *receipt.Generator
	email    email.Service
}

func NewConfirmationHandler(orders service.OrderService, receipts *receipt.Generator, emailSvc email.Service) *ConfirmationHandler {
	return &ConfirmationHandler{
		orders:   orders,
		receipts: receipts,
		email:    emailSvc,
	}
}

func (h *ConfirmationHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload tasks.OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Malformed payload never succeeds, skip retries
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	order, err := h.orders.Get(ctx, payload.OrderID)
	if err != nil {
		// The handoff entry may have expired before the task ran.
		// Retrying will not bring it back.
		log.Warn().Str("order_id", payload.OrderID).Err(err).Msg("Order not found for confirmation")
		return fmt.Errorf("resolve order %s: %v: %w", payload.OrderID, err, asynq.SkipRetry)
	}

	body, err := h.receipts.Render(order)
	if err != nil {
		return fmt.Errorf("render receipt for %s: %w", payload.OrderID, err)
	}

	msg := email.Message{
		To:      payload.CustomerEmail,
		Subject: fmt.Sprintf("Order confirmed: %s", order.OrderID),
		Body:    string(body),
	}
	if err := h.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation for %s: %w", payload.OrderID, err)
	}

	log.Info().
		Str("order_id", order.OrderID).
		Str("email", payload.CustomerEmail).
		Msg("✅ Order confirmation sent")

	return nil
}
