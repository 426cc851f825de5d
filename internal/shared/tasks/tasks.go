package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// =====================================================
// TASK CONTRACTS
// =====================================================
// Task types and payloads shared between the API (producer) and the
// worker (consumer). Keep payloads small: ids and addressing only, the
// handler re-resolves whatever else it needs.

const (
	// TypeOrderConfirmation renders the receipt and emails it
	TypeOrderConfirmation = "order:confirmation"

	QueueDefault = "default"
	QueueLow     = "low"
)

// OrderConfirmationPayload carries what the confirmation email needs
type OrderConfirmationPayload struct {
	OrderID       string `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
}

// Enqueuer is the producer-side interface. A nil-safe no-op
// implementation backs deployments that run without Redis.
type Enqueuer interface {
	EnqueueOrderConfirmation(ctx context.Context, payload OrderConfirmationPayload) error
}

// =====================================================
// ASYNQ CLIENT
// =====================================================

// Client wraps an asynq client as the task producer
type Client struct {
	client *asynq.Client
}

// NewClient creates the asynq-backed enqueuer
func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (c *Client) EnqueueOrderConfirmation(ctx context.Context, payload OrderConfirmationPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeOrderConfirmation, data)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault)); err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeOrderConfirmation, err)
	}
	return nil
}

// Close releases the underlying connection
func (c *Client) Close() error {
	return c.client.Close()
}

// =====================================================
// NO-OP ENQUEUER
// =====================================================

// NoopEnqueuer drops tasks. Used when Redis is disabled; checkout never
// fails because a confirmation could not be queued.
type NoopEnqueuer struct{}

func (NoopEnqueuer) EnqueueOrderConfirmation(context.Context, OrderConfirmationPayload) error {
	return nil
}
