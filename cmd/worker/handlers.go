package main

import (
	"github.com/hibiken/asynq"

	orderJob "heritage-backend/internal/domains/order/job"
	"heritage-backend/internal/shared/tasks"
	"heritage-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	orderConfirmation *orderJob.ConfirmationHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		orderConfirmation: orderJob.NewConfirmationHandler(
			c.OrderService,
			c.ReceiptGen,
			c.EmailService,
		),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(tasks.TypeOrderConfirmation, h.orderConfirmation.ProcessTask)
}
