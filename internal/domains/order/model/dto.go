package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpdateStatusRequest advances the order one lifecycle stage
type UpdateStatusRequest struct {
	Status OrderStatus `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.By(func(interface{}) error {
				if !r.Status.IsValid() {
					return validation.NewError("validation_invalid_status", "unknown order status")
				}
				return nil
			}),
		),
	)
}

// TimelineResponse is the confirmation page's stage list
type TimelineResponse struct {
	OrderID string          `json:"order_id"`
	Status  OrderStatus     `json:"status"`
	Stages  []TimelineEntry `json:"stages"`
}
