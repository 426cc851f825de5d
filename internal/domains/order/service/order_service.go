package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"heritage-backend/internal/config"
	cartModel "heritage-backend/internal/domains/cart/model"
	checkoutModel "heritage-backend/internal/domains/checkout/model"
	"heritage-backend/internal/domains/order/model"
	"heritage-backend/internal/domains/order/repository"
	"heritage-backend/internal/domains/pricing"
)

// =====================================================
// ORDER SERVICE IMPLEMENTATION
// =====================================================

type orderService struct {
	orderRepo     repository.OrderRepository
	rules         pricing.RuleTable
	freeThreshold decimal.Decimal
	flatFee       decimal.Decimal
	deliveryDays  int
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, rules pricing.RuleTable, cfg config.PricingConfig) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		rules:         rules,
		freeThreshold: cfg.FreeShippingThreshold,
		flatFee:       cfg.FlatShippingFee,
		deliveryDays:  cfg.EstimatedDeliveryDays,
	}
}

// =====================================================
// ORDER BUILDER
// =====================================================

func (s *orderService) Build(
	ctx context.Context,
	cart *cartModel.Cart,
	customer checkoutModel.CustomerInfo,
	delivery checkoutModel.DeliveryAddress,
	paymentMethod model.PaymentMethod,
) (*model.Order, error) {
	// Preconditions are the caller's job; violating them is a bug, and
	// the builder fails fast with no partial state.
	if cart == nil || cart.IsEmpty() {
		return nil, model.NewOrderError(model.ErrCodeCartEmpty, "Cart is empty", model.ErrEmptyCart)
	}
	if !paymentMethod.IsValid() {
		return nil, model.NewOrderError(model.ErrCodeInvalidPaymentMethod, "Unsupported payment method", model.ErrInvalidPaymentMethod)
	}

	now := time.Now()

	// Snapshot cart lines into owned OrderItems. Sorted by product id so
	// the receipt is stable for identical orders.
	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Total:     pricing.LineTotal(item.UnitPrice, item.Quantity),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})

	breakdown := pricing.Compute(cart.PricingLines(), cart.CouponCode, s.rules, s.freeThreshold, s.flatFee)

	order := &model.Order{
		OrderID:       generateOrderID(now),
		OrderDate:     now,
		Customer:      customer,
		Delivery:      delivery,
		Items:         items,
		Payment:       breakdown,
		PaymentMethod: paymentMethod,
		CouponCode:    cart.CouponCode,
		Status:        model.OrderStatusPlaced,
		StatusHistory: []model.StatusChange{
			{To: model.OrderStatusPlaced, At: now},
		},
		EstimatedDelivery: now.AddDate(0, 0, s.deliveryDays),
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	log.Info().
		Str("order_id", order.OrderID).
		Str("total", order.Payment.Total.String()).
		Int("items", len(order.Items)).
		Msg("Order placed")

	return order, nil
}

// generateOrderID builds an opaque unique token: creation timestamp plus
// a random suffix. Two builds from identical input always differ here.
func generateOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("HH-%s-%s", now.UTC().Format("20060102150405"), suffix)
}

// =====================================================
// QUERIES
// =====================================================

func (s *orderService) Get(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, model.NewOrderError(model.ErrCodeOrderNotFound, "Order not found", model.ErrOrderNotFound)
	}
	return order, nil
}

func (s *orderService) Timeline(ctx context.Context, orderID string) (*model.TimelineResponse, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &model.TimelineResponse{
		OrderID: order.OrderID,
		Status:  order.Status,
		Stages:  order.Timeline(),
	}, nil
}

// =====================================================
// STATUS TRACKER
// =====================================================

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if !status.IsValid() {
		return nil, model.NewOrderError(model.ErrCodeInvalidStatus, "Unknown order status", model.ErrInvalidOrderStatus)
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.CanTransitionTo(status) {
		return nil, model.NewOrderError(
			model.ErrCodeInvalidTransition,
			fmt.Sprintf("Cannot transition from %s to %s", order.Status, status),
			model.ErrInvalidStatusTransition,
		)
	}

	return s.applyTransition(ctx, order, status)
}

func (s *orderService) Cancel(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.IsCancellable() {
		return nil, model.NewOrderError(
			model.ErrCodeOrderCannotCancel,
			fmt.Sprintf("Order in status %s cannot be cancelled", order.Status),
			model.ErrOrderNotCancellable,
		)
	}

	return s.applyTransition(ctx, order, model.OrderStatusCancelled)
}

func (s *orderService) applyTransition(ctx context.Context, order *model.Order, status model.OrderStatus) (*model.Order, error) {
	from := order.Status
	order.Status = status
	order.StatusHistory = append(order.StatusHistory, model.StatusChange{
		From: from,
		To:   status,
		At:   time.Now(),
	})

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	log.Info().
		Str("order_id", order.OrderID).
		Str("from", from.String()).
		Str("to", status.String()).
		Msg("Order status changed")

	return order, nil
}
