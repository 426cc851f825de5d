package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"heritage-backend/internal/config"
	"heritage-backend/internal/domains/cart/model"
	"heritage-backend/internal/domains/cart/repository"
	"heritage-backend/internal/domains/pricing"
)

// =====================================================
// CART SERVICE
// =====================================================
// Owns the session-keyed cart store. Every mutation goes through the
// cart reducer, then the pricing engine recomputes the breakdown for
// the response. The service itself keeps no state between calls.

type CartService struct {
	repo          repository.CartRepository
	rules         pricing.RuleTable
	freeThreshold decimal.Decimal
	flatFee       decimal.Decimal
}

// NewCartService creates the cart service
func NewCartService(repo repository.CartRepository, rules pricing.RuleTable, cfg config.PricingConfig) *CartService {
	return &CartService{
		repo:          repo,
		rules:         rules,
		freeThreshold: cfg.FreeShippingThreshold,
		flatFee:       cfg.FlatShippingFee,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	cart, err := s.getOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(cart), nil
}

func (s *CartService) SetItem(ctx context.Context, sessionID string, req model.SetItemRequest) (*model.CartResponse, error) {
	cart, err := s.getOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Apply(model.Action{
		Type:      model.ActionSetQuantity,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Product: &model.CartItem{
			ProductID: req.ProductID,
			Name:      req.Name,
			UnitPrice: req.UnitPrice,
		},
	})

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.toResponse(cart), nil
}

func (s *CartService) Increment(ctx context.Context, sessionID, productID string) (*model.CartResponse, error) {
	return s.applyAndSave(ctx, sessionID, model.Action{
		Type:      model.ActionIncrement,
		ProductID: productID,
	})
}

func (s *CartService) Decrement(ctx context.Context, sessionID, productID string) (*model.CartResponse, error) {
	return s.applyAndSave(ctx, sessionID, model.Action{
		Type:      model.ActionDecrement,
		ProductID: productID,
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*model.CartResponse, error) {
	return s.applyAndSave(ctx, sessionID, model.Action{
		Type:      model.ActionRemoveItem,
		ProductID: productID,
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// ApplyCoupon attaches the code and reports whether the rule table knows
// it. Unknown codes still attach with a zero discount; the apply action
// itself never fails.
func (s *CartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*model.CartResponse, bool, error) {
	cart, err := s.getOrCreate(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	cart.Apply(model.Action{
		Type:       model.ActionApplyCoupon,
		CouponCode: code,
	})

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, false, fmt.Errorf("save cart: %w", err)
	}

	return s.toResponse(cart), s.rules.IsKnown(code), nil
}

func (s *CartService) RemoveCoupon(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	return s.applyAndSave(ctx, sessionID, model.Action{Type: model.ActionRemoveCoupon})
}

// Snapshot hands the raw cart to the checkout path. An absent cart comes
// back as ErrCartNotFound so checkout can fail its precondition cleanly.
func (s *CartService) Snapshot(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if cart == nil {
		return nil, model.ErrCartNotFound
	}
	return cart, nil
}

// =====================================================
// INTERNAL
// =====================================================

func (s *CartService) getOrCreate(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if cart == nil {
		cart = model.NewCart(sessionID)
	}
	return cart, nil
}

func (s *CartService) applyAndSave(ctx context.Context, sessionID string, action model.Action) (*model.CartResponse, error) {
	cart, err := s.getOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Apply(action)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.toResponse(cart), nil
}

// toResponse prices the cart and sorts lines by product id so responses
// are stable across requests.
func (s *CartService) toResponse(cart *model.Cart) *model.CartResponse {
	items := make([]model.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, model.CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: pricing.LineTotal(item.UnitPrice, item.Quantity),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})

	breakdown := pricing.Compute(cart.PricingLines(), cart.CouponCode, s.rules, s.freeThreshold, s.flatFee)

	return &model.CartResponse{
		SessionID:  cart.SessionID,
		Items:      items,
		ItemsCount: cart.ItemsCount(),
		CouponCode: cart.CouponCode,
		Pricing:    breakdown,
	}
}
