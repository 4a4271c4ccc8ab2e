package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/healthbridge/backend/internal/models"
	"github.com/healthbridge/backend/internal/repo"
	"github.com/healthbridge/backend/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

// ComputeTotals fills the derived fields of a cart view: per-line
// subtotals, total item count and total price. Pure, no side effects.
func ComputeTotals(sessionID string, lines []transport.CartLine) transport.CartView {
	view := transport.CartView{
		SessionID: sessionID,
		Items:     make([]transport.CartLine, len(lines)),
	}
	for i, line := range lines {
		line.Subtotal = int64(line.Quantity) * line.UnitPrice
		view.Items[i] = line
		view.TotalItems += int64(line.Quantity)
		view.TotalPrice += line.Subtotal
	}
	return view
}

// GetCart never fails on an unknown session, it just returns an empty
// cart. Sessions are not stored entities.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*transport.CartView, error) {
	lines, err := s.Repo.CartLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := ComputeTotals(sessionID, lines)
	return &view, nil
}

func (s *CartService) AddToCart(ctx context.Context, sessionID string, medicineID uint, quantity uint) (*transport.CartView, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}
	if _, err := s.Repo.GetMedicine(ctx, medicineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("medicine %d: %w", medicineID, ErrNotFound)
		}
		return nil, err
	}

	// Stock is deliberately not checked here. Carts are non-binding,
	// availability is enforced once, at checkout.
	item := models.CartItem{
		SessionID:  sessionID,
		MedicineID: medicineID,
		Quantity:   quantity,
	}
	if err := s.Repo.UpsertCartLine(ctx, &item); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, sessionID)
}

// UpdateItem overwrites a line's quantity; anything below 1 deletes the
// line so a zero-quantity row can never be stored.
func (s *CartService) UpdateItem(ctx context.Context, itemID uint, quantity int) (*transport.CartView, error) {
	item, err := s.Repo.GetCartItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
		}
		return nil, err
	}

	if quantity < 1 {
		if err := s.Repo.DeleteCartItem(ctx, itemID); err != nil {
			return nil, err
		}
	} else {
		if err := s.Repo.SetCartItemQuantity(ctx, itemID, uint(quantity)); err != nil {
			return nil, err
		}
	}

	return s.GetCart(ctx, item.SessionID)
}

// RemoveItem is idempotent: deleting a line that is already gone is
// not an error, the caller just gets an empty cart view back.
func (s *CartService) RemoveItem(ctx context.Context, itemID uint) (*transport.CartView, error) {
	item, err := s.Repo.GetCartItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			view := ComputeTotals("", nil)
			return &view, nil
		}
		return nil, err
	}

	if err := s.Repo.DeleteCartItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, item.SessionID)
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.Repo.ClearCart(ctx, sessionID)
}
