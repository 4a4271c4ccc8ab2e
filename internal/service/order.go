package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/healthbridge/backend/internal/events"
	"github.com/healthbridge/backend/internal/models"
	"github.com/healthbridge/backend/internal/repo"
	"github.com/healthbridge/backend/pkg/logging"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// Checkout converts a session's cart into an order in one transaction:
// re-read and lock the cart, decrement stock per line, snapshot names
// and prices into order items, insert the order, clear the cart. Any
// failure rolls the whole thing back, so stock, cart and orders are
// never left half-updated.
func (s *OrderService) Checkout(ctx context.Context, sessionID, customerName, phone, address string) (*models.Order, error) {
	customerName = strings.TrimSpace(customerName)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)
	if customerName == "" || phone == "" || address == "" {
		return nil, fmt.Errorf("customer_name, phone and address are required: %w", ErrValidation)
	}

	var order *models.Order
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		// never trust a client-sent cart copy
		lines, err := tx.CartLinesForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		items := make([]models.OrderItem, 0, len(lines))
		var total int64
		for _, line := range lines {
			ok, err := tx.TryDecrementStock(ctx, line.MedicineID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &OutOfStockError{MedicineID: line.MedicineID}
			}

			subtotal := int64(line.Quantity) * line.UnitPrice
			total += subtotal
			items = append(items, models.OrderItem{
				MedicineID: line.MedicineID,
				Name:       line.MedicineName,
				UnitPrice:  line.UnitPrice,
				Quantity:   line.Quantity,
				Subtotal:   subtotal,
			})
		}

		order = &models.Order{
			SessionID:    sessionID,
			CustomerName: customerName,
			Phone:        phone,
			Address:      address,
			Status:       models.StatusPending,
			TotalPrice:   total,
			Items:        items,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}
		return tx.ClearCart(ctx, sessionID)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderEvent{
		Type:       events.EventOrderCreated,
		OrderID:    order.ID,
		SessionID:  order.SessionID,
		Status:     string(order.Status),
		TotalPrice: order.TotalPrice,
		At:         time.Now().UTC(),
	})
	return order, nil
}

// UpdateStatus applies one edge of the order lifecycle. The row is
// locked while the edge is checked so two conflicting transitions
// cannot both pass against the same stale status. Cancellation does
// not restock.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", next, ErrValidation)
	}

	var order *models.Order
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		current, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
			}
			return err
		}
		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("%s -> %s: %w", current.Status, next, ErrInvalidTransition)
		}
		if err := tx.UpdateOrderStatus(ctx, orderID, next); err != nil {
			return err
		}
		current.Status = next
		order = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.OrderEvent{
		Type:    events.EventOrderStatusChanged,
		OrderID: order.ID,
		Status:  string(order.Status),
		At:      time.Now().UTC(),
	})
	return order, nil
}

func (s *OrderService) OrdersByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("phone is required: %w", ErrValidation)
	}
	return s.Repo.OrdersByPhone(ctx, phone)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

func (s *OrderService) Dashboard(ctx context.Context) (*repo.DashboardStats, []models.Order, error) {
	stats, err := s.Repo.OrderStats(ctx)
	if err != nil {
		return nil, nil, err
	}
	recent, err := s.Repo.RecentOrders(ctx, 5)
	if err != nil {
		return nil, nil, err
	}
	return stats, recent, nil
}

// publish never fails the request: order events are advisory, the
// database already committed.
func (s *OrderService) publish(ctx context.Context, ev events.OrderEvent) {
	if err := s.Producer.Publish(ctx, strconv.FormatUint(uint64(ev.OrderID), 10), ev); err != nil {
		logging.FromContext(ctx).Error("order_event_publish_failed", "type", ev.Type, "order_id", ev.OrderID, "error", err)
	}
}
