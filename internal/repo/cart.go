package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/healthbridge/backend/internal/models"
	"github.com/healthbridge/backend/internal/transport"
)

func (r *GormRepo) CartLines(ctx context.Context, sessionID string) ([]transport.CartLine, error) {
	return r.cartLines(ctx, sessionID, false)
}

// CartLinesForUpdate locks the session's cart rows for the duration of
// the surrounding transaction. A competing checkout for the same
// session blocks here and then observes an already-empty cart.
func (r *GormRepo) CartLinesForUpdate(ctx context.Context, sessionID string) ([]transport.CartLine, error) {
	return r.cartLines(ctx, sessionID, true)
}

func (r *GormRepo) cartLines(ctx context.Context, sessionID string, lock bool) ([]transport.CartLine, error) {
	q := r.DB.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id, cart_items.medicine_id, medicines.name AS medicine_name, medicines.price AS unit_price, cart_items.quantity").
		Joins("JOIN medicines ON medicines.id = cart_items.medicine_id").
		Where("cart_items.session_id = ?", sessionID).
		Order("cart_items.id ASC")
	if lock {
		q = r.forUpdate(q, "cart_items")
	}

	var lines []transport.CartLine
	if err := q.Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// UpsertCartLine merges an add into an existing (session, medicine) row
// or inserts a new one, as a single statement. ON CONFLICT rides the
// unique index on (session_id, medicine_id), so two concurrent adds of
// the same medicine both land and neither increment is lost.
func (r *GormRepo) UpsertCartLine(ctx context.Context, item *models.CartItem) error {
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "medicine_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(item)
	if res.Error != nil {
		return res.Error
	}

	// the conflict path leaves *item with the loser's zero id, re-read
	// the merged row so callers see what was actually stored
	var line models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("session_id = ? AND medicine_id = ?", item.SessionID, item.MedicineID).
		First(&line).Error; err != nil {
		return err
	}
	*item = line
	return nil
}

func (r *GormRepo) GetCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) SetCartItemQuantity(ctx context.Context, id uint, quantity uint) error {
	res := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.CartItem{}, id).Error
}

func (r *GormRepo) ClearCart(ctx context.Context, sessionID string) error {
	return r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
