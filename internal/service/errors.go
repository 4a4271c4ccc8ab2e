package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation")         // 400
	ErrNotFound          = errors.New("not found")          // 404
	ErrConflict          = errors.New("conflict")           // 409
	ErrEmptyCart         = errors.New("cart is empty")      // 400
	ErrInvalidTransition = errors.New("invalid transition") // 409
)

// OutOfStockError aborts a checkout and names the medicine that could
// not cover its line quantity. The whole checkout rolls back.
type OutOfStockError struct {
	MedicineID uint
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("insufficient stock for medicine %d", e.MedicineID)
}
