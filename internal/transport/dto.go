package transport

import "github.com/healthbridge/backend/internal/models"

// CartLine is one cart row joined with the live catalog name and
// price. Subtotal and the cart totals are derived, never stored.
type CartLine struct {
	ID           uint   `json:"id"`
	MedicineID   uint   `json:"medicine_id"`
	MedicineName string `json:"medicine_name"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     uint   `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
}

type CartView struct {
	SessionID  string     `json:"session_id"`
	Items      []CartLine `json:"items"`
	TotalItems int64      `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
}

type AddToCartRequest struct {
	SessionID  string `json:"session_id"`
	MedicineID uint   `json:"medicine_id"`
	Quantity   uint   `json:"quantity"`
}

type CheckoutRequest struct {
	SessionID    string `json:"session_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type MedicineRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	ImageURL    string `json:"image_url"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}
