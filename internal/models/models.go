package models

import "time"

// Prices are stored in minor currency units so that order totals stay
// exact integer sums of their line subtotals.

type Medicine struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name        string `gorm:"unique;not null"             json:"name"`
	Description string `gorm:"not null"                    json:"description"`
	Category    string `gorm:"index;not null"              json:"category"`
	Price       int64  `gorm:"not null"                    json:"price"`
	Stock       int64  `gorm:"not null;check:stock >= 0"   json:"stock"`
	ImageURL    string `json:"image_url"`
}

type Disease struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"unique;not null"          json:"name"`
	Category    string `gorm:"index;not null"           json:"category"`
	Description string `gorm:"not null"                 json:"description"`
	Symptoms    string `gorm:"not null"                 json:"symptoms"`
	Treatment   string `gorm:"not null"                 json:"treatment"`
	Medicines   string `json:"medicines"`
	ImageURL    string `json:"image_url"`
}

// CartItem is one (session, medicine) pairing. The unique index backs
// the merge-on-add upsert: concurrent adds of the same medicine either
// increment the existing row or collide on the index, never duplicate.
type CartItem struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"                        json:"id"`
	SessionID  string `gorm:"uniqueIndex:idx_session_medicine;not null;index" json:"session_id"`
	MedicineID uint   `gorm:"uniqueIndex:idx_session_medicine;not null"       json:"medicine_id"`
	Quantity   uint   `gorm:"default:1;check:quantity > 0"                    json:"quantity"`
}

type Order struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID    string      `gorm:"index;not null"           json:"session_id"`
	CustomerName string      `gorm:"not null"                 json:"customer_name"`
	Phone        string      `gorm:"index;not null"           json:"phone"`
	Address      string      `gorm:"not null"                 json:"address"`
	Status       OrderStatus `gorm:"not null"                 json:"status"`
	TotalPrice   int64       `gorm:"not null"                 json:"total_price"`
	CreatedAt    time.Time   `gorm:"autoCreateTime"           json:"created_at"`
	Items        []OrderItem `gorm:"foreignKey:OrderID"       json:"items"`
}

// OrderItem snapshots the medicine name and price at checkout time, so
// later catalog edits never change what a placed order says it cost.
type OrderItem struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"     json:"id"`
	OrderID    uint   `gorm:"index;not null"               json:"order_id"`
	MedicineID uint   `gorm:"not null"                     json:"medicine_id"`
	Name       string `gorm:"not null"                     json:"name"`
	UnitPrice  int64  `gorm:"not null"                     json:"unit_price"`
	Quantity   uint   `gorm:"default:1;check:quantity > 0" json:"quantity"`
	Subtotal   int64  `gorm:"not null"                     json:"subtotal"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Name         string    `gorm:"not null"                 json:"name"`
	Role         string    `gorm:"not null"                 json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime"           json:"created_at"`
}
