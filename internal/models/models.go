package models

import (
	"time"
)

// User is one record of the accounts file. Balance is the wallet, debited
// on checkout and credited on funding.
type User struct {
	Username     string
	Email        string
	PasswordHash string
	Balance      float64
}

// Product lives in memory for the process lifetime. InitialStock is what the
// warehouse files gave us at load time; units move between Stock and the cart
// and Stock + cart quantities must always equal InitialStock.
type Product struct {
	ID           int
	Name         string
	Price        float64
	Stock        int
	InitialStock int
}

// CartItem denormalizes name and price at add time so a cart line keeps the
// amount the user saw, whatever happens to the product afterwards.
type CartItem struct {
	ProductID int
	Name      string
	Price     float64
	Quantity  int
}

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	TxID      string      `gorm:"unique;not null"          json:"tx_id"`
	Username  string      `gorm:"index;not null"           json:"username"`
	Total     float64     `gorm:"not null"                 json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `gorm:"foreignKey:OrderID"       json:"items"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null"           json:"order_id"`
	ProductID int     `gorm:"not null"                 json:"product_id"`
	Name      string  `gorm:"not null"                 json:"name"`
	Price     float64 `gorm:"not null"                 json:"price"`
	Quantity  int     `gorm:"check:quantity>0"         json:"quantity"`
}
