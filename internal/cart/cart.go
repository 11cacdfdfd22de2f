// Package cart moves product units between inventory stock and the session
// cart. Outside an in-flight call, every unit of a product is either in
// stock or in the cart: Stock + cart quantity == InitialStock.
package cart

import (
	"errors"
	"fmt"

	"github.com/adewale/termshop/internal/models"
	"github.com/adewale/termshop/internal/store"
)

var (
	ErrOutOfStock        = errors.New("out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidItem       = errors.New("invalid item")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

type Cart struct {
	inv   *store.Inventory
	items []models.CartItem
}

func New(inv *store.Inventory) *Cart {
	return &Cart{inv: inv}
}

// Add moves exactly one unit of the product from stock into the cart,
// appending a quantity-1 line the first time and bumping the line afterwards.
func (c *Cart) Add(productID int) error {
	p, err := c.inv.ByID(productID)
	if err != nil {
		return fmt.Errorf("product %d: %w", productID, err)
	}
	if p.Stock <= 0 {
		return fmt.Errorf("%q: %w", p.Name, ErrOutOfStock)
	}

	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			p.Stock--
			return nil
		}
	}

	c.items = append(c.items, models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
	p.Stock--
	return nil
}

// UpdateQuantity sets a cart line to quantity and settles the signed
// difference against stock. Any failure leaves both untouched.
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("item %d: %w", index+1, ErrInvalidItem)
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInvalidQuantity)
	}

	item := &c.items[index]
	p, err := c.inv.ByID(item.ProductID)
	if err != nil {
		return fmt.Errorf("product %d: %w", item.ProductID, err)
	}

	diff := quantity - item.Quantity
	if diff > 0 && p.Stock < diff {
		return fmt.Errorf("only %d more available: %w", p.Stock, ErrInsufficientStock)
	}

	p.Stock -= diff
	item.Quantity = quantity
	return nil
}

// Remove deletes a cart line and returns its full quantity to stock.
func (c *Cart) Remove(index int) (models.CartItem, error) {
	if index < 0 || index >= len(c.items) {
		return models.CartItem{}, fmt.Errorf("item %d: %w", index+1, ErrInvalidItem)
	}

	item := c.items[index]
	if p, err := c.inv.ByID(item.ProductID); err == nil {
		p.Stock += item.Quantity
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return item, nil
}

// Clear returns every line's quantity to its product and empties the cart.
// Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	for _, item := range c.items {
		if p, err := c.inv.ByID(item.ProductID); err == nil {
			p.Stock += item.Quantity
		}
	}
	c.items = nil
}

// Drop empties the cart without touching stock. Checkout uses it: the sale
// is committed, the units are gone for good.
func (c *Cart) Drop() {
	c.items = nil
}

// Total sums price times quantity over the cart using the prices captured at
// add time, so a checkout amount never shifts under the user.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) Items() []models.CartItem {
	return c.items
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
