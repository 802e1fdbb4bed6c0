// Package cart models the in-progress sale before checkout. A cart is a plain
// value; nothing here touches persisted state.
package cart

import (
	"errors"

	"victory-pos/internal/models"
)

var (
	ErrOutOfStock  = errors.New("cart: not enough stock for this unit")
	ErrBadQuantity = errors.New("cart: quantity must be positive")
	ErrUnknownItem = errors.New("cart: item not in cart")
)

// Cart accumulates sale lines. Each line snapshots brand, model and current
// sell price of the unit it references.
type Cart struct {
	Lines []models.TransactionItem
}

// Add puts qty of a unit in the cart, merging with an existing line. The add
// is rejected, leaving the cart unchanged, when the combined quantity would
// exceed the unit's current stock.
func (c *Cart) Add(laptop models.Laptop, qty int) error {
	if qty <= 0 {
		return ErrBadQuantity
	}

	for i, line := range c.Lines {
		if line.LaptopID == laptop.ID {
			if line.Quantity+qty > laptop.Stock {
				return ErrOutOfStock
			}
			c.Lines[i].Quantity += qty
			return nil
		}
	}

	if qty > laptop.Stock {
		return ErrOutOfStock
	}
	c.Lines = append(c.Lines, models.TransactionItem{
		LaptopID: laptop.ID,
		Brand:    laptop.Brand,
		Model:    laptop.Model,
		Quantity: qty,
		Price:    laptop.SellPrice,
	})
	return nil
}

// Remove drops the line for a unit.
func (c *Cart) Remove(laptopID string) error {
	for i, line := range c.Lines {
		if line.LaptopID == laptopID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrUnknownItem
}

// Subtotal sums price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.Lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool { return len(c.Lines) == 0 }
