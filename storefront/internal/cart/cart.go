// Package cart holds the dishes a shopper has picked and their quantities.
package cart

import (
	"crawingo-delivery/storefront/internal/model"
	"crawingo-delivery/storefront/internal/notify"

	"github.com/shopspring/decimal"
)

// Item is a dish in the cart. Price and name are the ones seen when the
// dish was first added.
type Item struct {
	model.Dish
	Quantity int `json:"quantity"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart keeps at most one item per dish id, in insertion order. It is not
// safe for concurrent use; the owning session serializes access.
type Cart struct {
	items    []Item
	notifier notify.Notifier
}

func New(notifier notify.Notifier) *Cart {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Cart{notifier: notifier}
}

func (c *Cart) indexOf(dishID int) int {
	for i, item := range c.items {
		if item.ID == dishID {
			return i
		}
	}
	return -1
}

// Add puts one more of the dish in the cart.
func (c *Cart) Add(dish model.Dish) {
	if i := c.indexOf(dish.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, Item{Dish: dish, Quantity: 1})
	}
	c.notifier.Notify(notify.Notification{
		Title:   "Added to cart",
		Message: dish.Name + " has been added to your cart",
	})
}

func (c *Cart) Remove(dishID int) {
	i := c.indexOf(dishID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// UpdateQuantity replaces the quantity. Anything below 1 removes the item.
func (c *Cart) UpdateQuantity(dishID, quantity int) {
	if quantity < 1 {
		c.Remove(dishID)
		return
	}
	if i := c.indexOf(dishID); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Total is recomputed from the items on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// OrderItems converts the cart into order lines with the captured prices.
func (c *Cart) OrderItems() []model.OrderItem {
	out := make([]model.OrderItem, len(c.items))
	for i, item := range c.items {
		out[i] = model.OrderItem{DishID: item.ID, Quantity: item.Quantity, Price: item.Price}
	}
	return out
}
