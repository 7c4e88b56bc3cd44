package entity

import (
	"errors"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrOrderSettled    = errors.New("order already settled")
)

// OrderItem is one catalog item plus a positive quantity within an order.
type OrderItem struct {
	food     Food
	quantity int
}

func NewOrderItem(food Food, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	return OrderItem{food: food, quantity: quantity}, nil
}

func (i OrderItem) Food() Food    { return i.food }
func (i OrderItem) Quantity() int { return i.quantity }

func (i OrderItem) Subtotal() Money {
	// quantity > 0 by construction, so Multiply cannot fail
	sub, _ := i.food.Price.Multiply(i.quantity)
	return sub
}

// Order collects lines for one user. Lines keep insertion order and the same
// food may appear on several lines. Once settled the order rejects mutation.
type Order struct {
	id        string
	username  string
	createdAt time.Time
	items     []OrderItem
	settled   bool
}

// NewOrder starts an empty order. Uniqueness of id is the caller's concern;
// the order only stores it.
func NewOrder(id, username string, createdAt time.Time) *Order {
	return &Order{id: id, username: username, createdAt: createdAt}
}

// RestoreOrder rebuilds a persisted order, typically from a repository row.
func RestoreOrder(id, username string, createdAt time.Time, items []OrderItem, settled bool) *Order {
	o := &Order{id: id, username: username, createdAt: createdAt, settled: settled}
	o.items = append(o.items, items...)
	return o
}

func (o *Order) AddItem(food Food, quantity int) error {
	if o.settled {
		return ErrOrderSettled
	}
	item, err := NewOrderItem(food, quantity)
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

// TotalPrice folds line subtotals from zero. It is recomputed on every call so
// the result always reflects the current lines.
func (o *Order) TotalPrice() Money {
	total := ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) Items() []OrderItem {
	out := make([]OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) ID() string           { return o.id }
func (o *Order) Username() string     { return o.username }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Settled() bool        { return o.settled }

func (o *Order) markSettled() { o.settled = true }
