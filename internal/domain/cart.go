package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Cart struct {
	Items []CartItem
}

// CartItem is a line item. Name, Price and the restaurant fields are copies
// taken when the item was added, they are never refreshed from the catalog.
type CartItem struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int

	RestaurantID   string
	RestaurantName string
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find returns the index of the item with the given id or -1.
func (c Cart) Find(id string) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ID == id
	})
}

func (c Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c Cart) Clone() Cart {
	return Cart{Items: slices.Clone(c.Items)}
}
