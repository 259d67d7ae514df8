package domain

import "github.com/shopspring/decimal"

type Restaurant struct {
	ID           string
	Name         string
	Cuisine      string
	Rating       float64
	DeliveryTime string
	PriceLevel   string
	MinOrder     decimal.Decimal
	Dietary      []string

	Menu []MenuItem
}

type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Dietary     []string
}

// CartItem copies the menu item into a line item of the given quantity.
func (r Restaurant) CartItem(item MenuItem, quantity int) CartItem {
	return CartItem{
		ID:             item.ID,
		Name:           item.Name,
		Price:          item.Price,
		Quantity:       quantity,
		RestaurantID:   r.ID,
		RestaurantName: r.Name,
	}
}

// MenuItem returns the menu entry with the given id.
func (r Restaurant) MenuItem(id string) (MenuItem, bool) {
	for _, item := range r.Menu {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
