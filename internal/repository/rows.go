package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// cartItemRow is the persisted shape of a line item. Price is a JSON number.
type cartItemRow struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Price          json.Number `json:"price"`
	Quantity       int         `json:"quantity"`
	RestaurantID   string      `json:"restaurantId"`
	RestaurantName string      `json:"restaurantName"`
}

func mapCartItemToRow(item domain.CartItem) cartItemRow {
	return cartItemRow{
		ID:             item.ID,
		Name:           item.Name,
		Price:          json.Number(item.Price.String()),
		Quantity:       item.Quantity,
		RestaurantID:   item.RestaurantID,
		RestaurantName: item.RestaurantName,
	}
}

func mapCartItemsToRows(items []domain.CartItem) []cartItemRow {
	rows := make([]cartItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, mapCartItemToRow(item))
	}
	return rows
}

func mapRowToCartItem(row cartItemRow) (domain.CartItem, error) {
	price, err := decimal.NewFromString(row.Price.String())
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("price[%s] of item[%s] is not valid: %w", row.Price, row.ID, err)
	}

	return domain.CartItem{
		ID:             row.ID,
		Name:           row.Name,
		Price:          price,
		Quantity:       row.Quantity,
		RestaurantID:   row.RestaurantID,
		RestaurantName: row.RestaurantName,
	}, nil
}

func mapRowsToCartItems(rows []cartItemRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapRowToCartItem(row)
		if err != nil {
			return nil, fmt.Errorf("mapRowToCartItem: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
