package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/port"
)

// OrderSlot holds the confirmation record of the last placed order.
const OrderSlot = "currentOrder"

// orderDateLayout is ISO-8601 in UTC with milliseconds, e.g. 2024-03-15T18:04:05.000Z.
const orderDateLayout = "2006-01-02T15:04:05.000Z07:00"

type orderRow struct {
	OrderID      string        `json:"orderId"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	Instructions string        `json:"instructions"`
	Items        []cartItemRow `json:"items"`
	Total        string        `json:"total"`
	OrderDate    string        `json:"orderDate"`
}

type orderRepository struct {
	storage port.SlotStorage
}

func NewOrder(storage port.SlotStorage) (port.OrderRepository, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}

	return &orderRepository{storage: storage}, nil
}

func (r *orderRepository) SaveCurrentOrder(ctx context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("order ID is empty")
	}

	raw, err := json.Marshal(mapOrderToRow(order))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.storage.Set(ctx, OrderSlot, raw); err != nil {
		return fmt.Errorf("storage.Set: %w", err)
	}

	return nil
}

func (r *orderRepository) CurrentOrder(ctx context.Context) (domain.Order, bool, error) {
	raw, ok, err := r.storage.Get(ctx, OrderSlot)
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("storage.Get: %w", err)
	}
	if !ok {
		return domain.Order{}, false, nil
	}

	var row orderRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return domain.Order{}, false, fmt.Errorf("json.Unmarshal: %w: %w", port.ErrCorruptSlot, err)
	}

	order, err := mapRowToOrder(row)
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("mapRowToOrder: %w: %w", port.ErrCorruptSlot, err)
	}

	return order, true, nil
}

func mapOrderToRow(order domain.Order) orderRow {
	return orderRow{
		OrderID:      order.ID.String(),
		Name:         order.Name,
		Email:        order.Email,
		Phone:        order.Phone,
		Address:      order.Address,
		Instructions: order.Instructions,
		Items:        mapCartItemsToRows(order.Items),
		Total:        order.Total,
		OrderDate:    order.OrderDate.UTC().Format(orderDateLayout),
	}
}

func mapRowToOrder(row orderRow) (domain.Order, error) {
	var id uuid.UUID
	if row.OrderID != "" {
		parsed, err := uuid.Parse(row.OrderID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("orderId[%s] is not valid: %w", row.OrderID, err)
		}
		id = parsed
	}

	orderDate, err := time.Parse(time.RFC3339Nano, row.OrderDate)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orderDate[%s] is not valid: %w", row.OrderDate, err)
	}

	items, err := mapRowsToCartItems(row.Items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapRowsToCartItems: %w", err)
	}

	return domain.Order{
		ID: id,
		DeliveryDetails: domain.DeliveryDetails{
			Name:         row.Name,
			Email:        row.Email,
			Phone:        row.Phone,
			Address:      row.Address,
			Instructions: row.Instructions,
		},
		Items:     items,
		Total:     row.Total,
		OrderDate: orderDate,
	}, nil
}
