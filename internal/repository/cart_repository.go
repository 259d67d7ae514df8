package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/port"
)

// CartSlot is the storage key the cart slice is persisted under.
const CartSlot = "food-cart-storage"

// cartStateVersion is written into the envelope and not checked on read.
const cartStateVersion = 0

type cartSlice struct {
	Cart []cartItemRow `json:"cart"`
}

// cartEnvelope is the persisted-store layout: {"state":{"cart":[...]},"version":0}.
type cartEnvelope struct {
	State   *cartSlice `json:"state"`
	Version int        `json:"version"`
}

type cartRepository struct {
	storage port.SlotStorage
}

func NewCart(storage port.SlotStorage) (port.CartRepository, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}

	return &cartRepository{storage: storage}, nil
}

func (r *cartRepository) LoadCart(ctx context.Context) (domain.Cart, bool, error) {
	raw, ok, err := r.storage.Get(ctx, CartSlot)
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("storage.Get: %w", err)
	}
	if !ok {
		return domain.Cart{}, false, nil
	}

	rows, err := decodeCart(raw)
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("decodeCart: %w: %w", port.ErrCorruptSlot, err)
	}

	items, err := mapRowsToCartItems(rows)
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("mapRowsToCartItems: %w: %w", port.ErrCorruptSlot, err)
	}

	return domain.Cart{Items: items}, true, nil
}

func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cartEnvelope{
		State:   &cartSlice{Cart: mapCartItemsToRows(cart.Items)},
		Version: cartStateVersion,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.storage.Set(ctx, CartSlot, raw); err != nil {
		return fmt.Errorf("storage.Set: %w", err)
	}

	return nil
}

// decodeCart accepts the enveloped layout and a bare {"cart":[...]} slice.
func decodeCart(raw []byte) ([]cartItemRow, error) {
	var envelope cartEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("json.Unmarshal envelope: %w", err)
	}
	if envelope.State != nil {
		return envelope.State.Cart, nil
	}

	var slice cartSlice
	if err := json.Unmarshal(raw, &slice); err != nil {
		return nil, fmt.Errorf("json.Unmarshal slice: %w", err)
	}

	return slice.Cart, nil
}
