package port

import (
	"context"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

type CartRepository interface {
	// LoadCart returns false when nothing has been persisted yet.
	LoadCart(ctx context.Context) (domain.Cart, bool, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
}

type OrderRepository interface {
	SaveCurrentOrder(ctx context.Context, order domain.Order) error
	CurrentOrder(ctx context.Context) (domain.Order, bool, error)
}
