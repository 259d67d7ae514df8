// Package checkout implements the checkout page: quantity adjustment on the
// order summary, delivery form validation and order confirmation.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/port"
	"github.com/nikolayk812/foodcart-demo/internal/pricing"
	"github.com/nikolayk812/foodcart-demo/internal/store"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	store  *store.Store
	orders port.OrderRepository
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(s *store.Store, orders port.OrderRepository, opts ...Option) (*Service, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if orders == nil {
		return nil, fmt.Errorf("orders is nil")
	}

	svc := &Service{
		store:  s,
		orders: orders,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// AdjustQuantity is the summary's +/- control. It rewrites the whole cart
// through SetCart, dropping lines that reach zero.
func (s *Service) AdjustQuantity(id string, quantity int) {
	cart := s.store.Cart()

	items := make([]domain.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ID == id {
			item.Quantity = quantity
		}
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}

	s.store.SetCart(items)
}

func (s *Service) Summary() (domain.Cart, domain.Totals) {
	cart := s.store.Cart()
	return cart, pricing.Calculate(cart)
}

// Confirm places the order: it clears the cart and records a confirmation
// snapshot. Failing to record the snapshot does not undo the order.
func (s *Service) Confirm(ctx context.Context, details domain.DeliveryDetails) (domain.Order, error) {
	if err := validate(details); err != nil {
		return domain.Order{}, err
	}

	cart := s.store.Cart()
	if cart.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}

	totals := pricing.Calculate(cart)
	s.store.SetCart(nil)

	order := domain.Order{
		ID:              uuid.New(),
		DeliveryDetails: details,
		Items:           cart.Items,
		Total:           totals.Total.Amount.StringFixed(2),
		OrderDate:       s.now().UTC(),
	}

	if err := s.orders.SaveCurrentOrder(ctx, order); err != nil {
		s.logger.Warn("order confirmation not persisted",
			zap.Stringer("order_id", order.ID),
			zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.Stringer("order_id", order.ID),
		zap.Int("lines", len(order.Items)),
		zap.String("total", order.Total))

	return order, nil
}

func (s *Service) CurrentOrder(ctx context.Context) (domain.Order, bool, error) {
	order, ok, err := s.orders.CurrentOrder(ctx)
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("orders.CurrentOrder: %w", err)
	}

	return order, ok, nil
}
