// Package store owns the shopping cart shared by every view.
//
// A Store is a single mutable cell with a fixed mutation API. Every mutation
// runs to completion and then notifies subscribers synchronously, in
// subscription order, with a snapshot of the new cart. Persistence is not the
// store's concern, see package persist.
package store

import (
	"slices"
	"sync"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// Listener receives the cart after a mutation. The cart is a private copy.
// A listener must not mutate the store it is subscribed to.
type Listener func(cart domain.Cart)

type Store struct {
	// emitMu serializes mutate+notify so listeners observe mutations in order.
	emitMu sync.Mutex

	mu        sync.RWMutex
	items     []domain.CartItem
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// New returns a store seeded with the given items, taken verbatim.
func New(initial ...domain.CartItem) *Store {
	return &Store{items: slices.Clone(initial)}
}

func (s *Store) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Cart{Items: slices.Clone(s.items)}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

// SetCart replaces the cart wholesale. Items are not validated: callers
// drop zero quantities themselves. SetCart(nil) clears the cart.
func (s *Store) SetCart(items []domain.CartItem) {
	s.update(func([]domain.CartItem) []domain.CartItem {
		return slices.Clone(items)
	})
}

// AddToCart merges by id: an existing entry gains item.Quantity, otherwise
// item is appended. An entry whose quantity ends up below one is dropped.
func (s *Store) AddToCart(item domain.CartItem) {
	s.update(func(items []domain.CartItem) []domain.CartItem {
		i := indexOf(items, item.ID)
		if i < 0 {
			if item.Quantity < 1 {
				return items
			}
			return append(items, item)
		}

		items[i].Quantity += item.Quantity
		if items[i].Quantity < 1 {
			return slices.Delete(items, i, i+1)
		}
		return items
	})
}

func (s *Store) RemoveFromCart(id string) {
	s.update(func(items []domain.CartItem) []domain.CartItem {
		return slices.DeleteFunc(items, func(item domain.CartItem) bool {
			return item.ID == id
		})
	})
}

// UpdateQuantity sets the quantity of every entry with id and then drops all
// entries whose quantity is not positive. Unknown ids are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.update(func(items []domain.CartItem) []domain.CartItem {
		if indexOf(items, id) < 0 {
			return items
		}

		for i := range items {
			if items[i].ID == id {
				items[i].Quantity = quantity
			}
		}
		return slices.DeleteFunc(items, func(item domain.CartItem) bool {
			return item.Quantity <= 0
		})
	})
}

func (s *Store) ClearCart() {
	s.update(func([]domain.CartItem) []domain.CartItem {
		return nil
	})
}

func (s *Store) update(mutate func(items []domain.CartItem) []domain.CartItem) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.items = mutate(s.items)
	snapshot := slices.Clone(s.items)
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.fn(domain.Cart{Items: slices.Clone(snapshot)})
	}
}

func indexOf(items []domain.CartItem, id string) int {
	return domain.Cart{Items: items}.Find(id)
}
