package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/port"
	"github.com/nikolayk812/foodcart-demo/internal/repository"
	"github.com/nikolayk812/foodcart-demo/internal/repository/memstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type cartRepositorySuite struct {
	suite.Suite

	storage *memstore.Storage
	repo    port.CartRepository
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before each test in the suite
func (suite *cartRepositorySuite) SetupTest() {
	var err error

	suite.storage = memstore.New()
	suite.repo, err = repository.NewCart(suite.storage)
	suite.Require().NoError(err)
}

func (suite *cartRepositorySuite) TestSaveLoad() {
	tests := []struct {
		name  string
		items []domain.CartItem
	}{
		{
			name:  "save cart with items: ok",
			items: []domain.CartItem{randomCartItem(), randomCartItem(), randomCartItem()},
		},
		{
			name: "save empty cart: ok",
		},
		{
			name: "save mixed restaurants: ok",
			items: []domain.CartItem{
				{ID: "1", Name: "Classic Cheeseburger", Price: decimal.RequireFromString("12.99"), Quantity: 2, RestaurantID: "1", RestaurantName: "Burger Palace"},
				{ID: "gb-1", Name: "Buddha Bowl", Price: decimal.RequireFromString("13.50"), Quantity: 1, RestaurantID: "2", RestaurantName: "Green Bowl"},
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.SaveCart(ctx, domain.Cart{Items: tt.items})
			require.NoError(t, err)

			// a fresh repository over the same storage simulates a restart
			restarted, err := repository.NewCart(suite.storage)
			require.NoError(t, err)

			cart, ok, err := restarted.LoadCart(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assertCartItems(t, tt.items, cart.Items)
		})
	}
}

func (suite *cartRepositorySuite) TestLoadNothingSaved() {
	t := suite.T()

	cart, ok, err := suite.repo.LoadCart(t.Context())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, cart.IsEmpty())
}

func (suite *cartRepositorySuite) TestLayout() {
	t := suite.T()
	ctx := t.Context()

	err := suite.repo.SaveCart(ctx, domain.Cart{Items: []domain.CartItem{
		{ID: "1", Name: "Classic Cheeseburger", Price: decimal.RequireFromString("12.99"), Quantity: 2, RestaurantID: "1", RestaurantName: "Burger Palace"},
	}})
	require.NoError(t, err)

	raw, ok, err := suite.storage.Get(ctx, repository.CartSlot)
	require.NoError(t, err)
	require.True(t, ok)

	assert.JSONEq(t, `{
		"state": {"cart": [{
			"id": "1",
			"name": "Classic Cheeseburger",
			"price": 12.99,
			"quantity": 2,
			"restaurantId": "1",
			"restaurantName": "Burger Palace"
		}]},
		"version": 0
	}`, string(raw))
}

func (suite *cartRepositorySuite) TestLoadLayouts() {
	tests := []struct {
		name      string
		raw       string
		wantItems []domain.CartItem
		wantError string
	}{
		{
			name: "enveloped: ok",
			raw:  `{"state":{"cart":[{"id":"2","name":"BBQ Bacon Burger","price":15.99,"quantity":1,"restaurantId":"1","restaurantName":"Burger Palace"}]},"version":0}`,
			wantItems: []domain.CartItem{
				{ID: "2", Name: "BBQ Bacon Burger", Price: decimal.RequireFromString("15.99"), Quantity: 1, RestaurantID: "1", RestaurantName: "Burger Palace"},
			},
		},
		{
			name: "bare slice: ok",
			raw:  `{"cart":[{"id":"2","name":"BBQ Bacon Burger","price":15.99,"quantity":3}]}`,
			wantItems: []domain.CartItem{
				{ID: "2", Name: "BBQ Bacon Burger", Price: decimal.RequireFromString("15.99"), Quantity: 3},
			},
		},
		{
			name: "quoted price: ok",
			raw:  `{"cart":[{"id":"2","price":"15.99","quantity":1}]}`,
			wantItems: []domain.CartItem{
				{ID: "2", Price: decimal.RequireFromString("15.99"), Quantity: 1},
			},
		},
		{
			name:      "not json: error",
			raw:       `not json`,
			wantError: "decodeCart: slot is corrupt: json.Unmarshal envelope: invalid character 'o' in literal null (expecting 'u')",
		},
		{
			name:      "bad price: error",
			raw:       `{"cart":[{"id":"2","price":"abc","quantity":1}]}`,
			wantError: "decodeCart: slot is corrupt: json.Unmarshal slice: json: invalid number literal",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			require.NoError(t, suite.storage.Set(ctx, repository.CartSlot, []byte(tt.raw)))

			cart, ok, err := suite.repo.LoadCart(ctx)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				require.ErrorIs(t, err, port.ErrCorruptSlot)
				return
			}
			require.NoError(t, err)
			assert.True(t, ok)
			assertCartItems(t, tt.wantItems, cart.Items)
		})
	}
}

func TestNewCart_NilStorage(t *testing.T) {
	_, err := repository.NewCart(nil)
	require.EqualError(t, err, "storage is nil")
}

func TestCartRepository_StorageErrors(t *testing.T) {
	ctx := t.Context()
	repo, err := repository.NewCart(failingStorage{err: errors.New("disk full")})
	require.NoError(t, err)

	err = repo.SaveCart(ctx, domain.Cart{})
	require.EqualError(t, err, "storage.Set: disk full")

	_, _, err = repo.LoadCart(ctx)
	require.EqualError(t, err, "storage.Get: disk full")
}

type failingStorage struct {
	err error
}

func (s failingStorage) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, s.err
}

func (s failingStorage) Set(context.Context, string, []byte) error {
	return s.err
}

func (s failingStorage) Delete(context.Context, string) error {
	return s.err
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		ID:             gofakeit.UUID(),
		Name:           gofakeit.Lunch(),
		Price:          decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Quantity:       gofakeit.IntRange(1, 10),
		RestaurantID:   gofakeit.UUID(),
		RestaurantName: gofakeit.Company(),
	}
}

func assertCartItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	if len(expected) == 0 {
		assert.Empty(t, actual)
		return
	}

	diff := cmp.Diff(expected, actual, decimalComparer)
	assert.Empty(t, diff)
}
