package catalog_test

import (
	"testing"

	"github.com/nikolayk812/foodcart-demo/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurants(t *testing.T) {
	tests := []struct {
		name      string
		cuisine   string
		wantNames []string
	}{
		{name: "all", wantNames: []string{"Burger Palace", "Green Bowl", "Taco Fiesta"}},
		{name: "filter by cuisine", cuisine: "mexican", wantNames: []string{"Taco Fiesta"}},
		{name: "unknown cuisine", cuisine: "Thai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, r := range catalog.Restaurants(tt.cuisine) {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestRestaurant(t *testing.T) {
	r, ok := catalog.Restaurant("1")
	require.True(t, ok)
	assert.Equal(t, "Burger Palace", r.Name)

	item, ok := r.MenuItem("2")
	require.True(t, ok)
	assert.Equal(t, "15.99", item.Price.StringFixed(2))

	line := r.CartItem(item, 1)
	assert.Equal(t, "2", line.ID)
	assert.Equal(t, "BBQ Bacon Burger", line.Name)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "1", line.RestaurantID)
	assert.Equal(t, "Burger Palace", line.RestaurantName)

	_, ok = r.MenuItem("gb-1")
	assert.False(t, ok)

	_, ok = catalog.Restaurant("404")
	assert.False(t, ok)
}

func TestRestaurant_ReturnsCopy(t *testing.T) {
	r, ok := catalog.Restaurant("1")
	require.True(t, ok)
	r.Menu[0].Name = "changed"

	again, ok := catalog.Restaurant("1")
	require.True(t, ok)
	assert.Equal(t, "Classic Cheeseburger", again.Menu[0].Name)
}
