// Package catalog serves the storefront's static restaurant and menu data.
package catalog

import (
	"slices"
	"strings"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/shopspring/decimal"
)

var restaurants = []domain.Restaurant{
	{
		ID:           "1",
		Name:         "Burger Palace",
		Cuisine:      "American",
		Rating:       4.5,
		DeliveryTime: "25-35 min",
		PriceLevel:   "$$",
		MinOrder:     decimal.NewFromInt(15),
		Menu: []domain.MenuItem{
			{
				ID:          "1",
				Name:        "Classic Cheeseburger",
				Description: "Juicy beef patty with melted cheese and fresh vegetables",
				Price:       decimal.RequireFromString("12.99"),
				Category:    "Burgers",
				Dietary:     []string{"gluten-free"},
			},
			{
				ID:          "2",
				Name:        "BBQ Bacon Burger",
				Description: "Smoky BBQ sauce with crispy bacon",
				Price:       decimal.RequireFromString("15.99"),
				Category:    "Burgers",
			},
		},
	},
	{
		ID:           "2",
		Name:         "Green Bowl",
		Cuisine:      "Healthy",
		Rating:       4.7,
		DeliveryTime: "25-35 min",
		PriceLevel:   "$$",
		MinOrder:     decimal.NewFromInt(12),
		Dietary:      []string{"vegan", "gluten-free"},
		Menu: []domain.MenuItem{
			{
				ID:          "gb-1",
				Name:        "Buddha Bowl",
				Description: "Quinoa, roasted chickpeas, avocado and tahini",
				Price:       decimal.RequireFromString("13.50"),
				Category:    "Bowls",
				Dietary:     []string{"vegan", "gluten-free"},
			},
			{
				ID:          "gb-2",
				Name:        "Green Smoothie",
				Description: "Spinach, banana, mango and oat milk",
				Price:       decimal.RequireFromString("6.25"),
				Category:    "Drinks",
				Dietary:     []string{"vegan"},
			},
		},
	},
	{
		ID:           "3",
		Name:         "Taco Fiesta",
		Cuisine:      "Mexican",
		Rating:       4.4,
		DeliveryTime: "30-40 min",
		PriceLevel:   "$$",
		MinOrder:     decimal.NewFromInt(10),
		Dietary:      []string{"vegetarian"},
		Menu: []domain.MenuItem{
			{
				ID:          "tf-1",
				Name:        "Street Tacos",
				Description: "Three corn tortillas with carnitas, onion and cilantro",
				Price:       decimal.RequireFromString("10.99"),
				Category:    "Tacos",
			},
			{
				ID:          "tf-2",
				Name:        "Veggie Burrito",
				Description: "Black beans, rice, peppers and salsa verde",
				Price:       decimal.RequireFromString("11.49"),
				Category:    "Burritos",
				Dietary:     []string{"vegetarian"},
			},
		},
	},
}

// Restaurants lists restaurants of the given cuisine, matched case
// insensitively. An empty cuisine lists all of them.
func Restaurants(cuisine string) []domain.Restaurant {
	cuisine = strings.TrimSpace(cuisine)

	var result []domain.Restaurant
	for _, r := range restaurants {
		if cuisine == "" || strings.EqualFold(r.Cuisine, cuisine) {
			result = append(result, clone(r))
		}
	}
	return result
}

func Restaurant(id string) (domain.Restaurant, bool) {
	i := slices.IndexFunc(restaurants, func(r domain.Restaurant) bool {
		return r.ID == id
	})
	if i < 0 {
		return domain.Restaurant{}, false
	}
	return clone(restaurants[i]), true
}

func clone(r domain.Restaurant) domain.Restaurant {
	r.Dietary = slices.Clone(r.Dietary)
	r.Menu = slices.Clone(r.Menu)
	for i := range r.Menu {
		r.Menu[i].Dietary = slices.Clone(r.Menu[i].Dietary)
	}
	return r
}
