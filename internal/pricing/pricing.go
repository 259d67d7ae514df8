// Package pricing holds the order total rule shared by every cart view.
package pricing

import (
	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// displayPlaces is the number of decimals every presented amount is rounded to.
const displayPlaces = 2

var (
	DeliveryFee = decimal.RequireFromString("5.99")
	TaxRate     = decimal.RequireFromString("0.08")
)

// Calculate returns subtotal, flat delivery fee, tax on the subtotal and the
// grand total. Total is summed from the unrounded tax and rounded once.
func Calculate(cart domain.Cart) domain.Totals {
	subtotal := sum(cart)
	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(DeliveryFee).Add(tax)

	return domain.Totals{
		Subtotal:    domain.NewMoney(subtotal.Round(displayPlaces)),
		DeliveryFee: domain.NewMoney(DeliveryFee.Round(displayPlaces)),
		Tax:         domain.NewMoney(tax.Round(displayPlaces)),
		Total:       domain.NewMoney(total.Round(displayPlaces)),
		ItemCount:   cart.ItemCount(),
	}
}

// Subtotal is the running total shown next to the menu, before fee and tax.
func Subtotal(cart domain.Cart) domain.Money {
	return domain.NewMoney(sum(cart).Round(displayPlaces))
}

func LineTotal(item domain.CartItem) domain.Money {
	return domain.NewMoney(lineAmount(item).Round(displayPlaces))
}

func sum(cart domain.Cart) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range cart.Items {
		subtotal = subtotal.Add(lineAmount(item))
	}
	return subtotal
}

func lineAmount(item domain.CartItem) decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
