package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// StoreCurrency is the currency every menu price is quoted in.
var StoreCurrency = currency.USD

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: StoreCurrency}
}

// String renders the amount with exactly two decimals, e.g. "USD 12.99".
func (m Money) String() string {
	return m.Currency.String() + " " + m.Amount.StringFixed(2)
}
