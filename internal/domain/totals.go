package domain

type Totals struct {
	Subtotal    Money
	DeliveryFee Money
	Tax         Money
	Total       Money

	ItemCount int
}
