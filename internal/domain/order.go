package domain

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryDetails struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Instructions string
}

// Order is the confirmation record written once the customer confirms
// checkout. Total keeps the two-decimal string shown on the page.
type Order struct {
	ID uuid.UUID
	DeliveryDetails

	Items     []CartItem
	Total     string
	OrderDate time.Time
}
