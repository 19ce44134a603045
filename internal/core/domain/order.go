package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the snapshot of a cart taken by a successful checkout.
type Order struct {
	OrderID   string
	Lines     []CartLine
	Total     decimal.Decimal
	PlacedAt  time.Time
	Purchaser string
}
