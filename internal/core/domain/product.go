package domain

import "github.com/shopspring/decimal"

type Product struct {
	ProductID   int64
	Title       string
	Price       decimal.Decimal
	Description string
	Images      []string
	Category    string
	Rating      float64
	Stock       *int
}

// ClampToStock limits n to the available stock count. A product
// without a stock count is treated as unlimited. The result is
// never below 1.
func (p Product) ClampToStock(n int) int {
	if p.Stock != nil && n > *p.Stock {
		n = *p.Stock
	}
	if n < 1 {
		n = 1
	}
	return n
}

type BrowseFilter struct {
	Query    string
	Category string
}
