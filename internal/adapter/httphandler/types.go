package httphandler

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	Product struct {
		ProductID   int64           `json:"id"`
		Title       string          `json:"title"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description,omitempty"`
		Images      []string        `json:"images,omitempty"`
		Category    string          `json:"category"`
		Rating      float64         `json:"rating,omitempty"`
		Stock       *int            `json:"stock,omitempty"`
	}

	CartLine struct {
		ProductID int64           `json:"product_id"`
		Title     string          `json:"title"`
		Price     decimal.Decimal `json:"price"`
		Image     string          `json:"image,omitempty"`
		Quantity  int             `json:"quantity"`
	}

	CartView struct {
		Items []CartLine `json:"items"`
		Total string     `json:"total"`
	}

	Order struct {
		OrderID   string     `json:"order_id"`
		Items     []CartLine `json:"items"`
		Total     string     `json:"total"`
		PlacedAt  time.Time  `json:"placed_at"`
		Purchaser string     `json:"purchaser,omitempty"`
	}
)

type AddCartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateCartItem struct {
	Quantity int `json:"quantity"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	OK bool `json:"ok"`
}

type Session struct {
	Email string `json:"email"`
}
