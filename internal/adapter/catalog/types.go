package catalog

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

type (
	product struct {
		ID          int64           `json:"id"`
		Title       string          `json:"title"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description"`
		Images      []string        `json:"images"`
		Category    category        `json:"category"`
		Rating      float64         `json:"rating,omitempty"`
		Stock       *int            `json:"stock,omitempty"`
	}

	category struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image,omitempty"`
	}
)

func (p product) toDomain() domain.Product {
	return domain.Product{
		ProductID:   p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Images:      p.Images,
		Category:    p.Category.Name,
		Rating:      p.Rating,
		Stock:       p.Stock,
	}
}

func toDomainAll(ps []product) []domain.Product {
	domainPs := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		domainPs = append(domainPs, p.toDomain())
	}
	return domainPs
}
