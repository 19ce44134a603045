package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogBrowser = (*CatalogService)(nil)

// CatalogService serves browsing over the external catalog.
// Every call re-fetches: the catalog is never cached.
type CatalogService struct {
	provider port.CatalogProvider
}

func NewCatalogService(provider port.CatalogProvider) CatalogService {
	return CatalogService{provider}
}

func (s CatalogService) Browse(
	ctx context.Context, f domain.BrowseFilter,
) ([]domain.Product, error) {
	const op = "CatalogService.Browse"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.provider.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return filterProducts(ps, f), nil
}

func (s CatalogService) ProductDetails(
	ctx context.Context, id int64,
) (domain.Product, error) {
	const op = "CatalogService.ProductDetails"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.provider.Product(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s CatalogService) Categories(ctx context.Context) ([]string, error) {
	const op = "CatalogService.Categories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.provider.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func filterProducts(
	ps []domain.Product, f domain.BrowseFilter,
) []domain.Product {
	query := strings.ToLower(f.Query)
	anyCategory := f.Category == "" || f.Category == "all"

	filtered := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if !anyCategory && p.Category != f.Category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
