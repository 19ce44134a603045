package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogProvider = (*Client)(nil)

// Client reads the external product catalog over HTTP.
//
// Every call issues a fresh request: no caching, no retries, no
// pagination. The whole catalog is expected to fit in one response.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) Client {
	return Client{baseURL: baseURL, httpClient: &http.Client{}}
}

func (c Client) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "catalog.Client.Products"

	var ps []product
	if err := c.getJSON(ctx, "/products", &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainAll(ps), nil
}

func (c Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	const op = "catalog.Client.Product"

	var p product
	err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), &p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}
	return p.toDomain(), nil
}

func (c Client) Categories(ctx context.Context) ([]string, error) {
	const op = "catalog.Client.Categories"

	var cs []category
	if err := c.getJSON(ctx, "/categories", &cs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names, nil
}

func (c Client) getJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+path, nil,
	)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return domain.ErrProductNotFound
	case res.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d",
			domain.ErrCatalogUnavailable, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed response: %w",
			domain.ErrCatalogUnavailable, err)
	}
	return nil
}
