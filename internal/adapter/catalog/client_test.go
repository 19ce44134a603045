package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
  {
    "id": 1,
    "title": "Classic Red Hoodie",
    "price": 29.99,
    "description": "A soft hoodie",
    "images": ["https://img.example/1.png"],
    "category": {"id": 5, "name": "Clothes", "image": "https://img.example/c.png"}
  },
  {
    "id": 2,
    "title": "Wireless Headphones",
    "price": 120,
    "description": "Over-ear",
    "images": [],
    "category": {"id": 2, "name": "Electronics"},
    "rating": 4.5,
    "stock": 3
  }
]`

const categoriesJSON = `[
  {"id": 5, "name": "Clothes"},
  {"id": 2, "name": "Electronics"}
]`

func newTestCatalog(t *testing.T) (*http.ServeMux, catalog.Client) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return mux, catalog.NewClient(srv.URL)
}

func TestClientProducts(t *testing.T) {

	t.Run("ParsesCatalog", func(t *testing.T) {
		mux, client := newTestCatalog(t)
		mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(productsJSON))
		})

		ps, err := client.Products(t.Context())

		require.NoError(t, err)
		require.Len(t, ps, 2)

		assert.Equal(t, int64(1), ps[0].ProductID)
		assert.Equal(t, "Classic Red Hoodie", ps[0].Title)
		assert.True(t, ps[0].Price.Equal(decimal.RequireFromString("29.99")))
		assert.Equal(t, "Clothes", ps[0].Category)
		assert.Nil(t, ps[0].Stock)

		require.NotNil(t, ps[1].Stock)
		assert.Equal(t, 3, *ps[1].Stock)
		assert.InDelta(t, 4.5, ps[1].Rating, 0.001)
	})

	t.Run("NonOKStatus", func(t *testing.T) {
		mux, client := newTestCatalog(t)
		mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := client.Products(t.Context())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})

	t.Run("Unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := catalog.NewClient(srv.URL)

		_, err := client.Products(t.Context())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		mux, client := newTestCatalog(t)
		mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		})

		_, err := client.Products(t.Context())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}

func TestClientProduct(t *testing.T) {

	t.Run("Found", func(t *testing.T) {
		mux, client := newTestCatalog(t)
		mux.HandleFunc("GET /products/2", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"id": 2, "title": "Wireless Headphones", "price": 120,
				"images": [], "category": {"id": 2, "name": "Electronics"},
				"stock": 3
			}`))
		})

		p, err := client.Product(t.Context(), 2)

		require.NoError(t, err)
		assert.Equal(t, int64(2), p.ProductID)
		assert.True(t, p.Price.Equal(decimal.NewFromInt(120)))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, client := newTestCatalog(t)

		_, err := client.Product(t.Context(), 42)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestClientCategories(t *testing.T) {
	mux, client := newTestCatalog(t)
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoriesJSON))
	})

	cs, err := client.Categories(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []string{"Clothes", "Electronics"}, cs)
}
