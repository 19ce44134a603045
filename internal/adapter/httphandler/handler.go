package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/products?q=query&category=name (200 OK, 503 Service unavailable)
// GET v1/products/{id} (200 OK, 404 Not found, 503 Service unavailable)
// GET v1/categories (200 OK, 503 Service unavailable)

type CatalogHandler struct {
	browser port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, browser port.CatalogBrowser) {
	h := CatalogHandler{browser}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	f := domain.BrowseFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	ps, err := h.browser.Browse(r.Context(), f)
	if err != nil {
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		log.Error("failed to browse catalog", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProductViews(ps))
	log.Info("served product list", "nProducts", len(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.browser.ProductDetails(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		log.Error("failed to get product", "id", id, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProductView(p))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.browser.Categories(r.Context())
	if err != nil {
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		log.Error("failed to get categories", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, cs)
}

func toProductView(p domain.Product) Product {
	return Product{
		ProductID:   p.ProductID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Images:      p.Images,
		Category:    p.Category,
		Rating:      p.Rating,
		Stock:       p.Stock,
	}
}

func toProductViews(ps []domain.Product) []Product {
	views := make([]Product, 0, len(ps))
	for _, p := range ps {
		views = append(views, toProductView(p))
	}
	return views
}

func toCartLineView(l domain.CartLine) CartLine {
	return CartLine{
		ProductID: l.ProductID,
		Title:     l.Title,
		Price:     l.Price,
		Image:     l.Image,
		Quantity:  l.Quantity,
	}
}

func toCartLineViews(ls []domain.CartLine) []CartLine {
	views := make([]CartLine, 0, len(ls))
	for _, l := range ls {
		views = append(views, toCartLineView(l))
	}
	return views
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}
