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

// GET v1/cart (200 OK)
// POST v1/cart/items JSON {"product_id" int, "quantity" int} (201 Created, 400, 404, 503)
// PUT v1/cart/items/{id} JSON {"quantity" int} (200 OK, 400, 404)
// DELETE v1/cart/items/{id} (204 No content)
// DELETE v1/cart (204 No content)

type CartHandler struct {
	cart    port.Carter
	browser port.CatalogBrowser
}

func RegisterCart(
	mux *http.ServeMux, cart port.Carter, browser port.CatalogBrowser,
) {
	h := CartHandler{cart, browser}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.PutItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view := CartView{
		Items: toCartLineViews(h.cart.Lines()),
		Total: h.cart.Total(),
	}
	writeJSON(w, http.StatusOK, view)
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var item AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, err := h.browser.ProductDetails(r.Context(), item.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		log.Error("failed to get product", "id", item.ProductID, "err", err)
		return
	}

	// The cart itself enforces no stock bound; clamp here the way
	// the product page does before dispatching the add.
	quantity := p.ClampToStock(item.Quantity)

	line := h.cart.Add(p, quantity)
	writeJSON(w, http.StatusCreated, toCartLineView(line))
	log.Info("added to cart", "productID", p.ProductID, "quantity", quantity)
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var item UpdateCartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	line, ok := h.cart.UpdateQuantity(id, item.Quantity)
	if !ok {
		http.Error(w, "not in cart", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toCartLineView(line))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.cart.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// POST v1/checkout (200 OK, 409 Conflict on empty cart)

type CheckoutHandler struct {
	checkout port.CheckoutProcessor
}

func RegisterCheckout(mux *http.ServeMux, checkout port.CheckoutProcessor) {
	h := CheckoutHandler{checkout}
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"
	log := slog.With("op", op)

	order, err := h.checkout.PlaceOrder(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			http.Error(w, "cart is empty", http.StatusConflict)
			return
		}
		http.Error(w, "checkout failed", http.StatusInternalServerError)
		log.Error("failed to place order", "err", err)
		return
	}

	view := Order{
		OrderID:   order.OrderID,
		Items:     toCartLineViews(order.Lines),
		Total:     order.Total.StringFixed(2),
		PlacedAt:  order.PlacedAt,
		Purchaser: order.Purchaser,
	}
	writeJSON(w, http.StatusOK, view)
}
