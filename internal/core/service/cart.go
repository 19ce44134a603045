package service

import (
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Carter = (*CartService)(nil)

// CartService owns the in-memory cart for the lifetime of the
// process. Nothing is persisted: a restart starts with an empty
// cart. All operations are synchronous state transitions.
type CartService struct {
	mu   sync.Mutex
	cart domain.Cart
}

func NewCartService() *CartService {
	return &CartService{}
}

// Add merges quantity into the existing line for the product or
// appends a new one. Stock is not checked here: the inbound
// boundary clamps quantity against stock before calling.
func (s *CartService) Add(p domain.Product, quantity int) domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(p, quantity)
	l, _ := s.line(p.ProductID)
	return l
}

// UpdateQuantity sets the line quantity clamped to a minimum of 1.
// A quantity of zero or below keeps the line at quantity 1 rather
// than removing it. It reports whether the line exists.
func (s *CartService) UpdateQuantity(
	productID int64, quantity int,
) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(productID, quantity) {
		return domain.CartLine{}, false
	}
	return s.line(productID)
}

func (s *CartService) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *CartService) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Total returns the cart total as a fixed-point decimal string,
// e.g. "20.00".
func (s *CartService) Total() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total().StringFixed(2)
}

func (s *CartService) line(productID int64) (domain.CartLine, bool) {
	for _, l := range s.cart.Lines() {
		if l.ProductID == productID {
			return l, true
		}
	}
	return domain.CartLine{}, false
}
