package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.CheckoutProcessor = (*CheckoutService)(nil)

// CheckoutService turns the current cart into an order after a
// simulated processing delay and empties the cart on success.
type CheckoutService struct {
	cart    port.Carter
	session port.SessionManager
	delay   time.Duration
}

func NewCheckoutService(
	cart port.Carter, session port.SessionManager, delay time.Duration,
) CheckoutService {
	return CheckoutService{cart, session, delay}
}

func (s CheckoutService) PlaceOrder(ctx context.Context) (domain.Order, error) {
	const op = "CheckoutService.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(s.cart.Lines()) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	if err := s.process(ctx); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	lines := s.cart.Lines()
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}

	order := domain.Order{
		OrderID:   uuid.NewString(),
		Lines:     lines,
		Total:     total,
		PlacedAt:  time.Now(),
		Purchaser: s.purchaser(ctx),
	}

	s.cart.Clear()
	log.Info("order placed",
		"orderID", order.OrderID, "total", order.Total.StringFixed(2))
	return order, nil
}

// process stands in for a payment round trip. It honors context
// cancellation so an abandoned checkout does not hold the cart.
func (s CheckoutService) process(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s CheckoutService) purchaser(ctx context.Context) string {
	id, err := s.session.Active(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrIdentityNotFound) {
			slog.Warn("failed to read active identity", "err", err)
		}
		return ""
	}
	return id.Email
}
