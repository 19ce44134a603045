package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) SignUp(
	ctx context.Context, email, secret string,
) error {
	args := m.Called(ctx, email, secret)
	return args.Error(0)
}

func (m *MockSessionManager) LogIn(
	ctx context.Context, email, secret string,
) (bool, error) {
	args := m.Called(ctx, email, secret)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionManager) LogOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionManager) Active(
	ctx context.Context,
) (domain.Identity, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Identity), args.Error(1)
}

func anonymousSession() *MockSessionManager {
	session := new(MockSessionManager)
	session.On("Active", mock.Anything).
		Return(domain.Identity{}, domain.ErrIdentityNotFound)
	return session
}

func TestCheckout(t *testing.T) {

	t.Run("EmptyCart", func(t *testing.T) {
		cart := service.NewCartService()
		s := service.NewCheckoutService(cart, anonymousSession(), 0)

		_, err := s.PlaceOrder(t.Context())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("SnapshotsAndClears", func(t *testing.T) {
		cart := service.NewCartService()
		cart.Add(testProduct(1, 10), 2)
		cart.Add(testProduct(2, 7), 1)
		s := service.NewCheckoutService(cart, anonymousSession(), 0)

		order, err := s.PlaceOrder(t.Context())

		require.NoError(t, err)
		assert.NotEmpty(t, order.OrderID)
		assert.Equal(t, "27.00", order.Total.StringFixed(2))
		assert.Len(t, order.Lines, 2)
		assert.Empty(t, order.Purchaser)

		assert.Empty(t, cart.Lines())
		assert.Equal(t, "0.00", cart.Total())
	})

	t.Run("StampsActiveIdentity", func(t *testing.T) {
		cart := service.NewCartService()
		cart.Add(testProduct(1, 10), 1)

		session := new(MockSessionManager)
		session.On("Active", mock.Anything).
			Return(domain.Identity{Email: "a@x.com", Secret: "p1"}, nil)

		s := service.NewCheckoutService(cart, session, 0)

		order, err := s.PlaceOrder(t.Context())

		require.NoError(t, err)
		assert.Equal(t, "a@x.com", order.Purchaser)
	})

	t.Run("DistinctOrderIDs", func(t *testing.T) {
		cart := service.NewCartService()
		s := service.NewCheckoutService(cart, anonymousSession(), 0)

		cart.Add(testProduct(1, 10), 1)
		order1, err := s.PlaceOrder(t.Context())
		require.NoError(t, err)

		cart.Add(testProduct(1, 10), 1)
		order2, err := s.PlaceOrder(t.Context())
		require.NoError(t, err)

		assert.NotEqual(t, order1.OrderID, order2.OrderID)
	})

	t.Run("CancelledDuringProcessing", func(t *testing.T) {
		cart := service.NewCartService()
		cart.Add(testProduct(1, 10), 2)
		s := service.NewCheckoutService(
			cart, anonymousSession(), time.Minute,
		)

		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		_, err := s.PlaceOrder(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		// An abandoned checkout leaves the cart intact.
		assert.Len(t, cart.Lines(), 1)
	})
}
