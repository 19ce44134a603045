package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Outbound ports.

type CatalogProvider interface {
	Products(context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (domain.Product, error)
	Categories(context.Context) ([]string, error)
}

type IdentityStorage interface {
	SaveIdentity(context.Context, domain.Identity) error
	Identity(ctx context.Context, email string) (domain.Identity, error)
	SetActive(ctx context.Context, email string) error
	Active(context.Context) (domain.Identity, error)
	ClearActive(context.Context) error
}

// Inbound ports.

type CatalogBrowser interface {
	Browse(context.Context, domain.BrowseFilter) ([]domain.Product, error)
	ProductDetails(ctx context.Context, id int64) (domain.Product, error)
	Categories(context.Context) ([]string, error)
}

type SessionManager interface {
	SignUp(ctx context.Context, email, secret string) error
	LogIn(ctx context.Context, email, secret string) (bool, error)
	LogOut(context.Context) error
	Active(context.Context) (domain.Identity, error)
}

type Carter interface {
	Add(p domain.Product, quantity int) domain.CartLine
	UpdateQuantity(productID int64, quantity int) (domain.CartLine, bool)
	Remove(productID int64)
	Clear()
	Lines() []domain.CartLine
	Total() string
}

type CheckoutProcessor interface {
	PlaceOrder(context.Context) (domain.Order, error)
}
