package domain

import "errors"

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrProductNotFound    = errors.New("product not found")
	ErrDuplicateIdentity  = errors.New("identity already registered")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrEmptyCart          = errors.New("cart is empty")
)
