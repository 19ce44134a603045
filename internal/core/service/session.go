package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.SessionManager = (*SessionService)(nil)

// SessionService owns the active identity and writes every
// mutation through to the identity storage synchronously.
type SessionService struct {
	mu      sync.Mutex
	storage port.IdentityStorage
	active  *domain.Identity
}

// NewSessionService restores the previously active identity, if
// any, so a process restart preserves the logged-in state.
func NewSessionService(
	ctx context.Context, storage port.IdentityStorage,
) (*SessionService, error) {
	const op = "NewSessionService"

	s := &SessionService{storage: storage}

	id, err := storage.Active(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.active = &id
	slog.Info("restored active identity", "op", op, "email", id.Email)
	return s, nil
}

func (s *SessionService) SignUp(ctx context.Context, email, secret string) error {
	const op = "SessionService.SignUp"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.storage.Identity(ctx, email)
	if err == nil {
		return fmt.Errorf("%s: %q: %w", op, email, domain.ErrDuplicateIdentity)
	}
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	id := domain.Identity{Email: email, Secret: secret}
	if err := s.storage.SaveIdentity(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.storage.SetActive(ctx, email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.active = &id
	return nil
}

// LogIn reports a mismatch as a plain false, never as an error.
// The error return carries storage faults only.
func (s *SessionService) LogIn(
	ctx context.Context, email, secret string,
) (bool, error) {
	const op = "SessionService.LogIn"

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.storage.Identity(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !id.Matches(email, secret) {
		return false, nil
	}

	if err := s.storage.SetActive(ctx, email); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.active = &id
	return true, nil
}

// LogOut is idempotent: logging out twice is not an error.
func (s *SessionService) LogOut(ctx context.Context) error {
	const op = "SessionService.LogOut"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.ClearActive(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.active = nil
	return nil
}

func (s *SessionService) Active(ctx context.Context) (domain.Identity, error) {
	const op = "SessionService.Active"

	if err := ctx.Err(); err != nil {
		return domain.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return domain.Identity{}, fmt.Errorf(
			"%s: %w", op, domain.ErrIdentityNotFound,
		)
	}
	return *s.active, nil
}
