package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

var _ port.IdentityStorage = (*IdentityRepository)(nil)

const (
	identityKeyPrefix = "identity:"
	activeKey         = "session:active"
)

// syncWrite makes every write land on disk before returning.
// Mutations are write-through with no batching.
var syncWrite = &opt.WriteOptions{Sync: true}

type identityRecord struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

// IdentityRepository persists registered identities and the
// active-identity pointer in the local key-value store. Identities
// accumulate: nothing ever deletes a registered record.
type IdentityRepository struct {
	kv kvdb
}

func NewIdentityRepository(kv kvdb) IdentityRepository {
	return IdentityRepository{kv}
}

func (r IdentityRepository) SaveIdentity(
	ctx context.Context, id domain.Identity,
) error {
	const op = "IdentityRepository.SaveIdentity"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rec := identityRecord{Email: id.Email, Secret: id.Secret}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = r.kv.Put(identityKey(id.Email), b, syncWrite)
	if err != nil {
		return fmt.Errorf("%s: failed to put: %w", op, err)
	}
	return nil
}

func (r IdentityRepository) Identity(
	ctx context.Context, email string,
) (domain.Identity, error) {
	const op = "IdentityRepository.Identity"

	if err := ctx.Err(); err != nil {
		return domain.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	b, err := r.kv.Get(identityKey(email), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return domain.Identity{}, fmt.Errorf(
				"%s: %q: %w", op, email, domain.ErrIdentityNotFound,
			)
		}
		return domain.Identity{}, fmt.Errorf("%s: failed to get: %w", op, err)
	}

	// No schema versioning: a malformed stored value fails here.
	var rec identityRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.Identity{}, fmt.Errorf(
			"%s: malformed identity record: %w", op, err,
		)
	}
	return domain.Identity{Email: rec.Email, Secret: rec.Secret}, nil
}

func (r IdentityRepository) SetActive(ctx context.Context, email string) error {
	const op = "IdentityRepository.SetActive"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := r.kv.Put([]byte(activeKey), []byte(email), syncWrite)
	if err != nil {
		return fmt.Errorf("%s: failed to put: %w", op, err)
	}
	return nil
}

func (r IdentityRepository) Active(ctx context.Context) (domain.Identity, error) {
	const op = "IdentityRepository.Active"

	if err := ctx.Err(); err != nil {
		return domain.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	b, err := r.kv.Get([]byte(activeKey), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return domain.Identity{}, fmt.Errorf(
				"%s: %w", op, domain.ErrIdentityNotFound,
			)
		}
		return domain.Identity{}, fmt.Errorf("%s: failed to get: %w", op, err)
	}

	return r.Identity(ctx, string(b))
}

// ClearActive is a no-op when no identity is active.
func (r IdentityRepository) ClearActive(ctx context.Context) error {
	const op = "IdentityRepository.ClearActive"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := r.kv.Delete([]byte(activeKey), syncWrite)
	if err != nil {
		return fmt.Errorf("%s: failed to delete: %w", op, err)
	}
	return nil
}

func identityKey(email string) []byte {
	return []byte(identityKeyPrefix + email)
}
