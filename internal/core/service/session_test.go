package service_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentityStorage(t *testing.T) storage.IdentityRepository {
	t.Helper()
	kv, err := storage.NewKVDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(kv.Close)
	return storage.NewIdentityRepository(kv)
}

func TestSessionSignUp(t *testing.T) {

	t.Run("RegistersAndActivates", func(t *testing.T) {
		s, err := service.NewSessionService(
			t.Context(), newTestIdentityStorage(t),
		)
		require.NoError(t, err)

		err = s.SignUp(t.Context(), "a@x.com", "p1")
		require.NoError(t, err)

		id, err := s.Active(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", id.Email)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		s, err := service.NewSessionService(
			t.Context(), newTestIdentityStorage(t),
		)
		require.NoError(t, err)

		require.NoError(t, s.SignUp(t.Context(), "a@x.com", "p1"))

		err = s.SignUp(t.Context(), "a@x.com", "p2")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

		// The stored record is untouched by the failed attempt:
		// the original secret still logs in, the new one does not.
		ok, err := s.LogIn(t.Context(), "a@x.com", "p1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.LogIn(t.Context(), "a@x.com", "p2")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSessionLogIn(t *testing.T) {

	t.Run("UnknownIdentity", func(t *testing.T) {
		s, err := service.NewSessionService(
			t.Context(), newTestIdentityStorage(t),
		)
		require.NoError(t, err)

		ok, err := s.LogIn(t.Context(), "a@x.com", "p1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		s, err := service.NewSessionService(
			t.Context(), newTestIdentityStorage(t),
		)
		require.NoError(t, err)
		require.NoError(t, s.SignUp(t.Context(), "a@x.com", "p1"))
		require.NoError(t, s.LogOut(t.Context()))

		ok, err := s.LogIn(t.Context(), "a@x.com", "wrong")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = s.Active(t.Context())
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})

	t.Run("ExactMatch", func(t *testing.T) {
		s, err := service.NewSessionService(
			t.Context(), newTestIdentityStorage(t),
		)
		require.NoError(t, err)
		require.NoError(t, s.SignUp(t.Context(), "a@x.com", "p1"))
		require.NoError(t, s.LogOut(t.Context()))

		ok, err := s.LogIn(t.Context(), "a@x.com", "p1")
		require.NoError(t, err)
		assert.True(t, ok)

		id, err := s.Active(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", id.Email)
	})
}

func TestSessionLogOut(t *testing.T) {

	t.Run("ClearsActive", func(t *testing.T) {
		s, err := service.NewSessionService(
			t.Context(), newTestIdentityStorage(t),
		)
		require.NoError(t, err)
		require.NoError(t, s.SignUp(t.Context(), "a@x.com", "p1"))

		require.NoError(t, s.LogOut(t.Context()))

		_, err = s.Active(t.Context())
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})

	t.Run("Idempotent", func(t *testing.T) {
		s, err := service.NewSessionService(
			t.Context(), newTestIdentityStorage(t),
		)
		require.NoError(t, err)

		require.NoError(t, s.LogOut(t.Context()))
		require.NoError(t, s.LogOut(t.Context()))
	})
}

func TestSessionRestore(t *testing.T) {

	t.Run("ActiveIdentitySurvivesRestart", func(t *testing.T) {
		repo := newTestIdentityStorage(t)

		s1, err := service.NewSessionService(t.Context(), repo)
		require.NoError(t, err)
		require.NoError(t, s1.SignUp(t.Context(), "a@x.com", "p1"))

		s2, err := service.NewSessionService(t.Context(), repo)
		require.NoError(t, err)

		id, err := s2.Active(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", id.Email)
	})

	t.Run("LoggedOutStaysLoggedOut", func(t *testing.T) {
		repo := newTestIdentityStorage(t)

		s1, err := service.NewSessionService(t.Context(), repo)
		require.NoError(t, err)
		require.NoError(t, s1.SignUp(t.Context(), "a@x.com", "p1"))
		require.NoError(t, s1.LogOut(t.Context()))

		s2, err := service.NewSessionService(t.Context(), repo)
		require.NoError(t, err)

		_, err = s2.Active(t.Context())
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})
}
