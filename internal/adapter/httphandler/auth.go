package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// POST v1/auth/signup JSON {"email" string, "password" string} (201 Created, 400, 409 Conflict)
// POST v1/auth/login JSON {"email" string, "password" string} (200 OK, 401 Unauthorized)
// POST v1/auth/logout (204 No content)
// GET v1/auth/session (200 OK, 204 No content)

type AuthHandler struct {
	session port.SessionManager
}

func RegisterAuth(mux *http.ServeMux, session port.SessionManager) {
	h := AuthHandler{session}
	mux.HandleFunc("POST /v1/auth/signup", h.PostSignup)
	mux.HandleFunc("POST /v1/auth/login", h.PostLogin)
	mux.HandleFunc("POST /v1/auth/logout", h.PostLogout)
	mux.HandleFunc("GET /v1/auth/session", h.GetSession)
}

func (h AuthHandler) PostSignup(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostSignup"
	log := slog.With("op", op)

	creds, ok := decodeCredentials(w, r, log)
	if !ok {
		return
	}

	err := h.session.SignUp(r.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		http.Error(w, "signup failed", http.StatusInternalServerError)
		log.Error("failed to sign up", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, Session{Email: creds.Email})
	log.Info("identity registered", "email", creds.Email)
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"
	log := slog.With("op", op)

	creds, ok := decodeCredentials(w, r, log)
	if !ok {
		return
	}

	// A credential mismatch is an expected outcome, not an error:
	// callers branch on the boolean.
	loggedIn, err := h.session.LogIn(r.Context(), creds.Email, creds.Password)
	if err != nil {
		http.Error(w, "login failed", http.StatusInternalServerError)
		log.Error("failed to log in", "err", err)
		return
	}

	status := http.StatusOK
	if !loggedIn {
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, LoginResult{OK: loggedIn})
}

func (h AuthHandler) PostLogout(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogout"
	log := slog.With("op", op)

	if err := h.session.LogOut(r.Context()); err != nil {
		http.Error(w, "logout failed", http.StatusInternalServerError)
		log.Error("failed to log out", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.GetSession"
	log := slog.With("op", op)

	id, err := h.session.Active(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Error(w, "session lookup failed", http.StatusInternalServerError)
		log.Error("failed to read session", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, Session{Email: id.Email})
}

func decodeCredentials(
	w http.ResponseWriter, r *http.Request, log *slog.Logger,
) (Credentials, bool) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return Credentials{}, false
	}

	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return Credentials{}, false
	}
	return creds, true
}
