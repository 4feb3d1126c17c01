package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cybercell/cybercrime-portal-api/api"
	"github.com/cybercell/cybercrime-portal-api/config"
	"github.com/cybercell/cybercrime-portal-api/databases"
	"github.com/cybercell/cybercrime-portal-api/models"
)

// Auth exported for testing purposes
type Auth struct {
	Directory databases.OfficerDirectory
	Sessions  databases.SessionDatabase
	Auth      api.Auth
}

// LoginHandler matches the submitted credentials against the directory and
// establishes a durable session. Any mismatch yields the same
// INVALID_CREDENTIALS response without revealing which field was wrong.
func (h Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email and password required"})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	identity, err := h.Directory.Authenticate(ctx, email, req.Password)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Error:   "Invalid credentials",
			Code:    models.CodeInvalidCredentials,
		})
		return
	}

	session := models.Session{
		ID:        uuid.New().String(),
		Identity:  *identity,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Sessions.Save(ctx, session); err != nil {
		config.ErrorStatus("failed to persist session", http.StatusInternalServerError, w, err)
		return
	}

	token, err := h.Auth.TokenFor(session)
	if err != nil {
		config.ErrorStatus("failed to sign session token", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("login succeeded", "email", identity.Email, "role", identity.Role)

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.LoginResponse{Token: token, User: *identity})
}

// LogoutHandler clears the caller's session. Idempotent: a missing, invalid,
// or already-cleared token still yields success.
func (h Auth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if sid := h.Auth.SessionID(r); sid != "" {
		ctx, cancel := api.WithQueryTimeout(r.Context())
		defer cancel()

		if err := h.Sessions.Delete(ctx, sid); err != nil {
			zap.S().Warnw("failed to delete session on logout", "error", err)
		}
		api.RevokeToken(r)
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "logged out"})
}

// SessionHandler restores the caller's identity from the durable store.
// Anonymous viewers get a null user, not an error.
func (h Auth) SessionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	viewer := h.Auth.Viewer(r)

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.SessionResponse{User: viewer})
}
