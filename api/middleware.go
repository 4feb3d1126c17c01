package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/cybercell/cybercrime-portal-api/databases"
	"github.com/cybercell/cybercrime-portal-api/models"
)

// Auth holds the pieces needed to mint and verify session tokens
type Auth struct {
	Sessions databases.SessionDatabase
	Secret   []byte
}

var authenticator auth.Authenticator
var cache store.Cache

// Middleware adds bearer token authentication around accessing the routes
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugf("User %s Authenticated\n", user.UserName())
		next.ServeHTTP(w, r)
	})
}

// SetupGoGuardian sets up the go-guardian middleware. Tokens never expire on
// their own, logout is the only invalidation, hence the extreme cache TTL.
func (a Auth) SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), time.Hour*24*365*100) // 100 years ttl
	tokenStrategy := bearer.New(a.verifyBearer, cache)

	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// verifyBearer validates a session token: the JWT signature must check out
// and the session it names must still exist in the durable store
func (a Auth) verifyBearer(ctx context.Context, r *http.Request, token string) (auth.Info, error) {
	session, err := a.sessionForToken(ctx, token)
	if err != nil {
		return nil, err
	}
	identity := session.Identity
	return auth.NewDefaultUser(identity.Email, identity.ID, []string{string(identity.Role)}, nil), nil
}

func (a Auth) sessionForToken(ctx context.Context, token string) (*models.Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return nil, fmt.Errorf("token missing session id")
	}

	return a.Sessions.Find(ctx, sid)
}

// TokenFor signs a bearer token for the given session. No exp claim: the
// portal has no token expiry.
func (a Auth) TokenFor(session models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"sub":   session.Identity.ID,
		"email": session.Identity.Email,
		"name":  session.Identity.Name,
		"role":  string(session.Identity.Role),
		"badge": session.Identity.Badge,
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.Secret)
}

// Viewer resolves the requesting identity, or nil for anonymous viewers.
// Any parse or lookup failure degrades to anonymous rather than erroring:
// public views treat a bad token the same as no token.
func (a Auth) Viewer(r *http.Request) *models.Identity {
	token := bearerToken(r)
	if token == "" {
		return nil
	}

	ctx, cancel := WithQueryTimeout(r.Context())
	defer cancel()

	session, err := a.sessionForToken(ctx, token)
	if err != nil {
		return nil
	}
	identity := session.Identity
	return &identity
}

// SessionID extracts the durable session id from the request token, used by
// logout to erase persisted state
func (a Auth) SessionID(r *http.Request) string {
	token := bearerToken(r)
	if token == "" {
		return ""
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

// RevokeToken drops a token from the guardian cache
func RevokeToken(r *http.Request) {
	token := bearerToken(r)
	if token == "" || authenticator == nil {
		return
	}
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Revoke(tokenStrategy, token, r)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
