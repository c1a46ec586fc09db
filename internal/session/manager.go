package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultCookieName = "quiz_session"

var ErrNoSession = errors.New("request has no session")

type contextKey struct{}

// Manager ties requests to session data. The session id travels in an
// HMAC-signed token cookie; the data itself stays in the Store.
type Manager struct {
	store      Store
	secret     []byte
	cookieName string
	ttl        time.Duration
	now        func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:      store,
		secret:     []byte(secret),
		cookieName: DefaultCookieName,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Middleware resolves the session id from the cookie, issuing a new session
// when the cookie is missing or tampered with. A valid cookie is re-sent so
// its max age slides along with the store TTL.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, id, err := m.tokenFromRequest(r)
		if err != nil {
			id = uuid.NewString()
			token, err = m.sign(id)
			if err != nil {
				writeUnavailable(w)
				return
			}
		}
		http.SetCookie(w, m.cookie(token))

		ctx := context.WithValue(r.Context(), contextKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

func (m *Manager) Load(r *http.Request) (Data, error) {
	id, ok := IDFromContext(r.Context())
	if !ok {
		return Data{}, ErrNoSession
	}
	return m.store.Load(r.Context(), id)
}

func (m *Manager) Save(r *http.Request, data Data) error {
	id, ok := IDFromContext(r.Context())
	if !ok {
		return ErrNoSession
	}
	return m.store.Save(r.Context(), id, data)
}

func (m *Manager) tokenFromRequest(r *http.Request) (string, string, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return "", "", err
	}
	id, err := m.parse(cookie.Value)
	if err != nil {
		return "", "", err
	}
	return cookie.Value, id, nil
}

// sign carries no expiry claim: session lifetime is the store TTL, which
// every Save extends.
func (m *Manager) sign(id string) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:       id,
		IssuedAt: jwt.NewNumericDate(m.now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errors.New("session token without id")
	}
	return claims.ID, nil
}

func (m *Manager) cookie(token string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if m.ttl > 0 {
		cookie.MaxAge = int(m.ttl / time.Second)
	}
	return cookie
}

func writeUnavailable(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "session unavailable"})
}
