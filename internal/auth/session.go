package auth

import (
	"context"
	"sync"

	"eventhub/internal/domain"
)

// Session carries the authentication state of one request. The raw bearer
// token is captured when the request arrives; the principal is resolved at
// most once, the first time a gate needs it, and the memoized result is
// shared by every gate in the same request. Sessions are never reused
// across requests.
type Session struct {
	token string

	once      sync.Once
	principal *domain.User
	err       error
}

func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the raw bearer token, empty when the request carried none.
func (s *Session) Token() string { return s.token }

func (s *Session) resolve(fn func() (*domain.User, error)) (*domain.User, error) {
	s.once.Do(func() {
		s.principal, s.err = fn()
	})
	return s.principal, s.err
}

type ctxKey int

const (
	sessionKey ctxKey = iota
	principalKey
)

// WithSession returns a context carrying the request session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom returns the request session, or nil when the context was not
// built by the HTTP layer.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey).(*Session)
	return s
}

// WithPrincipal returns a derived context carrying the resolved principal.
// The parent context is left untouched.
func WithPrincipal(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}

// PrincipalFrom returns the authenticated principal attached by the
// Authenticated decorator.
func PrincipalFrom(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(principalKey).(*domain.User)
	return user, ok
}
