package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"eventhub/internal/domain"
)

var (
	// ErrMissingToken is returned when a protected operation is requested
	// without a bearer token.
	ErrMissingToken = domain.NewError(domain.CodeUnauthenticated, "missing-token", "authentication token not found")
	// ErrInvalidToken covers malformed, tampered and expired tokens. The
	// underlying verification error is logged, never sent to the client.
	ErrInvalidToken = domain.NewError(domain.CodeUnauthenticated, "invalid-or-expired", "invalid or expired token")
	// ErrUnknownPrincipal is returned when a valid token names a user that
	// no longer exists. Indistinguishable from any other authentication
	// failure as far as the client is concerned.
	ErrUnknownPrincipal = domain.NewError(domain.CodeUnauthenticated, "unknown-principal", "invalid or expired token")
)

// Forbidden builds the authorization failure for a role the principal does
// not hold.
func Forbidden(role domain.Role) *domain.Error {
	return domain.NewError(domain.CodeForbidden, "forbidden-role",
		fmt.Sprintf("only %s accounts can perform this action", strings.ToLower(string(role))))
}

// UserFinder resolves a token claim to a stored user.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Gate authenticates requests and guards resolver handlers.
type Gate struct {
	codec  *Codec
	users  UserFinder
	logger *logrus.Logger
}

func NewGate(codec *Codec, users UserFinder, logger *logrus.Logger) *Gate {
	return &Gate{codec: codec, users: users, logger: logger}
}

// Authenticate resolves the request's principal: it verifies the bearer
// token and loads the matching user. A missing user is an authentication
// failure, never a principal with defaulted fields. The result is memoized
// on the session so concurrent sibling resolvers share a single lookup.
func (g *Gate) Authenticate(ctx context.Context) (*domain.User, error) {
	sess := SessionFrom(ctx)
	if sess == nil || sess.Token() == "" {
		return nil, ErrMissingToken
	}

	return sess.resolve(func() (*domain.User, error) {
		claims, err := g.codec.Verify(sess.Token())
		if err != nil {
			g.logger.WithError(err).Debug("token verification failed")
			return nil, ErrInvalidToken.WithCause(err)
		}

		user, err := g.users.GetByEmail(ctx, claims.Email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				g.logger.WithField("email", claims.Email).Warn("token subject no longer exists")
				return nil, ErrUnknownPrincipal.WithCause(err)
			}
			return nil, fmt.Errorf("resolve principal: %w", err)
		}
		return user, nil
	})
}

// Handler is the shape of a resolver operation the gate decorators wrap.
type Handler[A, R any] func(ctx context.Context, args A) (R, error)

// Authenticated wraps next so it only runs for requests whose token verifies
// and resolves to an existing user. On success the principal is attached to
// the context handed to next; on failure next never runs and the store is
// never touched on its behalf.
func Authenticated[A, R any](g *Gate, next Handler[A, R]) Handler[A, R] {
	return func(ctx context.Context, args A) (R, error) {
		user, err := g.Authenticate(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return next(WithPrincipal(ctx, user), args)
	}
}

// RequireRole wraps next so it only runs when the authenticated principal
// holds the given role. It must be composed inside Authenticated; finding no
// principal on the context is a wiring mistake and fails loudly instead of
// role-checking missing fields.
func RequireRole[A, R any](role domain.Role, next Handler[A, R]) Handler[A, R] {
	return func(ctx context.Context, args A) (R, error) {
		var zero R
		user, ok := PrincipalFrom(ctx)
		if !ok {
			return zero, domain.NewError(domain.CodeInternal, "", "role check requires an authenticated principal")
		}
		if user.Role != role {
			return zero, Forbidden(role)
		}
		return next(ctx, args)
	}
}
