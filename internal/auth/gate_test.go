package auth

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

type fakeUserFinder struct {
	mu    sync.Mutex
	users map[string]*domain.User
	calls int
}

func (f *fakeUserFinder) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	user, ok := f.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func newTestGate(t *testing.T, users map[string]*domain.User) (*Gate, *Codec, *fakeUserFinder) {
	t.Helper()
	codec, err := NewCodec("test-secret", 0)
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	finder := &fakeUserFinder{users: users}
	return NewGate(codec, finder, logger), codec, finder
}

func sessionCtx(token string) context.Context {
	return WithSession(context.Background(), NewSession(token))
}

func TestGate_Authenticate_MissingToken(t *testing.T) {
	gate, _, _ := newTestGate(t, nil)

	_, err := gate.Authenticate(context.Background())
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = gate.Authenticate(sessionCtx(""))
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestGate_Authenticate_InvalidToken(t *testing.T) {
	gate, _, _ := newTestGate(t, nil)

	_, err := gate.Authenticate(sessionCtx("garbage"))
	require.True(t, domain.HasCode(err, domain.CodeUnauthenticated))
}

func TestGate_Authenticate_UnknownPrincipal(t *testing.T) {
	gate, codec, _ := newTestGate(t, nil)

	raw, err := codec.Issue(domain.NewID(), "ghost@example.com")
	require.NoError(t, err)

	_, err = gate.Authenticate(sessionCtx(raw))
	require.True(t, domain.HasCode(err, domain.CodeUnauthenticated))

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, "unknown-principal", derr.Reason)
	// Same message a bad token produces.
	require.Equal(t, ErrInvalidToken.Message, derr.Message)
}

func TestGate_Authenticate_Success(t *testing.T) {
	user := &domain.User{ID: domain.NewID(), Email: "ava@example.com", Role: domain.RoleAdmin}
	gate, codec, _ := newTestGate(t, map[string]*domain.User{user.Email: user})

	raw, err := codec.Issue(user.ID, user.Email)
	require.NoError(t, err)

	got, err := gate.Authenticate(sessionCtx(raw))
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestGate_Authenticate_MemoizesLookup(t *testing.T) {
	user := &domain.User{ID: domain.NewID(), Email: "ava@example.com", Role: domain.RoleUser}
	gate, codec, finder := newTestGate(t, map[string]*domain.User{user.Email: user})

	raw, err := codec.Issue(user.ID, user.Email)
	require.NoError(t, err)
	ctx := sessionCtx(raw)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := gate.Authenticate(ctx)
			require.NoError(t, err)
			require.Equal(t, user, got)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, finder.calls)
}

func TestAuthenticated_AttachesPrincipal(t *testing.T) {
	user := &domain.User{ID: domain.NewID(), Email: "ava@example.com", Role: domain.RoleUser}
	gate, codec, _ := newTestGate(t, map[string]*domain.User{user.Email: user})

	raw, err := codec.Issue(user.ID, user.Email)
	require.NoError(t, err)

	handler := Authenticated(gate, func(ctx context.Context, _ struct{}) (*domain.User, error) {
		principal, ok := PrincipalFrom(ctx)
		require.True(t, ok)
		return principal, nil
	})

	got, err := handler(sessionCtx(raw), struct{}{})
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestAuthenticated_SkipsHandlerOnFailure(t *testing.T) {
	gate, _, _ := newTestGate(t, nil)

	called := false
	handler := Authenticated(gate, func(context.Context, struct{}) (bool, error) {
		called = true
		return true, nil
	})

	_, err := handler(context.Background(), struct{}{})
	require.ErrorIs(t, err, ErrMissingToken)
	require.False(t, called)
}

func TestRequireRole(t *testing.T) {
	admin := &domain.User{ID: domain.NewID(), Email: "ava@example.com", Role: domain.RoleAdmin}
	member := &domain.User{ID: domain.NewID(), Email: "mia@example.com", Role: domain.RoleUser}

	handler := RequireRole(domain.RoleAdmin, func(context.Context, struct{}) (bool, error) {
		return true, nil
	})

	ok, err := handler(WithPrincipal(context.Background(), admin), struct{}{})
	require.NoError(t, err)
	require.True(t, ok)

	_, err = handler(WithPrincipal(context.Background(), member), struct{}{})
	require.True(t, domain.HasCode(err, domain.CodeForbidden))

	// Composed without Authenticated there is no principal to check.
	_, err = handler(context.Background(), struct{}{})
	require.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestGateComposition_AuthenticationBeforeAuthorization(t *testing.T) {
	gate, _, finder := newTestGate(t, nil)

	handler := Authenticated(gate, RequireRole(domain.RoleAdmin, func(context.Context, struct{}) (bool, error) {
		return true, nil
	}))

	_, err := handler(context.Background(), struct{}{})
	require.True(t, domain.HasCode(err, domain.CodeUnauthenticated))
	require.Equal(t, 0, finder.calls)
}
