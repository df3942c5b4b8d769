package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"eventhub/internal/auth"
	"eventhub/internal/domain"
	"eventhub/internal/repository"
)

var (
	// ErrUserExists is returned when registering with an email that is taken.
	ErrUserExists = domain.ConflictError("user already exists")
	// ErrUserNotFound indicates no account matches the given identifier.
	ErrUserNotFound = domain.NotFoundError("user not found")
	// ErrProviderAccount is returned when a password login is attempted
	// against an account that has no password.
	ErrProviderAccount = domain.BadInputError("provider-account", "please login with provider")
	// ErrWrongPassword indicates the supplied password does not match.
	ErrWrongPassword = domain.BadInputError("wrong-password", "wrong password")
	// ErrNotAnAdmin rejects admin-mode logins for regular accounts.
	ErrNotAnAdmin = domain.BadInputError("role-mismatch", "user is not an admin")
	// ErrIsAnAdmin rejects user-mode logins for admin accounts.
	ErrIsAnAdmin = domain.BadInputError("role-mismatch", "user is an admin")
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Bio      string
}

// UserUpdate carries a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
	Bio      *string
}

// UserService implements account lifecycle rules.
type UserService struct {
	users repository.UserRepository
	codec *auth.Codec
}

func NewUserService(users repository.UserRepository, codec *auth.Codec) *UserService {
	return &UserService{users: users, codec: codec}
}

// Register creates an account. The email must not be taken.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domain.BadInputError("", "email is required")
	}
	if input.Password == "" {
		return nil, domain.BadInputError("", "password is required")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           domain.NewID(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.ParseRole(input.Role),
		Bio:          input.Bio,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks credentials and issues a signed token. asAdmin must match the
// stored role in both directions.
func (s *UserService) Login(ctx context.Context, email, password string, asAdmin bool) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if user.PasswordHash == "" {
		return "", ErrProviderAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrWrongPassword
	}

	if asAdmin && user.Role != domain.RoleAdmin {
		return "", ErrNotAnAdmin
	}
	if !asAdmin && user.Role == domain.RoleAdmin {
		return "", ErrIsAnAdmin
	}

	token, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns one page of users plus the page math for the full set.
func (s *UserService) List(ctx context.Context, page, limit int32) ([]domain.User, domain.PageInfo, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	users, err := s.users.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	return users, domain.NewPageInfo(count, page, limit), nil
}

func (s *UserService) Admins(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleAdmin)
}

// Update applies a partial profile update and returns the stored result.
func (s *UserService) Update(ctx context.Context, update UserUpdate) (*domain.User, error) {
	user, err := s.GetByID(ctx, update.ID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes an account and returns the deleted record.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return user, nil
}
