package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"eventhub/internal/auth"
	"eventhub/internal/domain"
	"eventhub/internal/service"
)

// UserResolver resolves the User graph type. The stored password hash is
// never serialized.
type UserResolver struct {
	user *domain.User
	root *Resolver
}

func (r *UserResolver) ID() graphql.ID { return graphql.ID(r.user.ID) }

func (r *UserResolver) Name() string { return r.user.Name }

func (r *UserResolver) Email() string { return r.user.Email }

func (r *UserResolver) Password() *string { return nil }

func (r *UserResolver) Role() string { return string(r.user.Role) }

func (r *UserResolver) Bio() *string { return optional(r.user.Bio) }

func (r *UserResolver) Events(ctx context.Context) ([]*EventResolver, error) {
	events, err := r.root.events.ListByAuthor(ctx, r.user.ID)
	if err != nil {
		return nil, err
	}
	return r.root.eventResolvers(events), nil
}

func (r *UserResolver) EnrolledEvents(ctx context.Context) ([]*EnrolledEventResolver, error) {
	enrollments, err := r.root.enrollments.ListByUser(ctx, r.user.ID)
	if err != nil {
		return nil, err
	}
	return r.root.enrollmentResolvers(enrollments), nil
}

func (r *UserResolver) CreatedAt() string { return timestamp(r.user.CreatedAt) }

func (r *UserResolver) UpdatedAt() string { return timestamp(r.user.UpdatedAt) }

func (root *Resolver) userResolvers(users []domain.User) []*UserResolver {
	resolvers := make([]*UserResolver, len(users))
	for i := range users {
		resolvers[i] = &UserResolver{user: &users[i], root: root}
	}
	return resolvers
}

// AllUsersResolver resolves the AllUserOutput page wrapper.
type AllUsersResolver struct {
	data     []*UserResolver
	pageInfo domain.PageInfo
}

func (r *AllUsersResolver) Data() []*UserResolver { return r.data }

func (r *AllUsersResolver) PageInfo() *PageInfoResolver {
	return &PageInfoResolver{info: r.pageInfo}
}

// PageInfoResolver resolves the Paginations graph type.
type PageInfoResolver struct {
	info domain.PageInfo
}

func (r *PageInfoResolver) TotalItems() int32    { return r.info.TotalItems }
func (r *PageInfoResolver) TotalPages() int32    { return r.info.TotalPages }
func (r *PageInfoResolver) CurrentPage() int32   { return r.info.CurrentPage }
func (r *PageInfoResolver) PerPage() int32       { return r.info.PerPage }
func (r *PageInfoResolver) NextPage() *int32     { return r.info.NextPage }
func (r *PageInfoResolver) PreviousPage() *int32 { return r.info.PreviousPage }

type userIDArgs struct {
	ID graphql.ID
}

func (r *Resolver) GetUserByID(ctx context.Context, args userIDArgs) (*UserResolver, error) {
	user, err := r.users.GetByID(ctx, string(args.ID))
	if err != nil {
		if domain.HasCode(err, domain.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &UserResolver{user: user, root: r}, nil
}

type pageArgs struct {
	Page  *int32
	Limit *int32
}

func (r *Resolver) AllUsers(ctx context.Context, args pageArgs) (*AllUsersResolver, error) {
	return auth.Authenticated(r.gate, auth.RequireRole(domain.RoleAdmin, r.allUsers))(ctx, args)
}

func (r *Resolver) allUsers(ctx context.Context, args pageArgs) (*AllUsersResolver, error) {
	users, info, err := r.users.List(ctx, pageOr(args.Page, 1), pageOr(args.Limit, 10))
	if err != nil {
		return nil, err
	}
	return &AllUsersResolver{data: r.userResolvers(users), pageInfo: info}, nil
}

func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	return auth.Authenticated(r.gate, r.me)(ctx, noArgs{})
}

func (r *Resolver) me(ctx context.Context, _ noArgs) (*UserResolver, error) {
	user, _ := auth.PrincipalFrom(ctx)
	return &UserResolver{user: user, root: r}, nil
}

type emailArgs struct {
	Email string
}

func (r *Resolver) GetUserByEmail(ctx context.Context, args emailArgs) (*UserResolver, error) {
	return auth.Authenticated(r.gate, auth.RequireRole(domain.RoleAdmin, r.getUserByEmail))(ctx, args)
}

func (r *Resolver) getUserByEmail(ctx context.Context, args emailArgs) (*UserResolver, error) {
	user, err := r.users.GetByEmail(ctx, args.Email)
	if err != nil {
		if domain.HasCode(err, domain.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &UserResolver{user: user, root: r}, nil
}

func (r *Resolver) GetAllAdmins(ctx context.Context) ([]*UserResolver, error) {
	return auth.Authenticated(r.gate, auth.RequireRole(domain.RoleAdmin, r.getAllAdmins))(ctx, noArgs{})
}

func (r *Resolver) getAllAdmins(ctx context.Context, _ noArgs) ([]*UserResolver, error) {
	admins, err := r.users.Admins(ctx)
	if err != nil {
		return nil, err
	}
	return r.userResolvers(admins), nil
}

type userRegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Bio      *string
}

type userRegisterArgs struct {
	RegisterData userRegisterInput
}

func (r *Resolver) UserRegister(ctx context.Context, args userRegisterArgs) (*UserResolver, error) {
	user, err := r.users.Register(ctx, service.RegisterInput{
		Name:     args.RegisterData.Name,
		Email:    args.RegisterData.Email,
		Password: args.RegisterData.Password,
		Role:     args.RegisterData.Role,
		Bio:      stringOr(args.RegisterData.Bio, ""),
	})
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user, root: r}, nil
}

// TokenResolver resolves the Token graph type.
type TokenResolver struct {
	token string
}

func (r *TokenResolver) Token() string { return r.token }

type userLoginInput struct {
	Email    string
	Password string
	IsAdmin  bool
}

type userLoginArgs struct {
	LoginData userLoginInput
}

func (r *Resolver) UserLogin(ctx context.Context, args userLoginArgs) (*TokenResolver, error) {
	token, err := r.users.Login(ctx, args.LoginData.Email, args.LoginData.Password, args.LoginData.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &TokenResolver{token: token}, nil
}

type profileUpdateInput struct {
	ID       graphql.ID
	Name     *string
	Email    *string
	Password *string
	Bio      *string
}

type profileUpdateArgs struct {
	ProfileUpdate profileUpdateInput
}

func (r *Resolver) UpdateUserByID(ctx context.Context, args profileUpdateArgs) (*UserResolver, error) {
	return auth.Authenticated(r.gate, r.updateUserByID)(ctx, args)
}

func (r *Resolver) updateUserByID(ctx context.Context, args profileUpdateArgs) (*UserResolver, error) {
	user, err := r.users.Update(ctx, service.UserUpdate{
		ID:       string(args.ProfileUpdate.ID),
		Name:     args.ProfileUpdate.Name,
		Email:    args.ProfileUpdate.Email,
		Password: args.ProfileUpdate.Password,
		Bio:      args.ProfileUpdate.Bio,
	})
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user, root: r}, nil
}

func (r *Resolver) DeleteUserByID(ctx context.Context, args userIDArgs) (*UserResolver, error) {
	return auth.Authenticated(r.gate, r.deleteUserByID)(ctx, args)
}

func (r *Resolver) deleteUserByID(ctx context.Context, args userIDArgs) (*UserResolver, error) {
	user, err := r.users.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user, root: r}, nil
}
