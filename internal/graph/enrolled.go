package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"eventhub/internal/auth"
	"eventhub/internal/domain"
)

// EnrolledEventResolver resolves the EnrolledEvent graph type.
type EnrolledEventResolver struct {
	enrollment *domain.Enrollment
	root       *Resolver
}

func (r *EnrolledEventResolver) ID() graphql.ID { return graphql.ID(r.enrollment.ID) }

func (r *EnrolledEventResolver) Event(ctx context.Context) (*EventResolver, error) {
	event, err := r.root.events.GetByID(ctx, r.enrollment.EventID)
	if err != nil {
		return nil, err
	}
	return &EventResolver{event: event, root: r.root}, nil
}

func (r *EnrolledEventResolver) EventID() graphql.ID { return graphql.ID(r.enrollment.EventID) }

func (r *EnrolledEventResolver) User(ctx context.Context) (*UserResolver, error) {
	user, err := r.root.users.GetByID(ctx, r.enrollment.UserID)
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user, root: r.root}, nil
}

func (r *EnrolledEventResolver) UserID() graphql.ID { return graphql.ID(r.enrollment.UserID) }

func (r *EnrolledEventResolver) CreatedAt() string { return timestamp(r.enrollment.CreatedAt) }

func (r *EnrolledEventResolver) UpdatedAt() string { return timestamp(r.enrollment.UpdatedAt) }

func (root *Resolver) enrollmentResolvers(enrollments []domain.Enrollment) []*EnrolledEventResolver {
	resolvers := make([]*EnrolledEventResolver, len(enrollments))
	for i := range enrollments {
		resolvers[i] = &EnrolledEventResolver{enrollment: &enrollments[i], root: root}
	}
	return resolvers
}

func (r *Resolver) GetEnrolledEventByID(ctx context.Context, args userIDArgs) (*EnrolledEventResolver, error) {
	return auth.Authenticated(r.gate, r.getEnrolledEventByID)(ctx, args)
}

func (r *Resolver) getEnrolledEventByID(ctx context.Context, args userIDArgs) (*EnrolledEventResolver, error) {
	enrollment, err := r.enrollments.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &EnrolledEventResolver{enrollment: enrollment, root: r}, nil
}

func (r *Resolver) AllEnrolledEvents(ctx context.Context) ([]*EnrolledEventResolver, error) {
	return auth.Authenticated(r.gate, r.allEnrolledEvents)(ctx, noArgs{})
}

func (r *Resolver) allEnrolledEvents(ctx context.Context, _ noArgs) ([]*EnrolledEventResolver, error) {
	enrollments, err := r.enrollments.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.enrollmentResolvers(enrollments), nil
}

type enrollmentPairArgs struct {
	EventID graphql.ID
	UserID  graphql.ID
}

func (r *Resolver) CheckEnrolledEvent(ctx context.Context, args enrollmentPairArgs) (bool, error) {
	return auth.Authenticated(r.gate, r.checkEnrolledEvent)(ctx, args)
}

func (r *Resolver) checkEnrolledEvent(ctx context.Context, args enrollmentPairArgs) (bool, error) {
	return r.enrollments.Check(ctx, string(args.EventID), string(args.UserID))
}

type authorRefArgs struct {
	AuthorID graphql.ID
}

func (r *Resolver) GetEnrolledEventsByCreaterID(ctx context.Context, args authorRefArgs) ([]*EnrolledEventResolver, error) {
	return auth.Authenticated(r.gate, r.getEnrolledEventsByCreaterID)(ctx, args)
}

func (r *Resolver) getEnrolledEventsByCreaterID(ctx context.Context, args authorRefArgs) ([]*EnrolledEventResolver, error) {
	enrollments, err := r.enrollments.ListByCreator(ctx, string(args.AuthorID))
	if err != nil {
		return nil, err
	}
	return r.enrollmentResolvers(enrollments), nil
}

func (r *Resolver) EnrollEvent(ctx context.Context, args enrollmentPairArgs) (*EnrolledEventResolver, error) {
	return auth.Authenticated(r.gate, r.enrollEvent)(ctx, args)
}

func (r *Resolver) enrollEvent(ctx context.Context, args enrollmentPairArgs) (*EnrolledEventResolver, error) {
	enrollment, err := r.enrollments.Enroll(ctx, string(args.UserID), string(args.EventID))
	if err != nil {
		return nil, err
	}
	return &EnrolledEventResolver{enrollment: enrollment, root: r}, nil
}

func (r *Resolver) UnenrollEvent(ctx context.Context, args enrollmentPairArgs) (*EnrolledEventResolver, error) {
	return auth.Authenticated(r.gate, r.unenrollEvent)(ctx, args)
}

func (r *Resolver) unenrollEvent(ctx context.Context, args enrollmentPairArgs) (*EnrolledEventResolver, error) {
	enrollment, err := r.enrollments.Unenroll(ctx, string(args.UserID), string(args.EventID))
	if err != nil {
		return nil, err
	}
	return &EnrolledEventResolver{enrollment: enrollment, root: r}, nil
}
