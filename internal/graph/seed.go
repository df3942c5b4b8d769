package graph

import "context"

func (r *Resolver) CreateSeedUsers(ctx context.Context) (bool, error) {
	if err := r.seed.SeedUsers(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) CreateSeedEvents(ctx context.Context) (bool, error) {
	if err := r.seed.SeedEvents(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) CreateSeedEnrolledEvents(ctx context.Context) (bool, error) {
	if err := r.seed.SeedEnrollments(ctx); err != nil {
		return false, err
	}
	return true, nil
}
