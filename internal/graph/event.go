package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"eventhub/internal/auth"
	"eventhub/internal/domain"
	"eventhub/internal/service"
)

// EventResolver resolves the Event graph type.
type EventResolver struct {
	event *domain.Event
	root  *Resolver
}

func (r *EventResolver) ID() graphql.ID { return graphql.ID(r.event.ID) }

func (r *EventResolver) Title() string { return r.event.Title }

func (r *EventResolver) Date() string { return r.event.Date }

func (r *EventResolver) Time() string { return r.event.Time }

func (r *EventResolver) Location() string { return r.event.Location }

func (r *EventResolver) Category() string { return r.event.Category }

func (r *EventResolver) Description() string { return r.event.Description }

func (r *EventResolver) Image() string { return r.event.Image }

func (r *EventResolver) Price() string { return r.event.Price }

func (r *EventResolver) Capacity() int32 { return r.event.Capacity }

// Organizer resolves to the authoring user, or null if the account is gone.
func (r *EventResolver) Organizer(ctx context.Context) (*UserResolver, error) {
	user, err := r.root.users.GetByID(ctx, r.event.AuthorID)
	if err != nil {
		if domain.HasCode(err, domain.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &UserResolver{user: user, root: r.root}, nil
}

func (r *EventResolver) AuthorID() graphql.ID { return graphql.ID(r.event.AuthorID) }

func (r *EventResolver) AdditionalInfo() []string {
	if r.event.AdditionalInfo == nil {
		return []string{}
	}
	return r.event.AdditionalInfo
}

func (r *EventResolver) Status() *string { return optional(r.event.Status) }

func (r *EventResolver) TotalEnrolled(ctx context.Context) (int32, error) {
	return r.root.enrollments.CountByEvent(ctx, r.event.ID)
}

func (r *EventResolver) CreatedAt() string { return timestamp(r.event.CreatedAt) }

func (r *EventResolver) UpdatedAt() string { return timestamp(r.event.UpdatedAt) }

func (root *Resolver) eventResolvers(events []domain.Event) []*EventResolver {
	resolvers := make([]*EventResolver, len(events))
	for i := range events {
		resolvers[i] = &EventResolver{event: &events[i], root: root}
	}
	return resolvers
}

// AllEventsResolver resolves the AllEventOutput page wrapper.
type AllEventsResolver struct {
	data     []*EventResolver
	pageInfo domain.PageInfo
}

func (r *AllEventsResolver) Data() []*EventResolver { return r.data }

func (r *AllEventsResolver) PageInfo() *PageInfoResolver {
	return &PageInfoResolver{info: r.pageInfo}
}

// CategoriesResolver resolves the AllEventsCategoryOutput wrapper.
type CategoriesResolver struct {
	data []string
}

func (r *CategoriesResolver) Data() []string { return r.data }

func (r *Resolver) GetEventByID(ctx context.Context, args userIDArgs) (*EventResolver, error) {
	event, err := r.events.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &EventResolver{event: event, root: r}, nil
}

type allEventsArgs struct {
	Page     *int32
	Limit    *int32
	Search   *string
	Category *string
}

func (r *Resolver) AllEvents(ctx context.Context, args allEventsArgs) (*AllEventsResolver, error) {
	events, info, err := r.events.List(ctx,
		pageOr(args.Page, 1),
		pageOr(args.Limit, 10),
		stringOr(args.Search, ""),
		stringOr(args.Category, ""),
	)
	if err != nil {
		return nil, err
	}
	return &AllEventsResolver{data: r.eventResolvers(events), pageInfo: info}, nil
}

func (r *Resolver) AllEventsCategory(ctx context.Context) (*CategoriesResolver, error) {
	categories, err := r.events.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return &CategoriesResolver{data: categories}, nil
}

type userRefArgs struct {
	UserID graphql.ID
}

func (r *Resolver) GetAllEventsByUserID(ctx context.Context, args userRefArgs) ([]*EventResolver, error) {
	return auth.Authenticated(r.gate, auth.RequireRole(domain.RoleAdmin, r.getAllEventsByUserID))(ctx, args)
}

func (r *Resolver) getAllEventsByUserID(ctx context.Context, args userRefArgs) ([]*EventResolver, error) {
	events, err := r.events.ListByAuthor(ctx, string(args.UserID))
	if err != nil {
		return nil, err
	}
	return r.eventResolvers(events), nil
}

type eventCreateInput struct {
	Title          string
	Date           string
	Time           string
	Location       string
	Category       string
	Description    string
	Image          string
	Price          string
	Capacity       int32
	AuthorID       graphql.ID
	AdditionalInfo *[]string
	Status         *string
}

type eventCreateArgs struct {
	EventData eventCreateInput
}

func (r *Resolver) CreateEvent(ctx context.Context, args eventCreateArgs) (*EventResolver, error) {
	return auth.Authenticated(r.gate, auth.RequireRole(domain.RoleAdmin, r.createEvent))(ctx, args)
}

func (r *Resolver) createEvent(ctx context.Context, args eventCreateArgs) (*EventResolver, error) {
	input := service.EventCreate{
		Title:       args.EventData.Title,
		Date:        args.EventData.Date,
		Time:        args.EventData.Time,
		Location:    args.EventData.Location,
		Category:    args.EventData.Category,
		Description: args.EventData.Description,
		Image:       args.EventData.Image,
		Price:       args.EventData.Price,
		Capacity:    args.EventData.Capacity,
		AuthorID:    string(args.EventData.AuthorID),
		Status:      stringOr(args.EventData.Status, ""),
	}
	if args.EventData.AdditionalInfo != nil {
		input.AdditionalInfo = *args.EventData.AdditionalInfo
	}

	event, err := r.events.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	return &EventResolver{event: event, root: r}, nil
}

type eventUpdateInput struct {
	ID             graphql.ID
	Title          *string
	Date           *string
	Time           *string
	Location       *string
	Category       *string
	Description    *string
	Image          *string
	Price          *string
	Capacity       *int32
	AdditionalInfo *[]string
	Status         *string
}

type eventUpdateArgs struct {
	UpdateData eventUpdateInput
}

func (r *Resolver) UpdateEventByID(ctx context.Context, args eventUpdateArgs) (*EventResolver, error) {
	return auth.Authenticated(r.gate, auth.RequireRole(domain.RoleAdmin, r.updateEventByID))(ctx, args)
}

func (r *Resolver) updateEventByID(ctx context.Context, args eventUpdateArgs) (*EventResolver, error) {
	event, err := r.events.Update(ctx, service.EventUpdate{
		ID:             string(args.UpdateData.ID),
		Title:          args.UpdateData.Title,
		Date:           args.UpdateData.Date,
		Time:           args.UpdateData.Time,
		Location:       args.UpdateData.Location,
		Category:       args.UpdateData.Category,
		Description:    args.UpdateData.Description,
		Image:          args.UpdateData.Image,
		Price:          args.UpdateData.Price,
		Capacity:       args.UpdateData.Capacity,
		AdditionalInfo: args.UpdateData.AdditionalInfo,
		Status:         args.UpdateData.Status,
	})
	if err != nil {
		return nil, err
	}
	return &EventResolver{event: event, root: r}, nil
}

func (r *Resolver) DeleteEventByID(ctx context.Context, args userIDArgs) (*EventResolver, error) {
	return auth.Authenticated(r.gate, auth.RequireRole(domain.RoleAdmin, r.deleteEventByID))(ctx, args)
}

func (r *Resolver) deleteEventByID(ctx context.Context, args userIDArgs) (*EventResolver, error) {
	event, err := r.events.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &EventResolver{event: event, root: r}, nil
}
