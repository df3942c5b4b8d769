package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"eventhub/internal/auth"
	"eventhub/internal/domain"
)

// MessageResolver resolves the Message graph type.
type MessageResolver struct {
	message *domain.Message
	root    *Resolver
}

func (r *MessageResolver) ID() graphql.ID { return graphql.ID(r.message.ID) }

func (r *MessageResolver) Message() string { return r.message.Body }

// Sender resolves to the authoring user, or null if the account is gone.
func (r *MessageResolver) Sender(ctx context.Context) (*UserResolver, error) {
	user, err := r.root.users.GetByID(ctx, r.message.SenderID)
	if err != nil {
		if domain.HasCode(err, domain.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &UserResolver{user: user, root: r.root}, nil
}

func (r *MessageResolver) SenderID() graphql.ID { return graphql.ID(r.message.SenderID) }

func (r *MessageResolver) CreatedAt() string { return timestamp(r.message.CreatedAt) }

func (r *MessageResolver) UpdatedAt() string { return timestamp(r.message.UpdatedAt) }

func (root *Resolver) messageResolvers(messages []domain.Message) []*MessageResolver {
	resolvers := make([]*MessageResolver, len(messages))
	for i := range messages {
		resolvers[i] = &MessageResolver{message: &messages[i], root: root}
	}
	return resolvers
}

func (r *Resolver) GetAllMessages(ctx context.Context) ([]*MessageResolver, error) {
	return auth.Authenticated(r.gate, auth.RequireRole(domain.RoleAdmin, r.getAllMessages))(ctx, noArgs{})
}

func (r *Resolver) getAllMessages(ctx context.Context, _ noArgs) ([]*MessageResolver, error) {
	messages, err := r.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.messageResolvers(messages), nil
}

func (r *Resolver) GetAllMessagesByUserID(ctx context.Context, args userRefArgs) ([]*MessageResolver, error) {
	return auth.Authenticated(r.gate, r.getAllMessagesByUserID)(ctx, args)
}

func (r *Resolver) getAllMessagesByUserID(ctx context.Context, args userRefArgs) ([]*MessageResolver, error) {
	messages, err := r.messages.ListBySender(ctx, string(args.UserID))
	if err != nil {
		return nil, err
	}
	return r.messageResolvers(messages), nil
}

type messageCreateInput struct {
	Message  string
	SenderID graphql.ID
}

type messageCreateArgs struct {
	MessageData messageCreateInput
}

func (r *Resolver) CreateMessage(ctx context.Context, args messageCreateArgs) (*MessageResolver, error) {
	return auth.Authenticated(r.gate, r.createMessage)(ctx, args)
}

func (r *Resolver) createMessage(ctx context.Context, args messageCreateArgs) (*MessageResolver, error) {
	message, err := r.messages.Create(ctx, args.MessageData.Message, string(args.MessageData.SenderID))
	if err != nil {
		return nil, err
	}
	return &MessageResolver{message: message, root: r}, nil
}

type messageUpdateInput struct {
	ID      graphql.ID
	Message *string
}

type messageUpdateArgs struct {
	UpdateData messageUpdateInput
}

func (r *Resolver) UpdateMessageByID(ctx context.Context, args messageUpdateArgs) (*MessageResolver, error) {
	return auth.Authenticated(r.gate, r.updateMessageByID)(ctx, args)
}

func (r *Resolver) updateMessageByID(ctx context.Context, args messageUpdateArgs) (*MessageResolver, error) {
	message, err := r.messages.Update(ctx, string(args.UpdateData.ID), args.UpdateData.Message)
	if err != nil {
		return nil, err
	}
	return &MessageResolver{message: message, root: r}, nil
}

func (r *Resolver) DeleteMessageByID(ctx context.Context, args userIDArgs) (*MessageResolver, error) {
	return auth.Authenticated(r.gate, r.deleteMessageByID)(ctx, args)
}

func (r *Resolver) deleteMessageByID(ctx context.Context, args userIDArgs) (*MessageResolver, error) {
	message, err := r.messages.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &MessageResolver{message: message, root: r}, nil
}
