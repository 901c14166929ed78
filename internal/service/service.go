package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tuitionhub/internal/errdefs"
	"tuitionhub/internal/model"
	"tuitionhub/pkg/ctxdata"
)

// EventProducer publishes domain events for the notification consumer.
// Emission is best-effort: services log failures and never fail the
// request over a missing broker.
type EventProducer interface {
	Send(ctx context.Context, topic string, message interface{}) error
}

const (
	TopicResponseCreated = "tuition-responses"
	TopicMessageSent     = "tuition-messages"
)

func currentUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxdata.GetUserID(ctx)
	if !ok {
		return uuid.Nil, fmt.Errorf("no caller identity: %w", errdefs.ErrAuthentication)
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid caller id %q: %w", userID, errdefs.ErrAuthentication)
	}
	return id, nil
}

func currentUserRole(ctx context.Context) (model.Role, bool) {
	role, ok := ctxdata.GetUserRole(ctx)
	return model.Role(role), ok
}

func ensureCurrentUserRole(ctx context.Context, role model.Role) error {
	current, ok := ctxdata.GetUserRole(ctx)
	if !ok || model.Role(current) != role {
		return fmt.Errorf("%s role required: %w", role, errdefs.ErrPermissionDenied)
	}
	return nil
}
