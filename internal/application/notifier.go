package application

import (
	"context"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
)

// Notifier receives committed domain events. Failures are logged by the
// caller and never undo the commit.
type Notifier interface {
	UserRegistered(ctx context.Context, user entity.PublicUser) error
	OrderPlaced(ctx context.Context, order entity.Order) error
}

// NoopNotifier drops every event.
type NoopNotifier struct{}

func (NoopNotifier) UserRegistered(context.Context, entity.PublicUser) error { return nil }
func (NoopNotifier) OrderPlaced(context.Context, entity.Order) error         { return nil }
