package repositories

import (
	"context"

	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

// Storage is the durable per-entity persistence port. Every operation is a
// single committed unit in the underlying store.
//
// Add fails with ErrConflict on a duplicate identity. Remove is idempotent.
// Get returns nil without error when the record is absent or cannot be read
// coherently. Update returns ErrNoRowsAffected when nothing matched.
// Transport failures carry ErrUnavailable.
type Storage[T shared.Identifiable] interface {
	Add(ctx context.Context, item T) error
	Remove(ctx context.Context, id shared.ID) error
	Get(ctx context.Context, id shared.ID) (*T, error)
	Update(ctx context.Context, item T) error
}

// Repository binds one Storage implementation to an entity kind. The
// mutation pipeline depends on it rather than on Storage directly.
type Repository[T shared.Identifiable] interface {
	Add(ctx context.Context, item T) error
	Remove(ctx context.Context, id shared.ID) error
	Get(ctx context.Context, id shared.ID) (*T, error)
	Update(ctx context.Context, item T) error
}

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Notifier publishes the fact that a mutation was committed. Failures are
// returned to the caller and never retried here.
type Notifier interface {
	Send(ctx context.Context, topic string, action Action, subject shared.Identifiable) error
}

// NotifierCloser is a Notifier that owns a transport connection.
type NotifierCloser interface {
	Notifier
	Close() error
}
