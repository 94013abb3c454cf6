package services_test

import (
	"context"
	"errors"
	"sync"

	"github.com/whiteelite/catalog/internal/domain/entities"
	domainerrors "github.com/whiteelite/catalog/internal/domain/errors"
	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

// memoryRepo is an in-process Repository that mimics the storage contract.
type memoryRepo[T shared.Identifiable] struct {
	mu     sync.Mutex
	items  map[string]T
	writes int
	err    error
	// rejectCanceled fails writes whose context is already canceled.
	rejectCanceled bool
}

func newMemoryRepo[T shared.Identifiable]() *memoryRepo[T] {
	return &memoryRepo[T]{items: map[string]T{}}
}

func (r *memoryRepo[T]) write(ctx context.Context) error {
	if r.err != nil {
		return r.err
	}
	if r.rejectCanceled && ctx.Err() != nil {
		return domainerrors.Unavailable("write", "test", ctx.Err())
	}
	r.writes++
	return nil
}

func (r *memoryRepo[T]) Add(ctx context.Context, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.Identity()]; exists {
		return domainerrors.Conflict("add", "test", errors.New("duplicate key"))
	}
	if err := r.write(ctx); err != nil {
		return err
	}
	r.items[item.Identity()] = item
	return nil
}

func (r *memoryRepo[T]) Remove(ctx context.Context, id shared.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.write(ctx); err != nil {
		return err
	}
	delete(r.items, id.Identity())
	return nil
}

func (r *memoryRepo[T]) Get(_ context.Context, id shared.ID) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	item, ok := r.items[id.Identity()]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *memoryRepo[T]) Update(ctx context.Context, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.Identity()]; !exists {
		return domainerrors.ErrNoRowsAffected
	}
	if err := r.write(ctx); err != nil {
		return err
	}
	r.items[item.Identity()] = item
	return nil
}

func (r *memoryRepo[T]) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

// vanishingRepo loses every update to a concurrent delete: the lookup
// succeeds, then the row is gone before the write lands.
type vanishingRepo[T shared.Identifiable] struct {
	*memoryRepo[T]
}

func (r vanishingRepo[T]) Update(ctx context.Context, item T) error {
	r.mu.Lock()
	delete(r.items, item.Identity())
	r.mu.Unlock()

	return r.memoryRepo.Update(ctx, item)
}

type sentMessage struct {
	Topic    string
	Action   domainrepos.Action
	EntityID string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, topic string, action domainrepos.Action, subject shared.Identifiable) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMessage{Topic: topic, Action: action, EntityID: subject.Identity()})
	return nil
}

func (n *recordingNotifier) Sent() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.sent...)
}

var (
	_ domainrepos.Repository[entities.User]    = (*memoryRepo[entities.User])(nil)
	_ domainrepos.Repository[entities.Product] = (*memoryRepo[entities.Product])(nil)
	_ domainrepos.Repository[entities.User]    = vanishingRepo[entities.User]{}
	_ domainrepos.Notifier                     = (*recordingNotifier)(nil)
)
