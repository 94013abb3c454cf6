// Package services implements the mutation pipeline shared by every entity
// kind: validate the descriptor, persist through the repository, then
// publish a notification for the committed change.
package services

import (
	"context"
	"errors"

	domainerrors "github.com/whiteelite/catalog/internal/domain/errors"
	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	"github.com/whiteelite/catalog/internal/logger"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

// Descriptor is the caller-supplied payload for create and update.
type Descriptor interface {
	Validate() error
}

// Kind describes how one entity kind is assembled from its descriptor.
type Kind[T shared.Identifiable, D Descriptor] struct {
	Entity string
	Topic  string
	Build  func(id shared.ID, d D) T
	Merge  func(item T, d D) T
}

type settings struct {
	newID func() shared.ID
	log   *logger.Logger
}

type Option func(*settings)

// WithIDGenerator replaces the random identifier source.
func WithIDGenerator(fn func() shared.ID) Option {
	return func(s *settings) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// Service is stateless; the repository and notifier are supplied per call.
type Service[T shared.Identifiable, D Descriptor] struct {
	kind  Kind[T, D]
	newID func() shared.ID
	log   *logger.Logger
}

func New[T shared.Identifiable, D Descriptor](kind Kind[T, D], opts ...Option) *Service[T, D] {
	cfg := settings{newID: shared.NewID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Service[T, D]{
		kind:  kind,
		newID: cfg.newID,
		log:   cfg.log.WithFields(map[string]any{"entity": kind.Entity, "topic": kind.Topic}),
	}
}

// Create persists a new entity built from d and announces it.
//
// When the notification fails the entity stays persisted and the error is
// still returned.
func (s *Service[T, D]) Create(ctx context.Context, d D, repo domainrepos.Repository[T], broker domainrepos.Notifier) (T, error) {
	var zero T

	if err := d.Validate(); err != nil {
		return zero, err
	}

	item := s.kind.Build(s.newID(), d)

	// Once issued, the write and its notification outlive the request.
	ctx = context.WithoutCancel(ctx)

	if err := repo.Add(ctx, item); err != nil {
		return zero, domainerrors.New("create", s.kind.Entity, nil, err)
	}

	if err := s.notify(ctx, broker, domainrepos.ActionCreate, item); err != nil {
		return zero, err
	}

	return item, nil
}

// Update merges d into the stored entity identified by id. The id never
// changes.
func (s *Service[T, D]) Update(ctx context.Context, id shared.ID, d D, repo domainrepos.Repository[T], broker domainrepos.Notifier) error {
	if err := d.Validate(); err != nil {
		return err
	}

	current, err := repo.Get(ctx, id)
	if err != nil {
		return domainerrors.New("update", s.kind.Entity, nil, err)
	}
	if current == nil {
		return domainerrors.NotFound("update", s.kind.Entity, id.Identity())
	}

	merged := s.kind.Merge(*current, d)

	ctx = context.WithoutCancel(ctx)

	if err := repo.Update(ctx, merged); err != nil {
		if errors.Is(err, domainerrors.ErrNoRowsAffected) {
			// removed between the read and the write
			return domainerrors.NotFound("update", s.kind.Entity, id.Identity())
		}
		return domainerrors.New("update", s.kind.Entity, nil, err)
	}

	return s.notify(ctx, broker, domainrepos.ActionUpdate, merged)
}

// Delete removes the entity identified by id. Deleting an absent entity
// succeeds and is still announced.
func (s *Service[T, D]) Delete(ctx context.Context, id shared.ID, repo domainrepos.Repository[T], broker domainrepos.Notifier) error {
	ctx = context.WithoutCancel(ctx)

	if err := repo.Remove(ctx, id); err != nil {
		return domainerrors.New("delete", s.kind.Entity, nil, err)
	}

	return s.notify(ctx, broker, domainrepos.ActionDelete, id)
}

// Find looks up the entity identified by id.
func (s *Service[T, D]) Find(ctx context.Context, id shared.ID, repo domainrepos.Repository[T]) (T, error) {
	var zero T

	item, err := repo.Get(ctx, id)
	if err != nil {
		return zero, domainerrors.New("get", s.kind.Entity, nil, err)
	}
	if item == nil {
		return zero, domainerrors.NotFound("get", s.kind.Entity, id.Identity())
	}
	return *item, nil
}

func (s *Service[T, D]) notify(ctx context.Context, broker domainrepos.Notifier, action domainrepos.Action, subject shared.Identifiable) error {
	log := s.log.WithFields(map[string]any{"action": string(action), "entity_id": subject.Identity()})

	if err := broker.Send(ctx, s.kind.Topic, action, subject); err != nil {
		log.Error(err, "mutation committed but notification failed")
		return domainerrors.Unavailable("notify", s.kind.Entity, err)
	}

	log.Debug("mutation committed")
	return nil
}
