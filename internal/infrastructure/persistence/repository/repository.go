// Package repository adapts a Storage port to the Repository the mutation
// pipeline consumes, normalizing every storage failure into a known kind.
package repository

import (
	"context"
	"errors"

	domainerrors "github.com/whiteelite/catalog/internal/domain/errors"
	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

type Repository[T shared.Identifiable] struct {
	entity  string
	storage domainrepos.Storage[T]
}

// New binds storage to the named entity kind.
func New[T shared.Identifiable](entity string, storage domainrepos.Storage[T]) *Repository[T] {
	return &Repository[T]{entity: entity, storage: storage}
}

func (r *Repository[T]) Add(ctx context.Context, item T) error {
	return r.normalize("add", r.storage.Add(ctx, item))
}

func (r *Repository[T]) Remove(ctx context.Context, id shared.ID) error {
	return r.normalize("remove", r.storage.Remove(ctx, id))
}

func (r *Repository[T]) Get(ctx context.Context, id shared.ID) (*T, error) {
	item, err := r.storage.Get(ctx, id)
	if err != nil {
		return nil, r.normalize("get", err)
	}
	return item, nil
}

func (r *Repository[T]) Update(ctx context.Context, item T) error {
	err := r.storage.Update(ctx, item)
	if errors.Is(err, domainerrors.ErrNoRowsAffected) {
		return err
	}
	return r.normalize("update", err)
}

// normalize leaves classified errors alone and marks anything else as a
// transport failure.
func (r *Repository[T]) normalize(op string, err error) error {
	if err == nil || domainerrors.HasKind(err) {
		return err
	}
	return domainerrors.Unavailable(op, r.entity, err)
}
