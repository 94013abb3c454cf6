// Package appstate is the composition root handed to request handlers.
package appstate

import (
	"github.com/whiteelite/catalog/internal/application/services"
	"github.com/whiteelite/catalog/internal/domain/entities"
	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	"github.com/whiteelite/catalog/internal/infrastructure/persistence/repository"
	"github.com/whiteelite/catalog/internal/logger"
)

type AppState struct {
	Broker         domainrepos.Notifier
	UserRepo       domainrepos.Repository[entities.User]
	ProductRepo    domainrepos.Repository[entities.Product]
	UserService    *services.UserService
	ProductService *services.ProductService
}

// New wires one shared notifier and a repository/service pair per entity
// kind.
func New(
	users domainrepos.Storage[entities.User],
	products domainrepos.Storage[entities.Product],
	broker domainrepos.Notifier,
	log *logger.Logger,
) *AppState {
	return &AppState{
		Broker:         broker,
		UserRepo:       repository.New(services.UserKind.Entity, users),
		ProductRepo:    repository.New(services.ProductKind.Entity, products),
		UserService:    services.NewUserService(services.WithLogger(log)),
		ProductService: services.NewProductService(services.WithLogger(log)),
	}
}
