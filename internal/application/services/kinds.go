package services

import (
	"github.com/whiteelite/catalog/internal/domain/entities"
)

const (
	UserTopic    = "user-events"
	ProductTopic = "product-events"
)

var UserKind = Kind[entities.User, entities.Credentials]{
	Entity: "user",
	Topic:  UserTopic,
	Build:  entities.NewUser,
	Merge:  entities.User.Apply,
}

var ProductKind = Kind[entities.Product, entities.Description]{
	Entity: "product",
	Topic:  ProductTopic,
	Build:  entities.NewProduct,
	Merge:  entities.Product.Apply,
}

type (
	UserService    = Service[entities.User, entities.Credentials]
	ProductService = Service[entities.Product, entities.Description]
)

func NewUserService(opts ...Option) *UserService {
	return New(UserKind, opts...)
}

func NewProductService(opts ...Option) *ProductService {
	return New(ProductKind, opts...)
}
