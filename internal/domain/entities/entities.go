package entities

import (
	"github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

type (
	Name  string
	Email string
	Price uint64
)

// Credentials is the mutable payload of a user.
type Credentials struct {
	Name  Name  `json:"name" validate:"required,max=255"`
	Email Email `json:"email" validate:"required,email,max=255"`
}

type User struct {
	ID    entities.ID `json:"id"`
	Name  Name        `json:"name"`
	Email Email       `json:"email"`
}

// NewUser assembles a user from a freshly allocated id and its credentials.
func NewUser(id entities.ID, c Credentials) User {
	return User{ID: id, Name: c.Name, Email: c.Email}
}

// Apply merges credentials into the user. The id is preserved.
func (u User) Apply(c Credentials) User {
	u.Name = c.Name
	u.Email = c.Email
	return u
}

func (u User) Identity() string { return u.ID.Identity() }

// Description is the mutable payload of a product.
type Description struct {
	Name  Name  `json:"name" validate:"required,max=255"`
	Price Price `json:"price" validate:"max=9223372036854775807"`
}

type Product struct {
	ID    entities.ID `json:"id"`
	Name  Name        `json:"name"`
	Price Price       `json:"price"`
}

// NewProduct assembles a product from a freshly allocated id and its description.
func NewProduct(id entities.ID, d Description) Product {
	return Product{ID: id, Name: d.Name, Price: d.Price}
}

// Apply merges a description into the product. The id is preserved.
func (p Product) Apply(d Description) Product {
	p.Name = d.Name
	p.Price = d.Price
	return p
}

func (p Product) Identity() string { return p.ID.Identity() }

// Compile-time assertions to ensure interface conformance
var _ entities.Identifiable = User{}
var _ entities.Identifiable = Product{}
