package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/whiteelite/catalog/internal/domain/entities"
	domainerrors "github.com/whiteelite/catalog/internal/domain/errors"
	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

var UserTable = Table[entities.User]{
	Entity:  "user",
	Name:    "users",
	Columns: []string{"name", "email"},
	Values: func(u entities.User) []any {
		return []any{string(u.Name), string(u.Email)}
	},
	Decode: func(id shared.ID, row Scanner) (entities.User, error) {
		var name, email sql.NullString
		if err := row.Scan(&name, &email); err != nil {
			return entities.User{}, err
		}
		if !name.Valid || !email.Valid || name.String == "" || email.String == "" {
			return entities.User{}, fmt.Errorf("user %s: %w", id, domainerrors.ErrMalformedRecord)
		}
		return entities.User{ID: id, Name: entities.Name(name.String), Email: entities.Email(email.String)}, nil
	},
}

var ProductTable = Table[entities.Product]{
	Entity:  "product",
	Name:    "products",
	Columns: []string{"name", "price"},
	Values: func(p entities.Product) []any {
		// Description validation keeps price within int64.
		return []any{string(p.Name), int64(p.Price)}
	},
	Decode: func(id shared.ID, row Scanner) (entities.Product, error) {
		var (
			name  sql.NullString
			price sql.NullInt64
		)
		if err := row.Scan(&name, &price); err != nil {
			return entities.Product{}, err
		}
		if !name.Valid || !price.Valid || name.String == "" || price.Int64 < 0 {
			return entities.Product{}, fmt.Errorf("product %s: %w", id, domainerrors.ErrMalformedRecord)
		}
		return entities.Product{ID: id, Name: entities.Name(name.String), Price: entities.Price(price.Int64)}, nil
	},
}

// Ensure Store implements the interface
var (
	_ domainrepos.Storage[entities.User]    = (*Store[entities.User])(nil)
	_ domainrepos.Storage[entities.Product] = (*Store[entities.Product])(nil)
)
