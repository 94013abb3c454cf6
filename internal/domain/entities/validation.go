package entities

import (
	"sync"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/whiteelite/catalog/internal/domain/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks the credentials before they reach storage.
func (c Credentials) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return domainerrors.Invalid("validate", "user", err)
	}
	return nil
}

// Validate checks the description before it reaches storage.
func (d Description) Validate() error {
	if err := validatorInstance().Struct(d); err != nil {
		return domainerrors.Invalid("validate", "product", err)
	}
	return nil
}
