// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs are checked right after binding.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "panel/internal/domain/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New constructs the echo validator adapter.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs struct validation and converts failures into the domain
// validation error so the error handler renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return domainerrors.ErrValidationFailed.WithDetails(verrs.Error())
		}

		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
