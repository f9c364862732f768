package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"
	ierr "github.com/netserve/catalog/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest runs struct-tag validation and converts failures into a
// field-keyed validation error so handlers can render inline errors.
func ValidateRequest(req interface{}) error {
	if req == nil {
		return nil
	}

	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ierr.WithError(err).
			WithHint("Request validation failed").
			Mark(ierr.ErrValidation)
	}

	details := make(map[string]interface{}, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = fieldErr.Tag()
	}

	return ierr.NewError("request validation failed").
		WithHint("Please check the highlighted fields").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
