package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"gigmarket_backend/pkg/apperrors"
)

var validate = validator.New()

// ValidateStruct гоняет struct-теги и переводит ошибки валидатора
// в единый apperrors.ValidationError с деталями по полям
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.InternalError(err)
	}

	details := make(map[string]interface{}, len(validationErrors))
	for _, fe := range validationErrors {
		details[strings.ToLower(fe.Field())] = messageFor(fe)
	}
	return apperrors.ValidationError(details)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email"
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}
