package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmarket_backend/internal/validator"
	"gigmarket_backend/pkg/apperrors"
)

type sample struct {
	Title  string  `validate:"required,min=3"`
	Budget float64 `validate:"required,gt=0"`
}

func TestValidateStruct_OK(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(sample{Title: "abc", Budget: 10}))
}

func TestValidateStruct_CollectsFieldErrors(t *testing.T) {
	err := validator.ValidateStruct(sample{Title: "a", Budget: 0})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPCode)

	details, ok := appErr.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "budget")
}
