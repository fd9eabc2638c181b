package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation(t *testing.T) {
	err := Validation("please provide %s", "condition")
	assert.Equal(t, "please provide condition", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))

	// ошибка остается распознаваемой после оборачивания
	wrapped := fmt.Errorf("register patient, %w", err)
	assert.True(t, errors.Is(wrapped, ErrValidation))
	var vErr *ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, "please provide condition", vErr.Message)
}

func TestNotFound(t *testing.T) {
	err := NotFound("patient")
	assert.Equal(t, "Patient not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Not found", NotFound("").Error())
}

func TestStorage(t *testing.T) {
	assert.Nil(t, Storage(nil))

	cause := errors.New("connection refused")
	err := Storage(cause)
	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestDuplicateEmail(t *testing.T) {
	err := DuplicateEmail("provider")
	assert.Equal(t, "Provider with this email already exists", err.Error())
	assert.True(t, errors.Is(err, ErrDuplicateEmail))
	assert.True(t, errors.Is(fmt.Errorf("create provider, %w", err), ErrDuplicateEmail))
	assert.Equal(t, "User with this email already exists", DuplicateEmail("").Error())
}
