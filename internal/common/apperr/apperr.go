// apperr - пакет с ошибками предметной области, общими для сервисов и хэндлеров.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("not authorized to access this route")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyAssigned    = errors.New("patient already assigned to this provider")
	ErrStorage            = errors.New("storage failure")
)

// ValidationError - ошибка некорректных входных данных. Текст ошибки можно отдавать клиенту.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is - позволяет сравнивать ошибку с ErrValidation через errors.Is.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Validation - создает ошибку валидации с форматированным сообщением.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError - ошибка отсутствия записи с указанным идентификатором.
type NotFoundError struct {
	Resource string // например, "patient" или "provider"
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "Not found"
	}
	return capitalize(e.Resource) + " not found"
}

// Is - позволяет сравнивать ошибку с ErrNotFound через errors.Is.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound - создает ошибку отсутствия записи.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// DuplicateEmailError - почта уже занята пользователем того же вида.
type DuplicateEmailError struct {
	Resource string
}

func (e *DuplicateEmailError) Error() string {
	return capitalize(e.Resource) + " with this email already exists"
}

// Is - позволяет сравнивать ошибку с ErrDuplicateEmail через errors.Is.
func (e *DuplicateEmailError) Is(target error) bool { return target == ErrDuplicateEmail }

// DuplicateEmail - создает ошибку занятой почты.
func DuplicateEmail(resource string) error {
	return &DuplicateEmailError{Resource: resource}
}

// Storage - оборачивает ошибку хранилища. Подробности остаются в цепочке ошибок для логирования.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// capitalize - первая буква с заглавной, как в ответах клиенту: "Patient not found".
func capitalize(s string) string {
	if s == "" {
		return "User"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
