// user - пакет с моделью данных пользователей системы: пациентов и медицинских специалистов.
package user

import (
	"strings"
	"time"
)

// Kind - вид пользователя системы.
type Kind string

const (
	KindPatient  Kind = "patient"  // пациент
	KindProvider Kind = "provider" // медицинский специалист
)

// ParseKind - функция для получения вида пользователя из строки.
// Если строка не соответствует ни одному виду пользователя, возвращается false.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindPatient:
		return KindPatient, true
	case KindProvider:
		return KindProvider, true
	}
	return "", false
}

// Gender - пол пациента.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid - проверяет, что значение пола входит в допустимое перечисление.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Authenticatable - общая возможность пользователя любого вида: идентификация и хранение хэша пароля.
type Authenticatable interface {
	Identity() (id string, kind Kind) // идентификатор и вид пользователя
	SecretHash() string               // bcrypt хэш пароля, пустая строка если хэш не был загружен
}

// Account - учетные данные, общие для пациента и специалиста.
type Account struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // никогда не сериализуется
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NormalizeEmail - приводит адрес электронной почты к виду, в котором он хранится и сравнивается.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Credentials - авторизационные данные пользователя, загруженные по адресу электронной почты.
type Credentials struct {
	ID           string
	Kind         Kind
	PasswordHash string
}

// Identity - реализует интерфейс Authenticatable.
func (c Credentials) Identity() (string, Kind) { return c.ID, c.Kind }

// SecretHash - реализует интерфейс Authenticatable.
func (c Credentials) SecretHash() string { return c.PasswordHash }

// Login - данные для входа в систему.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}
