package identity

//go:generate mockgen -destination=../mocks/identity.go -package=mocks healthpulse/internal/repositories/identity Identifier,Resolver

import (
	"context"

	"healthpulse/internal/repositories/user"
)

// Session - результат успешной регистрации или входа: публичное представление пользователя и токен.
type Session struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// Identifier - интерфейс для реализации процедур регистрации и авторизации пользователя.
type Identifier interface {
	RegisterPatient(ctx context.Context, reg user.PatientRegistration) (Session, error)   // Метод для регистрации пациента.
	RegisterProvider(ctx context.Context, reg user.ProviderRegistration) (Session, error) // Метод для регистрации специалиста.
	Login(ctx context.Context, login user.Login) (Session, error)                         // Метод для входа пользователя любого вида.
}

// Resolver - интерфейс для получения пользователя по данным из токена.
type Resolver interface {
	FindByID(ctx context.Context, kind user.Kind, id string) (u user.Authenticatable, ok bool, err error)
}
