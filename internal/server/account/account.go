// account - пакет, который реализует регистрацию и вход пользователей обоих видов.
package account

import (
	"context"
	"fmt"

	"healthpulse/internal/common/apperr"
	"healthpulse/internal/common/identity/tools/checker"
	"healthpulse/internal/common/identity/tools/hasher"
	"healthpulse/internal/common/identity/tools/token"
	"healthpulse/internal/repositories/identity"
	"healthpulse/internal/repositories/user"
	"healthpulse/internal/server/identity/credentials"
)

// Service - реализует интерфейс identity.Identifier.
type Service struct {
	creds  *credentials.Store
	tokens *token.Service
}

// NewService - создает сервис регистрации и входа.
func NewService(creds *credentials.Store, tokens *token.Service) *Service {
	return &Service{
		creds:  creds,
		tokens: tokens,
	}
}

var _ identity.Identifier = (*Service)(nil)

// RegisterPatient - регистрирует пациента и выпускает для него токен.
func (s *Service) RegisterPatient(ctx context.Context, reg user.PatientRegistration) (identity.Session, error) {
	if err := validateAccount(reg.FirstName, reg.LastName, reg.Email, reg.Password); err != nil {
		return identity.Session{}, err
	}
	if reg.Gender != "" && !reg.Gender.Valid() {
		return identity.Session{}, apperr.Validation("Gender must be one of: male, female, other")
	}

	p, err := s.creds.CreatePatient(ctx, reg)
	if err != nil {
		return identity.Session{}, err
	}
	tok, err := s.tokens.Issue(p.ID, user.KindPatient)
	if err != nil {
		return identity.Session{}, fmt.Errorf("failed to issue token, %w", err)
	}
	return identity.Session{User: p.Summary(), Token: tok}, nil
}

// RegisterProvider - регистрирует специалиста и выпускает для него токен.
func (s *Service) RegisterProvider(ctx context.Context, reg user.ProviderRegistration) (identity.Session, error) {
	if err := validateAccount(reg.FirstName, reg.LastName, reg.Email, reg.Password); err != nil {
		return identity.Session{}, err
	}

	p, err := s.creds.CreateProvider(ctx, reg)
	if err != nil {
		return identity.Session{}, err
	}
	tok, err := s.tokens.Issue(p.ID, user.KindProvider)
	if err != nil {
		return identity.Session{}, fmt.Errorf("failed to issue token, %w", err)
	}
	return identity.Session{User: p.Summary(), Token: tok}, nil
}

// Login - вход пользователя. Неизвестная почта и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, login user.Login) (identity.Session, error) {
	if login.Email == "" || login.Password == "" || login.UserType == "" {
		return identity.Session{}, apperr.Validation("Please provide email, password, and user type")
	}
	kind, ok := user.ParseKind(login.UserType)
	if !ok {
		return identity.Session{}, apperr.Validation("Invalid user type")
	}

	cred, ok, err := s.creds.FindByEmail(ctx, kind, login.Email)
	if err != nil {
		return identity.Session{}, err
	}
	if !ok {
		// выравниваю время ответа с проверкой существующего пароля
		hasher.CompareDummy(login.Password)
		return identity.Session{}, apperr.ErrInvalidCredentials
	}
	if !s.creds.VerifySecret(cred, login.Password) {
		return identity.Session{}, apperr.ErrInvalidCredentials
	}

	u, ok, err := s.creds.FindByID(ctx, kind, cred.ID)
	if err != nil {
		return identity.Session{}, err
	}
	if !ok {
		// пользователь удален между проверкой пароля и загрузкой профиля
		return identity.Session{}, apperr.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(cred.ID, kind)
	if err != nil {
		return identity.Session{}, fmt.Errorf("failed to issue token, %w", err)
	}
	return identity.Session{User: publicSummary(u), Token: tok}, nil
}

// publicSummary - представление пользователя без клинических данных.
func publicSummary(u user.Authenticatable) any {
	switch v := u.(type) {
	case *user.Patient:
		return v.Summary()
	case *user.Provider:
		return v.Summary()
	}
	id, _ := u.Identity()
	return struct {
		ID string `json:"id"`
	}{ID: id}
}

func validateAccount(firstName, lastName, email, password string) error {
	if !checker.CheckName(firstName) {
		return apperr.Validation("Please provide first name")
	}
	if !checker.CheckName(lastName) {
		return apperr.Validation("Please provide last name")
	}
	if !checker.CheckEmail(email) {
		return apperr.Validation("Please provide a valid email")
	}
	if !checker.CheckPassword(password) {
		return apperr.Validation("Password must be between %d and %d characters", checker.MinPasswordLength, checker.MaxPasswordLength)
	}
	return nil
}
