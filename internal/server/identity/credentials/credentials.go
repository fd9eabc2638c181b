// credentials - пакет, который отвечает за учетные данные пользователей: создание записей с хэшированием пароля,
// проверку пароля и поиск пользователей по почте и идентификатору.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthpulse/internal/common/apperr"
	"healthpulse/internal/common/identity/tools/hasher"
	"healthpulse/internal/common/identity/tools/id"
	"healthpulse/internal/repositories/storage"
	"healthpulse/internal/repositories/user"
)

// Store - хранилище учетных данных поверх хранилища пользователей.
type Store struct {
	stor storage.IStorage
	now  func() time.Time
}

// NewStore - создает хранилище учетных данных.
func NewStore(stor storage.IStorage) *Store {
	return &Store{
		stor: stor,
		now:  time.Now,
	}
}

// CreatePatient - создает пациента. Пароль хэшируется, почта приводится к нижнему регистру.
func (s *Store) CreatePatient(ctx context.Context, reg user.PatientRegistration) (*user.Patient, error) {
	email := user.NormalizeEmail(reg.Email)
	acc, err := s.newAccount(ctx, user.KindPatient, reg.FirstName, reg.LastName, email, reg.Password)
	if err != nil {
		return nil, err
	}

	p := &user.Patient{
		Account:     acc,
		DateOfBirth: reg.DateOfBirth.OrNil(),
		Gender:      reg.Gender,
		Phone:       reg.Phone,
		Address:     reg.Address,
	}
	if err := s.stor.CreatePatient(ctx, p); err != nil {
		return nil, createError(user.KindPatient, err)
	}
	return p, nil
}

// CreateProvider - создает специалиста с пустым профессиональным профилем.
func (s *Store) CreateProvider(ctx context.Context, reg user.ProviderRegistration) (*user.Provider, error) {
	email := user.NormalizeEmail(reg.Email)
	acc, err := s.newAccount(ctx, user.KindProvider, reg.FirstName, reg.LastName, email, reg.Password)
	if err != nil {
		return nil, err
	}

	p := &user.Provider{Account: acc}
	if err := s.stor.CreateProvider(ctx, p); err != nil {
		return nil, createError(user.KindProvider, err)
	}
	return p, nil
}

// newAccount - проверяет уникальность почты и подготавливает учетную запись с хэшем пароля.
func (s *Store) newAccount(ctx context.Context, kind user.Kind, firstName, lastName, email, password string) (user.Account, error) {
	exists, err := s.stor.EmailExists(ctx, kind, email)
	if err != nil {
		return user.Account{}, apperr.Storage(err)
	}
	if exists {
		return user.Account{}, apperr.DuplicateEmail(string(kind))
	}

	hash, err := hasher.HashPassword(password)
	if err != nil {
		return user.Account{}, fmt.Errorf("failed to hash password, %w", err)
	}
	userID, err := id.GenerateID()
	if err != nil {
		return user.Account{}, fmt.Errorf("failed to generate id, %w", err)
	}

	now := s.now().UTC()
	return user.Account{
		ID:           userID,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// createError - уникальный индекс хранилища мог сработать при одновременной регистрации.
func createError(kind user.Kind, err error) error {
	if errors.Is(err, apperr.ErrDuplicateEmail) {
		return apperr.DuplicateEmail(string(kind))
	}
	return apperr.Storage(err)
}

// VerifySecret - сравнивает пароль с сохраненным хэшем. Несовпадение не является ошибкой.
func (s *Store) VerifySecret(u user.Authenticatable, plaintext string) bool {
	hash := u.SecretHash()
	if hash == "" {
		return false
	}
	return hasher.ComparePassword(hash, plaintext)
}

// FindByEmail - авторизационные данные пользователя, включая хэш пароля. Используется только при входе.
func (s *Store) FindByEmail(ctx context.Context, kind user.Kind, email string) (user.Credentials, bool, error) {
	cred, ok, err := s.stor.GetCredentials(ctx, kind, user.NormalizeEmail(email))
	if err != nil {
		return user.Credentials{}, false, apperr.Storage(err)
	}
	return cred, ok, nil
}

// FindByID - получение пользователя по данным из токена.
func (s *Store) FindByID(ctx context.Context, kind user.Kind, userID string) (user.Authenticatable, bool, error) {
	switch kind {
	case user.KindPatient:
		p, ok, err := s.stor.GetPatient(ctx, userID)
		if err != nil {
			return nil, false, apperr.Storage(err)
		}
		if !ok {
			return nil, false, nil
		}
		return p, true, nil
	case user.KindProvider:
		p, ok, err := s.stor.GetProvider(ctx, userID)
		if err != nil {
			return nil, false, apperr.Storage(err)
		}
		if !ok {
			return nil, false, nil
		}
		return p, true, nil
	}
	return nil, false, nil
}
