package storage

//go:generate mockgen -destination=../mocks/storage.go -package=mocks healthpulse/internal/repositories/storage IStorage

import (
	"context"
	"time"

	"healthpulse/internal/repositories/user"
)

type (
	// CredentialKeeper - интерфейс для создания пользователей и получения их авторизационных данных.
	CredentialKeeper interface {
		// CreatePatient и CreateProvider возвращают apperr.ErrDuplicateEmail, если почта уже занята.
		CreatePatient(ctx context.Context, p *user.Patient) error
		CreateProvider(ctx context.Context, p *user.Provider) error
		EmailExists(ctx context.Context, kind user.Kind, email string) (bool, error)
		// GetCredentials - авторизационные данные, включая хэш пароля. Используется только при входе.
		GetCredentials(ctx context.Context, kind user.Kind, email string) (user.Credentials, bool, error)
	}

	// PatientKeeper - интерфейс для чтения и изменения записей пациентов.
	// Возвращаемое значение ok == false означает, что пациент не найден.
	PatientKeeper interface {
		GetPatient(ctx context.Context, id string) (p *user.Patient, ok bool, err error)
		ListPatients(ctx context.Context) ([]user.Patient, error)
		UpdatePatient(ctx context.Context, id string, upd user.PatientUpdate, now time.Time) (bool, error)
		// UpdateVitals - обновление показателей атомарно с добавлением записи истории пульса.
		UpdateVitals(ctx context.Context, id string, upd user.VitalsUpdate, now time.Time) (bool, error)
		AddMedicalRecord(ctx context.Context, id string, rec user.MedicalRecord) (bool, error)
	}

	// ProviderKeeper - интерфейс для чтения и изменения записей специалистов.
	ProviderKeeper interface {
		GetProvider(ctx context.Context, id string) (p *user.Provider, ok bool, err error)
		UpdateProvider(ctx context.Context, id string, upd user.ProviderUpdate, now time.Time) (bool, error)
		// AssignPatient - возвращает false, если пациент уже закреплен за специалистом.
		AssignPatient(ctx context.Context, providerID, patientID string, now time.Time) (bool, error)
		GetAssignedPatients(ctx context.Context, providerID string) ([]user.Patient, error)
	}

	// IStorage - интерфейс хранилища записей пользователей.
	IStorage interface {
		CredentialKeeper
		PatientKeeper
		ProviderKeeper
	}
)
