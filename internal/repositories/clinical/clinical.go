package clinical

//go:generate mockgen -destination=../mocks/clinical.go -package=mocks healthpulse/internal/repositories/clinical PatientRecords,ProviderRecords

import (
	"context"

	"healthpulse/internal/repositories/user"
)

type (
	// PatientRecords - операции с записями пациентов, доступные хэндлерам.
	PatientRecords interface {
		ListPatients(ctx context.Context) ([]user.Patient, error)
		GetPatient(ctx context.Context, id string) (*user.Patient, error)
		UpdatePatient(ctx context.Context, id string, upd user.PatientUpdate) (*user.Patient, error)
		UpdateVitals(ctx context.Context, id string, upd user.VitalsUpdate) (*user.Patient, error)
		AddMedicalHistoryEntry(ctx context.Context, id string, entry user.MedicalHistoryInput) (*user.Patient, error)
	}

	// ProviderRecords - операции с записями специалистов, доступные хэндлерам.
	ProviderRecords interface {
		GetProvider(ctx context.Context, id string) (*user.ProviderProfile, error)
		UpdateProvider(ctx context.Context, id string, upd user.ProviderUpdate) (*user.Provider, error)
		GetAssignedPatients(ctx context.Context, id string) ([]user.Patient, error)
		AssignPatient(ctx context.Context, providerID, patientID string) (*user.Provider, error)
	}
)
