// records - пакет, который реализует операции с клиническими записями пациентов и профилями специалистов.
package records

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthpulse/internal/common/apperr"
	"healthpulse/internal/common/identity/tools/checker"
	"healthpulse/internal/repositories/clinical"
	"healthpulse/internal/repositories/storage"
	"healthpulse/internal/repositories/user"
)

const (
	patientResource  = "patient"
	providerResource = "provider"
)

// Service - реализует интерфейсы clinical.PatientRecords и clinical.ProviderRecords.
type Service struct {
	stor storage.IStorage
	now  func() time.Time
}

// NewService - создает сервис клинических записей.
func NewService(stor storage.IStorage) *Service {
	return &Service{
		stor: stor,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

var (
	_ clinical.PatientRecords  = (*Service)(nil)
	_ clinical.ProviderRecords = (*Service)(nil)
)

// ListPatients - все пациенты.
func (s *Service) ListPatients(ctx context.Context) ([]user.Patient, error) {
	ps, err := s.stor.ListPatients(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if ps == nil {
		ps = []user.Patient{}
	}
	return ps, nil
}

// GetPatient - пациент по идентификатору.
func (s *Service) GetPatient(ctx context.Context, id string) (*user.Patient, error) {
	p, ok, err := s.stor.GetPatient(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound(patientResource)
	}
	return p, nil
}

// UpdatePatient - частичное обновление профиля пациента. Пустые значения полей игнорируются.
func (s *Service) UpdatePatient(ctx context.Context, id string, upd user.PatientUpdate) (*user.Patient, error) {
	if upd.Email != nil && *upd.Email != "" && !checker.CheckEmail(*upd.Email) {
		return nil, apperr.Validation("Please provide a valid email")
	}
	if upd.Gender != nil && *upd.Gender != "" && !upd.Gender.Valid() {
		return nil, apperr.Validation("Gender must be one of: male, female, other")
	}

	ok, err := s.stor.UpdatePatient(ctx, id, upd, s.now())
	if err != nil {
		if errors.Is(err, apperr.ErrDuplicateEmail) {
			return nil, apperr.DuplicateEmail(patientResource)
		}
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound(patientResource)
	}
	return s.GetPatient(ctx, id)
}

// UpdateVitals - объединяет переданные показатели с текущими. Запись в историю пульса добавляется,
// только если пульс передан.
func (s *Service) UpdateVitals(ctx context.Context, id string, upd user.VitalsUpdate) (*user.Patient, error) {
	if upd.HeartRate != nil && !checker.CheckHeartRate(*upd.HeartRate) {
		return nil, apperr.Validation("Heart rate must be between 0 and %d", checker.MaxHeartRate)
	}
	if upd.Temperature != nil && !checker.CheckTemperature(*upd.Temperature) {
		return nil, apperr.Validation("Temperature must be between 0 and %d", checker.MaxTemperature)
	}
	if upd.OxygenLevel != nil && !checker.CheckOxygenLevel(*upd.OxygenLevel) {
		return nil, apperr.Validation("Oxygen level must be between 0 and %d", checker.MaxOxygenLevel)
	}

	ok, err := s.stor.UpdateVitals(ctx, id, upd, s.now())
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound(patientResource)
	}
	return s.GetPatient(ctx, id)
}

// AddMedicalHistoryEntry - добавляет запись медицинской истории. Диагноз обязателен.
func (s *Service) AddMedicalHistoryEntry(ctx context.Context, id string, entry user.MedicalHistoryInput) (*user.Patient, error) {
	if strings.TrimSpace(entry.Condition) == "" {
		return nil, apperr.Validation("Please provide condition")
	}

	rec := user.MedicalRecord{
		Condition:     entry.Condition,
		DiagnosedDate: entry.DiagnosedDate.OrNil(),
		Notes:         entry.Notes,
		AddedAt:       s.now(),
	}
	ok, err := s.stor.AddMedicalRecord(ctx, id, rec)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound(patientResource)
	}
	return s.GetPatient(ctx, id)
}

// GetProvider - профиль специалиста с контактами закрепленных пациентов.
func (s *Service) GetProvider(ctx context.Context, id string) (*user.ProviderProfile, error) {
	p, err := s.provider(ctx, id)
	if err != nil {
		return nil, err
	}
	ps, err := s.stor.GetAssignedPatients(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return p.Profile(ps), nil
}

// provider - специалист по идентификатору.
func (s *Service) provider(ctx context.Context, id string) (*user.Provider, error) {
	p, ok, err := s.stor.GetProvider(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound(providerResource)
	}
	return p, nil
}

// UpdateProvider - частичное обновление профессионального профиля. Нулевой стаж - допустимое значение.
func (s *Service) UpdateProvider(ctx context.Context, id string, upd user.ProviderUpdate) (*user.Provider, error) {
	if upd.YearsOfExperience != nil && *upd.YearsOfExperience < 0 {
		return nil, apperr.Validation("Years of experience cannot be negative")
	}

	ok, err := s.stor.UpdateProvider(ctx, id, upd, s.now())
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.NotFound(providerResource)
	}
	return s.provider(ctx, id)
}

// GetAssignedPatients - полные записи пациентов, закрепленных за специалистом.
func (s *Service) GetAssignedPatients(ctx context.Context, id string) ([]user.Patient, error) {
	if _, err := s.provider(ctx, id); err != nil {
		return nil, err
	}
	ps, err := s.stor.GetAssignedPatients(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if ps == nil {
		ps = []user.Patient{}
	}
	return ps, nil
}

// AssignPatient - закрепляет пациента за специалистом. Повторное закрепление - ошибка apperr.ErrAlreadyAssigned.
func (s *Service) AssignPatient(ctx context.Context, providerID, patientID string) (*user.Provider, error) {
	if _, err := s.provider(ctx, providerID); err != nil {
		return nil, err
	}
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}

	ok, err := s.stor.AssignPatient(ctx, providerID, patientID, s.now())
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if !ok {
		return nil, apperr.ErrAlreadyAssigned
	}
	return s.provider(ctx, providerID)
}
