// inmemory - потокобезопасное хранилище пользователей в оперативной памяти.
// Используется для демонстрационного запуска сервера и в тестах.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"healthpulse/internal/common/apperr"
	"healthpulse/internal/repositories/storage"
	"healthpulse/internal/repositories/user"
)

// Storage - хранилище пациентов и специалистов в оперативной памяти.
type Storage struct {
	mu        sync.RWMutex
	patients  map[string]*user.Patient
	providers map[string]*user.Provider
}

var _ storage.IStorage = (*Storage)(nil)

// NewStorage - создает пустое хранилище.
func NewStorage() *Storage {
	return &Storage{
		patients:  make(map[string]*user.Patient),
		providers: make(map[string]*user.Provider),
	}
}

// CreatePatient - сохраняет нового пациента.
func (s *Storage) CreatePatient(_ context.Context, p *user.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.patientByEmail(p.Email) != nil {
		return apperr.ErrDuplicateEmail
	}
	s.patients[p.ID] = clonePatient(p)
	return nil
}

// CreateProvider - сохраняет нового специалиста.
func (s *Storage) CreateProvider(_ context.Context, p *user.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.providerByEmail(p.Email) != nil {
		return apperr.ErrDuplicateEmail
	}
	s.providers[p.ID] = cloneProvider(p)
	return nil
}

// EmailExists - проверяет, занята ли почта пользователем указанного вида.
func (s *Storage) EmailExists(_ context.Context, kind user.Kind, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case user.KindPatient:
		return s.patientByEmail(email) != nil, nil
	case user.KindProvider:
		return s.providerByEmail(email) != nil, nil
	}
	return false, nil
}

// GetCredentials - авторизационные данные пользователя по почте.
func (s *Storage) GetCredentials(_ context.Context, kind user.Kind, email string) (user.Credentials, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var acc *user.Account
	switch kind {
	case user.KindPatient:
		if p := s.patientByEmail(email); p != nil {
			acc = &p.Account
		}
	case user.KindProvider:
		if p := s.providerByEmail(email); p != nil {
			acc = &p.Account
		}
	}
	if acc == nil {
		return user.Credentials{}, false, nil
	}
	return user.Credentials{ID: acc.ID, Kind: kind, PasswordHash: acc.PasswordHash}, true, nil
}

// GetPatient - получение пациента по идентификатору.
func (s *Storage) GetPatient(_ context.Context, id string) (*user.Patient, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok {
		return nil, false, nil
	}
	return clonePatient(p), true, nil
}

// ListPatients - все пациенты в порядке регистрации.
func (s *Storage) ListPatients(_ context.Context) ([]user.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]user.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		res = append(res, *clonePatient(p))
	}
	sortPatients(res)
	return res, nil
}

// UpdatePatient - частичное обновление профиля пациента.
func (s *Storage) UpdatePatient(_ context.Context, id string, upd user.PatientUpdate, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return false, nil
	}
	next := clonePatient(p)
	upd.Apply(next)
	if other := s.patientByEmail(next.Email); other != nil && other.ID != id {
		return false, apperr.ErrDuplicateEmail
	}
	next.UpdatedAt = now
	s.patients[id] = next
	return true, nil
}

// UpdateVitals - обновляет снимок показателей и добавляет запись истории пульса.
func (s *Storage) UpdateVitals(_ context.Context, id string, upd user.VitalsUpdate, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return false, nil
	}
	if rec := upd.Apply(&p.Vitals, now); rec != nil {
		p.VitalsHistory = append(p.VitalsHistory, *rec)
	}
	p.UpdatedAt = now
	return true, nil
}

// AddMedicalRecord - добавляет запись в медицинскую историю пациента.
func (s *Storage) AddMedicalRecord(_ context.Context, id string, rec user.MedicalRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return false, nil
	}
	p.MedicalHistory = append(p.MedicalHistory, rec)
	p.UpdatedAt = rec.AddedAt
	return true, nil
}

// GetProvider - получение специалиста по идентификатору.
func (s *Storage) GetProvider(_ context.Context, id string) (*user.Provider, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.providers[id]
	if !ok {
		return nil, false, nil
	}
	return cloneProvider(p), true, nil
}

// UpdateProvider - частичное обновление профессионального профиля.
func (s *Storage) UpdateProvider(_ context.Context, id string, upd user.ProviderUpdate, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.providers[id]
	if !ok {
		return false, nil
	}
	upd.Apply(p)
	p.UpdatedAt = now
	return true, nil
}

// AssignPatient - закрепляет пациента за специалистом. Возвращает false, если пациент уже закреплен.
// Существование обоих пользователей проверяется вызывающей стороной.
func (s *Storage) AssignPatient(_ context.Context, providerID, patientID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.providers[providerID]
	if !ok || p.HasPatient(patientID) {
		return false, nil
	}
	p.AssignedPatients = append(p.AssignedPatients, patientID)
	p.UpdatedAt = now
	return true, nil
}

// GetAssignedPatients - записи пациентов, закрепленных за специалистом.
func (s *Storage) GetAssignedPatients(_ context.Context, providerID string) ([]user.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.providers[providerID]
	if !ok {
		return []user.Patient{}, nil
	}
	res := make([]user.Patient, 0, len(p.AssignedPatients))
	for _, id := range p.AssignedPatients {
		if patient, ok := s.patients[id]; ok {
			res = append(res, *clonePatient(patient))
		}
	}
	return res, nil
}

func (s *Storage) patientByEmail(email string) *user.Patient {
	for _, p := range s.patients {
		if p.Email == email {
			return p
		}
	}
	return nil
}

func (s *Storage) providerByEmail(email string) *user.Provider {
	for _, p := range s.providers {
		if p.Email == email {
			return p
		}
	}
	return nil
}

func sortPatients(ps []user.Patient) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].ID < ps[j].ID
		}
		return ps[i].CreatedAt.Before(ps[j].CreatedAt)
	})
}

// clonePatient - копия записи, чтобы вызывающая сторона не могла изменить хранилище в обход мьютекса.
func clonePatient(p *user.Patient) *user.Patient {
	c := *p
	c.DateOfBirth = clonePtr(p.DateOfBirth)
	c.Vitals = user.Vitals{
		HeartRate:     clonePtr(p.Vitals.HeartRate),
		BloodPressure: clonePtr(p.Vitals.BloodPressure),
		Temperature:   clonePtr(p.Vitals.Temperature),
		OxygenLevel:   clonePtr(p.Vitals.OxygenLevel),
	}
	c.VitalsHistory = append([]user.VitalsRecord{}, p.VitalsHistory...)
	c.MedicalHistory = make([]user.MedicalRecord, len(p.MedicalHistory))
	for i, rec := range p.MedicalHistory {
		rec.DiagnosedDate = clonePtr(rec.DiagnosedDate)
		c.MedicalHistory[i] = rec
	}
	return &c
}

func cloneProvider(p *user.Provider) *user.Provider {
	c := *p
	c.YearsOfExperience = clonePtr(p.YearsOfExperience)
	c.AssignedPatients = append([]string{}, p.AssignedPatients...)
	return &c
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
