package user

import (
	"encoding/json"
	"time"
)

// Vitals - последний снимок жизненных показателей пациента.
// Отсутствующее значение показателя хранится как nil.
type Vitals struct {
	HeartRate     *int     `json:"heartRate,omitempty"`     // пульс, [0, 300]
	BloodPressure *string  `json:"bloodPressure,omitempty"` // давление в произвольной записи
	Temperature   *float64 `json:"temperature,omitempty"`   // температура, [0, 150]
	OxygenLevel   *float64 `json:"oxygenLevel,omitempty"`   // сатурация, [0, 100]
}

// VitalsRecord - запись истории пульса.
type VitalsRecord struct {
	HeartRate int       `json:"heartRate"`
	Timestamp time.Time `json:"timestamp"`
}

// MedicalRecord - запись медицинской истории пациента.
type MedicalRecord struct {
	Condition     string    `json:"condition"`
	DiagnosedDate *Date     `json:"diagnosedDate,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	AddedAt       time.Time `json:"addedAt"`
}

// Patient - пациент.
type Patient struct {
	Account
	DateOfBirth    *Date           `json:"dateOfBirth,omitempty"`
	Gender         Gender          `json:"gender,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	Vitals         Vitals          `json:"vitals"`
	VitalsHistory  []VitalsRecord  `json:"vitalsHistory"`
	MedicalHistory []MedicalRecord `json:"medicalHistory"`
}

// Identity - реализует интерфейс Authenticatable.
func (p *Patient) Identity() (string, Kind) { return p.ID, KindPatient }

// SecretHash - реализует интерфейс Authenticatable.
func (p *Patient) SecretHash() string { return p.PasswordHash }

// MarshalJSON - пустые истории сериализуются как [], а не null.
func (p Patient) MarshalJSON() ([]byte, error) {
	type plain Patient
	c := plain(p)
	c.VitalsHistory = nonNil(c.VitalsHistory)
	c.MedicalHistory = nonNil(c.MedicalHistory)
	return json.Marshal(c)
}

// PatientRegistration - данные для регистрации пациента.
type PatientRegistration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth *Date  `json:"dateOfBirth"`
	Gender      Gender `json:"gender"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// PatientUpdate - частичное обновление профиля пациента. nil означает, что поле не передано.
type PatientUpdate struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *Date   `json:"dateOfBirth"`
	Gender      *Gender `json:"gender"`
}

// Apply - переносит в профиль все переданные непустые поля.
func (u PatientUpdate) Apply(p *Patient) {
	setString(&p.FirstName, u.FirstName)
	setString(&p.LastName, u.LastName)
	if u.Email != nil && *u.Email != "" {
		p.Email = NormalizeEmail(*u.Email)
	}
	setString(&p.Phone, u.Phone)
	setString(&p.Address, u.Address)
	if u.DateOfBirth.OrNil() != nil {
		d := *u.DateOfBirth
		p.DateOfBirth = &d
	}
	if u.Gender != nil && *u.Gender != "" {
		p.Gender = *u.Gender
	}
}

// VitalsUpdate - частичное обновление жизненных показателей.
type VitalsUpdate struct {
	HeartRate     *int     `json:"heartRate"`
	BloodPressure *string  `json:"bloodPressure"`
	Temperature   *float64 `json:"temperature"`
	OxygenLevel   *float64 `json:"oxygenLevel"`
}

// Apply - объединяет переданные показатели с текущим снимком.
// Если передан пульс, возвращает новую запись для истории.
func (u VitalsUpdate) Apply(v *Vitals, now time.Time) *VitalsRecord {
	if u.BloodPressure != nil {
		bp := *u.BloodPressure
		v.BloodPressure = &bp
	}
	if u.Temperature != nil {
		t := *u.Temperature
		v.Temperature = &t
	}
	if u.OxygenLevel != nil {
		o := *u.OxygenLevel
		v.OxygenLevel = &o
	}
	if u.HeartRate == nil {
		return nil
	}
	hr := *u.HeartRate
	v.HeartRate = &hr
	return &VitalsRecord{HeartRate: hr, Timestamp: now}
}

// MedicalHistoryInput - новая запись медицинской истории.
type MedicalHistoryInput struct {
	Condition     string `json:"condition"`
	DiagnosedDate *Date  `json:"diagnosedDate"`
	Notes         string `json:"notes"`
}

func setString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}
