package user

// Provider - медицинский специалист.
type Provider struct {
	Account
	Specialization      string   `json:"specialization,omitempty"`
	LicenseNumber       string   `json:"licenseNumber,omitempty"`
	YearsOfExperience   *int     `json:"yearsOfExperience,omitempty"`
	HospitalAffiliation string   `json:"hospitalAffiliation,omitempty"`
	Bio                 string   `json:"bio,omitempty"`
	AssignedPatients    []string `json:"assignedPatients"` // идентификаторы закрепленных пациентов, без повторов
}

// Identity - реализует интерфейс Authenticatable.
func (p *Provider) Identity() (string, Kind) { return p.ID, KindProvider }

// SecretHash - реализует интерфейс Authenticatable.
func (p *Provider) SecretHash() string { return p.PasswordHash }

// HasPatient - проверяет, закреплен ли пациент за специалистом.
func (p *Provider) HasPatient(patientID string) bool {
	for _, id := range p.AssignedPatients {
		if id == patientID {
			return true
		}
	}
	return false
}

// PatientContact - краткие сведения о закрепленном пациенте в профиле специалиста.
type PatientContact struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ProviderProfile - специалист, у которого вместо идентификаторов закрепленных пациентов их контакты.
type ProviderProfile struct {
	Provider
	AssignedPatients []PatientContact `json:"assignedPatients"`
}

// Profile - профиль специалиста с контактами переданных пациентов в их порядке.
func (p *Provider) Profile(patients []Patient) *ProviderProfile {
	contacts := make([]PatientContact, 0, len(patients))
	for _, pt := range patients {
		contacts = append(contacts, PatientContact{
			ID:        pt.ID,
			FirstName: pt.FirstName,
			LastName:  pt.LastName,
			Email:     pt.Email,
		})
	}
	return &ProviderProfile{Provider: *p, AssignedPatients: contacts}
}

// ProviderRegistration - данные для регистрации специалиста. Профессиональные поля заполняются позже.
type ProviderRegistration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ProviderUpdate - частичное обновление профессионального профиля.
type ProviderUpdate struct {
	Specialization      *string `json:"specialization"`
	LicenseNumber       *string `json:"licenseNumber"`
	YearsOfExperience   *int    `json:"yearsOfExperience"` // ноль - допустимое значение
	HospitalAffiliation *string `json:"hospitalAffiliation"`
	Bio                 *string `json:"bio"`
}

// Apply - переносит в профиль все переданные поля.
func (u ProviderUpdate) Apply(p *Provider) {
	setString(&p.Specialization, u.Specialization)
	setString(&p.LicenseNumber, u.LicenseNumber)
	if u.YearsOfExperience != nil {
		y := *u.YearsOfExperience
		p.YearsOfExperience = &y
	}
	setString(&p.HospitalAffiliation, u.HospitalAffiliation)
	setString(&p.Bio, u.Bio)
}
