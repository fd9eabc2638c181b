package user

// PatientSummary - публичное представление пациента, которое возвращается при регистрации и входе.
type PatientSummary struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	DateOfBirth *Date  `json:"dateOfBirth,omitempty"`
	Gender      Gender `json:"gender,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// ProviderSummary - публичное представление специалиста.
type ProviderSummary struct {
	ID                  string `json:"id"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Specialization      string `json:"specialization,omitempty"`
	LicenseNumber       string `json:"licenseNumber,omitempty"`
	YearsOfExperience   *int   `json:"yearsOfExperience,omitempty"`
	HospitalAffiliation string `json:"hospitalAffiliation,omitempty"`
	Bio                 string `json:"bio,omitempty"`
}

// CurrentPatient - представление пациента для запроса текущего пользователя, вместе с клиническими данными.
type CurrentPatient struct {
	PatientSummary
	UserType       Kind            `json:"userType"`
	Vitals         Vitals          `json:"vitals"`
	VitalsHistory  []VitalsRecord  `json:"vitalsHistory"`
	MedicalHistory []MedicalRecord `json:"medicalHistory"`
}

// CurrentProvider - представление специалиста для запроса текущего пользователя.
type CurrentProvider struct {
	ProviderSummary
	UserType         Kind     `json:"userType"`
	AssignedPatients []string `json:"assignedPatients"`
}

// Summary - публичное представление пациента.
func (p *Patient) Summary() PatientSummary {
	return PatientSummary{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Phone:       p.Phone,
		Address:     p.Address,
	}
}

// Current - представление пациента для запроса текущего пользователя.
func (p *Patient) Current() CurrentPatient {
	return CurrentPatient{
		PatientSummary: p.Summary(),
		UserType:       KindPatient,
		Vitals:         p.Vitals,
		VitalsHistory:  nonNil(p.VitalsHistory),
		MedicalHistory: nonNil(p.MedicalHistory),
	}
}

// Summary - публичное представление специалиста.
func (p *Provider) Summary() ProviderSummary {
	return ProviderSummary{
		ID:                  p.ID,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		Email:               p.Email,
		Specialization:      p.Specialization,
		LicenseNumber:       p.LicenseNumber,
		YearsOfExperience:   p.YearsOfExperience,
		HospitalAffiliation: p.HospitalAffiliation,
		Bio:                 p.Bio,
	}
}

// Current - представление специалиста для запроса текущего пользователя.
func (p *Provider) Current() CurrentProvider {
	return CurrentProvider{
		ProviderSummary:  p.Summary(),
		UserType:         KindProvider,
		AssignedPatients: nonNil(p.AssignedPatients),
	}
}

// nonNil - пустые истории сериализуются как [], а не null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
