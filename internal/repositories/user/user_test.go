package user

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("patient")
	assert.Equal(t, true, ok)
	assert.Equal(t, KindPatient, k)

	k, ok = ParseKind("provider")
	assert.Equal(t, true, ok)
	assert.Equal(t, KindProvider, k)

	_, ok = ParseKind("admin")
	assert.Equal(t, false, ok)
	_, ok = ParseKind("")
	assert.Equal(t, false, ok)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.com "))
}

func TestVitalsUpdateApply(t *testing.T) {
	now := time.Now()
	var v Vitals

	// передан только пульс - появляется запись истории
	hr := 80
	rec := VitalsUpdate{HeartRate: &hr}.Apply(&v, now)
	require.NotNil(t, rec)
	assert.Equal(t, 80, rec.HeartRate)
	assert.Equal(t, now, rec.Timestamp)

	// передана только температура - пульс сохраняется, записи истории нет
	temp := 37.0
	rec = VitalsUpdate{Temperature: &temp}.Apply(&v, now)
	assert.Nil(t, rec)
	require.NotNil(t, v.HeartRate)
	assert.Equal(t, 80, *v.HeartRate)
	require.NotNil(t, v.Temperature)
	assert.Equal(t, 37.0, *v.Temperature)

	// нулевой пульс - это значение, а не его отсутствие
	zero := 0
	rec = VitalsUpdate{HeartRate: &zero}.Apply(&v, now)
	require.NotNil(t, rec)
	assert.Equal(t, 0, *v.HeartRate)
}

func TestProviderUpdateApply(t *testing.T) {
	years := 5
	p := Provider{Specialization: "cardiology", YearsOfExperience: &years, Bio: "bio"}

	zero := 0
	empty := ""
	spec := "neurology"
	ProviderUpdate{YearsOfExperience: &zero, Bio: &empty, Specialization: &spec}.Apply(&p)

	require.NotNil(t, p.YearsOfExperience)
	assert.Equal(t, 0, *p.YearsOfExperience)
	assert.Equal(t, "bio", p.Bio)
	assert.Equal(t, "neurology", p.Specialization)
}

func TestPatientUpdateApply(t *testing.T) {
	p := Patient{Account: Account{FirstName: "A", Email: "a@b.com"}, Phone: "123"}

	email := " New@B.com"
	name := ""
	PatientUpdate{Email: &email, FirstName: &name}.Apply(&p)

	assert.Equal(t, "new@b.com", p.Email)
	assert.Equal(t, "A", p.FirstName)
	assert.Equal(t, "123", p.Phone)
}

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1990-05-17"`), &d))
	assert.Equal(t, 1990, d.Year())

	require.NoError(t, json.Unmarshal([]byte(`"1990-05-17T10:30:00Z"`), &d))
	assert.Equal(t, time.Month(5), d.Month())
	assert.Equal(t, 0, d.Hour())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-05-17"`, string(out))

	require.Error(t, json.Unmarshal([]byte(`"17.05.1990"`), &d))
	require.Error(t, json.Unmarshal([]byte(`12`), &d))
}

func TestEmptyDateIsAbsent(t *testing.T) {
	dob := NewDate(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC))
	p := Patient{DateOfBirth: &dob, Phone: "000"}

	var upd PatientUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"dateOfBirth":"","phone":"123"}`), &upd))
	require.NotNil(t, upd.DateOfBirth)
	assert.Nil(t, upd.DateOfBirth.OrNil())
	assert.Nil(t, upd.DateOfBirth.TimePtr())

	upd.Apply(&p)
	assert.Equal(t, "123", p.Phone)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, 1990, p.DateOfBirth.Year())

	var entry MedicalHistoryInput
	require.NoError(t, json.Unmarshal([]byte(`{"condition":"Asthma","diagnosedDate":""}`), &entry))
	assert.Nil(t, entry.DiagnosedDate.OrNil())

	out, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))

	var none *Date
	assert.Nil(t, none.OrNil())
	assert.Nil(t, none.TimePtr())
	assert.Equal(t, &dob, (&dob).OrNil())
}

func TestPasswordHashNotSerialized(t *testing.T) {
	p := Patient{Account: Account{ID: "id", PasswordHash: "secret hash"}}
	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret hash")

	// пустые истории в представлении текущего пользователя сериализуются как массивы
	cur, err := json.Marshal(p.Current())
	require.NoError(t, err)
	assert.Contains(t, string(cur), `"vitalsHistory":[]`)
	assert.Contains(t, string(cur), `"medicalHistory":[]`)
	assert.Contains(t, string(cur), `"userType":"patient"`)

	// и в полной записи пациента, в том числе внутри списка
	assert.Contains(t, string(out), `"vitalsHistory":[]`)
	assert.Contains(t, string(out), `"medicalHistory":[]`)
	list, err := json.Marshal([]Patient{p})
	require.NoError(t, err)
	assert.Contains(t, string(list), `"vitalsHistory":[]`)
	assert.Contains(t, string(list), `"id":"id"`)

	// разбор записи не зависит от способа сериализации
	var back Patient
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, "id", back.ID)
}
