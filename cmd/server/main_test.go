package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthpulse/internal/client/api"
	"healthpulse/internal/repositories/user"
	"healthpulse/internal/server/config"
	"healthpulse/internal/server/storage/inmemory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, env string) *httptest.Server {
	t.Helper()
	cfg := config.Configs{
		SecretKey:   "test secret key",
		ExpireToken: 1,
		DatabaseDSN: config.MemoryDSN,
		Env:         env,
	}
	ts := httptest.NewServer(Router(cfg, inmemory.NewStorage(), prometheus.NewRegistry()))
	t.Cleanup(ts.Close)
	return ts
}

func TestPatientScenario(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ctx := context.Background()
	c := api.NewClient(ts.URL)

	msg, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "HealthPulse API is running", msg)

	// регистрация пациента
	reg, err := c.RegisterPatient(ctx, user.PatientRegistration{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Password:  "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)
	var registered user.PatientSummary
	require.NoError(t, json.Unmarshal(reg.User, &registered))
	assert.Equal(t, "a@b.com", registered.Email)
	assert.NotContains(t, string(reg.User), "password")

	// повторная регистрация с той же почтой в другом регистре
	_, err = c.RegisterPatient(ctx, user.PatientRegistration{FirstName: "A", LastName: "B", Email: "A@B.com", Password: "secret1"})
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Patient with this email already exists", apiErr.Message)

	// вход с почтой в другом регистре
	c.SetToken("")
	login, err := c.Login(ctx, user.Login{Email: "A@B.COM", Password: "secret1", UserType: "patient"})
	require.NoError(t, err)
	var loggedIn user.PatientSummary
	require.NoError(t, json.Unmarshal(login.User, &loggedIn))
	assert.Equal(t, registered.ID, loggedIn.ID)

	// неверный пароль и неизвестная почта неразличимы
	_, err = c.Login(ctx, user.Login{Email: "a@b.com", Password: "wrong password", UserType: "patient"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	wrongPassword := apiErr.Message
	_, err = c.Login(ctx, user.Login{Email: "nobody@b.com", Password: "secret1", UserType: "patient"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, wrongPassword, apiErr.Message)

	// пациент не может войти как специалист
	_, err = c.Login(ctx, user.Login{Email: "a@b.com", Password: "secret1", UserType: "provider"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	// текущий пользователь
	c.SetToken(login.Token)
	me, err := c.Me(ctx)
	require.NoError(t, err)
	var current user.CurrentPatient
	require.NoError(t, json.Unmarshal(me, &current))
	assert.Equal(t, user.KindPatient, current.UserType)
	assert.Equal(t, registered.ID, current.ID)
	assert.Len(t, current.MedicalHistory, 0)

	// медицинская история
	p, err := c.AddMedicalHistory(ctx, registered.ID, user.MedicalHistoryInput{Condition: "Asthma"})
	require.NoError(t, err)
	require.Len(t, p.MedicalHistory, 1)
	assert.Equal(t, "Asthma", p.MedicalHistory[0].Condition)

	// пульс попадает в историю, температура - нет
	hr := 72
	temp := 36.6
	_, err = c.UpdateVitals(ctx, registered.ID, user.VitalsUpdate{HeartRate: &hr})
	require.NoError(t, err)
	p, err = c.UpdateVitals(ctx, registered.ID, user.VitalsUpdate{Temperature: &temp})
	require.NoError(t, err)
	require.Len(t, p.VitalsHistory, 1)
	require.NotNil(t, p.Vitals.HeartRate)
	assert.Equal(t, 72, *p.Vitals.HeartRate)

	// закрепление за несуществующим специалистом
	_, err = c.AssignPatient(ctx, "00000000-0000-0000-0000-000000000000", registered.ID)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Provider not found", apiErr.Message)

	list, err := c.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestProviderScenario(t *testing.T) {
	ts := newTestServer(t, config.EnvDevelopment)
	ctx := context.Background()

	patients := api.NewClient(ts.URL)
	patient, err := patients.RegisterPatient(ctx, user.PatientRegistration{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	var patientSummary user.PatientSummary
	require.NoError(t, json.Unmarshal(patient.User, &patientSummary))

	c := api.NewClient(ts.URL)
	reg, err := c.RegisterProvider(ctx, user.ProviderRegistration{FirstName: "D", LastName: "C", Email: "doc@b.com", Password: "secret1"})
	require.NoError(t, err)
	var provider user.ProviderSummary
	require.NoError(t, json.Unmarshal(reg.User, &provider))

	// почта специалиста не конфликтует с почтой пациента
	_, err = api.NewClient(ts.URL).RegisterProvider(ctx, user.ProviderRegistration{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	zero := 0
	updated, err := c.UpdateProvider(ctx, provider.ID, user.ProviderUpdate{YearsOfExperience: &zero})
	require.NoError(t, err)
	require.NotNil(t, updated.YearsOfExperience)
	assert.Equal(t, 0, *updated.YearsOfExperience)

	assigned, err := c.AssignPatient(ctx, provider.ID, patientSummary.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{patientSummary.ID}, assigned.AssignedPatients)

	_, err = c.AssignPatient(ctx, provider.ID, patientSummary.ID)
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Patient already assigned to this provider", apiErr.Message)

	list, err := c.AssignedPatients(ctx, provider.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, patientSummary.ID, list[0].ID)

	profile, err := c.GetProvider(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, "doc@b.com", profile.Email)
	assert.Equal(t, []user.PatientContact{{ID: patientSummary.ID, FirstName: "A", LastName: "B", Email: "a@b.com"}}, profile.AssignedPatients)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	var current user.CurrentProvider
	require.NoError(t, json.Unmarshal(me, &current))
	assert.Equal(t, user.KindProvider, current.UserType)
	assert.Equal(t, []string{patientSummary.ID}, current.AssignedPatients)
}

func TestRouterEdges(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)

	tests := []struct {
		name    string
		method  string
		path    string
		header  string
		status  int
		message string
	}{
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", status: 404, message: "Route not found"},
		{name: "wrong method", method: http.MethodDelete, path: "/api/health", status: 404, message: "Route not found"},
		{name: "protected route without token", method: http.MethodGet, path: "/api/patients", status: 401, message: "Not authorized to access this route"},
		{name: "protected route with garbage token", method: http.MethodGet, path: "/api/auth/me", header: "Bearer garbage", status: 401, message: "Not authorized to access this route"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			res, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.status, res.StatusCode)
			var env map[string]any
			require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
			assert.Equal(t, false, env["success"])
			assert.Equal(t, tt.message, env["message"])
		})
	}

	res, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "healthpulse_http_requests_total"))
}

// sendJSON - запрос с телом и токеном в обход клиента API, чтобы проверить ответ сервера как есть.
func sendJSON(t *testing.T, method, url, token, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func TestPatientRecordJSON(t *testing.T) {
	ts := newTestServer(t, config.EnvProduction)
	ctx := context.Background()
	c := api.NewClient(ts.URL)

	reg, err := c.RegisterPatient(ctx, user.PatientRegistration{
		FirstName:   "A",
		LastName:    "B",
		Email:       "a@b.com",
		Password:    "secret1",
		DateOfBirth: &user.Date{},
	})
	require.NoError(t, err)
	var registered user.PatientSummary
	require.NoError(t, json.Unmarshal(reg.User, &registered))
	assert.Nil(t, registered.DateOfBirth)
	patientURL := ts.URL + "/api/patients/" + registered.ID

	// пустые истории нового пациента - массивы во всех ответах
	status, body := sendJSON(t, http.MethodGet, patientURL, reg.Token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"vitalsHistory":[]`)
	assert.Contains(t, body, `"medicalHistory":[]`)

	status, body = sendJSON(t, http.MethodGet, ts.URL+"/api/patients", reg.Token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"vitalsHistory":[]`)

	status, body = sendJSON(t, http.MethodPut, patientURL+"/vitals", reg.Token, `{"temperature":36.6}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"vitalsHistory":[]`)
	assert.Contains(t, body, `"medicalHistory":[]`)

	// пустая дата рождения не мешает обновить остальные поля
	status, body = sendJSON(t, http.MethodPut, patientURL, reg.Token, `{"dateOfBirth":"","phone":"123"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, `"phone":"123"`)
	assert.NotContains(t, body, "dateOfBirth")

	status, body = sendJSON(t, http.MethodPut, patientURL, reg.Token, `{"dateOfBirth":"1990-05-17"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, `"dateOfBirth":"1990-05-17"`)

	// пустая строка не стирает сохраненную дату
	status, body = sendJSON(t, http.MethodPut, patientURL, reg.Token, `{"dateOfBirth":""}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, `"dateOfBirth":"1990-05-17"`)

	// запись истории с пустой датой диагноза принимается без даты
	status, body = sendJSON(t, http.MethodPost, patientURL+"/medical-history", reg.Token, `{"condition":"Asthma","diagnosedDate":""}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, `"condition":"Asthma"`)
	assert.NotContains(t, body, "diagnosedDate")
}
