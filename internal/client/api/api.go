// api - клиент REST API сервера HealthPulse.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"healthpulse/internal/client/logger"
	"healthpulse/internal/repositories/user"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Пути API сервера.
const (
	registerPatientPattern  = "/api/auth/register/patient"
	registerProviderPattern = "/api/auth/register/provider"
	loginPattern            = "/api/auth/login"
	mePattern               = "/api/auth/me"
	healthPattern           = "/api/health"
	patientsPattern         = "/api/patients"
	providersPattern        = "/api/providers"
)

// Error - неуспешный ответ сервера.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server responded with status %d: %s", e.Status, e.Message)
}

// envelope - конверт ответа сервера.
type envelope[T any] struct {
	Success bool            `json:"success"`
	User    json.RawMessage `json:"user"`
	Token   string          `json:"token"`
	Count   int             `json:"count"`
	Data    T               `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Session - пользователь и токен, полученные при регистрации или входе.
type Session struct {
	User  json.RawMessage
	Token string
}

// Client - клиент API. Токен последнего входа подставляется во все запросы.
type Client struct {
	rest *resty.Client

	mu    sync.RWMutex
	token string
}

// NewClient - создает клиента для сервера с указанным адресом, например http://localhost:5000.
func NewClient(baseURL string) *Client {
	c := &Client{rest: resty.New().SetBaseURL(baseURL)}
	c.rest.OnBeforeRequest(c.authMiddleware)
	return c
}

// authMiddleware - устанавливает токен в заголовок запроса, если он известен.
func (c *Client) authMiddleware(_ *resty.Client, req *resty.Request) error {
	if tok := c.Token(); tok != "" {
		req.SetAuthToken(tok)
	}
	return nil
}

// SetToken - устанавливает токен, например сохраненный после предыдущего входа.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token - текущий токен.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do - выполняет запрос и разбирает конверт ответа.
func do[T any](ctx context.Context, c *Client, method, path string, body any) (envelope[T], error) {
	var ok, fail envelope[T]
	req := c.rest.R().
		SetContext(ctx).
		SetResult(&ok).
		SetError(&fail)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logger.ClientLog.Error("request to server failed", zap.String("path", path), zap.String("error", err.Error()))
		return envelope[T]{}, fmt.Errorf("request %s %s failed, %w", method, path, err)
	}
	if resp.IsError() {
		msg := fail.Message
		if msg == "" {
			msg = fail.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		logger.ClientLog.Debug("server rejected request", zap.String("path", path), zap.Int("status", resp.StatusCode()), zap.String("message", msg))
		return envelope[T]{}, &Error{Status: resp.StatusCode(), Message: msg}
	}
	return ok, nil
}

func (c *Client) session(ctx context.Context, path string, body any) (Session, error) {
	env, err := do[json.RawMessage](ctx, c, http.MethodPost, path, body)
	if err != nil {
		return Session{}, err
	}
	c.SetToken(env.Token)
	return Session{User: env.User, Token: env.Token}, nil
}

// Health - проверка доступности сервера.
func (c *Client) Health(ctx context.Context) (string, error) {
	env, err := do[json.RawMessage](ctx, c, http.MethodGet, healthPattern, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// RegisterPatient - регистрирует пациента и запоминает выданный токен.
func (c *Client) RegisterPatient(ctx context.Context, reg user.PatientRegistration) (Session, error) {
	return c.session(ctx, registerPatientPattern, reg)
}

// RegisterProvider - регистрирует специалиста и запоминает выданный токен.
func (c *Client) RegisterProvider(ctx context.Context, reg user.ProviderRegistration) (Session, error) {
	return c.session(ctx, registerProviderPattern, reg)
}

// Login - вход пользователя. Токен запоминается для последующих запросов.
func (c *Client) Login(ctx context.Context, login user.Login) (Session, error) {
	return c.session(ctx, loginPattern, login)
}

// Me - текущий пользователь в исходном JSON представлении. Поле userType определяет его вид.
func (c *Client) Me(ctx context.Context) (json.RawMessage, error) {
	env, err := do[json.RawMessage](ctx, c, http.MethodGet, mePattern, nil)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

// ListPatients - список всех пациентов.
func (c *Client) ListPatients(ctx context.Context) ([]user.Patient, error) {
	env, err := do[[]user.Patient](ctx, c, http.MethodGet, patientsPattern, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetPatient - пациент по идентификатору.
func (c *Client) GetPatient(ctx context.Context, patientID string) (*user.Patient, error) {
	env, err := do[*user.Patient](ctx, c, http.MethodGet, patientsPattern+"/"+url.PathEscape(patientID), nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UpdatePatient - частичное обновление профиля пациента.
func (c *Client) UpdatePatient(ctx context.Context, patientID string, upd user.PatientUpdate) (*user.Patient, error) {
	env, err := do[*user.Patient](ctx, c, http.MethodPut, patientsPattern+"/"+url.PathEscape(patientID), upd)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UpdateVitals - обновление жизненных показателей пациента.
func (c *Client) UpdateVitals(ctx context.Context, patientID string, upd user.VitalsUpdate) (*user.Patient, error) {
	env, err := do[*user.Patient](ctx, c, http.MethodPut, patientsPattern+"/"+url.PathEscape(patientID)+"/vitals", upd)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// AddMedicalHistory - добавление записи в медицинскую историю пациента.
func (c *Client) AddMedicalHistory(ctx context.Context, patientID string, entry user.MedicalHistoryInput) (*user.Patient, error) {
	env, err := do[*user.Patient](ctx, c, http.MethodPost, patientsPattern+"/"+url.PathEscape(patientID)+"/medical-history", entry)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetProvider - профиль специалиста с контактами закрепленных пациентов.
func (c *Client) GetProvider(ctx context.Context, providerID string) (*user.ProviderProfile, error) {
	env, err := do[*user.ProviderProfile](ctx, c, http.MethodGet, providersPattern+"/"+url.PathEscape(providerID), nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UpdateProvider - обновление профессионального профиля специалиста.
func (c *Client) UpdateProvider(ctx context.Context, providerID string, upd user.ProviderUpdate) (*user.Provider, error) {
	env, err := do[*user.Provider](ctx, c, http.MethodPut, providersPattern+"/"+url.PathEscape(providerID)+"/profile", upd)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// AssignedPatients - пациенты, закрепленные за специалистом.
func (c *Client) AssignedPatients(ctx context.Context, providerID string) ([]user.Patient, error) {
	env, err := do[[]user.Patient](ctx, c, http.MethodGet, providersPattern+"/"+url.PathEscape(providerID)+"/patients", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// AssignPatient - закрепляет пациента за специалистом.
func (c *Client) AssignPatient(ctx context.Context, providerID, patientID string) (*user.Provider, error) {
	path := providersPattern + "/" + url.PathEscape(providerID) + "/patients/" + url.PathEscape(patientID)
	env, err := do[*user.Provider](ctx, c, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
