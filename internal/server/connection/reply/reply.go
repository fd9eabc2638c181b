// reply - пакет с единым форматом JSON ответов сервера.
package reply

import (
	"encoding/json"
	"errors"
	"net/http"

	"healthpulse/internal/common/apperr"
	"healthpulse/internal/server/logger"

	"go.uber.org/zap"
)

// Envelope - конверт любого ответа сервера.
type Envelope struct {
	Success   bool   `json:"success"`
	User      any    `json:"user,omitempty"`
	Token     string `json:"token,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Сообщения, которые отдаются клиенту без изменений.
const (
	MsgUnauthorized       = "Not authorized to access this route"
	MsgInvalidCredentials = "Invalid credentials"
	MsgRouteNotFound      = "Route not found"
	MsgServerError        = "Server error"
	MsgInvalidBody        = "Invalid request body"
)

// JSON - записывает конверт с указанным статусом.
func JSON(res http.ResponseWriter, status int, env Envelope) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(env); err != nil {
		logger.ServerLog.Error("failed to encode response", zap.Error(err))
	}
}

// Data - успешный ответ с данными.
func Data(res http.ResponseWriter, status int, data any) {
	JSON(res, status, Envelope{Success: true, Data: data})
}

// List - успешный ответ со списком и количеством элементов.
func List[T any](res http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	JSON(res, http.StatusOK, Envelope{Success: true, Count: &count, Data: items})
}

// Fail - неуспешный ответ с сообщением.
func Fail(res http.ResponseWriter, status int, message string) {
	JSON(res, status, Envelope{Success: false, Message: message})
}

// Mapper - переводит ошибки предметной области в HTTP ответы.
// Подробности внутренних ошибок попадают в ответ только в режиме разработки.
type Mapper struct {
	Development bool
}

// Error - записывает ответ для ошибки и логирует ее.
func (m Mapper) Error(res http.ResponseWriter, req *http.Request, err error) {
	var (
		validation *apperr.ValidationError
		notFound   *apperr.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		Fail(res, http.StatusBadRequest, validation.Message)
	case errors.Is(err, apperr.ErrDuplicateEmail):
		JSON(res, http.StatusBadRequest, Envelope{Success: false, Error: duplicateMessage(err)})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		Fail(res, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, apperr.ErrUnauthorized):
		Fail(res, http.StatusUnauthorized, MsgUnauthorized)
	case errors.As(err, &notFound):
		Fail(res, http.StatusNotFound, notFound.Error())
	case errors.Is(err, apperr.ErrAlreadyAssigned):
		Fail(res, http.StatusBadRequest, "Patient already assigned to this provider")
	default:
		logger.ServerLog.Error("internal server error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
		env := Envelope{Success: false, Message: MsgServerError}
		if m.Development {
			env.Error = err.Error()
		}
		JSON(res, http.StatusInternalServerError, env)
		return
	}
	logger.ServerLog.Info("request rejected", zap.String("address", req.URL.String()), zap.String("reason", err.Error()))
}

func duplicateMessage(err error) string {
	var dup *apperr.DuplicateEmailError
	if errors.As(err, &dup) {
		return dup.Error()
	}
	return apperr.DuplicateEmail("").Error()
}
