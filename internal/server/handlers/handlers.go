package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"healthpulse/internal/repositories/identity"
	"healthpulse/internal/repositories/user"
	"healthpulse/internal/server/connection/reply"
	"healthpulse/internal/server/identity/auth"
	"healthpulse/internal/server/logger"

	"go.uber.org/zap"
)

// decodeBody - разбирает JSON тело запроса. При ошибке записывает ответ 400 и возвращает false.
func decodeBody(res http.ResponseWriter, req *http.Request, v any) bool {
	defer req.Body.Close()
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		logger.ServerLog.Info("failed to parse request body", zap.String("address", req.URL.String()), zap.String("reason", err.Error()))
		reply.Fail(res, http.StatusBadRequest, reply.MsgInvalidBody)
		return false
	}
	return true
}

// Health - хэндлер проверки доступности сервера.
func Health(res http.ResponseWriter, req *http.Request, now func() time.Time) {
	reply.JSON(res, http.StatusOK, reply.Envelope{
		Success:   true,
		Message:   "HealthPulse API is running",
		Timestamp: now().UTC().Format(time.RFC3339Nano),
	})
}

func HealthHandler() http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Health(res, req, time.Now)
	}
	return fn
}

// NotFound - ответ для запроса к несуществующему маршруту.
func NotFound(res http.ResponseWriter, req *http.Request) {
	logger.ServerLog.Info("route not found", zap.String("address", req.URL.String()), zap.String("method", req.Method))
	reply.Fail(res, http.StatusNotFound, reply.MsgRouteNotFound)
}

// RegisterPatient - хэндлер для регистрации пациента. В ответе возвращается публичное представление пациента и токен.
func RegisterPatient(res http.ResponseWriter, req *http.Request, ident identity.Identifier, errs reply.Mapper) {
	var reg user.PatientRegistration
	if !decodeBody(res, req, &reg) {
		return
	}

	session, err := ident.RegisterPatient(req.Context(), reg)
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.JSON(res, http.StatusCreated, reply.Envelope{Success: true, User: session.User, Token: session.Token})
}

func RegisterPatientHandler(ident identity.Identifier, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		RegisterPatient(res, req, ident, errs)
	}
	return fn
}

// RegisterProvider - хэндлер для регистрации медицинского специалиста.
func RegisterProvider(res http.ResponseWriter, req *http.Request, ident identity.Identifier, errs reply.Mapper) {
	var reg user.ProviderRegistration
	if !decodeBody(res, req, &reg) {
		return
	}

	session, err := ident.RegisterProvider(req.Context(), reg)
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.JSON(res, http.StatusCreated, reply.Envelope{Success: true, User: session.User, Token: session.Token})
}

func RegisterProviderHandler(ident identity.Identifier, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		RegisterProvider(res, req, ident, errs)
	}
	return fn
}

// Login - хэндлер для входа пользователя любого вида.
func Login(res http.ResponseWriter, req *http.Request, ident identity.Identifier, errs reply.Mapper) {
	var login user.Login
	if !decodeBody(res, req, &login) {
		return
	}

	session, err := ident.Login(req.Context(), login)
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.JSON(res, http.StatusOK, reply.Envelope{Success: true, User: session.User, Token: session.Token})
}

func LoginHandler(ident identity.Identifier, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Login(res, req, ident, errs)
	}
	return fn
}

// Me - хэндлер для получения текущего пользователя вместе с его клиническими данными.
// Пользователь устанавливается в контекст middleware аутентификации.
func Me(res http.ResponseWriter, req *http.Request) {
	u, _, ok := auth.UserFromContext(req.Context())
	if !ok {
		logger.ServerLog.Error("user not found in context", zap.String("address", req.URL.String()))
		reply.Fail(res, http.StatusUnauthorized, reply.MsgUnauthorized)
		return
	}

	switch current := u.(type) {
	case *user.Patient:
		reply.JSON(res, http.StatusOK, reply.Envelope{Success: true, User: current.Current()})
	case *user.Provider:
		reply.JSON(res, http.StatusOK, reply.Envelope{Success: true, User: current.Current()})
	default:
		logger.ServerLog.Error("unexpected user type in context", zap.String("address", req.URL.String()))
		reply.Fail(res, http.StatusInternalServerError, reply.MsgServerError)
	}
}

func MeHandler() http.HandlerFunc {
	return Me
}
