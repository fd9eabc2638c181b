// auth - пакет, который реализует middleware для аутентификации пользователя.
package auth

import (
	"context"
	"net/http"

	"healthpulse/internal/common/identity/tools/header"
	"healthpulse/internal/common/identity/tools/token"
	"healthpulse/internal/repositories/identity"
	"healthpulse/internal/repositories/user"
	"healthpulse/internal/server/connection/reply"
	"healthpulse/internal/server/logger"

	"go.uber.org/zap"
)

type contextKey string

const (
	// UserKey - ключ для установки пользователя в контекст.
	UserKey = contextKey("user")
	// UserKindKey - ключ для установки вида пользователя в контекст.
	UserKindKey = contextKey("userType")
)

// UserFromContext - возвращает пользователя, установленного middleware, и его вид.
func UserFromContext(ctx context.Context) (user.Authenticatable, user.Kind, bool) {
	u, ok := ctx.Value(UserKey).(user.Authenticatable)
	if !ok {
		return nil, "", false
	}
	kind, ok := ctx.Value(UserKindKey).(user.Kind)
	if !ok {
		return nil, "", false
	}
	return u, kind, true
}

// WithUser - устанавливает пользователя и его вид в контекст.
func WithUser(ctx context.Context, u user.Authenticatable, kind user.Kind) context.Context {
	ctx = context.WithValue(ctx, UserKey, u)
	return context.WithValue(ctx, UserKindKey, kind)
}

// Middleware - проверяет JWT входящих запросов к серверу.
// Позволит установить доступ к ресурсам только для аутентифицированных пользователей.
// Пользователь, найденный по данным токена, и его вид устанавливаются в контекст.
func Middleware(tokens *token.Service, resolver identity.Resolver, errs reply.Mapper) func(http.Handler) http.HandlerFunc {
	return func(h http.Handler) http.HandlerFunc {
		return func(res http.ResponseWriter, req *http.Request) {
			getToken, err := header.GetTokenFromHeader(req)
			// В случае ошибки получения токена возвращаю статус 401 - пользователь не аутентифицирован.
			if err != nil {
				logger.ServerLog.Info("failed to get token from request", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
				reply.Fail(res, http.StatusUnauthorized, reply.MsgUnauthorized)
				return
			}
			ident, err := tokens.Verify(getToken)
			if err != nil {
				logger.ServerLog.Info("failed to verify token", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
				reply.Fail(res, http.StatusUnauthorized, reply.MsgUnauthorized)
				return
			}

			u, ok, err := resolver.FindByID(req.Context(), ident.Kind, ident.UserID)
			if err != nil {
				// ошибка хранилища не является отказом в доступе
				errs.Error(res, req, err)
				return
			}
			if !ok {
				logger.ServerLog.Info("user from token not found", zap.String("address", req.URL.String()), zap.String("id", ident.UserID))
				reply.Fail(res, http.StatusUnauthorized, reply.MsgUnauthorized)
				return
			}

			// вызываю основной обработчик
			h.ServeHTTP(res, req.WithContext(WithUser(req.Context(), u, ident.Kind)))
		}
	}
}
