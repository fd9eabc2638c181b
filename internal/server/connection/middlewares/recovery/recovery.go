// recovery - middleware, которая переводит панику обработчика в ответ 500.
package recovery

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"healthpulse/internal/server/connection/reply"
	"healthpulse/internal/server/logger"

	"go.uber.org/zap"
)

// Middleware - перехватывает панику, логирует стек и возвращает конверт с ошибкой сервера.
func Middleware(errs reply.Mapper) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.ServerLog.Error("panic recovered",
						zap.String("address", req.URL.String()),
						zap.String("method", req.Method),
						zap.Any("panic", rec),
						zap.String("stack", string(debug.Stack())),
					)
					errs.Error(res, req, fmt.Errorf("panic: %v", rec))
				}
			}()
			h.ServeHTTP(res, req)
		})
	}
}
