package middleware

import (
	"net/http"

	"filmestop/internal/apierr"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns panics into the standard 500 envelope so clients never see
// a different response shape.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					e := apierr.New(apierr.InternalServerError)
					utils.ResponseJSON(w, e.Status, string(e.Code), e.Message, e.Data)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
