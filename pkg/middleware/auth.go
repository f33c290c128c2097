package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"filmestop/internal/apierr"
	"filmestop/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth validates the bearer JWT and injects the verified user id into the
// request context.
func Auth(config utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	secret := []byte(config.Secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondUnauthorized(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondUnauthorized(w)
				return
			}

			userID, err := parseTokenSubject(parts[1], secret)
			if err != nil {
				logger.Warn("Rejected access token", zap.Error(err))
				respondUnauthorized(w)
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseTokenSubject(tokenString string, secret []byte) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("token subject: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token subject %q is not a user id: %w", subject, err)
	}

	return userID, nil
}

func respondUnauthorized(w http.ResponseWriter) {
	e := apierr.New(apierr.Unauthorized)
	utils.ResponseJSON(w, e.Status, string(e.Code), e.Message, e.Data)
}
