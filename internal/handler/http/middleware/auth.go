package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/auth"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose context carries no valid access token.
// Refresh or otherwise mistyped tokens are rejected the same as missing ones.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if errors.Is(err, jwtauth.ErrExpired) {
				response.Unauthorized(w, "token expired")
				return
			}
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
