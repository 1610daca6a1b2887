package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/user"
	"github.com/kreastudio/finance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, jwt.Service) {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", "1h")

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService.JWTAuth()))

	r.Get("/shared", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Group(func(r chi.Router) {
		r.Use(RequireOwner)
		r.Get("/owner-only", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r, jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("u1", "someone@kreastudio.id", role)
	require.NoError(t, err)
	return token
}

func doRequest(r chi.Router, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	r, jwtService := newTestRouter(t)

	rec := doRequest(r, "/shared", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(r, "/shared", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(r, "/shared", accessToken(t, jwtService, user.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequiredRejectsForeignToken(t *testing.T) {
	r, _ := newTestRouter(t)

	other := jwt.NewJWTService("different-secret", "1h")
	rec := doRequest(r, "/shared", accessToken(t, other, user.RoleOwner))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsWrongTokenType(t *testing.T) {
	r, jwtService := newTestRouter(t)

	_, token, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"user_id": "u1",
		"type":    "refresh",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec := doRequest(r, "/shared", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireOwner(t *testing.T) {
	r, jwtService := newTestRouter(t)

	rec := doRequest(r, "/owner-only", accessToken(t, jwtService, user.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(r, "/owner-only", accessToken(t, jwtService, user.RoleOwner))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCookieTokenAccepted(t *testing.T) {
	r, jwtService := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/shared", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: accessToken(t, jwtService, user.RoleAdmin)})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
