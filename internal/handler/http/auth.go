package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kreastudio/finance-backend-go/internal/domain/auth"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/response"
	"github.com/kreastudio/finance-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	loginResp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Token travels both in the body and as an http-only cookie.
	http.SetCookie(w, a.jwtService.AuthTokenCookie(loginResp.AccessToken, loginResp.ExpiresAt))

	slog.Info("User logged in", "email", loginResp.User.Email, "role", loginResp.User.Role)
	response.Success(w, loginResp)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, a.jwtService.ClearAuthTokenCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userResp, err := a.authService.CurrentUser(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, userResp)
}
