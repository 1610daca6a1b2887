package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	CurrentUser(ctx context.Context) (UserResponse, error)
}
