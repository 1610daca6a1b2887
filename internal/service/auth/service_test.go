package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/auth"
	"github.com/kreastudio/finance-backend-go/internal/domain/user"
	"github.com/kreastudio/finance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.users = append(f.users, newUser)
	return newUser, nil
}

func newTestService(t *testing.T) (auth.AuthService, jwt.Service, *fakeUserRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: []user.User{
		{ID: "u1", Email: "owner@kreastudio.id", PasswordHash: string(hash), Role: user.RoleOwner},
	}}
	jwtService := jwt.NewJWTService("test-secret", "1h")
	return NewAuthService(repo, jwtService), jwtService, repo
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@kreastudio.id",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "owner", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@kreastudio.id",
		Password: "salah",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Unknown email maps to the same error as a bad password so the
	// response does not reveal which accounts exist.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@kreastudio.id",
		Password: "rahasia123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInvalidRequest(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestCurrentUser(t *testing.T) {
	svc, jwtService, repo := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@kreastudio.id",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "access", token.PrivateClaims()["type"])

	ctx := jwtauth.NewContext(context.Background(), token, nil)
	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", current.ID)
	assert.Equal(t, "owner@kreastudio.id", current.Email)

	// A token for a since-deleted account stops resolving.
	repo.users = nil
	_, err = svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestCurrentUserWithoutToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
