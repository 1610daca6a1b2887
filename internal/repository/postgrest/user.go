package postgrest

import (
	"context"
	"fmt"

	"github.com/kreastudio/finance-backend-go/internal/domain/user"
	"github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
)

type userRepository struct {
	client *postgrest.Client
}

func NewUserRepository(client *postgrest.Client) user.UserRepository {
	return &userRepository{client: client}
}

type userRow struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	CreatedAt restTime `json:"created_at,omitzero"`
}

func (r userRow) toDomain() user.User {
	return user.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.Password,
		Role:         user.Role(r.Role),
		CreatedAt:    r.CreatedAt.Time,
	}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var rows []userRow
	err := r.client.From("users").Eq("email", email).Select(ctx, &rows)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if len(rows) == 0 {
		return user.User{}, user.ErrUserNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	var rows []userRow
	err := r.client.From("users").Eq("id", id).Select(ctx, &rows)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if len(rows) == 0 {
		return user.User{}, user.ErrUserNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	body := userRow{
		ID:       newUser.ID,
		Email:    newUser.Email,
		Password: newUser.PasswordHash,
		Role:     string(newUser.Role),
	}

	var rows []userRow
	err := r.client.From("users").Insert(ctx, []userRow{body}, &rows)
	if err != nil {
		if isConflict(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	if len(rows) == 0 {
		return user.User{}, fmt.Errorf("failed to create user: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}
