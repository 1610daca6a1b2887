package postgrest

import (
	"context"
	"fmt"

	"github.com/kreastudio/finance-backend-go/internal/domain/client"
	"github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
)

type clientRepository struct {
	client *postgrest.Client
}

func NewClientRepository(c *postgrest.Client) client.ClientRepository {
	return &clientRepository{client: c}
}

type clientRow struct {
	ID         string   `json:"id"`
	ClientCode string   `json:"id_klien"`
	Name       string   `json:"nama_klien"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"telepon"`
	Address    *string  `json:"alamat"`
	CreatedAt  restTime `json:"created_at,omitzero"`
	UpdatedAt  restTime `json:"updated_at,omitzero"`
}

func (r clientRow) toDomain() client.Client {
	return client.Client{
		ID:         r.ID,
		ClientCode: r.ClientCode,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		CreatedAt:  r.CreatedAt.Time,
		UpdatedAt:  r.UpdatedAt.Time,
	}
}

func (r *clientRepository) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	body := clientRow{
		ID:         newClient.ID,
		ClientCode: newClient.ClientCode,
		Name:       newClient.Name,
		Email:      newClient.Email,
		Phone:      newClient.Phone,
		Address:    newClient.Address,
	}

	var rows []clientRow
	err := r.client.From("database_klien").Insert(ctx, []clientRow{body}, &rows)
	if err != nil {
		if isConflict(err) {
			return client.Client{}, client.ErrClientCodeExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	if len(rows) == 0 {
		return client.Client{}, fmt.Errorf("failed to create client: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}

func (r *clientRepository) getBy(ctx context.Context, column, value string) (client.Client, error) {
	var rows []clientRow
	err := r.client.From("database_klien").Eq(column, value).Select(ctx, &rows)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}
	if len(rows) == 0 {
		return client.Client{}, client.ErrClientNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	return r.getBy(ctx, "id", id)
}

func (r *clientRepository) GetByCode(ctx context.Context, clientCode string) (client.Client, error) {
	return r.getBy(ctx, "id_klien", clientCode)
}

func (r *clientRepository) List(ctx context.Context) ([]client.Client, error) {
	var rows []clientRow
	err := r.client.From("database_klien").Order("id_klien", true).Select(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]client.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, row.toDomain())
	}
	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, req client.UpdateClientRequest) error {
	patch := patchBase()
	if req.Name != nil {
		patch["nama_klien"] = *req.Name
	}
	if req.Email != nil {
		patch["email"] = *req.Email
	}
	if req.Phone != nil {
		patch["telepon"] = *req.Phone
	}
	if req.Address != nil {
		patch["alamat"] = *req.Address
	}

	var rows []clientRow
	err := r.client.From("database_klien").Eq("id", req.ID).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if len(rows) == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	var rows []clientRow
	err := r.client.From("database_klien").Eq("id", id).Delete(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if len(rows) == 0 {
		return client.ErrClientNotFound
	}
	return nil
}
