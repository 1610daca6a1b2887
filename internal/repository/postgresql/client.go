package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/client"
	"github.com/kreastudio/finance-backend-go/internal/pkg/database"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO database_klien (id, id_klien, nama_klien, email, telepon, alamat)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, id_klien, nama_klien, email, telepon, alamat, created_at, updated_at
	`

	var c client.Client
	err := q.QueryRow(ctx, query,
		newClient.ID, newClient.ClientCode, newClient.Name, newClient.Email, newClient.Phone, newClient.Address,
	).Scan(
		&c.ID, &c.ClientCode, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "database_klien_id_klien_key") {
			return client.Client{}, client.ErrClientCodeExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) getBy(ctx context.Context, column, value string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, id_klien, nama_klien, email, telepon, alamat, created_at, updated_at
		FROM database_klien
		WHERE %s = $1
	`, column)

	var c client.Client
	err := q.QueryRow(ctx, query, value).Scan(
		&c.ID, &c.ClientCode, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	return r.getBy(ctx, "id", id)
}

func (r *clientRepository) GetByCode(ctx context.Context, clientCode string) (client.Client, error) {
	return r.getBy(ctx, "id_klien", clientCode)
}

func (r *clientRepository) List(ctx context.Context) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, id_klien, nama_klien, email, telepon, alamat, created_at, updated_at
		FROM database_klien
		ORDER BY id_klien
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(
			&c.ID, &c.ClientCode, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, req client.UpdateClientRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("nama_klien = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("telepon = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("alamat = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE database_klien
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to update client: %w", err)
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM database_klien WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
