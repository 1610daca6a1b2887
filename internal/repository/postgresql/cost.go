package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/pkg/database"
)

type operationalCostRepository struct {
	db *database.DB
}

func NewOperationalCostRepository(db *database.DB) cost.OperationalCostRepository {
	return &operationalCostRepository{db: db}
}

const operationalCostColumns = `id, tanggal, deskripsi, jumlah, ref_invoice, kategori, created_at, updated_at`

func scanOperationalCost(row pgx.Row) (cost.OperationalCost, error) {
	var c cost.OperationalCost
	err := row.Scan(
		&c.ID, &c.Date, &c.Description, &c.Amount, &c.InvoiceRef, &c.Category,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *operationalCostRepository) Create(ctx context.Context, newCost cost.OperationalCost) (cost.OperationalCost, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO biaya_operasional (id, tanggal, deskripsi, jumlah, ref_invoice, kategori)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, operationalCostColumns)

	c, err := scanOperationalCost(q.QueryRow(ctx, query,
		newCost.ID, newCost.Date, newCost.Description, newCost.Amount, newCost.InvoiceRef, newCost.Category,
	))
	if err != nil {
		return cost.OperationalCost{}, fmt.Errorf("failed to create operational cost: %w", err)
	}

	return c, nil
}

func (r *operationalCostRepository) GetByID(ctx context.Context, id string) (cost.OperationalCost, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM biaya_operasional WHERE id = $1`, operationalCostColumns)

	c, err := scanOperationalCost(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return cost.OperationalCost{}, cost.ErrOperationalCostNotFound
		}
		return cost.OperationalCost{}, fmt.Errorf("failed to get operational cost: %w", err)
	}

	return c, nil
}

func (r *operationalCostRepository) List(ctx context.Context, filter cost.Filter) ([]cost.OperationalCost, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM biaya_operasional`, operationalCostColumns)
	var conds []string
	var args []interface{}

	if !filter.DateFrom.IsZero() {
		args = append(args, filter.DateFrom)
		conds = append(conds, fmt.Sprintf("tanggal >= $%d", len(args)))
	}
	if !filter.DateTo.IsZero() {
		args = append(args, filter.DateTo)
		conds = append(conds, fmt.Sprintf("tanggal <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY tanggal"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list operational costs: %w", err)
	}
	defer rows.Close()

	var costs []cost.OperationalCost
	for rows.Next() {
		c, err := scanOperationalCost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operational cost: %w", err)
		}
		costs = append(costs, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list operational costs: %w", err)
	}

	return costs, nil
}

func (r *operationalCostRepository) Update(ctx context.Context, req cost.UpdateOperationalCostRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Date != nil {
		setParts = append(setParts, fmt.Sprintf("tanggal = $%d", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("deskripsi = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("jumlah = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.InvoiceRef != nil {
		setParts = append(setParts, fmt.Sprintf("ref_invoice = $%d", argIdx))
		args = append(args, *req.InvoiceRef)
		argIdx++
	}
	if req.Category != nil {
		setParts = append(setParts, fmt.Sprintf("kategori = $%d", argIdx))
		args = append(args, *req.Category)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE biaya_operasional
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cost.ErrOperationalCostNotFound
		}
		return fmt.Errorf("failed to update operational cost: %w", err)
	}

	return nil
}

func (r *operationalCostRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM biaya_operasional WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cost.ErrOperationalCostNotFound
		}
		return fmt.Errorf("failed to delete operational cost: %w", err)
	}

	return nil
}

type fixedCostRepository struct {
	db *database.DB
}

func NewFixedCostRepository(db *database.DB) cost.FixedCostRepository {
	return &fixedCostRepository{db: db}
}

const fixedCostColumns = `id, nama_biaya, jumlah, aktif, created_at, updated_at`

func scanFixedCost(row pgx.Row) (cost.FixedCost, error) {
	var c cost.FixedCost
	err := row.Scan(&c.ID, &c.Name, &c.Amount, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *fixedCostRepository) Create(ctx context.Context, newCost cost.FixedCost) (cost.FixedCost, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO fix_cost (id, nama_biaya, jumlah, aktif)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, fixedCostColumns)

	c, err := scanFixedCost(q.QueryRow(ctx, query, newCost.ID, newCost.Name, newCost.Amount, newCost.Active))
	if err != nil {
		return cost.FixedCost{}, fmt.Errorf("failed to create fixed cost: %w", err)
	}

	return c, nil
}

func (r *fixedCostRepository) GetByID(ctx context.Context, id string) (cost.FixedCost, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM fix_cost WHERE id = $1`, fixedCostColumns)

	c, err := scanFixedCost(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return cost.FixedCost{}, cost.ErrFixedCostNotFound
		}
		return cost.FixedCost{}, fmt.Errorf("failed to get fixed cost: %w", err)
	}

	return c, nil
}

func (r *fixedCostRepository) List(ctx context.Context, activeOnly bool) ([]cost.FixedCost, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM fix_cost`, fixedCostColumns)
	if activeOnly {
		query += " WHERE aktif = TRUE"
	}
	query += " ORDER BY nama_biaya"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed costs: %w", err)
	}
	defer rows.Close()

	var costs []cost.FixedCost
	for rows.Next() {
		c, err := scanFixedCost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed cost: %w", err)
		}
		costs = append(costs, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list fixed costs: %w", err)
	}

	return costs, nil
}

func (r *fixedCostRepository) Update(ctx context.Context, req cost.UpdateFixedCostRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("nama_biaya = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("jumlah = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("aktif = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE fix_cost
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cost.ErrFixedCostNotFound
		}
		return fmt.Errorf("failed to update fixed cost: %w", err)
	}

	return nil
}

func (r *fixedCostRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM fix_cost WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cost.ErrFixedCostNotFound
		}
		return fmt.Errorf("failed to delete fixed cost: %w", err)
	}

	return nil
}
