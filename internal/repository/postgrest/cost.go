package postgrest

import (
	"context"
	"fmt"

	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
	"github.com/shopspring/decimal"
)

type operationalCostRepository struct {
	client *postgrest.Client
}

func NewOperationalCostRepository(c *postgrest.Client) cost.OperationalCostRepository {
	return &operationalCostRepository{client: c}
}

type operationalCostRow struct {
	ID          string          `json:"id"`
	Date        restDate        `json:"tanggal"`
	Description string          `json:"deskripsi"`
	Amount      decimal.Decimal `json:"jumlah"`
	InvoiceRef  *string         `json:"ref_invoice"`
	Category    string          `json:"kategori"`
	CreatedAt   restTime        `json:"created_at,omitzero"`
	UpdatedAt   restTime        `json:"updated_at,omitzero"`
}

func (r operationalCostRow) toDomain() cost.OperationalCost {
	return cost.OperationalCost{
		ID:          r.ID,
		Date:        r.Date.Time,
		Description: r.Description,
		Amount:      r.Amount,
		InvoiceRef:  r.InvoiceRef,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}

func (r *operationalCostRepository) Create(ctx context.Context, newCost cost.OperationalCost) (cost.OperationalCost, error) {
	body := operationalCostRow{
		ID:          newCost.ID,
		Date:        restDate{newCost.Date},
		Description: newCost.Description,
		Amount:      newCost.Amount,
		InvoiceRef:  newCost.InvoiceRef,
		Category:    newCost.Category,
	}

	var rows []operationalCostRow
	err := r.client.From("biaya_operasional").Insert(ctx, []operationalCostRow{body}, &rows)
	if err != nil {
		return cost.OperationalCost{}, fmt.Errorf("failed to create operational cost: %w", err)
	}
	if len(rows) == 0 {
		return cost.OperationalCost{}, fmt.Errorf("failed to create operational cost: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}

func (r *operationalCostRepository) GetByID(ctx context.Context, id string) (cost.OperationalCost, error) {
	var rows []operationalCostRow
	err := r.client.From("biaya_operasional").Eq("id", id).Select(ctx, &rows)
	if err != nil {
		return cost.OperationalCost{}, fmt.Errorf("failed to get operational cost: %w", err)
	}
	if len(rows) == 0 {
		return cost.OperationalCost{}, cost.ErrOperationalCostNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *operationalCostRepository) List(ctx context.Context, filter cost.Filter) ([]cost.OperationalCost, error) {
	q := r.client.From("biaya_operasional")
	if !filter.DateFrom.IsZero() {
		q = q.Gte("tanggal", filter.DateFrom.Format(restDateLayout))
	}
	if !filter.DateTo.IsZero() {
		q = q.Lte("tanggal", filter.DateTo.Format(restDateLayout))
	}
	q = q.Order("tanggal", true)

	var rows []operationalCostRow
	if err := q.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list operational costs: %w", err)
	}

	costs := make([]cost.OperationalCost, 0, len(rows))
	for _, row := range rows {
		costs = append(costs, row.toDomain())
	}
	return costs, nil
}

func (r *operationalCostRepository) Update(ctx context.Context, req cost.UpdateOperationalCostRequest) error {
	patch := patchBase()
	if req.Date != nil {
		patch["tanggal"] = *req.Date
	}
	if req.Description != nil {
		patch["deskripsi"] = *req.Description
	}
	if req.Amount != nil {
		patch["jumlah"] = *req.Amount
	}
	if req.InvoiceRef != nil {
		patch["ref_invoice"] = *req.InvoiceRef
	}
	if req.Category != nil {
		patch["kategori"] = *req.Category
	}

	var rows []operationalCostRow
	err := r.client.From("biaya_operasional").Eq("id", req.ID).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update operational cost: %w", err)
	}
	if len(rows) == 0 {
		return cost.ErrOperationalCostNotFound
	}
	return nil
}

func (r *operationalCostRepository) Delete(ctx context.Context, id string) error {
	var rows []operationalCostRow
	err := r.client.From("biaya_operasional").Eq("id", id).Delete(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to delete operational cost: %w", err)
	}
	if len(rows) == 0 {
		return cost.ErrOperationalCostNotFound
	}
	return nil
}

type fixedCostRepository struct {
	client *postgrest.Client
}

func NewFixedCostRepository(c *postgrest.Client) cost.FixedCostRepository {
	return &fixedCostRepository{client: c}
}

type fixedCostRow struct {
	ID        string          `json:"id"`
	Name      string          `json:"nama_biaya"`
	Amount    decimal.Decimal `json:"jumlah"`
	Active    bool            `json:"aktif"`
	CreatedAt restTime        `json:"created_at,omitzero"`
	UpdatedAt restTime        `json:"updated_at,omitzero"`
}

func (r fixedCostRow) toDomain() cost.FixedCost {
	return cost.FixedCost{
		ID:        r.ID,
		Name:      r.Name,
		Amount:    r.Amount,
		Active:    r.Active,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
}

func (r *fixedCostRepository) Create(ctx context.Context, newCost cost.FixedCost) (cost.FixedCost, error) {
	body := fixedCostRow{
		ID:     newCost.ID,
		Name:   newCost.Name,
		Amount: newCost.Amount,
		Active: newCost.Active,
	}

	var rows []fixedCostRow
	err := r.client.From("fix_cost").Insert(ctx, []fixedCostRow{body}, &rows)
	if err != nil {
		return cost.FixedCost{}, fmt.Errorf("failed to create fixed cost: %w", err)
	}
	if len(rows) == 0 {
		return cost.FixedCost{}, fmt.Errorf("failed to create fixed cost: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}

func (r *fixedCostRepository) GetByID(ctx context.Context, id string) (cost.FixedCost, error) {
	var rows []fixedCostRow
	err := r.client.From("fix_cost").Eq("id", id).Select(ctx, &rows)
	if err != nil {
		return cost.FixedCost{}, fmt.Errorf("failed to get fixed cost: %w", err)
	}
	if len(rows) == 0 {
		return cost.FixedCost{}, cost.ErrFixedCostNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *fixedCostRepository) List(ctx context.Context, activeOnly bool) ([]cost.FixedCost, error) {
	q := r.client.From("fix_cost").Order("nama_biaya", true)
	if activeOnly {
		q = q.Eq("aktif", true)
	}

	var rows []fixedCostRow
	if err := q.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list fixed costs: %w", err)
	}

	costs := make([]cost.FixedCost, 0, len(rows))
	for _, row := range rows {
		costs = append(costs, row.toDomain())
	}
	return costs, nil
}

func (r *fixedCostRepository) Update(ctx context.Context, req cost.UpdateFixedCostRequest) error {
	patch := patchBase()
	if req.Name != nil {
		patch["nama_biaya"] = *req.Name
	}
	if req.Amount != nil {
		patch["jumlah"] = *req.Amount
	}
	if req.Active != nil {
		patch["aktif"] = *req.Active
	}

	var rows []fixedCostRow
	err := r.client.From("fix_cost").Eq("id", req.ID).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update fixed cost: %w", err)
	}
	if len(rows) == 0 {
		return cost.ErrFixedCostNotFound
	}
	return nil
}

func (r *fixedCostRepository) Delete(ctx context.Context, id string) error {
	var rows []fixedCostRow
	err := r.client.From("fix_cost").Eq("id", id).Delete(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to delete fixed cost: %w", err)
	}
	if len(rows) == 0 {
		return cost.ErrFixedCostNotFound
	}
	return nil
}
