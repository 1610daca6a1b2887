package postgrest

import (
	"context"
	"fmt"

	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	client *postgrest.Client
}

func NewPayrollRepository(c *postgrest.Client) payroll.PayrollRepository {
	return &payrollRepository{client: c}
}

type payrollRow struct {
	ID           string          `json:"id"`
	Period       string          `json:"periode"`
	EmployeeCode string          `json:"id_karyawan"`
	BaseSalary   decimal.Decimal `json:"gaji_pokok"`
	TotalBonus   decimal.Decimal `json:"total_bonus"`
	TotalSalary  decimal.Decimal `json:"total_gaji"`
	Status       string          `json:"status"`
	CreatedAt    restTime        `json:"created_at,omitzero"`
	UpdatedAt    restTime        `json:"updated_at,omitzero"`
}

func (r payrollRow) toDomain() payroll.Record {
	return payroll.Record{
		ID:           r.ID,
		Period:       r.Period,
		EmployeeCode: r.EmployeeCode,
		BaseSalary:   r.BaseSalary,
		TotalBonus:   r.TotalBonus,
		TotalSalary:  r.TotalSalary,
		Status:       payroll.Status(r.Status),
		CreatedAt:    r.CreatedAt.Time,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

// ReplaceForPeriod deletes the period then inserts the new set in one batch
// request. REST backends offer no transaction, so a failed insert after the
// delete leaves the period empty; the caller can regenerate to recover.
func (r *payrollRepository) ReplaceForPeriod(ctx context.Context, periodLabel string, records []payroll.Record) ([]payroll.Record, error) {
	if err := r.client.From("penggajian").Eq("periode", periodLabel).Delete(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to clear payroll period: %w", err)
	}

	body := make([]payrollRow, 0, len(records))
	for _, rec := range records {
		body = append(body, payrollRow{
			ID:           rec.ID,
			Period:       rec.Period,
			EmployeeCode: rec.EmployeeCode,
			BaseSalary:   rec.BaseSalary,
			TotalBonus:   rec.TotalBonus,
			TotalSalary:  rec.TotalSalary,
			Status:       string(rec.Status),
		})
	}
	if len(body) == 0 {
		return nil, nil
	}

	var rows []payrollRow
	if err := r.client.From("penggajian").Insert(ctx, body, &rows); err != nil {
		return nil, fmt.Errorf("failed to insert payroll records: %w", err)
	}

	inserted := make([]payroll.Record, 0, len(rows))
	for _, row := range rows {
		inserted = append(inserted, row.toDomain())
	}
	return inserted, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	var rows []payrollRow
	err := r.client.From("penggajian").Eq("id", id).Select(ctx, &rows)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	if len(rows) == 0 {
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	q := r.client.From("penggajian")
	if filter.Period != "" {
		q = q.Eq("periode", filter.Period)
	}
	if filter.Status != nil {
		q = q.Eq("status", string(*filter.Status))
	}
	q = q.Order("id_karyawan", true)

	var rows []payrollRow
	if err := q.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	records := make([]payroll.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, nil
}

func (r *payrollRepository) SetStatus(ctx context.Context, id string, status payroll.Status) error {
	patch := patchBase()
	patch["status"] = string(status)

	var rows []payrollRow
	err := r.client.From("penggajian").Eq("id", id).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if len(rows) == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}
