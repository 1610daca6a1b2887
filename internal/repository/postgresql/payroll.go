package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, periode, id_karyawan, gaji_pokok, total_bonus, total_gaji, status, created_at, updated_at`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.Period, &rec.EmployeeCode, &rec.BaseSalary, &rec.TotalBonus,
		&rec.TotalSalary, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// ReplaceForPeriod runs the delete and inserts in one transaction so a failed
// insert never leaves the period half replaced.
func (r *payrollRepository) ReplaceForPeriod(ctx context.Context, periodLabel string, records []payroll.Record) ([]payroll.Record, error) {
	var inserted []payroll.Record

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM penggajian WHERE periode = $1`, periodLabel); err != nil {
			return fmt.Errorf("failed to clear payroll period: %w", err)
		}

		query := fmt.Sprintf(`
			INSERT INTO penggajian (id, periode, id_karyawan, gaji_pokok, total_bonus, total_gaji, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING %s
		`, payrollColumns)

		for _, rec := range records {
			row, err := scanPayrollRecord(tx.QueryRow(ctx, query,
				rec.ID, rec.Period, rec.EmployeeCode, rec.BaseSalary, rec.TotalBonus, rec.TotalSalary, rec.Status,
			))
			if err != nil {
				return fmt.Errorf("failed to insert payroll record: %w", err)
			}
			inserted = append(inserted, row)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM penggajian WHERE id = $1`, payrollColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM penggajian`, payrollColumns)
	var conds []string
	var args []interface{}

	if filter.Period != "" {
		args = append(args, filter.Period)
		conds = append(conds, fmt.Sprintf("periode = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY periode, id_karyawan"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	return records, nil
}

func (r *payrollRepository) SetStatus(ctx context.Context, id string, status payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE penggajian
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update payroll status: %w", err)
	}

	return nil
}
