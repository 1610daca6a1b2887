package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/kreastudio/finance-backend-go/internal/pkg/database"
)

type taskLogRepository struct {
	db *database.DB
}

func NewTaskLogRepository(db *database.DB) tasklog.TaskLogRepository {
	return &taskLogRepository{db: db}
}

const taskLogColumns = `id, tanggal, periode, id_karyawan, id_tugas, jumlah_tugas,
		bonus_terhitung, status, created_at, updated_at`

func scanTaskLog(row pgx.Row) (tasklog.TaskLog, error) {
	var l tasklog.TaskLog
	err := row.Scan(
		&l.ID, &l.Date, &l.Period, &l.EmployeeCode, &l.TaskCode, &l.Units,
		&l.ComputedBonus, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *taskLogRepository) Create(ctx context.Context, newLog tasklog.TaskLog) (tasklog.TaskLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO log_tugas (id, tanggal, periode, id_karyawan, id_tugas, jumlah_tugas, bonus_terhitung, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, taskLogColumns)

	l, err := scanTaskLog(q.QueryRow(ctx, query,
		newLog.ID, newLog.Date, newLog.Period, newLog.EmployeeCode, newLog.TaskCode,
		newLog.Units, newLog.ComputedBonus, newLog.Status,
	))
	if err != nil {
		return tasklog.TaskLog{}, fmt.Errorf("failed to create task log: %w", err)
	}

	return l, nil
}

func (r *taskLogRepository) GetByID(ctx context.Context, id string) (tasklog.TaskLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM log_tugas WHERE id = $1`, taskLogColumns)

	l, err := scanTaskLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return tasklog.TaskLog{}, tasklog.ErrTaskLogNotFound
		}
		return tasklog.TaskLog{}, fmt.Errorf("failed to get task log: %w", err)
	}

	return l, nil
}

func (r *taskLogRepository) List(ctx context.Context, filter tasklog.Filter) ([]tasklog.TaskLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM log_tugas`, taskLogColumns)
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
	if filter.EmployeeCode != "" {
		args = append(args, filter.EmployeeCode)
		conds = append(conds, fmt.Sprintf("id_karyawan = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY tanggal, id_karyawan"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}
	defer rows.Close()

	var logs []tasklog.TaskLog
	for rows.Next() {
		l, err := scanTaskLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}

	return logs, nil
}

func (r *taskLogRepository) UpdateStatus(ctx context.Context, id string, status tasklog.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE log_tugas
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tasklog.ErrTaskLogNotFound
		}
		return fmt.Errorf("failed to update task log status: %w", err)
	}

	return nil
}

func (r *taskLogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM log_tugas WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tasklog.ErrTaskLogNotFound
		}
		return fmt.Errorf("failed to delete task log: %w", err)
	}

	return nil
}
