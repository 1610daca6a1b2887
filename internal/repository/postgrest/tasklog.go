package postgrest

import (
	"context"
	"fmt"

	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
	"github.com/shopspring/decimal"
)

type taskLogRepository struct {
	client *postgrest.Client
}

func NewTaskLogRepository(c *postgrest.Client) tasklog.TaskLogRepository {
	return &taskLogRepository{client: c}
}

type taskLogRow struct {
	ID            string          `json:"id"`
	Date          restDate        `json:"tanggal"`
	Period        string          `json:"periode"`
	EmployeeCode  string          `json:"id_karyawan"`
	TaskCode      string          `json:"id_tugas"`
	Units         int             `json:"jumlah_tugas"`
	ComputedBonus decimal.Decimal `json:"bonus_terhitung"`
	Status        string          `json:"status"`
	CreatedAt     restTime        `json:"created_at,omitzero"`
	UpdatedAt     restTime        `json:"updated_at,omitzero"`
}

func (r taskLogRow) toDomain() tasklog.TaskLog {
	return tasklog.TaskLog{
		ID:            r.ID,
		Date:          r.Date.Time,
		Period:        r.Period,
		EmployeeCode:  r.EmployeeCode,
		TaskCode:      r.TaskCode,
		Units:         r.Units,
		ComputedBonus: r.ComputedBonus,
		Status:        tasklog.Status(r.Status),
		CreatedAt:     r.CreatedAt.Time,
		UpdatedAt:     r.UpdatedAt.Time,
	}
}

func (r *taskLogRepository) Create(ctx context.Context, newLog tasklog.TaskLog) (tasklog.TaskLog, error) {
	body := taskLogRow{
		ID:            newLog.ID,
		Date:          restDate{newLog.Date},
		Period:        newLog.Period,
		EmployeeCode:  newLog.EmployeeCode,
		TaskCode:      newLog.TaskCode,
		Units:         newLog.Units,
		ComputedBonus: newLog.ComputedBonus,
		Status:        string(newLog.Status),
	}

	var rows []taskLogRow
	err := r.client.From("log_tugas").Insert(ctx, []taskLogRow{body}, &rows)
	if err != nil {
		return tasklog.TaskLog{}, fmt.Errorf("failed to create task log: %w", err)
	}
	if len(rows) == 0 {
		return tasklog.TaskLog{}, fmt.Errorf("failed to create task log: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}

func (r *taskLogRepository) GetByID(ctx context.Context, id string) (tasklog.TaskLog, error) {
	var rows []taskLogRow
	err := r.client.From("log_tugas").Eq("id", id).Select(ctx, &rows)
	if err != nil {
		return tasklog.TaskLog{}, fmt.Errorf("failed to get task log: %w", err)
	}
	if len(rows) == 0 {
		return tasklog.TaskLog{}, tasklog.ErrTaskLogNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *taskLogRepository) List(ctx context.Context, filter tasklog.Filter) ([]tasklog.TaskLog, error) {
	q := r.client.From("log_tugas")
	if filter.Period != "" {
		q = q.Eq("periode", filter.Period)
	}
	if filter.Status != nil {
		q = q.Eq("status", string(*filter.Status))
	}
	if filter.EmployeeCode != "" {
		q = q.Eq("id_karyawan", filter.EmployeeCode)
	}
	q = q.Order("tanggal", true)

	var rows []taskLogRow
	if err := q.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}

	logs := make([]tasklog.TaskLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, row.toDomain())
	}
	return logs, nil
}

func (r *taskLogRepository) UpdateStatus(ctx context.Context, id string, status tasklog.Status) error {
	patch := patchBase()
	patch["status"] = string(status)

	var rows []taskLogRow
	err := r.client.From("log_tugas").Eq("id", id).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update task log status: %w", err)
	}
	if len(rows) == 0 {
		return tasklog.ErrTaskLogNotFound
	}
	return nil
}

func (r *taskLogRepository) Delete(ctx context.Context, id string) error {
	var rows []taskLogRow
	err := r.client.From("log_tugas").Eq("id", id).Delete(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to delete task log: %w", err)
	}
	if len(rows) == 0 {
		return tasklog.ErrTaskLogNotFound
	}
	return nil
}
