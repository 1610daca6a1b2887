package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/task"
	"github.com/kreastudio/finance-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO master_tugas (id, id_tugas, nama_tugas, bonus_per_unit, aktif)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, id_tugas, nama_tugas, bonus_per_unit, aktif, created_at, updated_at
	`

	var t task.Task
	err := q.QueryRow(ctx, query,
		newTask.ID, newTask.TaskCode, newTask.Name, newTask.BonusPerUnit, newTask.Active,
	).Scan(
		&t.ID, &t.TaskCode, &t.Name, &t.BonusPerUnit, &t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "master_tugas_id_tugas_key") {
			return task.Task{}, task.ErrTaskCodeExists
		}
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	return r.getBy(ctx, "id", id)
}

func (r *taskRepository) GetByCode(ctx context.Context, taskCode string) (task.Task, error) {
	return r.getBy(ctx, "id_tugas", taskCode)
}

func (r *taskRepository) getBy(ctx context.Context, column, value string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, id_tugas, nama_tugas, bonus_per_unit, aktif, created_at, updated_at
		FROM master_tugas
		WHERE %s = $1
	`, column)

	var t task.Task
	err := q.QueryRow(ctx, query, value).Scan(
		&t.ID, &t.TaskCode, &t.Name, &t.BonusPerUnit, &t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) List(ctx context.Context, activeOnly bool) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, id_tugas, nama_tugas, bonus_per_unit, aktif, created_at, updated_at
		FROM master_tugas
	`
	if activeOnly {
		query += " WHERE aktif = true"
	}
	query += " ORDER BY id_tugas"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(
			&t.ID, &t.TaskCode, &t.Name, &t.BonusPerUnit, &t.Active, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, req task.UpdateTaskRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("nama_tugas = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.BonusPerUnit != nil {
		setParts = append(setParts, fmt.Sprintf("bonus_per_unit = $%d", argIdx))
		args = append(args, *req.BonusPerUnit)
		argIdx++
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("aktif = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE master_tugas
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM master_tugas WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
