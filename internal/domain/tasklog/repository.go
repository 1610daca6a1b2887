package tasklog

import "context"

type TaskLogRepository interface {
	Create(ctx context.Context, newLog TaskLog) (TaskLog, error)
	GetByID(ctx context.Context, id string) (TaskLog, error)
	List(ctx context.Context, filter Filter) ([]TaskLog, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}
