package tasklog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/task"
	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/kreastudio/finance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type TaskLogService interface {
	Create(ctx context.Context, req tasklog.CreateTaskLogRequest) (tasklog.TaskLogResponse, error)
	Get(ctx context.Context, id string) (tasklog.TaskLogResponse, error)
	List(ctx context.Context, filter tasklog.Filter) ([]tasklog.TaskLogResponse, error)
	Approve(ctx context.Context, id string) (tasklog.TaskLogResponse, error)
	Reject(ctx context.Context, id string) (tasklog.TaskLogResponse, error)
	Delete(ctx context.Context, id string) error
}

type taskLogServiceImpl struct {
	logRepo      tasklog.TaskLogRepository
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
}

func NewTaskLogService(
	logRepo tasklog.TaskLogRepository,
	taskRepo task.TaskRepository,
	employeeRepo employee.EmployeeRepository,
) TaskLogService {
	return &taskLogServiceImpl{
		logRepo:      logRepo,
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
	}
}

func toResponse(l tasklog.TaskLog) tasklog.TaskLogResponse {
	return tasklog.TaskLogResponse{
		ID:            l.ID,
		Date:          l.Date.Format("2006-01-02"),
		Period:        l.Period,
		EmployeeCode:  l.EmployeeCode,
		TaskCode:      l.TaskCode,
		Units:         l.Units,
		ComputedBonus: l.ComputedBonus,
		Status:        string(l.Status),
	}
}

func (s *taskLogServiceImpl) Create(ctx context.Context, req tasklog.CreateTaskLogRequest) (tasklog.TaskLogResponse, error) {
	if err := req.Validate(); err != nil {
		return tasklog.TaskLogResponse{}, err
	}

	employeeData, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return tasklog.TaskLogResponse{}, tasklog.ErrUnknownEmployee
		}
		return tasklog.TaskLogResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if !employeeData.Active {
		return tasklog.TaskLogResponse{}, tasklog.ErrInactiveEmployee
	}

	taskData, err := s.taskRepo.GetByCode(ctx, req.TaskCode)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return tasklog.TaskLogResponse{}, tasklog.ErrUnknownTaskCode
		}
		return tasklog.TaskLogResponse{}, fmt.Errorf("failed to resolve task: %w", err)
	}
	if !taskData.Active {
		return tasklog.TaskLogResponse{}, tasklog.ErrInactiveTask
	}

	date, _ := validator.IsValidDate(req.Date)

	// The bonus is locked in at the task's current rate. Later rate changes
	// do not affect logs already recorded.
	entity := tasklog.TaskLog{
		ID:            uuid.New().String(),
		Date:          date,
		Period:        req.Period,
		EmployeeCode:  req.EmployeeCode,
		TaskCode:      req.TaskCode,
		Units:         req.Units,
		ComputedBonus: taskData.BonusPerUnit.Mul(decimal.NewFromInt(int64(req.Units))),
		Status:        tasklog.StatusPending,
	}

	created, err := s.logRepo.Create(ctx, entity)
	if err != nil {
		return tasklog.TaskLogResponse{}, err
	}
	return toResponse(created), nil
}

func (s *taskLogServiceImpl) Get(ctx context.Context, id string) (tasklog.TaskLogResponse, error) {
	entity, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return tasklog.TaskLogResponse{}, err
	}
	return toResponse(entity), nil
}

func (s *taskLogServiceImpl) List(ctx context.Context, filter tasklog.Filter) ([]tasklog.TaskLogResponse, error) {
	logs, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]tasklog.TaskLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, toResponse(l))
	}
	return responses, nil
}

// Approve moves a pending log into the approved set that payroll generation
// sums over.
func (s *taskLogServiceImpl) Approve(ctx context.Context, id string) (tasklog.TaskLogResponse, error) {
	entity, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return tasklog.TaskLogResponse{}, err
	}
	if entity.Status != tasklog.StatusPending {
		return tasklog.TaskLogResponse{}, tasklog.ErrNotPending
	}

	if err := s.logRepo.UpdateStatus(ctx, id, tasklog.StatusApproved); err != nil {
		return tasklog.TaskLogResponse{}, err
	}

	entity.Status = tasklog.StatusApproved
	return toResponse(entity), nil
}

// Reject returns an approved log to pending rather than deleting it, so the
// entry can be corrected and re-approved.
func (s *taskLogServiceImpl) Reject(ctx context.Context, id string) (tasklog.TaskLogResponse, error) {
	entity, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return tasklog.TaskLogResponse{}, err
	}
	if entity.Status != tasklog.StatusApproved {
		return tasklog.TaskLogResponse{}, tasklog.ErrNotApproved
	}

	if err := s.logRepo.UpdateStatus(ctx, id, tasklog.StatusPending); err != nil {
		return tasklog.TaskLogResponse{}, err
	}

	entity.Status = tasklog.StatusPending
	return toResponse(entity), nil
}

func (s *taskLogServiceImpl) Delete(ctx context.Context, id string) error {
	return s.logRepo.Delete(ctx, id)
}
