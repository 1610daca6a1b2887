package payroll

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/shopspring/decimal"
)

type PayrollService interface {
	Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.RecordResponse, error)
	Get(ctx context.Context, id string) (payroll.RecordResponse, error)
	List(ctx context.Context, filter payroll.Filter) ([]payroll.RecordResponse, error)
	Finalize(ctx context.Context, id string) (payroll.RecordResponse, error)
}

type payrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	logRepo      tasklog.TaskLogRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	logRepo tasklog.TaskLogRepository,
	employeeRepo employee.EmployeeRepository,
) PayrollService {
	return &payrollServiceImpl{
		payrollRepo:  payrollRepo,
		logRepo:      logRepo,
		employeeRepo: employeeRepo,
	}
}

func toResponse(rec payroll.Record, employeeName string) payroll.RecordResponse {
	return payroll.RecordResponse{
		ID:           rec.ID,
		Period:       rec.Period,
		EmployeeCode: rec.EmployeeCode,
		EmployeeName: employeeName,
		BaseSalary:   rec.BaseSalary,
		TotalBonus:   rec.TotalBonus,
		TotalSalary:  rec.TotalSalary,
		Status:       string(rec.Status),
	}
}

// sumApprovedBonuses totals approved task-log bonuses per employee code.
func sumApprovedBonuses(logs []tasklog.TaskLog) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, l := range logs {
		totals[l.EmployeeCode] = totals[l.EmployeeCode].Add(l.ComputedBonus)
	}
	return totals
}

// buildRecords produces one draft record per active employee. Employees with
// no approved logs still get a record carrying only their base salary.
func buildRecords(periodLabel string, employees []employee.Employee, bonusTotals map[string]decimal.Decimal) []payroll.Record {
	records := make([]payroll.Record, 0, len(employees))
	for _, e := range employees {
		bonus := bonusTotals[e.EmployeeCode]
		records = append(records, payroll.Record{
			ID:           uuid.New().String(),
			Period:       periodLabel,
			EmployeeCode: e.EmployeeCode,
			BaseSalary:   e.BaseSalary,
			TotalBonus:   bonus,
			TotalSalary:  e.BaseSalary.Add(bonus),
			Status:       payroll.StatusDraft,
		})
	}
	return records
}

// Generate rebuilds the whole period from scratch: every existing record for
// the period is replaced, finalized ones included. Repeated runs over the
// same data produce the same amounts.
func (s *payrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	approved := tasklog.StatusApproved
	logs, err := s.logRepo.List(ctx, tasklog.Filter{Period: req.Period, Status: &approved})
	if err != nil {
		return nil, fmt.Errorf("failed to list approved task logs: %w", err)
	}

	records := buildRecords(req.Period, employees, sumApprovedBonuses(logs))

	inserted, err := s.payrollRepo.ReplaceForPeriod(ctx, req.Period, records)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.EmployeeCode] = e.Name
	}

	responses := make([]payroll.RecordResponse, 0, len(inserted))
	for _, rec := range inserted {
		responses = append(responses, toResponse(rec, names[rec.EmployeeCode]))
	}
	return responses, nil
}

func (s *payrollServiceImpl) Get(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return toResponse(rec, s.employeeName(ctx, rec.EmployeeCode)), nil
}

func (s *payrollServiceImpl) List(ctx context.Context, filter payroll.Filter) ([]payroll.RecordResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names := s.employeeNames(ctx)
	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec, names[rec.EmployeeCode]))
	}
	return responses, nil
}

// Finalize locks a draft record. Finalized records reject a second finalize
// but are still swept away by a later Generate for the same period.
func (s *payrollServiceImpl) Finalize(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	if rec.Status == payroll.StatusFinal {
		return payroll.RecordResponse{}, payroll.ErrAlreadyFinalized
	}

	if err := s.payrollRepo.SetStatus(ctx, id, payroll.StatusFinal); err != nil {
		return payroll.RecordResponse{}, err
	}

	rec.Status = payroll.StatusFinal
	return toResponse(rec, s.employeeName(ctx, rec.EmployeeCode)), nil
}

func (s *payrollServiceImpl) employeeName(ctx context.Context, code string) string {
	e, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return ""
	}
	return e.Name
}

func (s *payrollServiceImpl) employeeNames(ctx context.Context) map[string]string {
	employees, err := s.employeeRepo.List(ctx, false)
	if err != nil {
		return nil
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.EmployeeCode] = e.Name
	}
	return names
}
