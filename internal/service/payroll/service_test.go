package payroll

import (
	"context"
	"testing"

	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	records []payroll.Record
}

func (f *fakePayrollRepo) ReplaceForPeriod(ctx context.Context, periodLabel string, records []payroll.Record) ([]payroll.Record, error) {
	kept := f.records[:0]
	for _, rec := range f.records {
		if rec.Period != periodLabel {
			kept = append(kept, rec)
		}
	}
	f.records = append(kept, records...)
	return records, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return payroll.Record{}, payroll.ErrRecordNotFound
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	var out []payroll.Record
	for _, rec := range f.records {
		if filter.Period != "" && rec.Period != filter.Period {
			continue
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakePayrollRepo) SetStatus(ctx context.Context, id string, status payroll.Status) error {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records[i].Status = status
			return nil
		}
	}
	return payroll.ErrRecordNotFound
}

type fakeTaskLogRepo struct {
	logs []tasklog.TaskLog
}

func (f *fakeTaskLogRepo) Create(ctx context.Context, newLog tasklog.TaskLog) (tasklog.TaskLog, error) {
	f.logs = append(f.logs, newLog)
	return newLog, nil
}

func (f *fakeTaskLogRepo) GetByID(ctx context.Context, id string) (tasklog.TaskLog, error) {
	for _, l := range f.logs {
		if l.ID == id {
			return l, nil
		}
	}
	return tasklog.TaskLog{}, tasklog.ErrTaskLogNotFound
}

func (f *fakeTaskLogRepo) List(ctx context.Context, filter tasklog.Filter) ([]tasklog.TaskLog, error) {
	var out []tasklog.TaskLog
	for _, l := range f.logs {
		if filter.Period != "" && l.Period != filter.Period {
			continue
		}
		if filter.Status != nil && l.Status != *filter.Status {
			continue
		}
		if filter.EmployeeCode != "" && l.EmployeeCode != filter.EmployeeCode {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeTaskLogRepo) UpdateStatus(ctx context.Context, id string, status tasklog.Status) error {
	for i, l := range f.logs {
		if l.ID == id {
			f.logs[i].Status = status
			return nil
		}
	}
	return tasklog.ErrTaskLogNotFound
}

func (f *fakeTaskLogRepo) Delete(ctx context.Context, id string) error {
	for i, l := range f.logs {
		if l.ID == id {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return tasklog.ErrTaskLogNotFound
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if activeOnly && !e.Active {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func approvedLog(employeeCode, period, bonus string) tasklog.TaskLog {
	return tasklog.TaskLog{
		EmployeeCode:  employeeCode,
		Period:        period,
		ComputedBonus: money(bonus),
		Status:        tasklog.StatusApproved,
	}
}

func TestGenerateSumsApprovedBonuses(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeCode: "KRY001", Name: "Andi", BaseSalary: money("4000000"), Active: true},
		{ID: "e2", EmployeeCode: "KRY002", Name: "Budi", BaseSalary: money("3500000"), Active: true},
	}}
	logs := &fakeTaskLogRepo{logs: []tasklog.TaskLog{
		approvedLog("KRY001", "Jan-2025", "300000"),
		approvedLog("KRY001", "Jan-2025", "200000"),
		{EmployeeCode: "KRY001", Period: "Jan-2025", ComputedBonus: money("999999"), Status: tasklog.StatusPending},
		approvedLog("KRY001", "Feb-2025", "150000"),
	}}
	repo := &fakePayrollRepo{}
	svc := NewPayrollService(repo, logs, employees)

	records, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{Period: "Jan-2025"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	byCode := map[string]payroll.RecordResponse{}
	for _, rec := range records {
		byCode[rec.EmployeeCode] = rec
	}

	// Approved Jan logs only: 300000 + 200000. Pending logs and other
	// periods are ignored.
	assert.True(t, byCode["KRY001"].TotalBonus.Equal(money("500000")))
	assert.True(t, byCode["KRY001"].TotalSalary.Equal(money("4500000")))
	assert.Equal(t, "Andi", byCode["KRY001"].EmployeeName)

	// No approved logs at all: base salary carries through unchanged.
	assert.True(t, byCode["KRY002"].TotalBonus.Equal(money("0")))
	assert.True(t, byCode["KRY002"].TotalSalary.Equal(money("3500000")))

	for _, rec := range records {
		assert.Equal(t, string(payroll.StatusDraft), rec.Status)
	}
}

func TestGenerateSkipsInactiveEmployees(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeCode: "KRY001", Name: "Andi", BaseSalary: money("4000000"), Active: true},
		{ID: "e2", EmployeeCode: "KRY009", Name: "Resigned", BaseSalary: money("2000000"), Active: false},
	}}
	svc := NewPayrollService(&fakePayrollRepo{}, &fakeTaskLogRepo{}, employees)

	records, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{Period: "Jan-2025"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "KRY001", records[0].EmployeeCode)
}

func TestGenerateReplacesExistingPeriod(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeCode: "KRY001", Name: "Andi", BaseSalary: money("4000000"), Active: true},
	}}
	logs := &fakeTaskLogRepo{logs: []tasklog.TaskLog{
		approvedLog("KRY001", "Jan-2025", "100000"),
	}}
	repo := &fakePayrollRepo{records: []payroll.Record{
		{ID: "stale-1", Period: "Jan-2025", EmployeeCode: "KRY001", Status: payroll.StatusFinal},
		{ID: "other-1", Period: "Feb-2025", EmployeeCode: "KRY001", Status: payroll.StatusDraft},
	}}
	svc := NewPayrollService(repo, logs, employees)

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{Period: "Jan-2025"})
	require.NoError(t, err)

	// The finalized Jan record is swept away, the Feb record survives.
	janRecords, err := repo.List(context.Background(), payroll.Filter{Period: "Jan-2025"})
	require.NoError(t, err)
	require.Len(t, janRecords, 1)
	assert.NotEqual(t, "stale-1", janRecords[0].ID)
	assert.Equal(t, payroll.StatusDraft, janRecords[0].Status)

	febRecords, err := repo.List(context.Background(), payroll.Filter{Period: "Feb-2025"})
	require.NoError(t, err)
	require.Len(t, febRecords, 1)
	assert.Equal(t, "other-1", febRecords[0].ID)
}

func TestGenerateIsIdempotent(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeCode: "KRY001", Name: "Andi", BaseSalary: money("4000000"), Active: true},
	}}
	logs := &fakeTaskLogRepo{logs: []tasklog.TaskLog{
		approvedLog("KRY001", "Jan-2025", "500000"),
	}}
	repo := &fakePayrollRepo{}
	svc := NewPayrollService(repo, logs, employees)

	first, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{Period: "Jan-2025"})
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{Period: "Jan-2025"})
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.True(t, first[0].TotalSalary.Equal(second[0].TotalSalary))

	records, err := repo.List(context.Background(), payroll.Filter{Period: "Jan-2025"})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGenerateRejectsBadPeriod(t *testing.T) {
	svc := NewPayrollService(&fakePayrollRepo{}, &fakeTaskLogRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{Period: "January 2025"})
	assert.Error(t, err)
}

func TestFinalize(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeCode: "KRY001", Name: "Andi", BaseSalary: money("4000000"), Active: true},
	}}
	repo := &fakePayrollRepo{records: []payroll.Record{
		{ID: "rec-1", Period: "Jan-2025", EmployeeCode: "KRY001", Status: payroll.StatusDraft},
	}}
	svc := NewPayrollService(repo, &fakeTaskLogRepo{}, employees)

	finalized, err := svc.Finalize(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusFinal), finalized.Status)

	_, err = svc.Finalize(context.Background(), "rec-1")
	assert.ErrorIs(t, err, payroll.ErrAlreadyFinalized)

	_, err = svc.Finalize(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}
