package postgrest

import (
	"context"
	"fmt"

	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/task"
	"github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
	"github.com/shopspring/decimal"
)

type productRepository struct {
	client *postgrest.Client
}

func NewProductRepository(c *postgrest.Client) product.ProductRepository {
	return &productRepository{client: c}
}

type productRow struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"id_produk"`
	Name        string          `json:"nama_produk"`
	Category    string          `json:"kategori"`
	SellPrice   decimal.Decimal `json:"harga_jual"`
	Unit        string          `json:"satuan"`
	Active      bool            `json:"aktif"`
	CreatedAt   restTime        `json:"created_at,omitzero"`
	UpdatedAt   restTime        `json:"updated_at,omitzero"`
}

func (r productRow) toDomain() product.Product {
	return product.Product{
		ID:          r.ID,
		ProductCode: r.ProductCode,
		Name:        r.Name,
		Category:    product.Category(r.Category),
		SellPrice:   r.SellPrice,
		Unit:        product.Unit(r.Unit),
		Active:      r.Active,
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}

func (r *productRepository) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	body := productRow{
		ID:          newProduct.ID,
		ProductCode: newProduct.ProductCode,
		Name:        newProduct.Name,
		Category:    string(newProduct.Category),
		SellPrice:   newProduct.SellPrice,
		Unit:        string(newProduct.Unit),
		Active:      newProduct.Active,
	}

	var rows []productRow
	err := r.client.From("master_produk").Insert(ctx, []productRow{body}, &rows)
	if err != nil {
		if isConflict(err) {
			return product.Product{}, product.ErrProductCodeExists
		}
		return product.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	if len(rows) == 0 {
		return product.Product{}, fmt.Errorf("failed to create product: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}

func (r *productRepository) getBy(ctx context.Context, column, value string) (product.Product, error) {
	var rows []productRow
	err := r.client.From("master_produk").Eq(column, value).Select(ctx, &rows)
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	if len(rows) == 0 {
		return product.Product{}, product.ErrProductNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (product.Product, error) {
	return r.getBy(ctx, "id", id)
}

func (r *productRepository) GetByCode(ctx context.Context, productCode string) (product.Product, error) {
	return r.getBy(ctx, "id_produk", productCode)
}

func (r *productRepository) List(ctx context.Context, activeOnly bool) ([]product.Product, error) {
	q := r.client.From("master_produk").Order("id_produk", true)
	if activeOnly {
		q = q.Eq("aktif", true)
	}

	var rows []productRow
	if err := q.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]product.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toDomain())
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, req product.UpdateProductRequest) error {
	patch := patchBase()
	if req.Name != nil {
		patch["nama_produk"] = *req.Name
	}
	if req.Category != nil {
		patch["kategori"] = *req.Category
	}
	if req.SellPrice != nil {
		patch["harga_jual"] = *req.SellPrice
	}
	if req.Unit != nil {
		patch["satuan"] = *req.Unit
	}
	if req.Active != nil {
		patch["aktif"] = *req.Active
	}

	var rows []productRow
	err := r.client.From("master_produk").Eq("id", req.ID).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if len(rows) == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	var rows []productRow
	err := r.client.From("master_produk").Eq("id", id).Delete(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if len(rows) == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

type taskRepository struct {
	client *postgrest.Client
}

func NewTaskRepository(c *postgrest.Client) task.TaskRepository {
	return &taskRepository{client: c}
}

type taskRow struct {
	ID           string          `json:"id"`
	TaskCode     string          `json:"id_tugas"`
	Name         string          `json:"nama_tugas"`
	BonusPerUnit decimal.Decimal `json:"bonus_per_unit"`
	Active       bool            `json:"aktif"`
	CreatedAt    restTime        `json:"created_at,omitzero"`
	UpdatedAt    restTime        `json:"updated_at,omitzero"`
}

func (r taskRow) toDomain() task.Task {
	return task.Task{
		ID:           r.ID,
		TaskCode:     r.TaskCode,
		Name:         r.Name,
		BonusPerUnit: r.BonusPerUnit,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt.Time,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

func (r *taskRepository) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	body := taskRow{
		ID:           newTask.ID,
		TaskCode:     newTask.TaskCode,
		Name:         newTask.Name,
		BonusPerUnit: newTask.BonusPerUnit,
		Active:       newTask.Active,
	}

	var rows []taskRow
	err := r.client.From("master_tugas").Insert(ctx, []taskRow{body}, &rows)
	if err != nil {
		if isConflict(err) {
			return task.Task{}, task.ErrTaskCodeExists
		}
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	if len(rows) == 0 {
		return task.Task{}, fmt.Errorf("failed to create task: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}

func (r *taskRepository) getBy(ctx context.Context, column, value string) (task.Task, error) {
	var rows []taskRow
	err := r.client.From("master_tugas").Eq(column, value).Select(ctx, &rows)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	if len(rows) == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	return r.getBy(ctx, "id", id)
}

func (r *taskRepository) GetByCode(ctx context.Context, taskCode string) (task.Task, error) {
	return r.getBy(ctx, "id_tugas", taskCode)
}

func (r *taskRepository) List(ctx context.Context, activeOnly bool) ([]task.Task, error) {
	q := r.client.From("master_tugas").Order("id_tugas", true)
	if activeOnly {
		q = q.Eq("aktif", true)
	}

	var rows []taskRow
	if err := q.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]task.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toDomain())
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, req task.UpdateTaskRequest) error {
	patch := patchBase()
	if req.Name != nil {
		patch["nama_tugas"] = *req.Name
	}
	if req.BonusPerUnit != nil {
		patch["bonus_per_unit"] = *req.BonusPerUnit
	}
	if req.Active != nil {
		patch["aktif"] = *req.Active
	}

	var rows []taskRow
	err := r.client.From("master_tugas").Eq("id", req.ID).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if len(rows) == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	var rows []taskRow
	err := r.client.From("master_tugas").Eq("id", id).Delete(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if len(rows) == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

type employeeRepository struct {
	client *postgrest.Client
}

func NewEmployeeRepository(c *postgrest.Client) employee.EmployeeRepository {
	return &employeeRepository{client: c}
}

type employeeRow struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"id_karyawan"`
	Name         string          `json:"nama_karyawan"`
	BaseSalary   decimal.Decimal `json:"gaji_pokok"`
	Active       bool            `json:"aktif"`
	CreatedAt    restTime        `json:"created_at,omitzero"`
	UpdatedAt    restTime        `json:"updated_at,omitzero"`
}

func (r employeeRow) toDomain() employee.Employee {
	return employee.Employee{
		ID:           r.ID,
		EmployeeCode: r.EmployeeCode,
		Name:         r.Name,
		BaseSalary:   r.BaseSalary,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt.Time,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	body := employeeRow{
		ID:           newEmployee.ID,
		EmployeeCode: newEmployee.EmployeeCode,
		Name:         newEmployee.Name,
		BaseSalary:   newEmployee.BaseSalary,
		Active:       newEmployee.Active,
	}

	var rows []employeeRow
	err := r.client.From("master_karyawan").Insert(ctx, []employeeRow{body}, &rows)
	if err != nil {
		if isConflict(err) {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	if len(rows) == 0 {
		return employee.Employee{}, fmt.Errorf("failed to create employee: backend returned no rows")
	}
	return rows[0].toDomain(), nil
}

func (r *employeeRepository) getBy(ctx context.Context, column, value string) (employee.Employee, error) {
	var rows []employeeRow
	err := r.client.From("master_karyawan").Eq(column, value).Select(ctx, &rows)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if len(rows) == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getBy(ctx, "id", id)
}

func (r *employeeRepository) GetByCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	return r.getBy(ctx, "id_karyawan", employeeCode)
}

func (r *employeeRepository) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := r.client.From("master_karyawan").Order("id_karyawan", true)
	if activeOnly {
		q = q.Eq("aktif", true)
	}

	var rows []employeeRow
	if err := q.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, row.toDomain())
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	patch := patchBase()
	if req.Name != nil {
		patch["nama_karyawan"] = *req.Name
	}
	if req.BaseSalary != nil {
		patch["gaji_pokok"] = *req.BaseSalary
	}
	if req.Active != nil {
		patch["aktif"] = *req.Active
	}

	var rows []employeeRow
	err := r.client.From("master_karyawan").Eq("id", req.ID).Update(ctx, patch, &rows)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if len(rows) == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	var rows []employeeRow
	err := r.client.From("master_karyawan").Eq("id", id).Delete(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if len(rows) == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
