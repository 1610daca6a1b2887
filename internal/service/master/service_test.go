package master

import (
	"context"
	"testing"

	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/task"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products []product.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	for _, p := range f.products {
		if p.ProductCode == newProduct.ProductCode {
			return product.Product{}, product.ErrProductCodeExists
		}
	}
	f.products = append(f.products, newProduct)
	return newProduct, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (product.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, product.ErrProductNotFound
}

func (f *fakeProductRepo) GetByCode(ctx context.Context, productCode string) (product.Product, error) {
	for _, p := range f.products {
		if p.ProductCode == productCode {
			return p, nil
		}
	}
	return product.Product{}, product.ErrProductNotFound
}

func (f *fakeProductRepo) List(ctx context.Context, activeOnly bool) ([]product.Product, error) {
	var out []product.Product
	for _, p := range f.products {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, req product.UpdateProductRequest) error {
	for i, p := range f.products {
		if p.ID != req.ID {
			continue
		}
		if req.Name != nil {
			f.products[i].Name = *req.Name
		}
		if req.SellPrice != nil {
			f.products[i].SellPrice = *req.SellPrice
		}
		if req.Active != nil {
			f.products[i].Active = *req.Active
		}
		return nil
	}
	return product.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return product.ErrProductNotFound
}

type fakeTaskRepo struct {
	tasks []task.Task
}

func (f *fakeTaskRepo) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	f.tasks = append(f.tasks, newTask)
	return newTask, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	for _, tk := range f.tasks {
		if tk.ID == id {
			return tk, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) GetByCode(ctx context.Context, taskCode string) (task.Task, error) {
	for _, tk := range f.tasks {
		if tk.TaskCode == taskCode {
			return tk, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) List(ctx context.Context, activeOnly bool) ([]task.Task, error) {
	return f.tasks, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, req task.UpdateTaskRequest) error {
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	return nil
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
	return f.employees, nil
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

func newTestService() (MasterService, *fakeProductRepo) {
	products := &fakeProductRepo{}
	return NewMasterService(products, &fakeTaskRepo{}, &fakeEmployeeRepo{}), products
}

func TestCreateProductDefaultsToActive(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateProduct(context.Background(), product.CreateProductRequest{
		ProductCode: "PRD001",
		Name:        "Paket Wisuda",
		Category:    "Paket",
		SellPrice:   money("750000"),
		Unit:        "Paket",
	})
	require.NoError(t, err)

	assert.True(t, created.Active)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Paket", created.Category)
}

func TestCreateProductHonorsExplicitActive(t *testing.T) {
	svc, _ := newTestService()

	inactive := false
	created, err := svc.CreateProduct(context.Background(), product.CreateProductRequest{
		ProductCode: "PRD002",
		Name:        "Paket Lama",
		Category:    "Paket",
		SellPrice:   money("500000"),
		Unit:        "Paket",
		Active:      &inactive,
	})
	require.NoError(t, err)
	assert.False(t, created.Active)
}

func TestCreateProductRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateProduct(context.Background(), product.CreateProductRequest{
		ProductCode: "lowercase code",
		Name:        "Paket",
		Category:    "Lainnya",
		SellPrice:   money("-1"),
		Unit:        "Paket",
	})
	assert.Error(t, err)
}

func TestCreateProductDuplicateCode(t *testing.T) {
	svc, _ := newTestService()

	req := product.CreateProductRequest{
		ProductCode: "PRD001",
		Name:        "Paket Wisuda",
		Category:    "Paket",
		SellPrice:   money("750000"),
		Unit:        "Paket",
	}
	_, err := svc.CreateProduct(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), req)
	assert.ErrorIs(t, err, product.ErrProductCodeExists)
}

func TestListProductsActiveOnly(t *testing.T) {
	svc, repo := newTestService()
	repo.products = []product.Product{
		{ID: "p1", ProductCode: "PRD001", Name: "Aktif", Active: true},
		{ID: "p2", ProductCode: "PRD002", Name: "Nonaktif", Active: false},
	}

	all, err := svc.ListProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.ListProducts(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "PRD001", active[0].ProductCode)
}

func TestUpdateProductReturnsFreshState(t *testing.T) {
	svc, repo := newTestService()
	repo.products = []product.Product{
		{ID: "p1", ProductCode: "PRD001", Name: "Paket Wisuda", SellPrice: money("750000"), Active: true},
	}

	newPrice := money("800000")
	updated, err := svc.UpdateProduct(context.Background(), product.UpdateProductRequest{
		ID:        "p1",
		SellPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.True(t, updated.SellPrice.Equal(newPrice))

	_, err = svc.UpdateProduct(context.Background(), product.UpdateProductRequest{ID: "missing"})
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestCreateTaskAndEmployeeValidation(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateTask(context.Background(), task.CreateTaskRequest{
		TaskCode:     "TGS001",
		Name:         "Edit foto",
		BonusPerUnit: money("25000"),
	})
	require.NoError(t, err)
	assert.True(t, created.Active)

	_, err = svc.CreateTask(context.Background(), task.CreateTaskRequest{
		TaskCode:     "tgs bad",
		Name:         "",
		BonusPerUnit: money("-5"),
	})
	assert.Error(t, err)

	emp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeCode: "KRY001",
		Name:         "Andi",
		BaseSalary:   money("4000000"),
	})
	require.NoError(t, err)
	assert.True(t, emp.Active)

	_, err = svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeCode: "",
		Name:         "Tanpa Kode",
		BaseSalary:   money("-1"),
	})
	assert.Error(t, err)
}
