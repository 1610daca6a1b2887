package master

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/task"
)

// MasterService covers the three reference catalogs: sellable products,
// bonus-earning tasks and employees.
type MasterService interface {
	CreateProduct(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (product.ProductResponse, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]product.ProductResponse, error)
	UpdateProduct(ctx context.Context, req product.UpdateProductRequest) (product.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error)
	GetTask(ctx context.Context, id string) (task.TaskResponse, error)
	ListTasks(ctx context.Context, activeOnly bool) ([]task.TaskResponse, error)
	UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error

	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	productRepo  product.ProductRepository
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
}

func NewMasterService(
	productRepo product.ProductRepository,
	taskRepo task.TaskRepository,
	employeeRepo employee.EmployeeRepository,
) MasterService {
	return &masterServiceImpl{
		productRepo:  productRepo,
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
	}
}

func toProductResponse(p product.Product) product.ProductResponse {
	return product.ProductResponse{
		ID:          p.ID,
		ProductCode: p.ProductCode,
		Name:        p.Name,
		Category:    string(p.Category),
		SellPrice:   p.SellPrice,
		Unit:        string(p.Unit),
		Active:      p.Active,
	}
}

func (s *masterServiceImpl) CreateProduct(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	entity := product.Product{
		ID:          uuid.New().String(),
		ProductCode: req.ProductCode,
		Name:        req.Name,
		Category:    product.Category(req.Category),
		SellPrice:   req.SellPrice,
		Unit:        product.Unit(req.Unit),
		Active:      active,
	}

	created, err := s.productRepo.Create(ctx, entity)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return toProductResponse(created), nil
}

func (s *masterServiceImpl) GetProduct(ctx context.Context, id string) (product.ProductResponse, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return toProductResponse(entity), nil
}

func (s *masterServiceImpl) ListProducts(ctx context.Context, activeOnly bool) ([]product.ProductResponse, error) {
	products, err := s.productRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]product.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateProduct(ctx context.Context, req product.UpdateProductRequest) (product.ProductResponse, error) {
	if err := s.productRepo.Update(ctx, req); err != nil {
		return product.ProductResponse{}, err
	}

	entity, err := s.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to reload product: %w", err)
	}
	return toProductResponse(entity), nil
}

func (s *masterServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func toTaskResponse(t task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:           t.ID,
		TaskCode:     t.TaskCode,
		Name:         t.Name,
		BonusPerUnit: t.BonusPerUnit,
		Active:       t.Active,
	}
}

func (s *masterServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	entity := task.Task{
		ID:           uuid.New().String(),
		TaskCode:     req.TaskCode,
		Name:         req.Name,
		BonusPerUnit: req.BonusPerUnit,
		Active:       active,
	}

	created, err := s.taskRepo.Create(ctx, entity)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return toTaskResponse(created), nil
}

func (s *masterServiceImpl) GetTask(ctx context.Context, id string) (task.TaskResponse, error) {
	entity, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return toTaskResponse(entity), nil
}

func (s *masterServiceImpl) ListTasks(ctx context.Context, activeOnly bool) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, toTaskResponse(t))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := s.taskRepo.Update(ctx, req); err != nil {
		return task.TaskResponse{}, err
	}

	entity, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to reload task: %w", err)
	}
	return toTaskResponse(entity), nil
}

func (s *masterServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		BaseSalary:   e.BaseSalary,
		Active:       e.Active,
	}
}

func (s *masterServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	entity := employee.Employee{
		ID:           uuid.New().String(),
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		BaseSalary:   req.BaseSalary,
		Active:       active,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(created), nil
}

func (s *masterServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(entity), nil
}

func (s *masterServiceImpl) ListEmployees(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}
	return toEmployeeResponse(entity), nil
}

func (s *masterServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
