package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kreastudio/finance-backend-go/internal/config"
	"github.com/kreastudio/finance-backend-go/internal/domain/client"
	"github.com/kreastudio/finance-backend-go/internal/domain/cost"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/employee"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/product"
	"github.com/kreastudio/finance-backend-go/internal/domain/master/task"
	"github.com/kreastudio/finance-backend-go/internal/domain/payroll"
	"github.com/kreastudio/finance-backend-go/internal/domain/sales"
	"github.com/kreastudio/finance-backend-go/internal/domain/tasklog"
	"github.com/kreastudio/finance-backend-go/internal/domain/user"
	appHTTP "github.com/kreastudio/finance-backend-go/internal/handler/http"
	"github.com/kreastudio/finance-backend-go/internal/pkg/database"
	"github.com/kreastudio/finance-backend-go/internal/pkg/jwt"
	pgrest "github.com/kreastudio/finance-backend-go/internal/pkg/postgrest"
	"github.com/kreastudio/finance-backend-go/internal/repository/postgresql"
	"github.com/kreastudio/finance-backend-go/internal/repository/postgrest"
	authService "github.com/kreastudio/finance-backend-go/internal/service/auth"
	clientService "github.com/kreastudio/finance-backend-go/internal/service/client"
	costService "github.com/kreastudio/finance-backend-go/internal/service/cost"
	"github.com/kreastudio/finance-backend-go/internal/service/master"
	payrollService "github.com/kreastudio/finance-backend-go/internal/service/payroll"
	reportService "github.com/kreastudio/finance-backend-go/internal/service/report"
	salesService "github.com/kreastudio/finance-backend-go/internal/service/sales"
	tasklogService "github.com/kreastudio/finance-backend-go/internal/service/tasklog"
)

// repositories bundles one full set of storage implementations.
type repositories struct {
	user        user.UserRepository
	client      client.ClientRepository
	product     product.ProductRepository
	task        task.TaskRepository
	employee    employee.EmployeeRepository
	sales       sales.TransactionRepository
	taskLog     tasklog.TaskLogRepository
	operational cost.OperationalCostRepository
	fixed       cost.FixedCostRepository
	payroll     payroll.PayrollRepository
}

func newPostgresRepositories(db *database.DB) repositories {
	return repositories{
		user:        postgresql.NewUserRepository(db),
		client:      postgresql.NewClientRepository(db),
		product:     postgresql.NewProductRepository(db),
		task:        postgresql.NewTaskRepository(db),
		employee:    postgresql.NewEmployeeRepository(db),
		sales:       postgresql.NewSalesRepository(db),
		taskLog:     postgresql.NewTaskLogRepository(db),
		operational: postgresql.NewOperationalCostRepository(db),
		fixed:       postgresql.NewFixedCostRepository(db),
		payroll:     postgresql.NewPayrollRepository(db),
	}
}

func newRESTRepositories(c *pgrest.Client) repositories {
	return repositories{
		user:        postgrest.NewUserRepository(c),
		client:      postgrest.NewClientRepository(c),
		product:     postgrest.NewProductRepository(c),
		task:        postgrest.NewTaskRepository(c),
		employee:    postgrest.NewEmployeeRepository(c),
		sales:       postgrest.NewSalesRepository(c),
		taskLog:     postgrest.NewTaskLogRepository(c),
		operational: postgrest.NewOperationalCostRepository(c),
		fixed:       postgrest.NewFixedCostRepository(c),
		payroll:     postgrest.NewPayrollRepository(c),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var repos repositories
	switch cfg.App.DataBackend {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		repos = newPostgresRepositories(db)
	case "rest":
		repos = newRESTRepositories(pgrest.NewClient(cfg.REST.BaseURL, cfg.REST.APIKey))
	default:
		log.Fatal("Unsupported data backend: ", cfg.App.DataBackend)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := authService.NewAuthService(repos.user, jwtService)
	clientSvc := clientService.NewClientService(repos.client)
	masterSvc := master.NewMasterService(repos.product, repos.task, repos.employee)
	salesSvc := salesService.NewSalesService(repos.sales, repos.client, repos.product)
	taskLogSvc := tasklogService.NewTaskLogService(repos.taskLog, repos.task, repos.employee)
	costSvc := costService.NewCostService(repos.operational, repos.fixed)
	payrollSvc := payrollService.NewPayrollService(repos.payroll, repos.taskLog, repos.employee)
	reportSvc := reportService.NewReportService(repos.sales, repos.operational, repos.fixed, repos.payroll)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			CORSOrigin: cfg.App.CORSOrigin,
			AppEnv:     cfg.App.Env,
		},
		jwtService,
		appHTTP.NewAuthHandler(jwtService, authSvc),
		appHTTP.NewClientHandler(clientSvc),
		appHTTP.NewMasterHandler(masterSvc),
		appHTTP.NewSalesHandler(salesSvc),
		appHTTP.NewTaskLogHandler(taskLogSvc),
		appHTTP.NewCostHandler(costSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
