package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kreastudio/finance-backend-go/internal/handler/http/middleware"
	"github.com/kreastudio/finance-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	CORSOrigin string
	AppEnv     string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	clientHandler ClientHandler,
	masterHandler MasterHandler,
	salesHandler SalesHandler,
	taskLogHandler TaskLogHandler,
	costHandler CostHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kreastudio-finance"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			// Day-to-day data entry, open to admin and owner.
			r.Route("/clients", func(r chi.Router) {
				r.Post("/", clientHandler.Create)
				r.Get("/", clientHandler.List)
				r.Get("/{id}", clientHandler.Get)
				r.Put("/{id}", clientHandler.Update)
				r.Delete("/{id}", clientHandler.Delete)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Post("/", salesHandler.Create)
				r.Get("/", salesHandler.List)
				r.Get("/{id}", salesHandler.Get)
				r.Put("/{id}", salesHandler.Update)
				r.Delete("/{id}", salesHandler.Delete)
			})

			r.Route("/task-logs", func(r chi.Router) {
				r.Post("/", taskLogHandler.Create)
				r.Get("/", taskLogHandler.List)
				r.Get("/{id}", taskLogHandler.Get)
				r.Post("/{id}/approve", taskLogHandler.Approve)
				r.Post("/{id}/reject", taskLogHandler.Reject)
				r.Delete("/{id}", taskLogHandler.Delete)
			})

			r.Route("/operational-costs", func(r chi.Router) {
				r.Post("/", costHandler.CreateOperational)
				r.Get("/", costHandler.ListOperational)
				r.Get("/{id}", costHandler.GetOperational)
				r.Put("/{id}", costHandler.UpdateOperational)
				r.Delete("/{id}", costHandler.DeleteOperational)
			})

			// Owner only: catalogs, payroll and everything financial.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOwner)

				r.Route("/products", func(r chi.Router) {
					r.Post("/", masterHandler.CreateProduct)
					r.Get("/", masterHandler.ListProducts)
					r.Get("/{id}", masterHandler.GetProduct)
					r.Put("/{id}", masterHandler.UpdateProduct)
					r.Delete("/{id}", masterHandler.DeleteProduct)
				})

				r.Route("/tasks", func(r chi.Router) {
					r.Post("/", masterHandler.CreateTask)
					r.Get("/", masterHandler.ListTasks)
					r.Get("/{id}", masterHandler.GetTask)
					r.Put("/{id}", masterHandler.UpdateTask)
					r.Delete("/{id}", masterHandler.DeleteTask)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", masterHandler.CreateEmployee)
					r.Get("/", masterHandler.ListEmployees)
					r.Get("/{id}", masterHandler.GetEmployee)
					r.Put("/{id}", masterHandler.UpdateEmployee)
					r.Delete("/{id}", masterHandler.DeleteEmployee)
				})

				r.Route("/fixed-costs", func(r chi.Router) {
					r.Post("/", costHandler.CreateFixed)
					r.Get("/", costHandler.ListFixed)
					r.Get("/{id}", costHandler.GetFixed)
					r.Put("/{id}", costHandler.UpdateFixed)
					r.Delete("/{id}", costHandler.DeleteFixed)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Post("/generate", payrollHandler.Generate)
					r.Get("/", payrollHandler.List)
					r.Get("/{id}", payrollHandler.Get)
					r.Post("/{id}/finalize", payrollHandler.Finalize)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/profit-per-invoice", reportHandler.ProfitPerInvoice)
					r.Get("/profit-loss", reportHandler.ProfitLoss)
					r.Get("/dashboard", reportHandler.Dashboard)
				})
			})
		})
	})

	return r
}
