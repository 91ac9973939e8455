package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffsync/timeclock-backend-go/internal/config"
	"github.com/staffsync/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Salary       SalaryHandler
	Payroll      PayrollHandler
	Organization OrganizationHandler
	Employee     EmployeeHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/status", h.Attendance.Status)
				r.Get("/my", h.Attendance.GetMySessions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.ListSessions)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.Leave.ListTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Leave.CreateType)
					r.Delete("/{id}", h.Leave.DeleteType)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.GetMyRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.ListRequests)
					r.Get("/pending", h.Leave.ListPending)
					r.Put("/{id}/review", h.Leave.Review)
				})
			})

			r.Route("/salary-configs", func(r chi.Router) {
				r.Get("/my", h.Salary.GetMyConfig)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Salary.SetConfig)
					r.Get("/", h.Salary.ListConfigs)
					r.Get("/{employeeID}", h.Salary.GetConfig)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my-payslips", h.Payroll.GetMyPayslips)

				r.Route("/periods", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Payroll.CreatePeriod)
					r.Get("/", h.Payroll.ListPeriods)
					r.Get("/{id}", h.Payroll.GetPeriod)
					r.Post("/{id}/generate", h.Payroll.Generate)
					r.Post("/{id}/finalize", h.Payroll.Finalize)
					r.Delete("/{id}", h.Payroll.DeletePeriod)
					r.Get("/{id}/payslips", h.Payroll.ListPayslips)
				})
			})

			r.Route("/organization", func(r chi.Router) {
				r.Get("/", h.Organization.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/settings", h.Organization.UpdateWorkPolicy)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Employee.Create)
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
			})
		})
	})

	return r
}
