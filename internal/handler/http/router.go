package http

import (
	"log/slog"
	"os"

	"github.com/Shashika071/crenixline-sub000/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	advanceHandler AdvanceHandler,
	closureHandler ClosureHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crenixline-core"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Mark)
			r.Post("/bulk", attendanceHandler.BulkMark)
			r.Get("/", attendanceHandler.List)
		})

		r.Get("/employees/{id}/leave-balances", leaveHandler.GetBalances)

		r.Route("/leaves", func(r chi.Router) {
			r.Post("/", leaveHandler.Apply)
			r.Get("/", leaveHandler.List)
			r.Get("/{id}", leaveHandler.Get)
			r.Patch("/{id}/status", leaveHandler.UpdateStatus)
		})

		r.Get("/salary", payrollHandler.CalculateSalary)

		r.Route("/payslips", func(r chi.Router) {
			r.Post("/calculate", payrollHandler.GeneratePayslip)
			r.Post("/calculate-all", payrollHandler.GenerateAllPayslips)
			r.Get("/", payrollHandler.ListPayslips)
			r.Get("/report", payrollHandler.Report)
			r.Get("/{id}", payrollHandler.GetPayslip)
			r.Post("/{id}/finalize", payrollHandler.Finalize)
			r.Post("/{id}/pay", payrollHandler.MarkPaid)
			r.Delete("/{id}", payrollHandler.DeletePayslip)
		})

		r.Route("/advances", func(r chi.Router) {
			r.Post("/", advanceHandler.Create)
			r.Get("/", advanceHandler.List)
			r.Get("/{id}", advanceHandler.Get)
			r.Patch("/{id}/status", advanceHandler.UpdateStatus)
			r.Delete("/{id}", advanceHandler.Delete)
		})

		r.Route("/factory-closures", func(r chi.Router) {
			r.Post("/", closureHandler.Create)
			r.Get("/", closureHandler.List)
		})
	})

	return r
}
