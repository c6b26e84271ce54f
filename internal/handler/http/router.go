package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrsvr/hr-backend-go/internal/pkg/jwt"
	"github.com/hrsvr/hr-backend-go/internal/pkg/metrics"
)

// RouterConfig carries everything NewRouter mounts.
type RouterConfig struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	Metrics        *metrics.MetricsCollection

	JWTService jwt.Service
	Resolver   middleware.EmployeeResolver

	AuthHandler        AuthHandler
	AttendanceHandler  AttendanceHandler
	ApplicationHandler ApplicationHandler
	DashboardHandler   DashboardHandler
	LeaveHandler       LeaveHandler
	EmployeeHandler    EmployeeHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/signup-test", cfg.AuthHandler.SignupTest)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.Resolver))

			r.Get("/auth/me", cfg.AuthHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", cfg.AttendanceHandler.ClockIn)
				r.Put("/clock-out", cfg.AttendanceHandler.ClockOut)

				// Self or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.SelfOrAdmin("employeeID"))
					r.Get("/weekly/{employeeID}", cfg.AttendanceHandler.Weekly)
					r.Get("/monthly/{employeeID}", cfg.AttendanceHandler.Monthly)
					r.Get("/monthly/{employeeID}/export", cfg.AttendanceHandler.MonthlyExport)
				})

				// Admin only
				r.With(middleware.AdminOnly).Get("/all", cfg.AttendanceHandler.All)
			})

			r.Route("/applications", func(r chi.Router) {
				r.Post("/", cfg.ApplicationHandler.Submit)
				r.With(middleware.SelfOrAdmin("employeeID")).Get("/recent/{employeeID}", cfg.ApplicationHandler.Recent)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", cfg.ApplicationHandler.All)
					r.Get("/list", cfg.ApplicationHandler.List)
					r.Get("/{id}", cfg.ApplicationHandler.Get)
					r.Put("/{id}/status", cfg.ApplicationHandler.UpdateStatus)
				})
			})

			r.With(middleware.SelfOrAdmin("employeeID")).Get("/dashboard/summary/{employeeID}", cfg.DashboardHandler.Summary)

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/my-status", cfg.LeaveHandler.MyStatus)
				r.With(middleware.AdminOnly).Get("/schedule", cfg.ApplicationHandler.LeaveSchedule)
			})

			r.Get("/employees/{employeeID}", cfg.EmployeeHandler.Get)
		})
	})

	return r
}
