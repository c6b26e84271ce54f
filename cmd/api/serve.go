package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	appHTTP "github.com/hrsvr/hr-backend-go/internal/handler/http"
	"github.com/hrsvr/hr-backend-go/internal/pkg/database"
	"github.com/hrsvr/hr-backend-go/internal/pkg/jwt"
	"github.com/hrsvr/hr-backend-go/internal/pkg/metrics"
	"github.com/hrsvr/hr-backend-go/internal/repository/memory"
	"github.com/hrsvr/hr-backend-go/internal/repository/postgresql"
	applicationService "github.com/hrsvr/hr-backend-go/internal/service/application"
	attendanceService "github.com/hrsvr/hr-backend-go/internal/service/attendance"
	serviceAuth "github.com/hrsvr/hr-backend-go/internal/service/auth"
	dashboardService "github.com/hrsvr/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/hrsvr/hr-backend-go/internal/service/employee"
	leaveService "github.com/hrsvr/hr-backend-go/internal/service/leave"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

type repositories struct {
	employees    employee.EmployeeRepository
	attendance   attendance.AttendanceRepository
	applications application.ApplicationRepository
}

func newServeCmd() *cobra.Command {
	var store string
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return serve(cmd.Context(), cfg, store, migrate)
		},
	}

	cmd.Flags().StringVar(&store, "store", "postgres", "storage backend: postgres or memory")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "create missing tables before serving (postgres only)")

	return cmd
}

func newLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.App.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrsvr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
}

func serve(ctx context.Context, cfg *config.Config, store string, migrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	var repos repositories
	switch store {
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		if migrate {
			if err := postgresql.Migrate(ctx, db); err != nil {
				return err
			}
		}

		repos = repositories{
			employees:    postgresql.NewEmployeeRepository(db),
			attendance:   postgresql.NewAttendanceRepository(db),
			applications: postgresql.NewApplicationRepository(db),
		}
	case "memory":
		logger.Warn("using in-memory store, data is lost on shutdown")
		mem := memory.NewStore()
		repos = repositories{
			employees:    mem.Employees(),
			attendance:   mem.Attendance(),
			applications: mem.Applications(),
		}
	default:
		return fmt.Errorf("unsupported store %q", store)
	}

	jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("init jwt service: %w", err)
	}
	mc := metrics.New()

	authSvc := serviceAuth.NewAuthService(repos.employees, jwtService, cfg.Auth, cfg.Policy)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employees, cfg.Policy, mc)
	applicationSvc := applicationService.NewApplicationService(repos.applications, cfg.Policy, mc)
	dashboardSvc := dashboardService.NewDashboardService(repos.applications, repos.attendance, repos.employees, cfg.Policy)
	leaveSvc := leaveService.NewLeaveService(repos.applications, repos.employees, cfg.Policy)
	employeeSvc := employeeService.NewEmployeeService(repos.employees, cfg.Policy)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:             logger,
		LogLevel:           cfg.App.SlogLevel(),
		AllowedOrigins:     cfg.App.AllowedOrigins,
		Metrics:            mc,
		JWTService:         jwtService,
		Resolver:           authSvc,
		AuthHandler:        appHTTP.NewAuthHandler(authSvc),
		AttendanceHandler:  appHTTP.NewAttendanceHandler(attendanceSvc, cfg.Policy.Loc()),
		ApplicationHandler: appHTTP.NewApplicationHandler(applicationSvc),
		DashboardHandler:   appHTTP.NewDashboardHandler(dashboardSvc),
		LeaveHandler:       appHTTP.NewLeaveHandler(leaveSvc),
		EmployeeHandler:    appHTTP.NewEmployeeHandler(employeeSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "store", store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	srv.SetKeepAlivesEnabled(false)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
