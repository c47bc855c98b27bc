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

	"github.com/attendance-admin/attendance-backend-go/internal/config"
	appHTTP "github.com/attendance-admin/attendance-backend-go/internal/handler/http"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/calendar"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/database"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/storage"
	"github.com/attendance-admin/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendance-admin/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/attendance-admin/attendance-backend-go/internal/service/auth"
	employeeService "github.com/attendance-admin/attendance-backend-go/internal/service/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/service/file"
	reportService "github.com/attendance-admin/attendance-backend-go/internal/service/report"
)

const defaultPort = 8080

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		slog.Error("required settings missing, serving misconfiguration errors", "error", err)
		return serve(ctx, fmt.Sprintf(":%d", defaultPort), appHTTP.NewMisconfiguredRouter())
	}
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	slog.Info("config loaded", "config", cfg)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("error preparing schema: %w", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	transactor := postgresql.NewTransactor(db)

	localStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("error preparing storage: %w", err)
	}
	fileService := file.NewFileService(localStorage)

	cal := calendar.New(loc)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(transactor, attendanceRepo, employeeRepo, cal)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, cal)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileService)

	if err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return fmt.Errorf("error bootstrapping admin: %w", err)
	}

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
	}, localStorage.BasePath())

	return serve(ctx, fmt.Sprintf(":%d", cfg.App.Port), router)
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
