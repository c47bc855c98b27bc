package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/attendance-admin/attendance-backend-go/internal/config"
	"github.com/attendance-admin/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendance-admin/attendance-backend-go/internal/handler/http/response"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Employee   EmployeeHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers, uploadsDir string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-admin"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Handle("/metrics", promhttp.Handler())

	// Avatars are referenced from <img> tags, so they are served without auth.
	uploadsPrefix := uploadsRoute(cfg.Storage.BaseURL)
	r.Handle(uploadsPrefix+"/*", http.StripPrefix(uploadsPrefix, noDirListing(http.FileServer(http.Dir(uploadsDir)))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires an admin token
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(middleware.AdminOnly)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.GetDayPresence)
				r.Post("/", h.Attendance.Reconcile)
				r.Get("/dates", h.Attendance.GetDatesWithData)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Put("/", h.Employee.UpdateEmployee)
					r.Delete("/", h.Employee.DeleteEmployee)
					r.Get("/attendance", h.Attendance.GetEmployeeHistory)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/insights", h.Report.GetInsightsReport)
				r.Get("/employee-stats", h.Report.GetEmployeeStatsReport)
			})
		})
	})
	return r
}

// NewMisconfiguredRouter answers every request with a misconfiguration
// error. It is served when required settings are missing at startup.
func NewMisconfiguredRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		response.NotConfigured(w)
	})
	return r
}

// uploadsRoute extracts the path under which stored files are served.
// STORAGE_BASE_URL may be absolute (https://cdn.example.com/uploads) or a path.
func uploadsRoute(baseURL string) string {
	path := baseURL
	if u, err := url.Parse(baseURL); err == nil {
		path = u.Path
	}
	path = "/" + strings.Trim(path, "/")
	if path == "/" {
		return "/uploads"
	}
	return path
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			response.NotFound(w, "File not found")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func logLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
