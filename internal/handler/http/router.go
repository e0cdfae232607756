package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/vigilo-ops/vigilo-backend-go/internal/handler/http/middleware"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	JWTService jwt.Service,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	workloadHandler WorkloadHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "vigilo-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/", shiftHandler.Assign)
				r.Post("/validate", shiftHandler.Validate)

				r.Route("/{shiftID}", func(r chi.Router) {
					r.Get("/", shiftHandler.Get)
					r.Post("/audit", attendanceHandler.AuditAction)
				})
			})

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/workload", workloadHandler.Report)
				r.Get("/shifts", workloadHandler.ListShifts)
			})
		})
	})
	return r
}
