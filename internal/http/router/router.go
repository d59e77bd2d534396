package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/health"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/handler"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/middleware"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/response"
)

const maxRequestBody = 64 << 10

type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	EmployeeHandler   *handler.EmployeeHandler
	AttendanceHandler *handler.AttendanceHandler
	Tokens            middleware.TokenAuthenticator
	Logger            *slog.Logger

	CORSOrigins []string

	// RateLimitBackend is shared by every limiter; nil keeps counters in
	// process memory.
	RateLimitBackend          middleware.Limiter
	APIRateLimitPerMin        int
	AuthRateLimitPerMin       int
	AttendanceRateLimitPerMin int

	Readiness      *health.ProbeRunner
	EnableOTelHTTP bool
}

func NewRouter(dep Dependencies) http.Handler {
	logger := dep.Logger
	if logger == nil {
		logger = slog.Default()
	}
	backend := dep.RateLimitBackend
	if backend == nil {
		backend = middleware.NewLocalFixedWindowLimiter()
	}
	apiLimiter := middleware.NewDistributedRateLimiter(backend, dep.APIRateLimitPerMin, time.Minute, middleware.FailOpen, "api").Middleware()
	authLimiter := middleware.NewDistributedRateLimiter(backend, dep.AuthRateLimitPerMin, time.Minute, middleware.FailClosed, "auth").Middleware()
	attendanceLimiter := middleware.NewDistributedRateLimiterWithKey(backend, dep.AttendanceRateLimitPerMin, time.Minute,
		middleware.FailOpen, "attendance", middleware.EmployeeOrIPKeyFunc()).Middleware()
	requireAuth := middleware.AuthMiddleware(dep.Tokens)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger(logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(maxRequestBody))

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiLimiter)

		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter).Post("/signup", dep.AuthHandler.Signup)
			r.With(authLimiter).Post("/login", dep.AuthHandler.Login)
			r.With(requireAuth).Post("/logout", dep.AuthHandler.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", dep.EmployeeHandler.Me)
			r.Get("/biometrics/status", dep.EmployeeHandler.BiometricStatus)
			r.Post("/biometrics/register", dep.EmployeeHandler.RegisterBiometric)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/today", dep.AttendanceHandler.Today)
			r.Get("/history", dep.AttendanceHandler.History)
			r.Group(func(r chi.Router) {
				r.Use(attendanceLimiter)
				r.Post("/challenges", dep.AttendanceHandler.Challenge)
				r.Post("/check-in", dep.AttendanceHandler.CheckIn)
				r.Post("/check-out", dep.AttendanceHandler.CheckOut)
			})
		})
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
