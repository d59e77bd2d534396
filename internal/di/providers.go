package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/app"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/config"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/database"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/health"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/handler"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/middleware"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/router"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/security"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/service"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/workflow"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	clock.NewSystem,
	provideRuntimeDB,
	provideRedisClient,
	provideReadinessProbeRunner,
)

var RepositorySet = wire.NewSet(
	repository.NewEmployeeRepository,
	repository.NewBiometricRepository,
	provideAttendanceRepository,
)

var SecuritySet = wire.NewSet(
	provideJWTManager,
	providePasswordHasher,
)

var ServiceSet = wire.NewSet(
	provideIdentityService,
	provideChallengeStore,
	provideAssertionGate,
	provideGate,
	provideWorkflow,
	provideTokenRevoker,
	provideTokenService,
	provideAttendanceService,
	wire.Bind(new(service.IdentityServiceInterface), new(*service.IdentityService)),
	wire.Bind(new(service.TokenServiceInterface), new(*service.TokenService)),
	wire.Bind(new(service.AttendanceServiceInterface), new(*service.AttendanceService)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewEmployeeHandler,
	handler.NewAttendanceHandler,
	provideRateLimitBackend,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(provideApp)

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

func provideOpenDB(cfg *config.Config) (*gorm.DB, error) {
	return database.Open(cfg)
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func provideRedisClient(cfg *config.Config, logger *slog.Logger) redis.UniversalClient {
	if !cfg.RedisEnabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	observability.InstrumentRedisClient(client, logger)
	return client
}

func provideAttendanceRepository(db *gorm.DB, cfg *config.Config) repository.AttendanceRepository {
	return repository.NewAttendanceRepository(db, cfg.Location())
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTAccessSecret)
}

func providePasswordHasher() *security.PasswordHasher {
	return security.NewPasswordHasher(security.DefaultArgon2Params())
}

func provideIdentityService(
	employees repository.EmployeeRepository,
	biometrics repository.BiometricRepository,
	hasher *security.PasswordHasher,
	c clock.Clock,
	cfg *config.Config,
) *service.IdentityService {
	return service.NewIdentityService(employees, biometrics, hasher, c, cfg.Location())
}

// provideChallengeStore keeps nonces in Redis when it is available so any
// replica can consume a challenge another one issued.
func provideChallengeStore(cfg *config.Config, client redis.UniversalClient, c clock.Clock) biometric.ChallengeStore {
	if cfg.RedisEnabled && client != nil {
		return biometric.NewRedisChallengeStore(client, cfg.RedisPrefix)
	}
	return biometric.NewInMemoryChallengeStore(c)
}

func provideAssertionGate(cfg *config.Config, store biometric.ChallengeStore, identity *service.IdentityService, c clock.Clock) *biometric.AssertionGate {
	return biometric.NewAssertionGate(store, identity, c, cfg.BiometricChallengeTTL)
}

// provideGate picks how check-ins prove presence. Report mode trusts the
// device's own prompt result and skips signature checks.
func provideGate(cfg *config.Config, assertion *biometric.AssertionGate, c clock.Clock) biometric.Gate {
	if cfg.BiometricGateMode == config.GateModeReport {
		return biometric.NewReportGate(c)
	}
	return assertion
}

func provideWorkflow(
	biometrics repository.BiometricRepository,
	ledger repository.AttendanceRepository,
	gate biometric.Gate,
	c clock.Clock,
	logger *slog.Logger,
) *workflow.Workflow {
	return workflow.New(biometrics, ledger, gate, c, logger)
}

func provideTokenRevoker(cfg *config.Config, client redis.UniversalClient, c clock.Clock) service.TokenRevoker {
	if cfg.RedisEnabled && client != nil {
		return service.NewRedisTokenRevoker(client, cfg.RedisPrefix, c)
	}
	return service.NewInMemoryTokenRevoker(c)
}

func provideTokenService(cfg *config.Config, jwt *security.JWTManager, revoker service.TokenRevoker) *service.TokenService {
	store := "memory"
	if cfg.RedisEnabled {
		store = "redis"
	}
	return service.NewTokenService(jwt, revoker, cfg.JWTAccessTTL, store)
}

func provideAttendanceService(
	wf *workflow.Workflow,
	gate *biometric.AssertionGate,
	ledger repository.AttendanceRepository,
	c clock.Clock,
) *service.AttendanceService {
	return service.NewAttendanceService(wf, gate, ledger, c)
}

func provideRateLimitBackend(cfg *config.Config, client redis.UniversalClient) middleware.Limiter {
	if cfg.RedisEnabled && client != nil {
		return middleware.NewRedisFixedWindowLimiter(client, cfg.RedisPrefix+":rl")
	}
	return middleware.NewLocalFixedWindowLimiter()
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	attendanceHandler *handler.AttendanceHandler,
	tokens service.TokenServiceInterface,
	limiter middleware.Limiter,
	readiness *health.ProbeRunner,
	logger *slog.Logger,
	cfg *config.Config,
) router.Dependencies {
	return router.Dependencies{
		AuthHandler:               authHandler,
		EmployeeHandler:           employeeHandler,
		AttendanceHandler:         attendanceHandler,
		Tokens:                    tokens,
		Logger:                    logger,
		CORSOrigins:               cfg.CORSAllowedOrigins,
		RateLimitBackend:          limiter,
		APIRateLimitPerMin:        cfg.APIRateLimitPerMin,
		AuthRateLimitPerMin:       cfg.AuthRateLimitPerMin,
		AttendanceRateLimitPerMin: cfg.AttendanceRateLimitPerMin,
		Readiness:                 readiness,
		EnableOTelHTTP:            cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func provideReadinessProbeRunner(cfg *config.Config, c clock.Clock, db *gorm.DB, redisClient redis.UniversalClient) *health.ProbeRunner {
	checkers := []health.Checker{
		health.NewDBChecker(db),
		health.NewSchemaChecker(db),
	}
	if cfg.RedisEnabled {
		checkers = append(checkers, health.NewRedisChecker(redisClient))
	}
	return health.NewProbeRunner(c, cfg.ReadinessProbeTimeout, cfg.ServerStartGracePeriod, checkers...)
}

func provideApp(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
) *app.App {
	return app.New(cfg, logger, server, runtime, db, redisClient)
}
