package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/campushub/internal/app/controllers"
	appMigrations "github.com/yigit/campushub/internal/app/migrations"
	appRepos "github.com/yigit/campushub/internal/app/repositories"
	appRoutes "github.com/yigit/campushub/internal/app/routes"
	appServices "github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/app/simulator"
	"github.com/yigit/campushub/internal/app/state"
	"github.com/yigit/campushub/internal/config"
	"github.com/yigit/campushub/internal/db"
	appMiddleware "github.com/yigit/campushub/internal/middleware"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/campushub/internal/pkg/auth"
	"github.com/yigit/campushub/internal/pkg/helpers"
	"github.com/yigit/campushub/internal/pkg/kvstore"
	"github.com/yigit/campushub/internal/pkg/logger"
	"github.com/yigit/campushub/internal/pkg/metrics"
	"github.com/yigit/campushub/internal/pkg/validation"
	"github.com/yigit/campushub/internal/pkg/websocket"
	"github.com/yigit/campushub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store     kvstore.Store
	State     *state.AppState
	Metrics   *metrics.Metrics
	Hub       *websocket.Hub
	Frames    *websocket.MessageHandler
	Simulator *simulator.Simulator

	ChatService        appServices.ChatService
	MarketplaceService appServices.MarketplaceService
	QnAService         appServices.QnAService
	ModerationService  appServices.ModerationService
	NavigationService  appServices.NavigationService
	DataService        appServices.DataService

	App       appRoutes.AppControllers
	WSHandler *websocket.Handler

	// Set only when the identity database is enabled
	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Identity   *appRoutes.IdentityControllers

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  strings.ToLower(cfg.Logging.Format) == "text",
		Service: "campushub",
	})

	lgr.Info().Str("logLevel", logLevel.String()).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to the identity database, runs migrations and
// creates the default admin. It returns nil when the database is disabled.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if !cfg.Database.Enabled {
		lgr.Info().Msg("Identity database disabled; auth and profile routes are not mounted")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, database.Pool, cfg.Identity.AdminPhone, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// OpenStore opens the configured key-value backend for the persisted state.
func OpenStore(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (kvstore.Store, error) {
	storeLogger := logger.WithComponent(lgr, "kvstore")
	ns := cfg.Store.Namespace

	switch strings.ToLower(cfg.Store.Backend) {
	case config.StoreBackendMemory:
		lgr.Warn().Msg("Using in-memory state store; data is lost on restart")
		return kvstore.NewMemoryStore(), nil
	case config.StoreBackendPebble:
		return kvstore.NewPebbleStore(cfg.Store.Path, ns, storeLogger)
	case config.StoreBackendRedis:
		return kvstore.NewRedisStore(cfg.Store.RedisURL, ns, storeLogger)
	case config.StoreBackendPostgres:
		if database == nil {
			return nil, fmt.Errorf("the postgres store backend requires the identity database")
		}
		return kvstore.NewPostgresStore(database.Pool, ns), nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}

// BuildDependencies initializes the application state, services and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, store kvstore.Store, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: store}

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
	}

	stateRepo := appRepos.NewStateRepository(store, lgr, deps.Metrics)
	deps.State = state.New(stateRepo, seed.NewStaticProvider(time.Now), time.Now, lgr, deps.Metrics)
	if err := deps.State.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize application state: %w", err)
	}

	deps.Hub = websocket.NewHub(lgr)

	limiter := appServices.NewChatLimiter(cfg.Chat.RatePerSecond, cfg.Chat.Burst)
	deps.ChatService = appServices.NewChatService(deps.State, deps.Hub, limiter, lgr)
	deps.Frames = websocket.NewMessageHandler(deps.ChatService, apperrors.MessageOf, deps.Hub, lgr)
	deps.WSHandler = websocket.NewHandler(deps.Hub, cfg.Server.CurrentUserID, lgr)

	deps.Simulator = simulator.New(simulator.Config{
		Period:      helpers.ParseDuration(cfg.Simulator.Interval, 15*time.Second),
		Probability: cfg.Simulator.Probability,
		Phrases:     seed.ChatPhrases,
	}, deps.State, deps.ChatService, lgr, simulator.WithMetrics(deps.Metrics))

	deps.NavigationService = appServices.NewNavigationService(deps.State, deps.Simulator, lgr)
	deps.MarketplaceService = appServices.NewMarketplaceService(deps.State, lgr)
	deps.QnAService = appServices.NewQnAService(deps.State, lgr)
	deps.ModerationService = appServices.NewModerationService(deps.State, lgr)
	deps.DataService = appServices.NewDataService(deps.State, deps.NavigationService, lgr)

	deps.App = appRoutes.AppControllers{
		Page:        appControllers.NewPageController(deps.NavigationService),
		Chat:        appControllers.NewChatController(deps.ChatService, deps.NavigationService),
		Marketplace: appControllers.NewMarketplaceController(deps.MarketplaceService, deps.NavigationService),
		QnA:         appControllers.NewQnAController(deps.QnAService, deps.NavigationService),
		Moderation:  appControllers.NewModerationController(deps.ModerationService, deps.NavigationService),
		Data:        appControllers.NewDataController(deps.DataService),
	}

	if database != nil {
		buildIdentity(cfg, database, deps)
	}

	return deps, nil
}

func buildIdentity(cfg *config.Config, database *db.PostgresDB, deps *Dependencies) {
	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(
		deps.Repos.ProfileRepository,
		deps.Repos.OTPRepository,
		appServices.LogOTPSender{Logger: deps.Logger},
		deps.JWTService,
		appServices.AuthConfig{
			OTPTTL:      helpers.ParseDuration(cfg.Identity.OTPTTL, 5*time.Minute),
			OTPLength:   cfg.Identity.OTPLength,
			MaxAttempts: cfg.Identity.MaxOTPAttempts,
		},
		deps.Logger,
	)
	profileService := appServices.NewProfileService(deps.Repos.ProfileRepository, deps.Repos.RoleRepository, deps.Logger)

	deps.Identity = &appRoutes.IdentityControllers{
		Auth:           appControllers.NewAuthController(authService, deps.Logger),
		Profile:        appControllers.NewProfileController(profileService),
		AuthMiddleware: appMiddleware.NewAuthMiddleware(deps.JWTService),
	}
}

// Start launches the websocket hub and frame processing until ctx is done.
func (d *Dependencies) Start(ctx context.Context) {
	go d.Hub.Run(ctx)
	d.Frames.Start(ctx)
}

// Close stops the simulator and closes the state store.
func (d *Dependencies) Close() error {
	d.Simulator.Close()
	if err := d.Store.Close(); err != nil {
		d.Logger.Error().Err(err).Msg("Failed to close state store")
		return err
	}
	return nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.RegisterGinRules()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))
	if deps.Metrics != nil {
		router.Use(appMiddleware.Metrics(deps.Metrics))
		router.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.App, deps.WSHandler, deps.Identity)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
