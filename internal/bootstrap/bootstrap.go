package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/emre/unifolio/docs" // generated swagger docs
	appControllers "github.com/emre/unifolio/internal/app/controllers"
	appMigrations "github.com/emre/unifolio/internal/app/migrations"
	appRepos "github.com/emre/unifolio/internal/app/repositories"
	appRoutes "github.com/emre/unifolio/internal/app/routes"
	appServices "github.com/emre/unifolio/internal/app/services"
	"github.com/emre/unifolio/internal/config"
	"github.com/emre/unifolio/internal/db"
	appMiddleware "github.com/emre/unifolio/internal/middleware"
	pkgAuth "github.com/emre/unifolio/internal/pkg/auth"
	"github.com/emre/unifolio/internal/pkg/logger"
	"github.com/emre/unifolio/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	SessionService      appServices.SessionService
	ProfileService      appServices.ProfileService
	DirectoryService    appServices.DirectoryService
	AuthController      *appControllers.AuthController
	PageController      *appControllers.PageController
	ProfileController   *appControllers.ProfileController
	DirectoryController *appControllers.DirectoryController
	SessionMiddleware   *appMiddleware.SessionMiddleware
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the programme catalogue.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// The app can run with an empty catalogue; log and continue.
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	sessionMaxAge, err := cfg.SessionMaxAge()
	if err != nil {
		return nil, fmt.Errorf("invalid session max age: %w", err)
	}

	signer := pkgAuth.NewCookieSigner(cfg.Session.Secret)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, lgr)
	deps.SessionService = appServices.NewSessionService(
		deps.Repos.SessionRepository,
		deps.Repos.UserRepository,
		sessionMaxAge,
		lgr,
	)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.UserRepository)
	deps.DirectoryService = appServices.NewDirectoryService(
		deps.Repos.UserRepository,
		deps.Repos.ProgrammeRepository,
	)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(
		deps.SessionService,
		signer,
		cfg.Session.CookieName,
	)

	deps.AuthController = appControllers.NewAuthController(
		deps.AuthService,
		deps.SessionService,
		signer,
		cfg.Session.CookieName,
		sessionMaxAge,
		lgr,
	)
	deps.PageController = appControllers.NewPageController(deps.ProfileService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.DirectoryService)

	return deps, nil
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

	router := gin.Default()

	// Form and JSON bodies share the configured ceiling.
	router.Use(appMiddleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// HTML views and static assets
	router.LoadHTMLGlob(filepath.Join("web", "templates", "*.tmpl"))
	router.Static("/static", filepath.Join("web", "static"))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PageController,
		deps.ProfileController,
		deps.DirectoryController,
		deps.SessionMiddleware,
	)

	return router
}
