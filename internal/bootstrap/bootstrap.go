package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/petmily/petmily-api/internal/app/controllers"
	appMigrations "github.com/petmily/petmily-api/internal/app/migrations"
	appRepos "github.com/petmily/petmily-api/internal/app/repositories"
	appRoutes "github.com/petmily/petmily-api/internal/app/routes"
	appServices "github.com/petmily/petmily-api/internal/app/services"
	"github.com/petmily/petmily-api/internal/config"
	"github.com/petmily/petmily-api/internal/db"
	appMiddleware "github.com/petmily/petmily-api/internal/middleware"
	pkgAuth "github.com/petmily/petmily-api/internal/pkg/auth"
	"github.com/petmily/petmily-api/internal/pkg/filestorage"
	"github.com/petmily/petmily-api/internal/pkg/helpers"
	"github.com/petmily/petmily-api/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UserService          appServices.UserService
	VolunteerService     appServices.VolunteerService
	RestaurantService    appServices.RestaurantService
	PostService          appServices.PostService
	AttendanceService    appServices.AttendanceService
	UploadService        appServices.UploadService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	VolunteerController  *appControllers.VolunteerController
	RestaurantController *appControllers.RestaurantController
	PostController       *appControllers.PostController
	AttendanceController *appControllers.AttendanceController
	UploadController     *appControllers.UploadController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	FileStorage          *filestorage.LocalStorage
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env is optional
	_ = godotenv.Load()

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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// Sweep refresh tokens that expired before this boot
	if removed, err := deps.Repos.TokenRepository.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to sweep expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Swept expired refresh tokens")
	}

	// File storage base URL must match the static file serving path
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.VolunteerParticipantRepository,
		deps.Repos.PostRepository,
		deps.Repos.AttendanceRepository,
		lgr,
	)
	deps.VolunteerService = appServices.NewVolunteerService(
		deps.Repos.VolunteerRepository,
		deps.Repos.VolunteerParticipantRepository,
		lgr,
	)
	deps.RestaurantService = appServices.NewRestaurantService(deps.Repos.RestaurantRepository, lgr)
	deps.PostService = appServices.NewPostService(deps.Repos.PostRepository, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, lgr)
	deps.UploadService = appServices.NewUploadService(deps.FileStorage, cfg.MaxFileSizeBytes(), lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.VolunteerController = appControllers.NewVolunteerController(deps.VolunteerService, lgr)
	deps.RestaurantController = appControllers.NewRestaurantController(deps.RestaurantService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, lgr)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService, lgr)
	deps.UploadController = appControllers.NewUploadController(deps.UploadService, lgr)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.VolunteerController,
		deps.RestaurantController,
		deps.PostController,
		deps.AttendanceController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
