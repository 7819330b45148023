package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/ielts-mock/config"
	"github.com/lshigami/ielts-mock/database"
	_ "github.com/lshigami/ielts-mock/docs"
	"github.com/lshigami/ielts-mock/internal/cache"
	"github.com/lshigami/ielts-mock/internal/clock"
	adminctrl "github.com/lshigami/ielts-mock/internal/controller/admin"
	userctrl "github.com/lshigami/ielts-mock/internal/controller/user"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/logger"
	"github.com/lshigami/ielts-mock/internal/middleware"
	"github.com/lshigami/ielts-mock/internal/model"
	"github.com/lshigami/ielts-mock/internal/repository"
	"github.com/lshigami/ielts-mock/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title IELTS Mock Exam API
// @version 1.0
// @description Section-by-section IELTS mock exams: listening, reading and writing attempts with teacher grading.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	app := fx.New(
		// Core
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			cache.NewRedisClient,
			cache.NewContentCache,
			clock.NewReal,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewStore,
		),

		// Services
		fx.Provide(
			service.NewScoreConverterService,
			service.NewUserTestService,
			service.NewAdminTestService,
			service.NewSectionService,
			service.NewAttemptService,
			service.NewGradingService,
		),

		// Controllers and middleware
		fx.Provide(
			middleware.NewAuthenticator,
			userctrl.NewUserTestController,
			userctrl.NewSectionController,
			userctrl.NewAttemptController,
			adminctrl.NewAdminTestController,
			adminctrl.NewGradingController,
		),

		fx.Invoke(InitLogger),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(CloseRedisOnStop),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func InitLogger(cfg *config.Config) {
	logger.Init(cfg.AppEnv, cfg.LogLevel)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth *middleware.Authenticator,
	userTestCtrl *userctrl.UserTestController,
	sectionCtrl *userctrl.SectionController,
	attemptCtrl *userctrl.AttemptController,
	adminTestCtrl *adminctrl.AdminTestController,
	gradingCtrl *adminctrl.GradingController,
) {
	staff := middleware.RequireRole(identity.RoleTeacher, identity.RoleAdmin)

	api := router.Group("/api/v1", auth.RequireAuth())
	{
		userTestCtrl.RegisterRoutes(api)
		sectionCtrl.RegisterRoutes(api)
		attemptCtrl.RegisterRoutes(api)
		gradingCtrl.RegisterRoutes(api, staff)
	}
	adminAPI := api.Group("/admin", staff)
	{
		adminTestCtrl.RegisterRoutes(adminAPI)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("IELTS mock API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// CloseRedisOnStop releases the cache client. A nil client means the cache is
// disabled.
func CloseRedisOnStop(lc fx.Lifecycle, client *redis.Client) {
	if client == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Warn().Err(err).Msg("Redis not reachable, content cache falls back to the database")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Test{},
		&model.ListeningSection{},
		&model.ListeningQuestion{},
		&model.ReadingPassage{},
		&model.ReadingQuestion{},
		&model.WritingTask{},
		&model.TestAttempt{},
		&model.ListeningAnswer{},
		&model.ReadingAnswer{},
		&model.WritingSubmission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
