package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidstream/pkg/cache"
	"vidstream/pkg/clock"
	"vidstream/pkg/config"
	"vidstream/pkg/database"
	"vidstream/pkg/jwt"
	"vidstream/pkg/logger"
	"vidstream/pkg/metrics"
	"vidstream/pkg/middleware"
	analyticsHTTP "vidstream/services/analytics/internal/controller/http"
	"vidstream/services/analytics/internal/repo/persistent"
	"vidstream/services/analytics/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vidstream/services/analytics/docs" // Swagger docs
)

const serviceName = "analytics"

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithConfig(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With("service", serviceName)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (rate limiting disabled)", err)
		redisClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
	}, nil
}

// Router builds the HTTP surface of the service.
func (a *App) Router() *gin.Engine {
	analyticsRepo := persistent.NewAnalyticsRepository(a.db)
	analyticsUseCase := usecase.NewAnalyticsUseCase(analyticsRepo, clock.Real{}, a.log)
	handler := analyticsHTTP.NewAnalyticsHandler(analyticsUseCase, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.GinMiddleware(serviceName))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(a.jwtService))
	api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute, a.log))
	{
		users := api.Group("/users/:user_id")
		users.GET("/recommendations", handler.Recommend)
		users.GET("/credibility", handler.GetCredibility)
		users.GET("/stats/views", handler.GetYearlyViews)
		users.GET("/stats/favorite-creator", handler.GetFavoriteCreator)
		users.GET("/stats/reactions", handler.GetYearlyReactions)
		users.GET("/stats/average-view-time", handler.GetAverageWatch)

		channels := api.Group("/channels/:channel_id")
		channels.GET("/info", handler.GetChannelInfo)
		channels.GET("/revenue", handler.GetChannelRevenue)
		channels.GET("/strikes/active", handler.GetActiveStrikes)
		channels.GET("/risk", handler.GetChannelRisk)

		api.GET("/videos/:video_id/stats", handler.GetVideoStats)

		moderation := api.Group("/moderation")
		moderation.Use(middleware.RequireRole(middleware.RoleModerator))
		moderation.GET("/channels/risk", handler.GetChannelsRisk)
		moderation.GET("/users/problematic", handler.GetProblematicReporters)
	}

	return r
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Analytics service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down analytics service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Analytics service exited")
	return nil
}
