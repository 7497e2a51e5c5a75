package app

import (
	"context"
	"fmt"
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
	"vidstream/pkg/queue"
	notificationHTTP "vidstream/services/notification/internal/controller/http"
	notificationCache "vidstream/services/notification/internal/repo/cache"
	"vidstream/services/notification/internal/repo/persistent"
	"vidstream/services/notification/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const serviceName = "notification"

type App struct {
	cfg          *config.Config
	log          *logger.Logger
	db           *gorm.DB
	redisClient  *redis.Client
	queueClient  *queue.Client
	jwtService   *jwt.Service
	useCase      usecase.NotificationUseCase
	httpServer   *http.Server
	stopConsumer context.CancelFunc
}

// NewApp needs redis, which holds the notifications themselves. RabbitMQ is
// optional: without it the service still serves stored notifications.
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
		log.Error("Failed to connect to redis: %v", err)
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("notification store unavailable: %w", err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (moderation events will not be consumed)", err)
		queueClient = nil
	}

	useCase := usecase.NewNotificationUseCase(
		persistent.NewRecipientRepository(db),
		notificationCache.NewNotificationStore(redisClient),
		clock.Real{},
		log,
	)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		useCase:     useCase,
	}, nil
}

func (a *App) Router() *gin.Engine {
	handler := notificationHTTP.NewNotificationHandler(a.useCase, a.log)

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

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(a.jwtService))
	api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute, a.log))
	{
		api.GET("/notifications", handler.GetNotifications)
	}

	return r
}

func (a *App) Run() error {
	if a.queueClient != nil {
		ctx, cancel := context.WithCancel(context.Background())
		a.stopConsumer = cancel
		if err := a.queueClient.ConsumeModerationEvents(ctx, a.useCase.HandleModerationEvent); err != nil {
			cancel()
			return err
		}
	}

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Notification service starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down notification service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.stopConsumer != nil {
		a.stopConsumer()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.log.Error("Error closing Redis: %v", err)
	}

	a.log.Info("Notification service exited")
	return nil
}
