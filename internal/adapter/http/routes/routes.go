package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "os-service-api/docs" // This will be auto-generated
	"os-service-api/internal/adapter/http/handlers"
	"os-service-api/internal/infrastructure/config"
	"os-service-api/internal/infrastructure/logger"
	"os-service-api/internal/infrastructure/metrics"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router *gin.Engine

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	if cfg.App.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	router = gin.New()
	setMiddlewares(zl, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	deps, err := buildDependencies(ctx, cfg, m)
	if err != nil {
		zl.Fatal("[bootstrap] failed to build dependencies", zap.Error(err))
	}
	defer deps.Close()

	getRoutes(deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("[bootstrap] listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("[bootstrap] failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("[bootstrap] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("[bootstrap] graceful shutdown failed", zap.Error(err))
	}
}

func getRoutes(deps *dependencies) {
	v1 := router.Group("/v1")

	// Rotas publicas
	addPingRoutes(v1)
	addAuthRoutes(v1, deps.authHandler)

	protected := v1.Group("", handlers.RequireAuth(deps.authUseCase))
	addServiceOrderRoutes(protected, deps.serviceOrderHandler)
	addCatalogRoutes(protected, deps)
}

func setMiddlewares(zl *zap.Logger, m *metrics.Metrics) {
	router.Use(logger.GinMiddleware(zl))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("[http] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(m.Middleware())
}
