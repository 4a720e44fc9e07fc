// ================== cmd/api/main.go ==================
//
// @title Sorte API
// @version 1.0
// @description Student productivity API: courses, tasks and a shared schedule
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	docs "github.com/durvibangera/sorte/docs"
	"github.com/durvibangera/sorte/internal/config"
	"github.com/durvibangera/sorte/internal/database"
	"github.com/durvibangera/sorte/internal/middleware"
	"github.com/durvibangera/sorte/internal/pkg/logger"
	"github.com/durvibangera/sorte/internal/pkg/response"
	"github.com/durvibangera/sorte/internal/routes"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	zlog, err := logger.New(cfg.LogLevel, !cfg.IsProduction())
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer func() { _ = zlog.Sync() }()
	logger.SetGlobal(zlog)

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			zlog.Warn("mongo disconnect", zap.Error(err))
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zlog))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zlog.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("requestId", c.GetString(middleware.ContextRequestID)),
		)
		response.InternalServerError(c, "Internal server error", "INTERNAL_ERROR")
	}))
	router.Use(middleware.CORS(middleware.CORSOptions{
		Origins: middleware.ParseOrigins(cfg.FrontendURL),
		Methods: middleware.RouteMethods(router),
		MaxAge:  12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			response.ServiceUnavailable(c, "Database unreachable", "DB_UNAVAILABLE")
			return
		}
		response.Success(c, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	appCtx, stop := context.WithCancel(context.Background())
	defer stop()

	indexers := routes.SetupRoutes(appCtx, router, db.Database, cfg, zlog)
	if err := db.EnsureIndexes(context.Background(), indexers...); err != nil {
		zlog.Fatal("failed to create indexes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
		return
	}

	zlog.Info("server exited")
}
