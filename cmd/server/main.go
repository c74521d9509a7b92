package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shortlink-core/internal/config"
	"shortlink-core/internal/handler"
	"shortlink-core/internal/middleware"
	"shortlink-core/pkg/database"
	"shortlink-core/pkg/logger"
	"shortlink-core/pkg/redis"

	_ "shortlink-core/docs"

	"github.com/gin-gonic/gin"
	redisClient "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title shortlink-core API
// @version 1.0
// @description Core service of the URL shortener: admin CRUD plus the internal sync endpoints used by the edge/redirector service.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-token
func main() {
	logger.InitLogger()
	defer func() {
		if err := logger.Logger.Sync(); err != nil {
			fmt.Println("log sync failed:", err)
		}
	}()
	sugaredLogger := zap.S()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		sugaredLogger.Fatalf("config load failed: %v", err)
	}

	db, err := database.InitMySQL(cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		sugaredLogger.Fatalf("database initialization failed: %v", err)
	}
	sugaredLogger.Info("database connection: success")
	sugaredLogger.Info("database schema: synced")

	var rdb *redisClient.Client
	if cfg.Cache.Host != "" {
		rdb, err = redis.NewClient(&redis.Config{
			Host: cfg.Cache.Host, Port: cfg.Cache.Port, Password: cfg.Cache.Password, DB: cfg.Cache.DB,
		})
		if err != nil {
			sugaredLogger.Warnf("redis connection failed: %v", err)
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					sugaredLogger.Errorf("closing redis connection failed: %v", err)
				}
			}()
			sugaredLogger.Info("redis connection: success")
		}
	}

	if cfg.App.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZapRecovery(logger.Logger, true))
	router.Use(middleware.GinZapLogger(logger.Logger))
	router.Use(middleware.RateLimit(rdb, &cfg.RateLimit))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	adminHandler := handler.NewAdminHandler(db)
	syncHandler := handler.NewSyncHandler(db)
	tokenAuth := middleware.APITokenAuth(db)

	registerRoutes(router, adminHandler, syncHandler, tokenAuth)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	sugaredLogger.Infof("core service running on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugaredLogger.Fatalf("server startup failed: %v", err)
	}
}

func registerRoutes(
	router *gin.Engine,
	adminHandler *handler.AdminHandler,
	syncHandler *handler.SyncHandler,
	tokenAuth gin.HandlerFunc,
) {
	router.GET("/health", adminHandler.HealthCheck)

	// The admin surface carries no auth guard; it is assumed to be reachable
	// only from the private network. See DESIGN.md before changing this.
	admin := router.Group("/admin")
	{
		admin.POST("/tokens", adminHandler.CreateToken)
		admin.POST("/domains", adminHandler.CreateDomain)
		admin.POST("/paths", adminHandler.CreatePath)
		admin.GET("/history/:path_id", adminHandler.GetAccessHistory)
	}

	internal := router.Group("/internal")
	internal.Use(tokenAuth)
	{
		internal.GET("/sync/paths", syncHandler.ListActivePaths)
		internal.POST("/sync/logs", syncHandler.IngestLogs)
	}
}
