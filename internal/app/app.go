package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gigmarket_backend/internal/config"
	"gigmarket_backend/internal/handlers"
	"gigmarket_backend/internal/logger"
	"gigmarket_backend/internal/middleware"
	"gigmarket_backend/internal/models"
	"gigmarket_backend/internal/routes"
	"gigmarket_backend/internal/services"
	"gigmarket_backend/ws"
)

// Run - точка входа приложения: конфиг, БД, хаб, роутер, graceful shutdown
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := connectDatabase(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	wsManager := ws.NewWebSocketManager()
	go wsManager.Run()
	defer wsManager.Stop()

	router := SetupRouter(db, wsManager)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// SetupRouter собирает gin-движок со всем middleware и маршрутами.
// Вынесен отдельно, чтобы интеграционные тесты могли поднять роутер
// на собственной БД без запуска сервера.
func SetupRouter(db *gorm.DB, wsManager *ws.WebSocketManager) *gin.Engine {
	cfg := config.GetConfig()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigin))
	router.Use(middleware.DBMiddleware(db))

	serviceContainer := services.NewServiceContainer(db, wsManager)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	routes.SetupRoutes(router, appHandlers, wsManager)
	return router
}

func connectDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Bid{},
		&models.Notification{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
