package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sepulka/cmd"
	http_adapter "sepulka/internal/adapters/in/http"
	"sepulka/internal/adapters/out/postgres"
	redis_adapter "sepulka/internal/adapters/out/redis"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.LoadConfig()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(config)
	if err != nil {
		log.Fatalf("Unable to build logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("unable to connect to postgres", zap.Error(err))
	}
	if config.DBAutoMigrate {
		if err = postgres.Migrate(gormDB); err != nil {
			logger.Fatal("unable to migrate schema", zap.Error(err))
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	if err = redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("unable to connect to redis", zap.Error(err), zap.String("address", config.RedisAddr))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	app, err := cmd.NewCompositionRoot(config, gormDB, redis_adapter.NewRevocationStore(redisClient), logger)
	if err != nil {
		logger.Fatal("unable to build application", zap.Error(err))
	}

	if err = app.EnsureStaffUser(ctx); err != nil {
		logger.Fatal("unable to ensure staff user", zap.Error(err))
	}

	openapi, err := http_adapter.LoadOpenAPI()
	if err != nil {
		logger.Fatal("unable to load openapi document", zap.Error(err))
	}

	startWebServer(ctx, app.CreateServer(openapi), config.HTTPPort, logger)
}

func newLogger(config cmd.Config) (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func startWebServer(ctx context.Context, server *http_adapter.Server, port string, logger *zap.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)
	server.Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server stopped", zap.Error(err))
		}
	}()
	logger.Info("http server started", zap.String("port", port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
	logger.Info("http server stopped")
}
