package main

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"asset-system/internal/routes"
	"asset-system/pkg/config"
	"asset-system/pkg/database/postgresql"
	"asset-system/pkg/logger"
	"asset-system/pkg/utils"
)

func main() {
	cfg := config.New()

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	pool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		zapLogger.Fatal("não foi possível conectar ao Redis", zap.Error(err))
	}
	defer redisClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Validator = utils.NewValidator(validator.New())

	routes.InitRouter(e, pool, redisClient, cfg, zapLogger)

	zapLogger.Info("servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		zapLogger.Fatal("servidor encerrado", zap.Error(err))
	}
}
