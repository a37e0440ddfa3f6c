package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mukeshkdas03/hostel-management-system/config"
	"github.com/mukeshkdas03/hostel-management-system/database"
	"github.com/mukeshkdas03/hostel-management-system/handlers"
	"github.com/mukeshkdas03/hostel-management-system/logger"
	"github.com/mukeshkdas03/hostel-management-system/routes"
	"github.com/mukeshkdas03/hostel-management-system/services"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	st, err := buildStore(cfg, zlog)
	if err != nil {
		zlog.Fatal("store init failed", zap.Error(err))
	}

	notifier, err := buildNotifier(cfg, zlog)
	if err != nil {
		zlog.Fatal("notifier init failed", zap.Error(err))
	}

	otp, err := buildOTP(cfg)
	if err != nil {
		zlog.Fatal("otp issuer init failed", zap.Error(err))
	}

	authSvc := services.NewAuthService(st)
	studentSvc := services.NewStudentService(st)
	messSvc := services.NewMessService(st, notifier, zlog)
	hostelSvc := services.NewHostelService(st, studentSvc, notifier, zlog)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authSvc, otp, cfg.JWTSecret, zlog),
		Student: handlers.NewStudentHandler(studentSvc, messSvc),
		Mess:    handlers.NewMessHandler(messSvc, studentSvc),
		Hostel:  handlers.NewHostelHandler(hostelSvc),
		Health:  handlers.NewHealthHandler(),
	}, cfg.JWTSecret)

	addr := ":" + cfg.AppPort
	zlog.Info("server listening", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func buildStore(cfg *config.Config, zlog *zap.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		gs := store.NewGormStore(db)
		empty, err := gs.Empty()
		if err != nil {
			return nil, err
		}
		if empty {
			zlog.Info("seeding empty database")
			if err := store.Seed(gs); err != nil {
				return nil, err
			}
		}
		return gs, nil
	default:
		ms := store.NewMemoryStore()
		if err := store.Seed(ms); err != nil {
			return nil, err
		}
		return ms, nil
	}
}

func buildNotifier(cfg *config.Config, zlog *zap.Logger) (services.NotificationSender, error) {
	if cfg.Notifier == "amqp" {
		return services.NewAMQPNotifier(cfg.AMQPURL, cfg.NotifyQueue, zlog)
	}
	return services.NewLogNotifier(zlog), nil
}

func buildOTP(cfg *config.Config) (services.OTPIssuer, error) {
	if cfg.OTPDriver == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		return services.NewRedisOTP(client), nil
	}
	return services.StaticOTP{}, nil
}
