package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"dicebet/config"
	"dicebet/database"
	"dicebet/logger"
	"dicebet/metrics"
	"dicebet/routes"
	"dicebet/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel, cfg.Env); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatalw("failed to connect database", "error", err)
	}

	rdb := database.NewRedis(cfg)

	var brokers []string
	if cfg.KafkaBrokers != "" {
		brokers = strings.Split(cfg.KafkaBrokers, ",")
	}
	events := services.NewEventPublisher(services.NewKafkaWriter(brokers, cfg.KafkaTopic))
	defer events.Close()

	auth := services.NewAuthService(db, cfg.JWTSecret, time.Duration(cfg.TokenTTLHrs)*time.Hour)
	engine := services.NewBetService(db, nil, events)
	profile := services.NewProfileService(db)

	app := fiber.New()
	routes.Setup(app, cfg, db, rdb, auth, engine, profile)

	metricsSrv := metrics.StartServer(cfg.MetricsPort, func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	logger.Log.Infow("server running", "addr", addr, "metrics_port", cfg.MetricsPort)

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Log.Fatalw("failed to start server", "error", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Log.Info("gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		logger.Log.Errorw("server forced to shutdown", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
	logger.Log.Info("server exited cleanly")
}
