package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fleet-console/internal/config"
	"fleet-console/internal/infrastructure/memstore"
	"fleet-console/internal/logger"
	"fleet-console/internal/routes"
	"fleet-console/internal/telemetry"
	"fleet-console/pkg/mqtt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting fleet console",
		zap.String("environment", env),
	)

	stores := &routes.Stores{
		Registry: memstore.NewDeviceRegistry(memstore.SeedFleet()),
		Commands: memstore.NewCommandLog(),
		Health:   memstore.NewHealthStore(),
	}

	seed := cfg.Simulator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	broker := telemetry.NewBroker(cfg.Stream.SubscriberBuffer)
	simulator := telemetry.NewSimulator(
		stores.Registry,
		stores.Health,
		broker,
		cfg.Simulator.TickInterval,
		seed,
		logger.Logger,
	)
	defer simulator.Stop()

	// Telemetry export over MQTT is opt-in: configured broker URL or nothing.
	if cfg.MQTTEnabled() {
		client := mqtt.NewClient(&mqtt.Config{
			BrokerURL: cfg.MQTT.BrokerURL,
			ClientID:  cfg.MQTT.ClientID,
			Username:  cfg.MQTT.Username,
			Password:  cfg.MQTT.Password,
		}, logger.Logger)
		if err := client.Connect(); err != nil {
			logger.Fatal("Failed to connect to MQTT broker", zap.Error(err))
		}
		defer client.Disconnect()

		exporter := telemetry.NewExporter(broker, client, cfg.MQTT.TopicPrefix, logger.Logger)
		exporter.Start()
		defer exporter.Stop()
	}

	router := routes.SetupRoutes(cfg, stores, simulator, broker)

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:        addr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: telemetry streams are long-lived by design.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	log.Println("Server exited properly")
}
