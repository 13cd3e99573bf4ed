package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/origin-labs/queryorigin-go/example/sql/internal/config"
	"github.com/origin-labs/queryorigin-go/example/sql/internal/database"
	"github.com/origin-labs/queryorigin-go/example/sql/internal/telemetry"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx := context.Background()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// 1. Setup OpenTelemetry metrics with a Prometheus exporter
	shutdownMetrics, err := telemetry.Setup(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup telemetry")
	}
	defer shutdownMetrics(ctx)

	// 2. Start Prometheus metrics server
	mux := http.NewServeMux()
	mux.Handle("/metrics", telemetry.Handler())
	metricsServer := &http.Server{Addr: config.MetricsPort, Handler: mux}
	go func() {
		log.Info().Str("addr", config.MetricsPort).Msg("starting metrics server")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("metrics server failed")
		}
	}()

	// 3. Open database connection with call-site annotation
	db, err := database.New(log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initial setup
	if err := db.CreateTable(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create table")
	}

	// 4. Perform database operations in a loop
	ticker := time.NewTicker(config.OperationInterval)
	defer ticker.Stop()

	fmt.Println("✅ SQL example app started!")
	fmt.Println("📊 Prometheus metrics: http://localhost:2113/metrics")
	fmt.Println("🔍 Check pg_stat_activity for annotated queries")
	fmt.Println("Press Ctrl+C to stop...")

	for {
		select {
		case <-ticker.C:
			if err := db.InsertUsers(ctx); err != nil {
				log.Error().Err(err).Msg("failed to insert users")
			}
			if err := db.QueryUsers(ctx); err != nil {
				log.Error().Err(err).Msg("failed to query users")
			}
			if _, err := db.CountUsers(ctx); err != nil {
				log.Error().Err(err).Msg("failed to count users")
			}
			if err := db.InsertWithTransaction(ctx); err != nil {
				log.Error().Err(err).Msg("failed transaction")
			}
			log.Info().Msg("database operations completed")

		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("metrics server shutdown error")
			}
			return
		}
	}
}
