// cmd/adoptly/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FairForge/adoptly/internal/api"
	"github.com/FairForge/adoptly/internal/catalog"
	"github.com/FairForge/adoptly/internal/config"
	"github.com/FairForge/adoptly/internal/copilot"
	"github.com/FairForge/adoptly/internal/customer"
	"github.com/FairForge/adoptly/internal/intelligence"
	"github.com/FairForge/adoptly/internal/logger"
	"github.com/FairForge/adoptly/internal/memory"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	config.LoadFromEnv(cfg)

	log, err := logger.New(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Catalog and demo customers
	features := catalog.NewMemoryStore()
	catalog.SeedDefaults(features)

	customers := customer.NewMemoryStore()
	seeded, err := features.List(context.Background())
	if err != nil {
		log.Fatal("failed to load catalog", zap.Error(err))
	}
	customer.SeedDemoCustomers(customers, seeded, cfg.Data.Seed)
	log.Info("seeded demo data",
		zap.Int("features", len(seeded)),
		zap.Int64("seed", cfg.Data.Seed))

	// Engine and agent
	analyzer := intelligence.NewAnalyzer(cfg.Engine, log)
	agent := copilot.NewAgent(customers, features, analyzer, memory.NewStore(), log)

	server := api.NewServer(cfg, log, agent)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("shutdown error", zap.Error(err))
		}
		os.Exit(0)
	}()

	fmt.Printf("\n")
	fmt.Printf("╔══════════════════════════════════════╗\n")
	fmt.Printf("║       Adoptly Server Started         ║\n")
	fmt.Printf("╠══════════════════════════════════════╣\n")
	fmt.Printf("║  API: http://localhost:%-12d  ║\n", cfg.Server.Port)
	fmt.Printf("╚══════════════════════════════════════╝\n")
	fmt.Printf("\n")

	if err := server.Start(); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
