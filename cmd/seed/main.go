package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ceilingworks/erp/internal/infrastructure/config"
	"github.com/ceilingworks/erp/internal/infrastructure/logger"
	"github.com/ceilingworks/erp/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	counts := DefaultCounts()
	var (
		seed     uint64
		logLevel string
	)

	flag.IntVar(&counts.Customers, "customers", counts.Customers, "Number of customers")
	flag.IntVar(&counts.Employees, "employees", counts.Employees, "Number of employees")
	flag.IntVar(&counts.Facilities, "facilities", counts.Facilities, "Number of facilities (three zones each)")
	flag.IntVar(&counts.Materials, "materials", counts.Materials, "Number of materials")
	flag.IntVar(&counts.Orders, "orders", counts.Orders, "Number of customer orders")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 picks a random one)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if db.Driver == "sqlite" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	s := newSeeder(persistence.NewRepositories(db.DB), seed, log)
	if _, err := s.Run(context.Background(), counts); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}
