package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/raid-bits/shift-compliance/backend/internal/config"
	"github.com/raid-bits/shift-compliance/backend/internal/repository"
	"github.com/raid-bits/shift-compliance/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var emailDomainName string

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random employees, 2: create today's job document)")
	flag.IntVar(&n, "n", 20, "number of employees to insert")
	flag.StringVar(&emailDomainName, "email-domain", "example.com", "domain for generated employee emails")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// create the database pool
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("could not create the database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool object, it does not connect, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("could not connect to the database", "error", err)
		return
	}

	// create repository
	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("employee count must be positive")
			return
		}
		seed.SeedEmployees(repo, n, emailDomainName)
	case 2:
		location, err := time.LoadLocation(cfg.Scheduler.Timezone)
		if err != nil {
			slog.Error("could not load the scheduler timezone", "error", err)
			return
		}
		seed.SeedTodayJobDocument(repo, location)
	default:
		slog.Error("unknown operation", "op", op)
	}
}
