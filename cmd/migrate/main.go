// cmd/migrate/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"invoice-dao/internal/config"
	"invoice-dao/internal/util"
	"invoice-dao/pkg/db"
)

const usage = "usage: migrate up|down|status|version"

func main() {
	os.Exit(run(os.Args))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
	command := args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	logger := util.InitLogger(cfg.Env, cfg.LogLevel).With().
		Str("run_id", uuid.NewString()).
		Str("command", command).
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	database, err := db.NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return 1
	}
	defer database.Close()

	start := time.Now()
	if err := db.Migrate(ctx, database.DB, command, logger); err != nil {
		logger.Error().Err(err).Msg("migration failed")
		return 1
	}
	logger.Info().Dur("duration", time.Since(start)).Msg("migration finished")
	return 0
}
