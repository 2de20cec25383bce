// Command seeder loads a WordNet taxonomy and an information-content file
// into PostgreSQL so that the similarity engine can start from the
// database instead of parsing the files.
// It is intended to be run offline, not as part of the server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run: wordnet, ic (default: all)
//	--dry-run        parse files without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/heartmarshall/wordsim/internal/adapter/postgres"
	"github.com/heartmarshall/wordsim/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/wordsim/internal/app"
	"github.com/heartmarshall/wordsim/internal/app/seeder"
	"github.com/heartmarshall/wordsim/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.TaxonomyBulkRepo = (*lexicon.Repo)(nil)
	_ seeder.TxRunner         = (*postgres.TxManager)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse files without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// App config carries the DB connection and the default file paths.
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config; taxonomy paths fall back to the app config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.WordNetPath == "" {
		seederCfg.WordNetPath = appCfg.Taxonomy.WordNetPath
	}
	if seederCfg.ICPath == "" {
		seederCfg.ICPath = appCfg.Taxonomy.ICPath
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if code := run(ctx, logger, appCfg, *seederCfg, phases); code != 0 {
		stop()
		cancel()
		os.Exit(code)
	}
}

func run(ctx context.Context, logger *slog.Logger, appCfg *config.Config, cfg seeder.Config, phases []string) int {
	var (
		repo seeder.TaxonomyBulkRepo
		txm  seeder.TxRunner
	)

	// A dry run only parses, so it needs no database.
	if !cfg.DryRun {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			return 1
		}
		defer pool.Close()

		if cfg.Migrate {
			applied, err := postgres.MigratePool(ctx, pool)
			if err != nil {
				logger.Error("apply migrations", slog.String("error", err.Error()))
				return 1
			}
			logger.Info("migrations applied", slog.Int("count", applied))
		}

		repo = lexicon.New(pool)
		txm = postgres.NewTxManager(pool)
	}

	pipeline := seeder.NewPipeline(logger, repo, txm, cfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		return 1
	}

	for phase, res := range pipeline.Results() {
		logger.Info("phase summary",
			slog.String("phase", phase),
			slog.Int("inserted", res.Inserted),
			slog.Int("skipped", res.Skipped),
			slog.Int("errors", res.Errors),
			slog.Duration("duration", res.Duration),
		)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		return 1
	}

	logger.Info("pipeline completed successfully")
	return 0
}
