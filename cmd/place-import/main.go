// Command place-import loads places from a JSON Lines file and rebuilds
// their containment hierarchy, creating placeholder places for
// jurisdictions that are named but not present in the input.
//
// Flags:
//
//	--input          path to the JSON Lines input (overrides import config)
//	--form           place form used to decode "place" text, e.g. "City, County, State, Country"
//	--dry-run        run against an in-memory store without touching the database
//	--reuse          reuse stored places whose title matches
//	--migrate        apply database migrations before importing
//	--print-tree     print the resulting place tree to stdout
//	--import-config  path to import YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/genealogy-backend/internal/app"
	"github.com/heartmarshall/genealogy-backend/internal/app/placeimport"
	"github.com/heartmarshall/genealogy-backend/internal/config"
)

func main() {
	inputFlag := flag.String("input", "", "path to the JSON Lines input")
	formFlag := flag.String("form", "", "place form for decoding place text")
	dryRunFlag := flag.Bool("dry-run", false, "import into memory without writing to the database")
	reuseFlag := flag.Bool("reuse", false, "reuse stored places with a matching title")
	migrateFlag := flag.Bool("migrate", false, "apply database migrations first")
	printTreeFlag := flag.Bool("print-tree", false, "print the resulting place tree")
	importConfigFlag := flag.String("import-config", "", "path to import YAML config file")
	flag.Parse()

	// Load app config (for DB connection and logging).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := placeimport.LoadConfig(*importConfigFlag)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *inputFlag != "" {
		importCfg.InputPath = *inputFlag
	}
	if *formFlag != "" {
		importCfg.Form = *formFlag
	}
	if *dryRunFlag {
		importCfg.DryRun = true
	}
	if *reuseFlag {
		importCfg.ReuseExisting = true
	}

	if importCfg.InputPath == "" {
		logger.Error("no input file: set --input or IMPORT_INPUT_PATH")
		os.Exit(1)
	}

	logger.Info("starting place import",
		slog.String("version", app.BuildVersion()),
		slog.String("input", importCfg.InputPath),
		slog.Bool("dry_run", importCfg.DryRun),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := run(ctx, logger, appCfg, *importCfg, *migrateFlag, *printTreeFlag); err != nil {
		logger.Error("place import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, appCfg *config.Config, cfg placeimport.Config, migrate, printTree bool) error {
	records, stats, err := placeimport.ParseFile(cfg.InputPath, placeimport.ParseForm(cfg.Form), logger)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	logger.Info("input parsed",
		slog.Int("total_lines", stats.TotalLines),
		slog.Int("records", stats.Parsed),
		slog.Int("skipped", stats.Skipped),
		slog.Int("malformed", stats.Malformed),
	)

	var storage *app.Storage
	if cfg.DryRun {
		storage = app.NewMemoryStorage()
	} else {
		storage, err = app.OpenStorage(ctx, logger, appCfg.Database)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
	}
	defer storage.Close()

	if migrate {
		if err := storage.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pipeline := placeimport.NewPipeline(logger, storage.Places, storage.Tx, cfg)
	res, err := pipeline.Run(ctx, records)
	if err != nil {
		return err
	}

	fmt.Printf("import %s: %d records, %d places, %d reused, %d duplicates, %d placeholders, %d linked (%s)\n",
		res.ImportID, res.Records, res.Places, res.Reused, res.Duplicates,
		res.Hierarchy.Created, res.Hierarchy.Linked, res.Duration.Round(time.Millisecond))

	if printTree {
		places, err := storage.Places.List(ctx)
		if err != nil {
			return fmt.Errorf("list places: %w", err)
		}
		writeTree(os.Stdout, places)
	}

	return nil
}
