package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rcastellanos/malla/internal/cli"
	"github.com/rcastellanos/malla/internal/db"
	"github.com/rcastellanos/malla/internal/planfile"
	"github.com/rcastellanos/malla/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine journal DB path: env var or default ~/.malla/malla.db
	dbPath := os.Getenv("MALLA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".malla", "malla.db")
	}

	// Determine plan directory
	planDir := os.Getenv("MALLA_PLANES")
	if planDir == "" {
		// Check for ./planes in current directory first (development)
		if stat, err := os.Stat("./planes"); err == nil && stat.IsDir() {
			planDir = "./planes"
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			planDir = filepath.Join(home, ".malla", "planes")
		}
	}

	// Open progress journal
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	store := planfile.NewStore(planDir)

	plans := service.NewPlanService(store)
	app := &cli.App{
		Plans:    plans,
		Progress: service.NewProgressService(plans, uow),
	}

	// Detect interactive terminal for the tracker entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
