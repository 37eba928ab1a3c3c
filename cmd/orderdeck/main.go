package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/orderdeck/internal/config"
	"github.com/jask/orderdeck/internal/database"
	"github.com/jask/orderdeck/internal/database/repository"
	"github.com/jask/orderdeck/internal/prefs"
	"github.com/jask/orderdeck/internal/service"
	"github.com/jask/orderdeck/internal/tui"
)

var version = "dev"

func main() {
	if err := execute(); err != nil {
		log.Fatal(err)
	}
}

func execute() error {
	var migrationsPath string

	root := &cobra.Command{
		Use:   "orderdeck",
		Short: "Terminal console for order fulfillment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), migrationsPath)
		},
	}
	root.PersistentFlags().StringVar(&migrationsPath, "migrations", "internal/database/migrations", "path to migration files")

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty database with demo orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(migrationsPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.SeedDemo(cmd.Context(), db); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Println("demo data seeded")
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the orderdeck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("orderdeck", version)
		},
	}

	root.AddCommand(seed, versionCmd)
	return root.ExecuteContext(context.Background())
}

func openStore(migrationsPath string) (config.Config, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return config.Config{}, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, migrationsPath); err != nil {
		return config.Config{}, nil, fmt.Errorf("migrate: %w", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("open db: %w", err)
	}
	return cfg, db, nil
}

func runTUI(ctx context.Context, migrationsPath string) error {
	cfg, db, err := openStore(migrationsPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := prefs.NewStore("")
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	repos := tui.Repos{
		Orders: repository.NewOrderRepo(db),
		Media:  repository.NewMediaRepo(db),
	}
	fulfillment := service.NewFulfillmentService(repos.Orders)

	app := tui.New(ctx, cfg, repos, fulfillment, store)
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
