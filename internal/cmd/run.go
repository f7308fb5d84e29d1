package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibecommerce/vibecart/internal/config"
	"github.com/vibecommerce/vibecart/internal/models"
	"github.com/vibecommerce/vibecart/internal/server"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront server",
	Long: `Start the storefront server which provides:
- REST API for catalog, cart and checkout
- Embedded single-page shop client
- One-time catalog seeding when the store is empty`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	log.Info().Str("driver", cfg.Store.Driver).Msg("store ready")

	if err := st.SeedProducts(context.Background(), models.DefaultCatalog()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	srv := server.NewServer(&cfg.Server, st, log)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
