package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibecommerce/vibecart/internal/config"
	"github.com/vibecommerce/vibecart/internal/database"
	"github.com/vibecommerce/vibecart/internal/models"
	"github.com/vibecommerce/vibecart/internal/store/mysql"
)

var dropFirst bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the database schema and seed the product catalog",
	Long: `Creates the storefront tables (products, cart_items, orders) and
populates the catalog with the default products. Seeding is skipped when the
catalog already has products.`,
	RunE: seedCatalog,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
}

func seedCatalog(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		log.Warn().Msg("dropping existing tables")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	st := mysql.New(db)
	catalog := models.DefaultCatalog()
	if err := st.SeedProducts(context.Background(), catalog); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Info().Int("products", len(catalog)).Msg("catalog ready")
	return nil
}
