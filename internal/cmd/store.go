package cmd

import (
	"fmt"

	"github.com/vibecommerce/vibecart/internal/config"
	"github.com/vibecommerce/vibecart/internal/database"
	"github.com/vibecommerce/vibecart/internal/store"
	"github.com/vibecommerce/vibecart/internal/store/memory"
	"github.com/vibecommerce/vibecart/internal/store/mysql"
)

// openStore creates the configured storage backend. The MySQL backend also
// ensures the schema exists; the memory backend starts empty.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return memory.New(), nil

	case config.DriverMySQL:
		db, err := database.NewConnection(&cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.SetupSchema(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to setup schema: %w", err)
		}
		return mysql.New(db), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
