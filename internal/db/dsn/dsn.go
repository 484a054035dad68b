// Package dsn provides Data Source Name construction for the sqlite database.
package dsn

import (
	"fmt"

	"github.com/windseal/windseal-cms/internal/config"
)

// Create builds the sqlite Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	if cfg.DB.Extras == "" {
		return cfg.DB.Path
	}

	return fmt.Sprintf("%s?%s", cfg.DB.Path, cfg.DB.Extras)
}
