// Package config loads the runtime configuration: validation limits and the
// seed the store is populated with at startup.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/rogerio-castellano/inventory-console/internal/models"
	"github.com/rogerio-castellano/inventory-console/internal/repo"
)

// Config is the full runtime configuration.
type Config struct {
	Limits models.Limits
	Seed   repo.Seed
}

// seedProduct is the on-file shape of one seed entry.
type seedProduct struct {
	ID    int     `mapstructure:"id"`
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
	Stock int     `mapstructure:"stock"`
}

// Load reads inventory.yaml from the working directory when present and
// falls back to built-in defaults otherwise. Environment variables prefixed
// with INVENTORY_ override file values.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("inventory")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := models.DefaultLimits()
	v.SetDefault("limits.name_min_length", defaults.NameMinLen)
	v.SetDefault("limits.name_max_length", defaults.NameMaxLen)
	v.SetDefault("limits.max_price", defaults.MaxPrice.InexactFloat64())
	v.SetDefault("limits.max_stock", defaults.MaxStock)
	v.SetDefault("seed", defaultSeedProducts())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Limits: models.Limits{
			NameMinLen: v.GetInt("limits.name_min_length"),
			NameMaxLen: v.GetInt("limits.name_max_length"),
			// The price and stock floors are fixed at zero; only the
			// upper bounds and name lengths are configurable.
			MinPrice: decimal.Zero,
			MaxPrice: decimal.NewFromFloat(v.GetFloat64("limits.max_price")),
			MinStock: 0,
			MaxStock: v.GetInt("limits.max_stock"),
		},
	}

	var products []seedProduct
	if err := v.UnmarshalKey("seed", &products); err != nil {
		return Config{}, fmt.Errorf("decoding seed: %w", err)
	}

	cfg.Seed = repo.Seed{
		Names:  make(map[repo.ProductID]string, len(products)),
		Prices: make(map[repo.ProductID]float64, len(products)),
		Stocks: make(map[repo.ProductID]int, len(products)),
	}
	for _, p := range products {
		cfg.Seed.Names[p.ID] = p.Name
		cfg.Seed.Prices[p.ID] = p.Price
		cfg.Seed.Stocks[p.ID] = p.Stock
	}
	return cfg, nil
}

// defaultSeedProducts is the sample catalogue the session starts with when
// no config file provides one.
func defaultSeedProducts() []map[string]any {
	return []map[string]any{
		{"id": 1, "name": "Pantalones", "price": 200.00, "stock": 50},
		{"id": 2, "name": "Camisas", "price": 120.00, "stock": 45},
		{"id": 3, "name": "Corbatas", "price": 50.00, "stock": 30},
		{"id": 4, "name": "Casacas", "price": 350.00, "stock": 15},
	}
}
