package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-console/internal/repo"
)

// chdir changes into dir for the duration of the test; t.Chdir is
// unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Limits.NameMinLen)
	assert.Equal(t, 50, cfg.Limits.NameMaxLen)
	assert.True(t, cfg.Limits.MaxPrice.Equal(decimal.RequireFromString("999999.99")))
	assert.Equal(t, 99999, cfg.Limits.MaxStock)

	assert.Len(t, cfg.Seed.Names, 4)
	assert.Equal(t, "Pantalones", cfg.Seed.Names[1])
	assert.Equal(t, 350.00, cfg.Seed.Prices[4])
	assert.Equal(t, 30, cfg.Seed.Stocks[3])
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := `limits:
  name_max_length: 10
  max_stock: 500
seed:
  - id: 7
    name: Gorras
    price: 25.50
    stock: 12
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.yaml"), []byte(cfgFile), 0o644))
	chdir(t, dir)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Limits.NameMaxLen)
	assert.Equal(t, 500, cfg.Limits.MaxStock)
	assert.Equal(t, 1, cfg.Limits.NameMinLen, "unset keys keep their defaults")
	assert.Equal(t, repo.Seed{
		Names:  map[repo.ProductID]string{7: "Gorras"},
		Prices: map[repo.ProductID]float64{7: 25.50},
		Stocks: map[repo.ProductID]int{7: 12},
	}, cfg.Seed)
}

func TestLoad_SeedBuildsAWorkingStore(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)

	store, err := repo.NewSeededProductRepository(cfg.Limits, cfg.Seed)

	require.NoError(t, err)
	entries := store.List()
	require.Len(t, entries, 4)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, "Pantalones", entries[0].Product.Name)
	assert.Equal(t, "200.00", entries[0].Product.Price.StringFixed(2))

	id, err := store.Add("Gorras", "25.50", "12")
	require.NoError(t, err)
	assert.Equal(t, 5, id)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.yaml"), []byte("limits: ["), 0o644))
	chdir(t, dir)

	_, err := Load()

	assert.Error(t, err)
}
