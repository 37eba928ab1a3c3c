package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ORDERDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 25, cfg.UI.PageSize)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.NotEmpty(t, cfg.Database.Path)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "[database]\npath = \"/tmp/orders.db\"\n\n[ui]\npage_size = 10\ncurrency_symbol = \"€\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("ORDERDECK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/orders.db", cfg.Database.Path)
	require.Equal(t, 10, cfg.UI.PageSize)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("ORDERDECK_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/deck.db"},
		UI:       UIConfig{PageSize: 50, DateFormat: "2006-01-02", CurrencySymbol: "$"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
