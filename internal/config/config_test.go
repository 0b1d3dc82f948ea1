package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap"
)

func TestLoadDefaults(t *testing.T) {
	testChdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, gdpmap.DefaultGDPInfo(), cfg.GDP)
	assert.Equal(t, gdpmap.DefaultYearList(), cfg.Years)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, "embedded", cfg.Names)
	assert.Equal(t, gdpmap.DuplicateLastWins, cfg.DuplicatePolicy())
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	content := `
gdp:
  gdpfile: data/gdp.tsv
  separator: "\t"
  quote: "'"
  country_name: Country
years: ["1990", "2000"]
format: png
strict: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "data/gdp.tsv", cfg.GDP.GDPFile)
	assert.Equal(t, "\t", cfg.GDP.Separator)
	assert.Equal(t, "'", cfg.GDP.Quote)
	assert.Equal(t, "Country", cfg.GDP.CountryName)
	assert.Equal(t, "Country Code", cfg.GDP.CountryCode)
	assert.Equal(t, []string{"1990", "2000"}, cfg.Years)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, gdpmap.DuplicateReject, cfg.DuplicatePolicy())
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadWorkingDirConfig(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gdpmap.yaml"), []byte("names: cldr\n"), 0644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "cldr", cfg.Names)
}

func TestLoadEnvOverrides(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("GDPMAP_GDP_GDPFILE", "from-env.csv")
	t.Setenv("GDPMAP_FORMAT", "pdf")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.GDP.GDPFile)
	assert.Equal(t, "pdf", cfg.Format)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GDPMAP_GDP_COUNTRY_NAME=Economy\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("GDPMAP_GDP_COUNTRY_NAME") })

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "Economy", cfg.GDP.CountryName)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	_, err := Load(New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gdp:\n  separator: ';;'\n"), 0644))
	_, err = Load(New(), bad)
	assert.ErrorIs(t, err, gdpmap.ErrConfiguration)

	names := filepath.Join(dir, "names.yaml")
	require.NoError(t, os.WriteFile(names, []byte("names: fuzzy\n"), 0644))
	_, err = Load(New(), names)
	assert.ErrorIs(t, err, gdpmap.ErrConfiguration)
}
