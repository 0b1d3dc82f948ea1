// Package config loads gdpmap settings from defaults, a YAML config file,
// .env files and GDPMAP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap"
	"github.com/ukaji3/gdpmap-go/pkg/logging"
)

// EnvPrefix prefixes every environment variable read by gdpmap.
const EnvPrefix = "GDPMAP"

// Config holds the application configuration.
type Config struct {
	GDP     gdpmap.GDPInfo `mapstructure:"gdp"`
	Logging logging.Config `mapstructure:"logging"`

	// Years are rendered in order.
	Years []string `mapstructure:"years"`
	// OutputDir receives the rendered maps and reports.
	OutputDir string `mapstructure:"output_dir"`
	// Format is the map image format (svg, png, pdf).
	Format string `mapstructure:"format"`
	// Catalog is an optional YAML catalog path; empty means embedded.
	Catalog string `mapstructure:"catalog"`
	// Names selects catalog names: "embedded" or "cldr".
	Names string `mapstructure:"names"`
	// Strict rejects duplicate country names.
	Strict bool `mapstructure:"strict"`

	// ConfigFile is the config file actually read, if any.
	ConfigFile string `mapstructure:"-"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	info := gdpmap.DefaultGDPInfo()
	v.SetDefault("gdp.gdpfile", info.GDPFile)
	v.SetDefault("gdp.separator", info.Separator)
	v.SetDefault("gdp.quote", info.Quote)
	v.SetDefault("gdp.country_name", info.CountryName)
	v.SetDefault("gdp.country_code", info.CountryCode)
	v.SetDefault("gdp.min_year", info.MinYear)
	v.SetDefault("gdp.max_year", info.MaxYear)
	v.SetDefault("gdp.sheet", "")
	v.SetDefault("gdp.range", "")

	logCfg := logging.DefaultConfig()
	v.SetDefault("logging.level", logCfg.Level)
	v.SetDefault("logging.format", logCfg.Format)
	v.SetDefault("logging.output", logCfg.Output)
	v.SetDefault("logging.no_color", logCfg.NoColor)

	v.SetDefault("years", gdpmap.DefaultYearList())
	v.SetDefault("output_dir", ".")
	v.SetDefault("format", "svg")
	v.SetDefault("catalog", "")
	v.SetDefault("names", "embedded")
	v.SetDefault("strict", false)
}

// New returns a viper instance with defaults and environment binding.
// Nested keys map to variables like GDPMAP_GDP_SEPARATOR.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration in order of precedence:
// 1. Flags bound on v by the caller
// 2. Environment variables (after .env files are loaded)
// 3. Config file (configFile, or gdpmap.yaml in the working directory)
// 4. Defaults
func Load(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("gdpmap")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if err := c.GDP.Validate(); err != nil {
		return err
	}
	switch c.Names {
	case "embedded", "cldr":
	default:
		return gdpmap.NewConfigurationError("names", c.Names, "must be embedded or cldr")
	}
	if c.Format == "" {
		return gdpmap.NewConfigurationError("format", c.Format, "must not be empty")
	}
	return nil
}

// DuplicatePolicy returns the extraction policy selected by Strict.
func (c *Config) DuplicatePolicy() gdpmap.DuplicatePolicy {
	if c.Strict {
		return gdpmap.DuplicateReject
	}
	return gdpmap.DuplicateLastWins
}

// loadEnvFiles loads environment variables from .env files.
// Existing variables are never overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
