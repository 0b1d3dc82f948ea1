// Package main provides the CLI entry point for gdpmap.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/gdpmap-go/internal/config"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/catalog"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/output"
	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/render"
	"github.com/ukaji3/gdpmap-go/pkg/logging"
	"golang.org/x/text/language"
)

var (
	configFile   string
	reportPath   string
	workbookPath string
	yearsDir     string
	pretty       bool
)

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gdpmap [gdpfile]",
		Short: "Render GDP world maps from a World Bank GDP table",
		Long: `gdpmap joins a GDP table keyed by country name against the world map
country codes and renders one choropleth per year.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default: ./gdpmap.yaml)")
	flags.String("separator", ",", "Field delimiter of the GDP file")
	flags.String("quote", `"`, "Quote character of the GDP file")
	flags.String("country-name", "Country Name", "Column holding the country name")
	flags.String("sheet", "", "Sheet to read for xlsx files")
	flags.String("range", "", "Cell range to read for xlsx files (e.g. A5:BK270)")
	flags.String("catalog", "", "Country catalog YAML (default: embedded)")
	flags.String("names", "embedded", "Catalog names: embedded or cldr")
	flags.Bool("strict", false, "Fail on duplicate country names instead of keeping the last row")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringSlice("years", gdpmap.DefaultYearList(), "Years to render")
	rootCmd.Flags().StringP("output-dir", "o", ".", "Directory for rendered maps")
	rootCmd.Flags().String("format", "svg", "Map format: svg, png, pdf")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write all extractions as JSON to this file")
	rootCmd.Flags().StringVar(&workbookPath, "workbook", "", "Write an xlsx report to this file")
	rootCmd.Flags().StringVar(&yearsDir, "years-dir", "", "Directory for per-year JSON files")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	bindings := map[string]string{
		"gdp.separator":    "separator",
		"gdp.quote":        "quote",
		"gdp.country_name": "country-name",
		"gdp.sheet":        "sheet",
		"gdp.range":        "range",
		"catalog":          "catalog",
		"names":            "names",
		"strict":           "strict",
		"logging.level":    "log-level",
	}
	for key, flag := range bindings {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	_ = v.BindPFlag("years", rootCmd.Flags().Lookup("years"))
	_ = v.BindPFlag("output_dir", rootCmd.Flags().Lookup("output-dir"))
	_ = v.BindPFlag("format", rootCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(newReconcileCmd(v))
	return rootCmd
}

func newReconcileCmd(v *viper.Viper) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "reconcile [gdpfile]",
		Short: "Print which catalog codes match a country name in the GDP file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(v, args)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			table, err := gdpmap.LoadTable(cfg.GDP)
			if err != nil {
				return fmt.Errorf("loading %s: %w", cfg.GDP.GDPFile, err)
			}

			result := gdpmap.ReconcileTable(cat, table)
			log.Info().
				Int("matched", len(result.Matched)).
				Int("unmatched", len(result.Unmatched)).
				Msg("Reconciled catalog")

			jsonData, err := output.ReconciliationToJSON(result, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			if outputPath != "" {
				return os.WriteFile(outputPath, jsonData, 0644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

// setup loads configuration and configures logging.
func setup(v *viper.Viper, args []string) (*config.Config, *zerolog.Logger, error) {
	if len(args) == 1 {
		v.Set("gdp.gdpfile", args[0])
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, nil, err
	}
	logging.Configure(&cfg.Logging)
	log := logging.Default()
	if cfg.ConfigFile != "" {
		log.Debug().Str("config", cfg.ConfigFile).Msg("Loaded config file")
	}
	return cfg, log, nil
}

func loadCatalog(cfg *config.Config) (*models.CountryCatalog, error) {
	var (
		cat *models.CountryCatalog
		err error
	)
	if cfg.Catalog != "" {
		cat, err = catalog.LoadFile(cfg.Catalog)
	} else {
		cat, err = catalog.Embedded()
	}
	if err != nil {
		return nil, err
	}
	if cfg.Names == "cldr" {
		return catalog.CLDR(cat, language.English)
	}
	return cat, nil
}

func run(v *viper.Viper, args []string) error {
	cfg, log, err := setup(v, args)
	if err != nil {
		return err
	}

	// Validate input file exists
	if _, err := os.Stat(cfg.GDP.GDPFile); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", cfg.GDP.GDPFile)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	renderer := render.NewMap(cat)
	renderer.Logger = log

	driver := &gdpmap.Driver{
		Info:      cfg.GDP,
		Catalog:   cat,
		Renderer:  renderer,
		Years:     cfg.Years,
		FileName:  "isp_gdp_world_name_%s." + cfg.Format,
		OutputDir: cfg.OutputDir,
		Options:   gdpmap.Options{Duplicates: cfg.DuplicatePolicy(), Logger: log},
		Logger:    log,
	}
	results, err := driver.Run()
	if err != nil {
		return err
	}

	extractions := make([]*models.YearExtraction, 0, len(results))
	for _, r := range results {
		extractions = append(extractions, r.Extraction)
	}

	// Write combined report
	if reportPath != "" {
		jsonData, err := output.ToJSON(results, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(reportPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	// Write per-year files
	if yearsDir != "" {
		if err := writeYearFiles(extractions, yearsDir); err != nil {
			return fmt.Errorf("failed to write year files: %w", err)
		}
	}

	if workbookPath != "" {
		if err := output.WriteWorkbook(workbookPath, extractions, cat); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	return nil
}

func writeYearFiles(extractions []*models.YearExtraction, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, e := range extractions {
		jsonData, err := output.ExtractionToJSON(e, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, e.Year+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
