package main

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/labscan"
	"github.com/tsawler/labscan/catalog"
	"github.com/tsawler/labscan/config"
	"github.com/tsawler/labscan/log"
	"github.com/tsawler/labscan/ocr"
)

// app carries the configuration shared by all commands.
type app struct {
	configPath string
	cfg        config.Config
	catalog    *catalog.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           "labscan",
		Short:         "Extract health parameters from scanned lab reports",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.String("catalog", "", "parameter catalog file (YAML or JSON)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newExtractCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newCatalogCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// load reads the config file, applies persistent flag overrides and loads
// the catalog.
func (a *app) load(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		a.cfg.Catalog, _ = flags.GetString("catalog")
	}
	if flags.Changed("log-level") {
		a.cfg.Log.Level, _ = flags.GetString("log-level")
	}
	log.SetLevel(a.cfg.Log.Level)

	if a.cfg.Catalog == "" {
		a.catalog = catalog.Default()
		return nil
	}
	c, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return err
	}
	a.catalog = c
	return nil
}

// pipeline applies the configured pipeline settings to an extractor.
func (a *app) pipeline(e *labscan.Extractor) *labscan.Extractor {
	src, err := labscan.ParseSource(a.cfg.Source)
	if err != nil {
		log.Warnf("%v, using ocr", err)
	}
	return e.
		Catalog(a.catalog).
		Source(src).
		Workers(a.cfg.Workers).
		Normalize(a.cfg.Normalize).
		Language(a.cfg.OCR.Language).
		PageSegMode(ocr.PageSegMode(a.cfg.OCR.PageSegMode)).
		DPI(a.cfg.OCR.DPI)
}
