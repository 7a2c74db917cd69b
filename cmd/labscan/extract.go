package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/labscan"
	"github.com/tsawler/labscan/config"
	"github.com/tsawler/labscan/log"
	"github.com/tsawler/labscan/model"
	"github.com/tsawler/labscan/report"
)

type extractOptions struct {
	format    string
	generic   bool
	source    string
	workers   int
	lang      string
	psm       int
	dpi       int
	pages     []int
	out       string
	normalize bool
}

func newExtractCmd(a *app) *cobra.Command {
	o := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract lab parameters from a PDF or image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.apply(cmd, &a.cfg)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return runExtract(cmd, a, o, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.format, "format", "f", string(report.JSON), "output format: json, yaml, markdown, html, pdf, csv")
	flags.BoolVar(&o.generic, "generic", false, "use the catalog-free pattern extractor")
	flags.StringVar(&o.source, "source", config.SourceOCR, "text source: ocr, text, auto")
	flags.IntVar(&o.workers, "workers", 1, "pages recognized in parallel")
	flags.StringVar(&o.lang, "lang", "eng", "Tesseract language")
	flags.IntVar(&o.psm, "psm", 3, "Tesseract page segmentation mode")
	flags.IntVar(&o.dpi, "dpi", 200, "PDF render resolution")
	flags.IntSliceVar(&o.pages, "pages", nil, "pages to process, e.g. 1,2")
	flags.StringVarP(&o.out, "out", "o", "", "write the report to this file instead of stdout")
	flags.BoolVar(&o.normalize, "normalize", true, "fold full-width characters in recognized text")
	return cmd
}

// apply copies the flags the user set over the loaded configuration.
func (o *extractOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("lang") {
		cfg.OCR.Language = o.lang
	}
	if flags.Changed("psm") {
		cfg.OCR.PageSegMode = o.psm
	}
	if flags.Changed("dpi") {
		cfg.OCR.DPI = o.dpi
	}
	if flags.Changed("normalize") {
		cfg.Normalize = o.normalize
	}
}

func runExtract(cmd *cobra.Command, a *app, o *extractOptions, path string) error {
	f, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}

	ex := a.pipeline(labscan.Open(path)).Pages(o.pages...).Context(cmd.Context())

	var (
		results  []model.Result
		warnings []labscan.Warning
	)
	if o.generic {
		results, warnings, err = ex.Generic()
	} else {
		results, warnings, err = ex.Results()
	}
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warnf("%s", w)
	}

	var out io.Writer = cmd.OutOrStdout()
	if o.out != "" {
		file, err := os.Create(o.out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}
	return report.Write(out, f, results)
}
