// Package config loads labscan settings from a YAML file.
//
// A missing field keeps its value from Default, so a config file only needs
// to name what it changes:
//
//	source: auto
//	workers: 4
//	ocr:
//	  language: eng+deu
//	server:
//	  addr: ":9000"
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/tsawler/labscan/ocr"
)

// Sources accepted in Config.Source.
const (
	SourceOCR  = "ocr"
	SourceText = "text"
	SourceAuto = "auto"
)

// Config is the complete labscan configuration.
type Config struct {
	// Catalog is the path of a YAML or JSON catalog file. Empty selects the
	// built-in catalog.
	Catalog   string `yaml:"catalog" json:"catalog"`
	Source    string `yaml:"source" json:"source"`
	Workers   int    `yaml:"workers" json:"workers"`
	Normalize bool   `yaml:"normalize" json:"normalize"`
	OCR       OCR    `yaml:"ocr" json:"ocr"`
	Log       Log    `yaml:"log" json:"log"`
	Server    Server `yaml:"server" json:"server"`
}

// OCR configures the Tesseract recognizer and PDF rendering.
type OCR struct {
	Language    string `yaml:"language" json:"language"`
	PageSegMode int    `yaml:"psm" json:"psm"`
	DPI         int    `yaml:"dpi" json:"dpi"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level" json:"level"`
}

// Server configures the HTTP upload service.
type Server struct {
	Addr           string   `yaml:"addr" json:"addr"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes" json:"max_upload_bytes"`
	CORSOrigins    []string `yaml:"cors_origins" json:"cors_origins"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:    SourceOCR,
		Workers:   1,
		Normalize: true,
		OCR: OCR{
			Language:    "eng",
			PageSegMode: int(ocr.PSM_AUTO),
			DPI:         200,
		},
		Log: Log{Level: "info"},
		Server: Server{
			Addr:           ":8000",
			MaxUploadBytes: 20 << 20,
			CORSOrigins:    []string{"http://localhost:3000"},
		},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	var errs []error
	switch c.Source {
	case SourceOCR, SourceText, SourceAuto:
	default:
		errs = append(errs, fmt.Errorf("source %q: must be one of ocr, text, auto", c.Source))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d: must be at least 1", c.Workers))
	}
	if !ocr.PageSegMode(c.OCR.PageSegMode).Valid() {
		errs = append(errs, fmt.Errorf("ocr.psm %d: must be between 0 and 13", c.OCR.PageSegMode))
	}
	if c.OCR.DPI <= 0 {
		errs = append(errs, fmt.Errorf("ocr.dpi %d: must be positive", c.OCR.DPI))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_upload_bytes %d: must be positive", c.Server.MaxUploadBytes))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
