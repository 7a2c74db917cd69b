package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SourceOCR, cfg.Source)
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.Normalize)
	assert.Equal(t, "eng", cfg.OCR.Language)
	assert.Equal(t, 3, cfg.OCR.PageSegMode)
	assert.Equal(t, ":8000", cfg.Server.Addr)
}

func TestParse_OverridesOnlyNamedFields(t *testing.T) {
	cfg, err := Parse([]byte(`
source: auto
workers: 4
ocr:
  language: eng+deu
server:
  cors_origins:
    - https://labs.example.com
`))
	require.NoError(t, err)

	assert.Equal(t, SourceAuto, cfg.Source)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "eng+deu", cfg.OCR.Language)
	assert.Equal(t, 3, cfg.OCR.PageSegMode, "psm keeps its default")
	assert.Equal(t, 200, cfg.OCR.DPI)
	assert.True(t, cfg.Normalize)
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://labs.example.com"}, cfg.Server.CORSOrigins)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad source", "source: fax", `source "fax"`},
		{"no workers", "workers: 0", "workers 0"},
		{"bad psm", "ocr:\n  psm: 14", "ocr.psm 14"},
		{"bad dpi", "ocr:\n  dpi: -1", "ocr.dpi -1"},
		{"bad limit", "server:\n  max_upload_bytes: 0", "server.max_upload_bytes 0"},
		{"not yaml", "workers: [", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Source = ""
	cfg.Workers = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source")
	assert.Contains(t, err.Error(), "workers")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
