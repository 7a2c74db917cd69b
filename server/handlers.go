package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/labscan"
	"github.com/tsawler/labscan/extract"
	"github.com/tsawler/labscan/log"
	"github.com/tsawler/labscan/model"
)

// uploadField is the multipart field holding the document.
const uploadField = "file"

// maxMemory is how much of a multipart body is kept in memory before
// spilling to disk.
const maxMemory = 8 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file exceeds the %d byte upload limit", s.maxUpload))
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, http.StatusBadRequest, `missing "file" field`)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		writeError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("unsupported file type %q", ext))
		return
	}

	path, err := saveTemp(file, ext)
	if err != nil {
		log.Errorf("failed to store upload %s: %v", header.Filename, err)
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer os.Remove(path)

	reqID := r.Header.Get(HeaderRequestID)
	log.Infof("processing %s (%d bytes) request_id=%s", header.Filename, header.Size, reqID)

	extractor := s.configure(labscan.Open(path).Catalog(s.catalog).Context(r.Context()))
	results, warnings, err := extractor.Results()
	if err != nil {
		log.Errorf("failed to process %s request_id=%s: %v", header.Filename, reqID, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(warnings) > 0 {
		log.Warnf("%s: %s", header.Filename, labscan.FormatWarnings(warnings))
	}
	writeJSON(w, http.StatusOK, results)
}

// saveTemp copies an upload to a temporary file keeping its extension, so
// that format detection can fall back on it.
func saveTemp(src io.Reader, ext string) (string, error) {
	f, err := os.CreateTemp("", "labscan-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// Extraction modes of the extract endpoint.
const (
	ModeCatalog = "catalog"
	ModeGeneric = "generic"
)

type extractRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, s.maxUpload)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	var results []model.Result
	switch req.Mode {
	case "", ModeCatalog:
		results = extract.New(s.catalog).Extract(req.Text)
	case ModeGeneric:
		results = extract.Generic(req.Text)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q", req.Mode))
		return
	}
	writeJSON(w, http.StatusOK, results)
}
