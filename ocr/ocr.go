//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
// A Client is not safe for concurrent use; see Pool.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New(opts ...Option) (*Client, error) {
	client, err := newTesseract(buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// newTesseract creates a gosseract client configured with o.
func newTesseract(o options) (*gosseract.Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(o.language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language %q: %w", o.language, err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(o.pageSegMode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode %d: %w", o.pageSegMode, err)
	}
	if o.dpi > 0 {
		if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(o.dpi)); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set dpi: %w", err)
		}
	}
	return client, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return recognize(c.client, imageData)
}

// Recognize implements Recognizer. The context is checked before the
// engine runs; Tesseract itself cannot be interrupted.
func (c *Client) Recognize(ctx context.Context, imageData []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.RecognizeImage(imageData)
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}

// engine is the part of gosseract.Client used for recognition.
type engine interface {
	SetImageFromBytes(data []byte) error
	Text() (string, error)
	Close() error
}

func recognize(client engine, imageData []byte) (string, error) {
	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}
