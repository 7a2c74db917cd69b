//go:build !ocr

package ocr

import "context"

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New(opts ...Option) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Recognize returns an error indicating OCR support is not enabled.
func (c *Client) Recognize(ctx context.Context, imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}

// Pool is a stub OCR pool that returns errors for all operations.
type Pool struct{}

// NewPool returns an error indicating OCR support is not enabled.
func NewPool(opts ...Option) (*Pool, error) {
	return nil, ErrOCRNotEnabled
}

// Recognize returns an error indicating OCR support is not enabled.
func (p *Pool) Recognize(ctx context.Context, imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Close is a no-op for the stub pool.
func (p *Pool) Close() error {
	return nil
}
