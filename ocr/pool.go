//go:build ocr

package ocr

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Pool recognizes images concurrently by handing each caller its own
// Tesseract client. Clients are created on demand, reused once idle and
// all closed by Close. Pool is safe for concurrent use.
type Pool struct {
	newEngine func() (engine, error)

	mu     sync.Mutex
	idle   []engine
	closed bool
}

// NewPool validates the configuration with a first client and returns a
// Pool whose clients share that configuration. The Pool must be closed to
// release the Tesseract engines.
func NewPool(opts ...Option) (*Pool, error) {
	o := buildOptions(opts)
	return newPool(func() (engine, error) {
		client, err := newTesseract(o)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
}

func newPool(newEngine func() (engine, error)) (*Pool, error) {
	first, err := newEngine()
	if err != nil {
		return nil, err
	}
	return &Pool{newEngine: newEngine, idle: []engine{first}}, nil
}

// Recognize implements Recognizer. It returns early with ctx.Err() when the
// context is done; the engine finishes in the background and its client is
// released afterwards, or closed if the pool was closed meanwhile.
func (p *Pool) Recognize(ctx context.Context, imageData []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client, err := p.get()
	if err != nil {
		return "", err
	}

	type result struct {
		text string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		text, err := recognize(client, imageData)
		p.put(client)
		resultCh <- result{text, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultCh:
		return res.text, res.err
	}
}

func (p *Pool) get() (engine, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if n := len(p.idle); n > 0 {
		client := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		return client, nil
	}
	p.mu.Unlock()

	client, err := p.newEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to create Tesseract client: %w", err)
	}
	return client, nil
}

func (p *Pool) put(client engine) {
	p.mu.Lock()
	if !p.closed {
		p.idle = append(p.idle, client)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	_ = client.Close()
}

// Close closes the idle clients; clients still recognizing are closed when
// they finish. Recognize calls made after Close fail with ErrPoolClosed.
func (p *Pool) Close() error {
	p.mu.Lock()
	idle := p.idle
	p.idle = nil
	p.closed = true
	p.mu.Unlock()

	var errs []error
	for _, client := range idle {
		if err := client.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
