// Package imaging downloads remote images and re-encodes them as JPEG,
// optionally scaled down to a maximum dimension.
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"net/http"

	// Registered decoders
	_ "image/gif"
	_ "image/png"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/huynhanx03/go-utilskit/pkg/logger"
	"github.com/huynhanx03/go-utilskit/pkg/settings"
	"github.com/huynhanx03/go-utilskit/pkg/utils"
)

const (
	defaultQuality = 1.0
	defaultTimeout = 30 // seconds
)

// Options controls how a fetched image is re-encoded.
type Options struct {
	// Quality is the JPEG quality from 0.0 to 1.0. 0 means full quality.
	Quality float64
	// MaxDimension bounds the longest side in pixels. 0 keeps the original size.
	MaxDimension int
}

// Fetcher downloads images over HTTP.
type Fetcher struct {
	client *http.Client
	log    *logger.Logger
	limit  int
}

// NewFetcher builds a Fetcher. A nil client gets a default one with the configured timeout.
func NewFetcher(client *http.Client, cfg *settings.Image) *Fetcher {
	if cfg == nil {
		cfg = &settings.Image{}
	}
	setDefaultConfig(cfg)

	if client == nil {
		client = &http.Client{Timeout: utils.ToDuration(cfg.Timeout)}
	}
	return &Fetcher{
		client: client,
		log:    logger.Default(),
	}
}

// WithLogger returns a copy of f logging through l.
func (f *Fetcher) WithLogger(l *logger.Logger) *Fetcher {
	c := *f
	c.log = l
	return &c
}

// WithLimit returns a copy of f that keeps at most limit downloads in flight in FetchAll.
func (f *Fetcher) WithLimit(limit int) *Fetcher {
	c := *f
	c.limit = limit
	return &c
}

// Fetch downloads url, bypassing caches, and returns the image as JPEG bytes.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts Options) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	img, err := f.download(ctx, url)
	if err != nil {
		f.log.Log(logger.TypeNetwork, "image fetch failed", err, zap.String("url", url))
		return nil, err
	}

	img = Resize(img, opts.MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality(opts.Quality)}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	f.log.Log(logger.TypeNetwork, "image fetched", nil,
		zap.String("url", url),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

func (f *Fetcher) download(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// jpegQuality maps 0.0-1.0 to the encoder's 1-100 scale.
func jpegQuality(q float64) int {
	if q <= 0 {
		q = defaultQuality
	}
	return min(100, max(1, int(math.Round(q*100))))
}

func setDefaultConfig(cfg *settings.Image) {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
}
