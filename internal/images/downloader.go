// Package images downloads artwork files referenced by catalog records.
package images

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/aniplanner/simulcast/internal/config"
	"github.com/aniplanner/simulcast/internal/filesystem"
	"github.com/aniplanner/simulcast/internal/httpclient"
)

// Downloader fetches image URLs sequentially and writes them under the
// season's images directory. Files keep the basename of the URL path, so a
// re-run overwrites rather than duplicates.
type Downloader struct {
	httpClient *httpclient.Client
	logger     *slog.Logger
}

// NewDownloader creates a downloader using the shared API client settings
func NewDownloader(cfg *config.Config, logger *slog.Logger) *Downloader {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := httpclient.NewClient(httpclient.ClientConfig{
		Timeout:    cfg.API.Timeout,
		MaxRetries: cfg.API.MaxRetries,
		UserAgent:  cfg.API.UserAgent,
		Logger:     logger,
	})

	return &Downloader{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Fetch downloads rawURL into dir and returns the written file's path.
// A response other than HTTP 200 is logged and reported as an empty path so
// the caller can skip the variant; transport failures return an error.
func (d *Downloader) Fetch(ctx context.Context, rawURL, dir string) (string, error) {
	if rawURL == "" {
		return "", nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid image URL %s: %w", rawURL, err)
	}
	dest := filepath.Join(dir, path.Base(u.Path))

	resp, err := d.httpClient.Get(ctx, rawURL, nil)
	if err != nil {
		if resp == nil {
			return "", err
		}
		d.logger.Warn("skipping image", "url", rawURL, "status", resp.StatusCode())
		return "", nil
	}
	if resp.StatusCode() != http.StatusOK {
		d.logger.Warn("skipping image", "url", rawURL, "status", resp.StatusCode())
		return "", nil
	}

	body := resp.Body()
	if err := filesystem.API().WriteFile(dest, body, 0644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", dest, err)
	}

	d.logger.Debug("downloaded image",
		"url", rawURL,
		"path", dest,
		"size", humanize.Bytes(uint64(len(body))))

	return dest, nil
}

// NoopFetcher skips every download; used for metadata-only exports.
type NoopFetcher struct{}

// Fetch reports every image as unavailable.
func (NoopFetcher) Fetch(ctx context.Context, rawURL, dir string) (string, error) {
	return "", nil
}
