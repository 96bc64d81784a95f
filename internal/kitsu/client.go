// Package kitsu implements a typed client for the Kitsu catalog API.
package kitsu

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/aniplanner/simulcast/internal/config"
	"github.com/aniplanner/simulcast/internal/httpclient"
)

// MappingMAL is the mappings key holding a record's MyAnimeList identifier.
const MappingMAL = "myanimelist/anime"

// Client handles communication with the catalog API
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	pageLimit  int
	logger     *slog.Logger
}

// NewClient creates a new catalog API client
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
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

	return &Client{
		baseURL:    cfg.API.BaseURL,
		httpClient: httpClient,
		pageLimit:  cfg.API.PageLimit,
		logger:     logger,
	}
}

// CurrentSeason fetches every record of the given season across all pages,
// in catalog order (descending user count). The first request carries the
// filter parameters; follow-up requests use the catalog's next link as-is.
func (c *Client) CurrentSeason(ctx context.Context, season string, year int) ([]Resource, error) {
	next, err := c.seasonURL(season, year)
	if err != nil {
		return nil, err
	}

	var resources []Resource
	page := 0
	for next != "" {
		doc, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}

		page++
		resources = append(resources, doc.Data...)
		c.logger.Debug("fetched catalog page",
			"page", page,
			"records", len(doc.Data),
			"total", len(resources))

		next = doc.Links.Next
	}

	return resources, nil
}

// seasonURL builds the first page URL for a season query.
func (c *Client) seasonURL(season string, year int) (string, error) {
	u, err := url.Parse(c.baseURL + "/anime")
	if err != nil {
		return "", fmt.Errorf("invalid base URL %s: %w", c.baseURL, err)
	}

	q := u.Query()
	q.Set("filter[status]", "current")
	q.Set("filter[seasonYear]", strconv.Itoa(year))
	q.Set("filter[season]", season)
	q.Set("page[limit]", strconv.Itoa(c.pageLimit))
	q.Set("sort", "-userCount")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// fetchPage retrieves and decodes one page
func (c *Client) fetchPage(ctx context.Context, pageURL string) (*Document, error) {
	resp, err := c.httpClient.Get(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	return &doc, nil
}
