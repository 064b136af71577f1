package retailapi

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const catalogDataset = "normal,prices,parentCategories,allImages,attributes"

// Options configures the upstream client
type Options struct {
	BaseURL  string
	Country  string
	Language string
	Timeout  time.Duration

	// HTTPClient overrides the default client; Timeout is ignored when set
	HTTPClient *http.Client
}

// Client issues unauthenticated GETs against the retailer's catalog and
// availability endpoints and decodes their XML bodies.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	country    string
	language   string
	logger     *zap.Logger
}

// NewClient creates a client for one country/language pair
func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", opts.BaseURL)
	}
	if opts.Country == "" || opts.Language == "" {
		return nil, errors.New("country and language are required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		country:    opts.Country,
		language:   opts.Language,
		logger:     logger,
	}, nil
}

// productURL returns the catalog URL for an article
func (c *Client) productURL(itemCode string) string {
	u := c.baseURL.JoinPath(c.country, c.language, "catalog", "products", itemCode)
	u.RawQuery = "version=v1&type=xml&dataset=" + catalogDataset
	return u.String()
}

// availabilityURL returns the stock URL for an article
func (c *Client) availabilityURL(itemCode string) string {
	return c.baseURL.JoinPath(c.country, c.language, "iows", "catalog", "availability", itemCode).String()
}

// getXML fetches rawURL and decodes the body into v. The body is decoded
// even on non-2xx statuses because the catalog reports errors in-band; the
// status code is returned for callers to inspect.
func (c *Client) getXML(ctx context.Context, rawURL string, v interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream request",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	if err := xml.Unmarshal(body, v); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode XML from %s (status %d): %w", rawURL, resp.StatusCode, err)
	}

	return resp.StatusCode, nil
}
