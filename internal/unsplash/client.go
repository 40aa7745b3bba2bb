package unsplash

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"

	"countdown/internal/providers"
	"countdown/internal/structures"
)

const (
	maxSearchBody = 4 << 20
	maxImageBody  = 32 << 20
)

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// Client talks to the Unsplash search API. Every call is a single attempt.
type Client struct {
	http      *http.Client
	baseURL   string
	accessKey string
	perPage   int
	metrics   providers.MetricsProviderInterface
	logger    providers.Logger
}

func NewClient(conf *structures.Config, metrics providers.MetricsProviderInterface, logger providers.Logger) *Client {
	return &Client{
		http:      &http.Client{Timeout: conf.Unsplash.Timeout},
		baseURL:   conf.Unsplash.BaseURL,
		accessKey: conf.Unsplash.AccessKey,
		perPage:   conf.Unsplash.PerPage,
		metrics:   metrics,
		logger:    logger,
	}
}

// Search returns the regular-size URL of the first result for query.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	found, err := c.search(ctx, query)
	c.metrics.IncPhotoRequests("search", outcome(err))
	return found, err
}

func (c *Client) search(ctx context.Context, query string) (string, error) {
	if c.accessKey == "" {
		return "", ErrNoCredential
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: base url: %v", ErrBadResponse, err)
	}
	endpoint = endpoint.JoinPath("search", "photos")
	params := endpoint.Query()
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(c.perPage))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	c.logger.Debugf(providers.TypePhoto, "Search %q", query)
	body, err := c.get(req, maxSearchBody)
	if err != nil {
		return "", err
	}

	var res searchResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("%w: decode search result: %v", ErrBadResponse, err)
	}
	if len(res.Results) == 0 || res.Results[0].URLs.Regular == "" {
		return "", ErrNoResults
	}
	return res.Results[0].URLs.Regular, nil
}

// Download fetches rawURL and checks that the payload is an image.
func (c *Client) Download(ctx context.Context, rawURL string) ([]byte, error) {
	data, err := c.download(ctx, rawURL)
	c.metrics.IncPhotoRequests("download", outcome(err))
	return data, err
}

func (c *Client) download(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid image url %q", ErrBadResponse, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	data, err := c.get(req, maxImageBody)
	if err != nil {
		return nil, err
	}
	if _, _, err = image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: not an image: %v", ErrBadResponse, err)
	}
	return data, nil
}

func (c *Client) get(req *http.Request, limit int64) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnf(providers.TypePhoto, "GET %s%s: %s", req.URL.Host, req.URL.Path, resp.Status)
		return nil, fmt.Errorf("%w: %s", ErrBadResponse, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}
	return body, nil
}
