package randomsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultURL fetches a single two-digit decimal fraction in plain text.
const DefaultURL = "https://www.random.org/decimal-fractions/?num=1&dec=2&col=1&format=plain&rnd=new"

// DefaultTimeout bounds one fetch; a slower reply fails the request.
const DefaultTimeout = 5 * time.Second

var (
	ErrSourceUnavailable = errors.New("random source unavailable")
	ErrSourceFormat      = errors.New("random source returned a malformed value")
)

// Client fetches uniform random values in [0, 1) from a remote
// decimal-fraction generator.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint. Empty url or
// non-positive timeout fall back to the defaults.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{url: url, httpClient: &http.Client{Timeout: timeout}}
}

// NextUniform fetches one value. Transport and timeout failures surface as
// ErrSourceUnavailable; an unparseable reply surfaces as ErrSourceFormat.
func (c *Client) NextUniform(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	raw := strings.TrimSpace(string(body))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSourceFormat, raw)
	}
	return value, nil
}
