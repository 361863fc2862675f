// Package manifest fetches and parses the remote release manifest: a flat
// text file whose first significant line is "YYYYMMDD - message". The date is
// the sole version indicator for the viewer binary.
package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Fir3Fly1995/FlightListChk/internal/version"
)

// maxBodySize bounds how much of the manifest body is read. The manifest is
// a single line; anything larger indicates a misconfigured URL.
const maxBodySize = 64 * 1024

// Manifest is the parsed remote manifest.
type Manifest struct {
	Date    string
	Message string
}

// Version converts the manifest into a comparable version record.
func (m Manifest) Version() version.Version {
	return version.Version{Date: m.Date, Message: m.Message}
}

// Parse extracts the version line from raw manifest content. Blank lines and
// lines starting with # are skipped; everything after the first significant
// line is ignored.
func Parse(data string) (*Manifest, error) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return parseLine(line)
	}
	return nil, fmt.Errorf("manifest is empty")
}

func parseLine(line string) (*Manifest, error) {
	date, message, found := strings.Cut(line, "-")
	if !found {
		return nil, fmt.Errorf("invalid manifest line %q (expected \"YYYYMMDD - message\")", line)
	}

	date = strings.TrimSpace(date)
	message = strings.TrimSpace(message)

	if !version.ValidDate(date) {
		return nil, fmt.Errorf("invalid manifest date %q", date)
	}

	return &Manifest{Date: date, Message: message}, nil
}

// Client fetches the manifest over HTTP with retry and exponential backoff.
type Client struct {
	url        string
	httpClient *http.Client

	attempts int
	backoff  time.Duration
}

// NewClient creates a manifest client for the given URL. A nil httpClient
// gets a default with a conservative timeout.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		attempts:   3,
		backoff:    500 * time.Millisecond,
	}
}

// SetRetry overrides the retry policy (useful for testing).
func (c *Client) SetRetry(attempts int, backoff time.Duration) {
	if attempts > 0 {
		c.attempts = attempts
	}
	c.backoff = backoff
}

// Fetch retrieves and parses the remote manifest. Transient failures are
// retried with doubling backoff; context cancellation aborts immediately.
func (c *Client) Fetch(ctx context.Context) (*Manifest, error) {
	var lastErr error
	delay := c.backoff

	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		m, err := c.fetchOnce(ctx)
		if err == nil {
			return m, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}

	return nil, fmt.Errorf("manifest fetch failed after %d attempts: %w", c.attempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) (*Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "FlightListChk-launcher")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch manifest: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("manifest exceeds %d bytes", maxBodySize)
	}

	return Parse(string(data))
}
