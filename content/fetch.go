// Package content reads the site's remotely hosted JSON: business details and
// blog posts.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNotFound is returned when a requested document or post does not exist.
var ErrNotFound = errors.New("content: not found")

// StatusError reports a non-2xx response from a content URL.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content: GET %s: status %d", e.URL, e.Code)
}

// Unwrap lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

const maxDocumentSize = 8 << 20

// Fetcher retrieves JSON documents over HTTP(S) or from the local filesystem.
// It never retries.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher whose requests time out after timeout. A zero
// timeout leaves requests bounded only by their context.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// NewFetcherWithClient is NewFetcher with a caller-supplied client.
func NewFetcherWithClient(c *http.Client) *Fetcher {
	if c == nil {
		c = http.DefaultClient
	}
	return &Fetcher{client: c}
}

// GetJSON decodes the document at location into v. Locations starting with
// http:// or https:// are fetched bypassing caches; anything else is read as
// a file path.
func (f *Fetcher) GetJSON(ctx context.Context, location string, v any) error {
	if isRemote(location) {
		return f.getRemote(ctx, location, v)
	}
	return readLocal(location, v)
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func (f *Fetcher) getRemote(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("content: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("content: GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{URL: url, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxDocumentSize)).Decode(v); err != nil {
		return fmt.Errorf("content: decode %s: %w", url, err)
	}
	return nil
}

func readLocal(location string, v any) error {
	path := strings.TrimPrefix(location, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("content: read %s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("content: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("content: decode %s: %w", path, err)
	}
	return nil
}
