// Package fetch downloads the source files (GS1 product CSV, BAG MiGeL
// workbook). Plain GET with a generous timeout; the GS1 endpoint is slow.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const userAgent = "migel-service/0.1"

var client = &http.Client{Timeout: 300 * time.Second}

// Get downloads url into memory.
func Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: HTTP %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// GetFile downloads url and stores it at path, returning the bytes as well
// so callers can keep a local cache without re-reading.
func GetFile(ctx context.Context, url, path string) ([]byte, error) {
	b, err := Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return nil, fmt.Errorf("save %s: %w", path, err)
	}
	return b, nil
}
