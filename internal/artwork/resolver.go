// Package artwork rewrites player artwork URLs into ones the presence
// service can display, via the external image proxy.
package artwork

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	// defaultEndpoint is the image-proxy resolution endpoint
	defaultEndpoint = "https://images.soundlink.app/v1/resolve"

	// The proxy returns a bare image URL; the weserv wrapper pins the
	// final size and format the presence service expects.
	weservPrefix = "https://images.weserv.nl/?url="
	weservSuffix = "&w=1024&h=1024&output=jpg"

	userAgent = "presenced/1.0"

	_maxBodySize = 1 << 20 // 1 MB, the proxy response is a tiny JSON blob
)

// Resolver performs the image-proxy call
type Resolver struct {
	logger   *zap.Logger
	client   *http.Client
	endpoint string
}

// NewResolver creates a resolver against the default proxy endpoint
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{
		logger:   logger,
		endpoint: defaultEndpoint,
		client: &http.Client{
			Timeout: 10 * time.Second, // Essential to prevent blocking the daemon
		},
	}
}

// NewResolverWithEndpoint creates a resolver against a specific endpoint
func NewResolverWithEndpoint(logger *zap.Logger, endpoint string) *Resolver {
	r := NewResolver(logger)
	r.endpoint = endpoint
	return r
}

// Resolve asks the proxy for a service-visible copy of artworkURL and
// returns the final rewritten URL
func (r *Resolver) Resolve(ctx context.Context, artworkURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("url", artworkURL)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, _maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	var payload struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("invalid proxy response: %w", err)
	}
	if payload.ImageURL == "" {
		return "", fmt.Errorf("proxy response missing imageUrl")
	}

	resolved := weservPrefix + payload.ImageURL + weservSuffix
	r.logger.Debug("Artwork resolved", zap.String("url", resolved))
	return resolved, nil
}
