// Package zanoxclient provides the main entry point for creating Zanox API clients
package zanoxclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/zanox-client/internal/client"
	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// New creates a new Zanox API client. The config is copied; the caller's
// value is never modified.
func New(ctx context.Context, config *zanox.Config) (zanox.Client, error) {
	if config == nil {
		return nil, zanox.ErrConfigRequired
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	normalized := *config
	normalized.BaseURL = baseURL

	client, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithCredentials creates a new client for the default API root.
func NewWithCredentials(ctx context.Context, connectID, secretKey string) (zanox.Client, error) {
	return New(ctx, &zanox.Config{
		ConnectID: connectID,
		SecretKey: secretKey,
	})
}

// NewConnection creates a standalone connection rooted at relativePath,
// for resources this module has no dedicated client for.
func NewConnection(config *zanox.Config, relativePath string) (zanox.Connection, error) {
	if config == nil {
		return nil, zanox.ErrConfigRequired
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	normalized := *config
	normalized.BaseURL = baseURL

	return client.NewConfiguredConnection(&normalized, relativePath), nil
}

// normalizeBaseURL defaults an empty URL, trims a trailing slash and adds
// the https scheme when none is present.
func normalizeBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", zanox.ErrInvalidBaseURL, baseURL)
	}

	return baseURL, nil
}
