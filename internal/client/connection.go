package client

import (
	"context"
	"encoding/json"

	"github.com/fivetwenty-io/zanox-client/internal/auth"
	"github.com/fivetwenty-io/zanox-client/internal/http"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// Connection implements zanox.Connection.
type Connection struct {
	httpClient    *http.Client
	authenticator *auth.Authenticator
	relativePath  string
}

// NewConnection creates a connection rooted at relativePath.
func NewConnection(httpClient *http.Client, authenticator *auth.Authenticator, relativePath string) *Connection {
	return &Connection{
		httpClient:    httpClient,
		authenticator: authenticator,
		relativePath:  relativePath,
	}
}

// RelativePath implements zanox.Connection.RelativePath.
func (c *Connection) RelativePath() string {
	return c.relativePath
}

// Get implements zanox.Connection.Get.
func (c *Connection) Get(ctx context.Context, path string, opts *zanox.RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, "GET", path, opts, false)
}

// Post implements zanox.Connection.Post.
func (c *Connection) Post(ctx context.Context, path string, opts *zanox.RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, "POST", path, opts, false)
}

// Put implements zanox.Connection.Put.
func (c *Connection) Put(ctx context.Context, path string, opts *zanox.RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, "PUT", path, opts, false)
}

// Delete implements zanox.Connection.Delete.
func (c *Connection) Delete(ctx context.Context, path string, opts *zanox.RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, "DELETE", path, opts, false)
}

// SignatureGet implements zanox.Connection.SignatureGet.
func (c *Connection) SignatureGet(ctx context.Context, path string, opts *zanox.RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, "GET", path, opts, true)
}

// SignaturePost implements zanox.Connection.SignaturePost.
func (c *Connection) SignaturePost(ctx context.Context, path string, opts *zanox.RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, "POST", path, opts, true)
}

// SignaturePut implements zanox.Connection.SignaturePut.
func (c *Connection) SignaturePut(ctx context.Context, path string, opts *zanox.RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, "PUT", path, opts, true)
}

// SignatureDelete implements zanox.Connection.SignatureDelete.
func (c *Connection) SignatureDelete(ctx context.Context, path string, opts *zanox.RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, "DELETE", path, opts, true)
}

// do authenticates, sends and classifies one call. Authentication headers
// are written after caller headers.
func (c *Connection) do(ctx context.Context, method, path string, opts *zanox.RequestOptions, signed bool) (json.RawMessage, error) {
	if path == "" {
		path = c.relativePath
	}

	var (
		authHeaders map[string]string
		err         error
	)

	if signed {
		authHeaders, err = c.authenticator.SignedHeaders(method, path)
	} else {
		authHeaders, err = c.authenticator.PublicHeaders()
	}

	if err != nil {
		return nil, err //nolint:wrapcheck // AuthenticationError is part of the API
	}

	req := &http.Request{
		Method:  method,
		Path:    path,
		Headers: make(map[string]string, len(authHeaders)),
	}

	if opts != nil {
		req.Query = opts.Query
		req.Body = opts.Body

		for key, value := range opts.Headers {
			req.Headers[key] = value
		}
	}

	for key, value := range authHeaders {
		req.Headers[key] = value
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, err //nolint:wrapcheck // classified and transport errors propagate unmodified
	}

	return json.RawMessage(resp.Body), nil
}
