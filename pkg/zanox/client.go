package zanox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// PaginationState exposes the sticky page size and the total reported by
// the most recent Page or All call of one resource client.
type PaginationState interface {
	PerPage() int
	SetPerPage(n int) int
	Total() (int, bool)
}

// ProgramsClient lists and looks up affiliate programs.
type ProgramsClient interface {
	PaginationState

	Page(ctx context.Context, page int, query *ProgramQuery) (*ListResponse[Program], error)
	All(ctx context.Context, query *ProgramQuery) (*ListResponse[Program], error)
	Each(ctx context.Context, query *ProgramQuery, fn func(Program) error) error
	// Find returns nil without error when the API reports no such program.
	Find(ctx context.Context, id int, opts *FindOptions) (*Program, error)
	Categories(ctx context.Context) (Categories, error)
	AdmediaCategories(ctx context.Context, programID int) (Categories, error)
}

// ProgramApplicationsClient lists the caller's program applications.
type ProgramApplicationsClient interface {
	PaginationState

	Page(ctx context.Context, page int, query *ProgramApplicationQuery) (*ListResponse[ProgramApplication], error)
	All(ctx context.Context, query *ProgramApplicationQuery) (*ListResponse[ProgramApplication], error)
	Each(ctx context.Context, query *ProgramApplicationQuery, fn func(ProgramApplication) error) error
}

// AdSpacesClient lists and looks up the caller's ad spaces.
type AdSpacesClient interface {
	PaginationState

	Page(ctx context.Context, page int, query *AdSpaceQuery) (*ListResponse[AdSpace], error)
	All(ctx context.Context, query *AdSpaceQuery) (*ListResponse[AdSpace], error)
	Each(ctx context.Context, query *AdSpaceQuery, fn func(AdSpace) error) error
	// Find returns nil without error when the API reports no such ad space.
	Find(ctx context.Context, id int) (*AdSpace, error)
}

// AdMediaClient lists and looks up ad media.
type AdMediaClient interface {
	PaginationState

	Page(ctx context.Context, page int, query *AdMediumQuery) (*ListResponse[AdMedium], error)
	All(ctx context.Context, query *AdMediumQuery) (*ListResponse[AdMedium], error)
	Each(ctx context.Context, query *AdMediumQuery, fn func(AdMedium) error) error
	Find(ctx context.Context, id int, opts *FindOptions) (*AdMedium, error)
}

// ProductsClient searches and looks up products.
type ProductsClient interface {
	PaginationState

	Page(ctx context.Context, page int, query *ProductQuery) (*ListResponse[Product], error)
	All(ctx context.Context, query *ProductQuery) (*ListResponse[Product], error)
	Each(ctx context.Context, query *ProductQuery, fn func(Product) error) error
	Find(ctx context.Context, id string, opts *FindOptions) (*Product, error)
}

// IncentivesClient lists and looks up incentives. The same interface
// serves public and exclusive incentives.
type IncentivesClient interface {
	PaginationState

	Page(ctx context.Context, page int, query *IncentiveQuery) (*ListResponse[Incentive], error)
	All(ctx context.Context, query *IncentiveQuery) (*ListResponse[Incentive], error)
	Each(ctx context.Context, query *IncentiveQuery, fn func(Incentive) error) error
	Find(ctx context.Context, id int, opts *FindOptions) (*Incentive, error)
}

// ProfilesClient reads the caller's account profiles.
type ProfilesClient interface {
	All(ctx context.Context) ([]Profile, error)
	// First returns nil without error when no profile is returned.
	First(ctx context.Context) (*Profile, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Programs() ProgramsClient
	ProgramApplications() ProgramApplicationsClient
	AdSpaces() AdSpacesClient
	AdMedia() AdMediaClient
	Products() ProductsClient
	Incentives() IncentivesClient
	ExclusiveIncentives() IncentivesClient
	Profiles() ProfilesClient
}

// Client is a Zanox publisher API client.
type Client interface {
	ResourceClients

	// Connection returns a connection rooted at relativePath that shares
	// the client's credentials and transport.
	Connection(relativePath string) Connection
}

// RequestOptions carries the per-call parts of a request.
type RequestOptions struct {
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Connection performs authenticated calls against the API. An empty path
// means the connection's relative path. Get, Post, Put and Delete use
// the static token; the Signature variants sign the verb and path.
type Connection interface {
	RelativePath() string

	Get(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
	Post(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
	Put(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
	Delete(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)

	SignatureGet(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
	SignaturePost(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
	SignaturePut(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
	SignatureDelete(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a zanox.Client.
//
// # Credentials
//
// ConnectID and SecretKey fall back, field by field, to the process-wide
// defaults registered with Authenticate. Either may stay empty: the static
// token mode only needs ConnectID, and signed calls fail with an
// AuthenticationError before any request is sent when SecretKey is missing.
//
// # Transport
//
// Requests are never retried. Per-request deadlines should be controlled via
// the context passed to client methods; HTTPTimeout bounds every request.
type Config struct {
	// ConnectID: the public account token sent in every Authorization header.
	ConnectID string
	// SecretKey: the private key used to sign requests. It is never sent.
	SecretKey string

	// Optional configurations
	// BaseURL: overrides the API root (default https://api.zanox.com/json/2011-03-01).
	// zanoxclient.New trims a trailing slash and adds "https://" if no scheme is present.
	BaseURL string
	// HTTPClient: optional client whose transport is reused. Its Timeout is
	// overridden by HTTPTimeout when that is set.
	HTTPClient *http.Client
	// HTTPTimeout: timeout applied to every request. Zero means the default.
	HTTPTimeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// EnableTracing: wraps the transport with OpenTelemetry client spans.
	EnableTracing bool
	// TracerProvider: provider used when EnableTracing is set. Nil means the
	// global provider.
	TracerProvider trace.TracerProvider
	// PerPage: initial sticky page size of every resource client. Zero
	// means DefaultPerPage; values are clamped to [0, MaximumPerPage].
	PerPage int
}

var (
	defaultsMu       sync.RWMutex
	defaultConnectID string
	defaultSecretKey string
)

// Authenticate registers process-wide default credentials used by clients
// and connections built from a Config without credentials of their own.
func Authenticate(connectID, secretKey string) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	defaultConnectID = connectID
	defaultSecretKey = secretKey
}

// DefaultCredentials returns the credentials registered with Authenticate.
func DefaultCredentials() (string, string) {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()

	return defaultConnectID, defaultSecretKey
}

// ResolveCredentials returns the config's credentials with empty fields
// filled from the process-wide defaults.
func (c *Config) ResolveCredentials() (string, string) {
	connectID, secretKey := DefaultCredentials()

	if c != nil && c.ConnectID != "" {
		connectID = c.ConnectID
	}

	if c != nil && c.SecretKey != "" {
		secretKey = c.SecretKey
	}

	return connectID, secretKey
}
