package client

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/zanox-client/internal/auth"
	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/internal/http"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Client implements the zanox.Client interface.
type Client struct {
	httpClient    *http.Client
	authenticator *auth.Authenticator
	baseURL       string
	logger        zanox.Logger

	// Resource clients
	programs            *ProgramsClient
	programApplications *ProgramApplicationsClient
	adSpaces            *AdSpacesClient
	adMedia             *AdMediaClient
	products            *ProductsClient
	incentives          *IncentivesClient
	exclusiveIncentives *IncentivesClient
	profiles            *ProfilesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *zanox.Config) []http.Option {
	var httpOpts []http.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.EnableTracing {
		httpOpts = append(httpOpts, http.WithTracing(config.TracerProvider))
	}

	return httpOpts
}

// New creates a new Zanox API client. Credentials missing from config are
// taken from the process-wide defaults.
func New(_ context.Context, config *zanox.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	connectID, secretKey := config.ResolveCredentials()

	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:    httpClient,
		authenticator: auth.NewAuthenticator(connectID, secretKey),
		baseURL:       config.BaseURL,
		logger:        config.Logger,
	}

	client.initializeResourceClients(config.PerPage)

	return client, nil
}

// NewConfiguredConnection builds a standalone connection with its own
// transport and the config's credentials. The base URL is used as given.
func NewConfiguredConnection(config *zanox.Config, relativePath string) *Connection {
	connectID, secretKey := config.ResolveCredentials()
	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	return NewConnection(httpClient, auth.NewAuthenticator(connectID, secretKey), relativePath)
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients(perPage int) {
	c.programs = NewProgramsClient(c.connection(constants.APIPathPrograms), perPage)
	c.programApplications = NewProgramApplicationsClient(c.connection(constants.APIPathProgramApplications), perPage)
	c.adSpaces = NewAdSpacesClient(c.connection(constants.APIPathAdSpaces), perPage)
	c.adMedia = NewAdMediaClient(c.connection(constants.APIPathAdMedia), perPage)
	c.products = NewProductsClient(c.connection(constants.APIPathProducts), perPage)
	c.incentives = NewIncentivesClient(c.connection(constants.APIPathIncentives), false, perPage)
	c.exclusiveIncentives = NewIncentivesClient(c.connection(constants.APIPathExclusiveIncentives), true, perPage)
	c.profiles = NewProfilesClient(c.connection(constants.APIPathProfiles))
}

func (c *Client) connection(relativePath string) *Connection {
	return NewConnection(c.httpClient, c.authenticator, relativePath)
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authenticator returns the authenticator shared by every connection.
func (c *Client) Authenticator() *auth.Authenticator {
	return c.authenticator
}

// Connection implements zanox.Client.Connection.
func (c *Client) Connection(relativePath string) zanox.Connection {
	return c.connection(relativePath)
}

// Resource client accessors

// Programs implements zanox.Client.Programs.
func (c *Client) Programs() zanox.ProgramsClient {
	return c.programs
}

// ProgramApplications implements zanox.Client.ProgramApplications.
func (c *Client) ProgramApplications() zanox.ProgramApplicationsClient {
	return c.programApplications
}

// AdSpaces implements zanox.Client.AdSpaces.
func (c *Client) AdSpaces() zanox.AdSpacesClient {
	return c.adSpaces
}

// AdMedia implements zanox.Client.AdMedia.
func (c *Client) AdMedia() zanox.AdMediaClient {
	return c.adMedia
}

// Products implements zanox.Client.Products.
func (c *Client) Products() zanox.ProductsClient {
	return c.products
}

// Incentives implements zanox.Client.Incentives.
func (c *Client) Incentives() zanox.IncentivesClient {
	return c.incentives
}

// ExclusiveIncentives implements zanox.Client.ExclusiveIncentives.
func (c *Client) ExclusiveIncentives() zanox.IncentivesClient {
	return c.exclusiveIncentives
}

// Profiles implements zanox.Client.Profiles.
func (c *Client) Profiles() zanox.ProfilesClient {
	return c.profiles
}

var _ zanox.Client = (*Client)(nil)
