package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoint.
const (
	// APIHost is the Zanox API host.
	APIHost = "api.zanox.com"

	// DataFormat is the response format segment of the base URI.
	DataFormat = "json"

	// APIVersion is the API version segment of the base URI.
	APIVersion = "2011-03-01"

	// DefaultBaseURL is the API root every relative path is joined to.
	DefaultBaseURL = "https://" + APIHost + "/" + DataFormat + "/" + APIVersion
)

// Authentication.
const (
	// AuthScheme prefixes every Authorization header value.
	AuthScheme = "ZXWS"

	// TimestampLayout renders the Date header. The day of month is space
	// padded rather than zero padded.
	TimestampLayout = "Mon, _2 Jan 2006 15:04:05 GMT"

	// NonceHeader carries the per-request nonce of signed calls.
	NonceHeader = "nonce"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// HTTP status code ranges used by the response classifier.
const (
	// HTTPStatusClientErrorMin is the first client error status.
	HTTPStatusClientErrorMin = 400

	// HTTPStatusClientErrorMax is the last client error status.
	HTTPStatusClientErrorMax = 499

	// HTTPStatusServerErrorMin is the first server error status.
	HTTPStatusServerErrorMin = 500

	// HTTPStatusServerErrorMax is the last server error status.
	HTTPStatusServerErrorMax = 599
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 10

	// StandardPageSize is the largest page the API returns.
	StandardPageSize = 50
)

// Resource paths relative to the base URL.
const (
	// APIPathPrograms for programs endpoint.
	APIPathPrograms = "/programs"

	// APIPathProgramCategories for the program category tree.
	APIPathProgramCategories = "/programs/categories"

	// APIPathAdmediaCategories for a program's ad media categories.
	APIPathAdmediaCategories = "/admedia/categories/program"

	// APIPathProgramApplications for program applications endpoint.
	APIPathProgramApplications = "/programapplications"

	// APIPathAdSpaces for ad spaces endpoint.
	APIPathAdSpaces = "/adspaces"

	// APIPathAdMedia for ad media endpoint.
	APIPathAdMedia = "/admedia"

	// APIPathProducts for products endpoint.
	APIPathProducts = "/products"

	// APIPathIncentives for incentives endpoint.
	APIPathIncentives = "/incentives"

	// APIPathExclusiveIncentives for exclusive incentives endpoint.
	APIPathExclusiveIncentives = "/incentives/exclusive"

	// APIPathProfiles for profiles endpoint.
	APIPathProfiles = "/profiles"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the indent of JSON and YAML output.
	JSONIndentSize = 2

	// DescriptionTruncationLimit bounds free text in table cells.
	DescriptionTruncationLimit = 60
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
