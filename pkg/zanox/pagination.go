package zanox

import (
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
)

// Page size limits enforced by the API.
const (
	DefaultPerPage = constants.DefaultPageSize
	MaximumPerPage = constants.StandardPageSize
)

// ClampPerPage bounds n to [0, MaximumPerPage].
func ClampPerPage(n int) int {
	if n < 0 {
		return 0
	}

	if n > MaximumPerPage {
		return MaximumPerPage
	}

	return n
}

// Pagination describes the slice of a collection held by a ListResponse.
type Pagination struct {
	Total   int `json:"total"    yaml:"total"`
	Page    int `json:"page"     yaml:"page"`
	PerPage int `json:"per_page" yaml:"per_page"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Pagination Pagination `json:"pagination" yaml:"pagination"`
	Items      []T        `json:"items"      yaml:"items"`
}

// Query builds the URL parameters of one page request.
type Query interface {
	Values(page, perPage int) url.Values
}

// PageOptions holds the two spellings of the requested item count.
// PerPage wins over Items; both fall back to the client's sticky page size.
type PageOptions struct {
	PerPage *int
	Items   *int
}

// ItemCount resolves the item count for a request.
func (o *PageOptions) ItemCount(perPage int) int {
	switch {
	case o == nil:
		return ClampPerPage(perPage)
	case o.PerPage != nil:
		return ClampPerPage(*o.PerPage)
	case o.Items != nil:
		return ClampPerPage(*o.Items)
	default:
		return ClampPerPage(perPage)
	}
}

// Values returns the page and items parameters every list request carries.
func (o *PageOptions) Values(page, perPage int) url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("items", strconv.Itoa(o.ItemCount(perPage)))

	return values
}

// FindOptions narrows a single-item lookup.
type FindOptions struct {
	AdSpace *int
}

// Values returns the query string for a lookup.
func (o *FindOptions) Values() url.Values {
	if o == nil || o.AdSpace == nil {
		return nil
	}

	return url.Values{"adspace": []string{strconv.Itoa(*o.AdSpace)}}
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
