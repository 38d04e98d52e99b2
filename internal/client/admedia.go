package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// AdMediaClient implements zanox.AdMediaClient.
type AdMediaClient struct {
	*Paginator[zanox.AdMedium]

	conn *Connection
}

// NewAdMediaClient creates a new ad media client.
func NewAdMediaClient(conn *Connection, perPage int) *AdMediaClient {
	return &AdMediaClient{
		Paginator: NewPaginator[zanox.AdMedium](conn, false, "admediumItems", "admediumItem", perPage),
		conn:      conn,
	}
}

// Page implements zanox.AdMediaClient.Page.
func (c *AdMediaClient) Page(ctx context.Context, page int, query *zanox.AdMediumQuery) (*zanox.ListResponse[zanox.AdMedium], error) {
	list, err := c.Paginator.Page(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("listing ad media: %w", err)
	}

	return list, nil
}

// All implements zanox.AdMediaClient.All.
func (c *AdMediaClient) All(ctx context.Context, query *zanox.AdMediumQuery) (*zanox.ListResponse[zanox.AdMedium], error) {
	list, err := c.Paginator.All(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all ad media: %w", err)
	}

	return list, nil
}

// Each implements zanox.AdMediaClient.Each.
func (c *AdMediaClient) Each(ctx context.Context, query *zanox.AdMediumQuery, fn func(zanox.AdMedium) error) error {
	err := c.Paginator.Each(ctx, query, fn)
	if err != nil {
		return fmt.Errorf("iterating ad media: %w", err)
	}

	return nil
}

// Find implements zanox.AdMediaClient.Find.
func (c *AdMediaClient) Find(ctx context.Context, id int, opts *zanox.FindOptions) (*zanox.AdMedium, error) {
	path := constants.APIPathAdMedia + "/admedium/" + strconv.Itoa(id)

	admedium, err := findItem[zanox.AdMedium](ctx, c.conn, false, path, "admediumItem", opts.Values())
	if err != nil {
		return nil, fmt.Errorf("getting ad medium: %w", err)
	}

	if admedium == nil {
		return nil, fmt.Errorf("getting ad medium: %w", &zanox.ParseError{Resource: "AdMedium", Missing: []string{"admediumItem"}})
	}

	return admedium, nil
}
