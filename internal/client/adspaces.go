package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// AdSpacesClient implements zanox.AdSpacesClient. Every call is signed.
type AdSpacesClient struct {
	*Paginator[zanox.AdSpace]

	conn *Connection
}

// NewAdSpacesClient creates a new ad spaces client.
func NewAdSpacesClient(conn *Connection, perPage int) *AdSpacesClient {
	return &AdSpacesClient{
		Paginator: NewPaginator[zanox.AdSpace](conn, true, "adspaceItems", "adspaceItem", perPage),
		conn:      conn,
	}
}

// Page implements zanox.AdSpacesClient.Page.
func (c *AdSpacesClient) Page(ctx context.Context, page int, query *zanox.AdSpaceQuery) (*zanox.ListResponse[zanox.AdSpace], error) {
	list, err := c.Paginator.Page(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("listing ad spaces: %w", err)
	}

	return list, nil
}

// All implements zanox.AdSpacesClient.All.
func (c *AdSpacesClient) All(ctx context.Context, query *zanox.AdSpaceQuery) (*zanox.ListResponse[zanox.AdSpace], error) {
	list, err := c.Paginator.All(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all ad spaces: %w", err)
	}

	return list, nil
}

// Each implements zanox.AdSpacesClient.Each.
func (c *AdSpacesClient) Each(ctx context.Context, query *zanox.AdSpaceQuery, fn func(zanox.AdSpace) error) error {
	err := c.Paginator.Each(ctx, query, fn)
	if err != nil {
		return fmt.Errorf("iterating ad spaces: %w", err)
	}

	return nil
}

// Find implements zanox.AdSpacesClient.Find.
func (c *AdSpacesClient) Find(ctx context.Context, id int) (*zanox.AdSpace, error) {
	path := constants.APIPathAdSpaces + "/adspace/" + strconv.Itoa(id)

	adspace, err := findItem[zanox.AdSpace](ctx, c.conn, true, path, "adspaceItem", nil)
	if err != nil {
		return nil, fmt.Errorf("getting ad space: %w", err)
	}

	return adspace, nil
}
