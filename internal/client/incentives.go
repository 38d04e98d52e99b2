package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// IncentivesClient implements zanox.IncentivesClient for both public
// incentives and exclusive incentives. Exclusive incentives are signed
// and flagged on every returned item.
type IncentivesClient struct {
	*Paginator[zanox.Incentive]

	conn      *Connection
	exclusive bool
}

// NewIncentivesClient creates a new incentives client rooted at conn's path.
func NewIncentivesClient(conn *Connection, exclusive bool, perPage int) *IncentivesClient {
	return &IncentivesClient{
		Paginator: NewPaginator[zanox.Incentive](conn, exclusive, "incentiveItems", "incentiveItem", perPage),
		conn:      conn,
		exclusive: exclusive,
	}
}

func (c *IncentivesClient) noun() string {
	if c.exclusive {
		return "exclusive incentives"
	}

	return "incentives"
}

func (c *IncentivesClient) mark(items []zanox.Incentive) {
	for i := range items {
		items[i].Exclusive = c.exclusive
	}
}

// Page implements zanox.IncentivesClient.Page.
func (c *IncentivesClient) Page(ctx context.Context, page int, query *zanox.IncentiveQuery) (*zanox.ListResponse[zanox.Incentive], error) {
	list, err := c.Paginator.Page(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.noun(), err)
	}

	c.mark(list.Items)

	return list, nil
}

// All implements zanox.IncentivesClient.All.
func (c *IncentivesClient) All(ctx context.Context, query *zanox.IncentiveQuery) (*zanox.ListResponse[zanox.Incentive], error) {
	list, err := c.Paginator.All(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all %s: %w", c.noun(), err)
	}

	c.mark(list.Items)

	return list, nil
}

// Each implements zanox.IncentivesClient.Each.
func (c *IncentivesClient) Each(ctx context.Context, query *zanox.IncentiveQuery, fn func(zanox.Incentive) error) error {
	err := c.Paginator.Each(ctx, query, func(item zanox.Incentive) error {
		item.Exclusive = c.exclusive

		return fn(item)
	})
	if err != nil {
		return fmt.Errorf("iterating %s: %w", c.noun(), err)
	}

	return nil
}

// Find implements zanox.IncentivesClient.Find.
func (c *IncentivesClient) Find(ctx context.Context, id int, opts *zanox.FindOptions) (*zanox.Incentive, error) {
	path := c.conn.RelativePath() + "/incentive/" + strconv.Itoa(id)

	incentive, err := findItem[zanox.Incentive](ctx, c.conn, c.exclusive, path, "incentiveItem", opts.Values())
	if err != nil {
		return nil, fmt.Errorf("getting incentive: %w", err)
	}

	if incentive == nil {
		return nil, fmt.Errorf("getting incentive: %w", &zanox.ParseError{Resource: "Incentive", Missing: []string{"incentiveItem"}})
	}

	incentive.Exclusive = c.exclusive

	return incentive, nil
}
