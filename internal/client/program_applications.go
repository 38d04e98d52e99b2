package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// ProgramApplicationsClient implements zanox.ProgramApplicationsClient.
// Every call is signed.
type ProgramApplicationsClient struct {
	*Paginator[zanox.ProgramApplication]
}

// NewProgramApplicationsClient creates a new program applications client.
func NewProgramApplicationsClient(conn *Connection, perPage int) *ProgramApplicationsClient {
	return &ProgramApplicationsClient{
		Paginator: NewPaginator[zanox.ProgramApplication](conn, true, "programApplicationItems", "programApplicationItem", perPage),
	}
}

// Page implements zanox.ProgramApplicationsClient.Page.
func (c *ProgramApplicationsClient) Page(ctx context.Context, page int, query *zanox.ProgramApplicationQuery) (*zanox.ListResponse[zanox.ProgramApplication], error) {
	list, err := c.Paginator.Page(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("listing program applications: %w", err)
	}

	return list, nil
}

// All implements zanox.ProgramApplicationsClient.All.
func (c *ProgramApplicationsClient) All(ctx context.Context, query *zanox.ProgramApplicationQuery) (*zanox.ListResponse[zanox.ProgramApplication], error) {
	list, err := c.Paginator.All(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all program applications: %w", err)
	}

	return list, nil
}

// Each implements zanox.ProgramApplicationsClient.Each.
func (c *ProgramApplicationsClient) Each(ctx context.Context, query *zanox.ProgramApplicationQuery, fn func(zanox.ProgramApplication) error) error {
	err := c.Paginator.Each(ctx, query, fn)
	if err != nil {
		return fmt.Errorf("iterating program applications: %w", err)
	}

	return nil
}
