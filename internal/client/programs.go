package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// ProgramsClient implements zanox.ProgramsClient.
type ProgramsClient struct {
	*Paginator[zanox.Program]

	conn *Connection
}

// NewProgramsClient creates a new programs client.
func NewProgramsClient(conn *Connection, perPage int) *ProgramsClient {
	return &ProgramsClient{
		Paginator: NewPaginator[zanox.Program](conn, false, "programItems", "programItem", perPage),
		conn:      conn,
	}
}

// Page implements zanox.ProgramsClient.Page.
func (c *ProgramsClient) Page(ctx context.Context, page int, query *zanox.ProgramQuery) (*zanox.ListResponse[zanox.Program], error) {
	list, err := c.Paginator.Page(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}

	return list, nil
}

// All implements zanox.ProgramsClient.All.
func (c *ProgramsClient) All(ctx context.Context, query *zanox.ProgramQuery) (*zanox.ListResponse[zanox.Program], error) {
	list, err := c.Paginator.All(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all programs: %w", err)
	}

	return list, nil
}

// Each implements zanox.ProgramsClient.Each.
func (c *ProgramsClient) Each(ctx context.Context, query *zanox.ProgramQuery, fn func(zanox.Program) error) error {
	err := c.Paginator.Each(ctx, query, fn)
	if err != nil {
		return fmt.Errorf("iterating programs: %w", err)
	}

	return nil
}

// Find implements zanox.ProgramsClient.Find.
func (c *ProgramsClient) Find(ctx context.Context, id int, opts *zanox.FindOptions) (*zanox.Program, error) {
	path := constants.APIPathPrograms + "/program/" + strconv.Itoa(id)

	program, err := findItem[zanox.Program](ctx, c.conn, false, path, "programItem", opts.Values())
	if err != nil {
		return nil, fmt.Errorf("getting program: %w", err)
	}

	return program, nil
}

// Categories implements zanox.ProgramsClient.Categories.
func (c *ProgramsClient) Categories(ctx context.Context) (zanox.Categories, error) {
	categories, err := fetchCategories(ctx, c.conn, constants.APIPathProgramCategories)
	if err != nil {
		return nil, fmt.Errorf("listing program categories: %w", err)
	}

	return categories, nil
}

// AdmediaCategories implements zanox.ProgramsClient.AdmediaCategories.
func (c *ProgramsClient) AdmediaCategories(ctx context.Context, programID int) (zanox.Categories, error) {
	path := constants.APIPathAdmediaCategories + "/" + strconv.Itoa(programID)

	categories, err := fetchCategories(ctx, c.conn, path)
	if err != nil {
		return nil, fmt.Errorf("listing ad media categories of program %d: %w", programID, err)
	}

	return categories, nil
}

func fetchCategories(ctx context.Context, conn *Connection, path string) (zanox.Categories, error) {
	body, err := conn.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		Categories zanox.Categories `json:"categories"`
	}

	err = json.Unmarshal(body, &response)
	if err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}

	return response.Categories, nil
}

// findItem requests a single-item path and returns the first element under
// itemKey, or nil when there is none.
func findItem[T any](ctx context.Context, conn *Connection, signed bool, path, itemKey string, query url.Values) (*T, error) {
	opts := &zanox.RequestOptions{Query: query}

	var (
		body json.RawMessage
		err  error
	)

	if signed {
		body, err = conn.SignatureGet(ctx, path, opts)
	} else {
		body, err = conn.Get(ctx, path, opts)
	}

	if err != nil {
		return nil, err
	}

	return zanox.DecodeItem[T](body, itemKey)
}
