package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// ProductsClient implements zanox.ProductsClient.
type ProductsClient struct {
	*Paginator[zanox.Product]

	conn *Connection
}

// NewProductsClient creates a new products client.
func NewProductsClient(conn *Connection, perPage int) *ProductsClient {
	return &ProductsClient{
		Paginator: NewPaginator[zanox.Product](conn, false, "productItems", "productItem", perPage),
		conn:      conn,
	}
}

// Page implements zanox.ProductsClient.Page.
func (c *ProductsClient) Page(ctx context.Context, page int, query *zanox.ProductQuery) (*zanox.ListResponse[zanox.Product], error) {
	list, err := c.Paginator.Page(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}

	return list, nil
}

// All implements zanox.ProductsClient.All.
func (c *ProductsClient) All(ctx context.Context, query *zanox.ProductQuery) (*zanox.ListResponse[zanox.Product], error) {
	list, err := c.Paginator.All(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching all products: %w", err)
	}

	return list, nil
}

// Each implements zanox.ProductsClient.Each.
func (c *ProductsClient) Each(ctx context.Context, query *zanox.ProductQuery, fn func(zanox.Product) error) error {
	err := c.Paginator.Each(ctx, query, fn)
	if err != nil {
		return fmt.Errorf("iterating products: %w", err)
	}

	return nil
}

// Find implements zanox.ProductsClient.Find.
func (c *ProductsClient) Find(ctx context.Context, id string, opts *zanox.FindOptions) (*zanox.Product, error) {
	path := constants.APIPathProducts + "/product/" + url.PathEscape(id)

	product, err := findItem[zanox.Product](ctx, c.conn, false, path, "productItem", opts.Values())
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	if product == nil {
		return nil, fmt.Errorf("getting product: %w", &zanox.ParseError{Resource: "Product", Missing: []string{"productItem"}})
	}

	return product, nil
}
