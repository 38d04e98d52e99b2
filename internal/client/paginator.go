package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"sync"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// Paginator implements the page/all protocol shared by every list
// resource. Its page size and last total belong to one client instance.
type Paginator[T any] struct {
	conn       *Connection
	signed     bool
	wrapperKey string
	itemKey    string

	mu      sync.Mutex
	perPage int
	total   *int
}

// NewPaginator creates a paginator reading items from wrapperKey.itemKey.
func NewPaginator[T any](conn *Connection, signed bool, wrapperKey, itemKey string, perPage int) *Paginator[T] {
	if perPage == 0 {
		perPage = zanox.DefaultPerPage
	}

	return &Paginator[T]{
		conn:       conn,
		signed:     signed,
		wrapperKey: wrapperKey,
		itemKey:    itemKey,
		perPage:    zanox.ClampPerPage(perPage),
	}
}

// PerPage returns the sticky page size.
func (p *Paginator[T]) PerPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.perPage
}

// SetPerPage stores n clamped to [0, MaximumPerPage] and returns the stored value.
func (p *Paginator[T]) SetPerPage(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.perPage = zanox.ClampPerPage(n)

	return p.perPage
}

// Total returns the total of the most recent Page or All call. The
// second result is false until a call has completed.
func (p *Paginator[T]) Total() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.total == nil {
		return 0, false
	}

	return *p.total, true
}

func (p *Paginator[T]) setTotal(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = &total
}

// Page fetches one page.
func (p *Paginator[T]) Page(ctx context.Context, page int, query zanox.Query) (*zanox.ListResponse[T], error) {
	return p.fetch(ctx, page, query, p.PerPage())
}

// All walks every page at the maximum page size.
func (p *Paginator[T]) All(ctx context.Context, query zanox.Query) (*zanox.ListResponse[T], error) {
	result := &zanox.ListResponse[T]{}

	err := p.walk(ctx, query, func(resp *zanox.ListResponse[T]) error {
		result.Pagination = resp.Pagination
		result.Items = append(result.Items, resp.Items...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Each walks every page at the maximum page size and hands each item to
// fn, stopping at the first error fn returns.
func (p *Paginator[T]) Each(ctx context.Context, query zanox.Query, fn func(T) error) error {
	return p.walk(ctx, query, func(resp *zanox.ListResponse[T]) error {
		for _, item := range resp.Items {
			err := fn(item)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// walk requests pages 0, 1, 2, ... until the accumulated count reaches the
// reported total. A page without items also ends the walk, since the API
// can report a nonzero total for a query whose pages come back empty.
func (p *Paginator[T]) walk(ctx context.Context, query zanox.Query, fn func(*zanox.ListResponse[T]) error) error {
	accumulated := 0

	for page := 0; ; page++ {
		resp, err := p.fetch(ctx, page, query, -1)
		if err != nil {
			return err
		}

		if page == 0 || len(resp.Items) > 0 {
			err = fn(resp)
			if err != nil {
				return err
			}
		}

		accumulated += len(resp.Items)

		if len(resp.Items) == 0 || accumulated >= resp.Pagination.Total {
			return nil
		}
	}
}

// pageValues returns the query's parameters with page and items always
// set. A negative perPage forces MaximumPerPage; otherwise an items value
// set by the query wins over perPage.
func pageValues(query zanox.Query, page, perPage int) (url.Values, int) {
	var values url.Values
	if query != nil {
		values = query.Values(page, perPage)
	}

	if values == nil {
		values = url.Values{}
	}

	items := zanox.ClampPerPage(perPage)

	switch {
	case perPage < 0:
		items = zanox.MaximumPerPage
	case values.Has("items"):
		n, err := strconv.Atoi(values.Get("items"))
		if err == nil {
			items = zanox.ClampPerPage(n)
		}
	}

	values.Set("page", strconv.Itoa(page))
	values.Set("items", strconv.Itoa(items))

	return values, items
}

// fetch requests one page.
func (p *Paginator[T]) fetch(ctx context.Context, page int, query zanox.Query, perPage int) (*zanox.ListResponse[T], error) {
	values, items := pageValues(query, page, perPage)

	opts := &zanox.RequestOptions{Query: values}

	var (
		body json.RawMessage
		err  error
	)

	if p.signed {
		body, err = p.conn.SignatureGet(ctx, "", opts)
	} else {
		body, err = p.conn.Get(ctx, "", opts)
	}

	if err != nil {
		return nil, err //nolint:wrapcheck // resource clients add context
	}

	envelope, err := zanox.DecodeEnvelope[T](body, p.wrapperKey, p.itemKey)
	if err != nil {
		return nil, err //nolint:wrapcheck // resource clients add context
	}

	p.setTotal(envelope.Total)

	return &zanox.ListResponse[T]{
		Pagination: zanox.Pagination{
			Total:   envelope.Total,
			Page:    page,
			PerPage: items,
		},
		Items: envelope.Items,
	}, nil
}
