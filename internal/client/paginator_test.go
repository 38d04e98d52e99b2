package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/zanox-client/internal/client"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStop = errors.New("stop")

// regionQuery sets only a region and leaves paging to the paginator.
type regionQuery string

func (q regionQuery) Values(int, int) url.Values {
	return url.Values{"region": []string{string(q)}}
}

type nilQuery struct{}

func (nilQuery) Values(int, int) url.Values { return nil }

// pagedPrograms serves total programs in pages of the requested size.
func pagedPrograms(t *testing.T, total int, calls *atomic.Int32) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		calls.Add(1)

		page, err := strconv.Atoi(request.URL.Query().Get("page"))
		require.NoError(t, err)

		items, err := strconv.Atoi(request.URL.Query().Get("items"))
		require.NoError(t, err)

		first := page * items
		count := max(0, min(items, total-first))

		writeJSON(writer, programPage(total, first, count))
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPaginator(t *testing.T) {
	t.Parallel()

	t.Run("all walks pages at the maximum size", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		var sizes []string

		handler := pagedPrograms(t, 107, &calls)
		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			sizes = append(sizes, request.URL.Query().Get("items"))
			handler(writer, request)
		})

		list, err := c.Programs().All(context.Background(), &zanox.ProgramQuery{
			PageOptions: zanox.PageOptions{PerPage: zanox.Int(5)},
		})
		require.NoError(t, err)

		assert.Len(t, list.Items, 107)
		assert.Equal(t, 107, list.Pagination.Total)
		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, []string{"50", "50", "50"}, sizes)
		assert.Equal(t, 106, list.Items[106].Identifier())

		total, ok := c.Programs().Total()
		require.True(t, ok)
		assert.Equal(t, 107, total)
	})

	t.Run("empty page ends the walk", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
			writeJSON(writer, `{"total": 100, "programItems": ""}`)
		})

		list, err := c.Programs().All(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, list.Items)
		assert.Equal(t, 100, list.Pagination.Total)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("page uses the sticky size", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		c := newTestClient(t, pagedPrograms(t, 37, &calls))
		programs := c.Programs()

		_, ok := programs.Total()
		assert.False(t, ok)

		assert.Equal(t, zanox.MaximumPerPage, programs.SetPerPage(80))
		assert.Equal(t, 0, programs.SetPerPage(-4))
		assert.Equal(t, 20, programs.SetPerPage(20))

		list, err := programs.Page(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Len(t, list.Items, 17)
		assert.Equal(t, zanox.Pagination{Total: 37, Page: 1, PerPage: 20}, list.Pagination)
		assert.Equal(t, 20, list.Items[0].Identifier())

		total, ok := programs.Total()
		require.True(t, ok)
		assert.Equal(t, 37, total)
	})

	t.Run("query page size wins over the sticky size", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		c := newTestClient(t, pagedPrograms(t, 37, &calls))

		list, err := c.Programs().Page(context.Background(), 0, &zanox.ProgramQuery{
			PageOptions: zanox.PageOptions{PerPage: zanox.Int(3), Items: zanox.Int(9)},
		})
		require.NoError(t, err)
		assert.Len(t, list.Items, 3)
		assert.Equal(t, zanox.DefaultPerPage, c.Programs().PerPage())
	})

	t.Run("each stops at the first callback error", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		c := newTestClient(t, pagedPrograms(t, 120, &calls))

		seen := 0
		err := c.Programs().Each(context.Background(), nil, func(zanox.Program) error {
			seen++
			if seen == 60 {
				return errStop
			}

			return nil
		})
		require.ErrorIs(t, err, errStop)
		assert.Equal(t, 60, seen)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("signed resources sign every page", func(t *testing.T) {
		t.Parallel()

		pages := 0

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/programapplications", request.URL.Path)
			assert.NotEmpty(t, request.Header.Get("nonce"))
			assert.Equal(t, "confirmed", request.URL.Query().Get("status"))

			pages++
			if pages == 1 {
				writeJSON(writer, `{"total": 2, "programApplicationItems": {"programApplicationItem": [{
					"@id": "1", "program": {"@id": "1803", "$": "Shoes Direct"}, "adspace": {"@id": "2101", "$": "Blog"},
					"status": "confirmed", "createDate": "2011-01-01T00:00:00", "allowTpv": true
				}]}}`)

				return
			}

			writeJSON(writer, `{"total": 2, "programApplicationItems": {"programApplicationItem": {
				"@id": "2", "program": {"@id": "1804", "$": "Books"}, "adspace": {"@id": "2101", "$": "Blog"},
				"status": "confirmed", "createDate": "2011-01-02T00:00:00", "allowTpv": false
			}}}`)
		})

		list, err := c.ProgramApplications().All(context.Background(), &zanox.ProgramApplicationQuery{
			Status: zanox.String(zanox.ApplicationStatusConfirmed),
		})
		require.NoError(t, err)
		require.Len(t, list.Items, 2)
		assert.True(t, bool(list.Items[0].AllowTPV))
		assert.Equal(t, "Books", list.Items[1].Program.Name)
		assert.Equal(t, 2, pages)
	})

	t.Run("custom queries still send page and items", func(t *testing.T) {
		t.Parallel()

		var (
			mu       sync.Mutex
			requests []url.Values
		)

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			requests = append(requests, request.URL.Query())
			mu.Unlock()

			writeJSON(writer, programPage(1, 0, 1))
		})

		paginator := client.NewPaginator[zanox.Program](
			c.Connection("/programs").(*client.Connection), false, "programItems", "programItem", 7)

		list, err := paginator.Page(context.Background(), 1, regionQuery("DE"))
		require.NoError(t, err)
		assert.Equal(t, 7, list.Pagination.PerPage)

		list, err = paginator.All(context.Background(), nilQuery{})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)

		mu.Lock()
		defer mu.Unlock()

		require.Len(t, requests, 2)
		assert.Equal(t, "1", requests[0].Get("page"))
		assert.Equal(t, "7", requests[0].Get("items"))
		assert.Equal(t, "DE", requests[0].Get("region"))
		assert.Equal(t, "0", requests[1].Get("page"))
		assert.Equal(t, strconv.Itoa(zanox.MaximumPerPage), requests[1].Get("items"))
	})

	t.Run("missing total fails the walk", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
			writeJSON(writer, `{"programItems": {"programItem": [{"@id": "1", "$": "A"}]}}`)
		})

		_, err := c.Programs().All(context.Background(), nil)
		assert.True(t, zanox.IsParseError(err))
	})

	t.Run("errors carry the resource", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.AdSpaces().Page(context.Background(), 0, nil)
		require.ErrorIs(t, err, zanox.ErrServerError)
		assert.Contains(t, err.Error(), "listing ad spaces")

		_, err = c.Products().All(context.Background(), nil)
		require.ErrorIs(t, err, zanox.ErrServerError)
		assert.Contains(t, err.Error(), "searching all products")
	})
}
