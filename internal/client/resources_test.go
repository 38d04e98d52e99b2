package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramsClient(t *testing.T) {
	t.Parallel()

	t.Run("find", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/programs/program/1803", request.URL.Path)
			assert.Equal(t, "2101", request.URL.Query().Get("adspace"))
			assert.Empty(t, request.Header.Get("nonce"))
			writeJSON(writer, `{"programItem": [{"@id": "1803", "$": "Shoes Direct"}]}`)
		})

		program, err := c.Programs().Find(context.Background(), 1803, &zanox.FindOptions{AdSpace: zanox.Int(2101)})
		require.NoError(t, err)
		require.NotNil(t, program)
		assert.Equal(t, "Shoes Direct", program.Name)
	})

	t.Run("find absent", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.URL.RawQuery)
			writeJSON(writer, `{"programItem": []}`)
		})

		program, err := c.Programs().Find(context.Background(), 404, nil)
		require.NoError(t, err)
		assert.Nil(t, program)
	})

	t.Run("categories", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/programs/categories":
				writeJSON(writer, `{"categories": [{"category": [{"@id": 1, "$": "Fashion"}, {"@id": 2, "$": "Travel"}]}]}`)
			case "/admedia/categories/program/1803":
				writeJSON(writer, `{"categories": {"category": {"@id": 9, "$": "Banner"}}}`)
			default:
				t.Errorf("unexpected path %s", request.URL.Path)
			}
		})

		categories, err := c.Programs().Categories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Travel", *categories[1].Name)

		categories, err = c.Programs().AdmediaCategories(context.Background(), 1803)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, 9, categories[0].Identifier())
	})
}

func TestAdSpacesClient(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.NotEmpty(t, request.Header.Get("nonce"))

		switch request.URL.Path {
		case "/adspaces/adspace/2101":
			writeJSON(writer, `{"adspaceItem": [`+adSpaceJSON+`]}`)
		case "/adspaces/adspace/7":
			writeJSON(writer, `{"adspaceItem": [{}]}`)
		case "/adspaces/adspace/8":
			writeJSON(writer, `{"adspaceItem": {}}`)
		default:
			writeJSON(writer, `{"adspaceItem": []}`)
		}
	})

	adSpace, err := c.AdSpaces().Find(context.Background(), 2101)
	require.NoError(t, err)
	require.NotNil(t, adSpace)
	assert.Equal(t, "Running blog", adSpace.Name)

	for _, id := range []int{1, 7, 8} {
		adSpace, err = c.AdSpaces().Find(context.Background(), id)
		require.NoError(t, err, id)
		assert.Nil(t, adSpace, id)
	}
}

func TestAdMediaClient(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/admedia":
			assert.Equal(t, "image", request.URL.Query().Get("admediumtype"))
			writeJSON(writer, `{"total": 1, "admediumItems": {"admediumItem": [`+adMediumJSON+`]}}`)
		case "/admedia/admedium/551":
			writeJSON(writer, `{"admediumItem": [`+adMediumJSON+`]}`)
		default:
			writeJSON(writer, `{}`)
		}
	})

	list, err := c.AdMedia().Page(context.Background(), 0, &zanox.AdMediumQuery{
		AdMediumType: zanox.String(zanox.AdMediumTypeImage),
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	adMedium, err := c.AdMedia().Find(context.Background(), 551, nil)
	require.NoError(t, err)
	assert.Equal(t, "Summer banner", adMedium.Name)

	_, err = c.AdMedia().Find(context.Background(), 1, nil)
	require.True(t, zanox.IsParseError(err))
}

func TestProductsClient(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.EscapedPath() {
		case "/products":
			query := request.URL.Query()
			assert.Equal(t, "trail shoe", query.Get("q"))
			assert.Equal(t, "phrase", query.Get("searchtype"))
			assert.Equal(t, "1803,1804", query.Get("programs"))
			writeJSON(writer, `{"total": 0, "productItems": ""}`)
		case "/products/product/a1%2Fb2":
			writeJSON(writer, `{"productItem": [{
				"@id": "a1/b2", "name": "Trail shoe", "modified": "2011-05-01T10:00:00Z",
				"program": {"@id": 1803, "$": "Shoes Direct"}, "price": 89.9, "currency": "EUR"
			}]}`)
		default:
			writeJSON(writer, `{"productItem": []}`)
		}
	})

	list, err := c.Products().Page(context.Background(), 0, &zanox.ProductQuery{
		Query:    zanox.String("trail shoe"),
		Programs: []int{1803, 1804},
	})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	product, err := c.Products().Find(context.Background(), "a1/b2", nil)
	require.NoError(t, err)
	assert.Equal(t, "a1/b2", product.Identifier())

	_, err = c.Products().Find(context.Background(), "gone", nil)
	require.True(t, zanox.IsParseError(err))
}

func TestIncentivesClient(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		signed := request.Header.Get("nonce") != ""

		switch request.URL.Path {
		case "/incentives":
			assert.False(t, signed)
			writeJSON(writer, `{"total": 1, "incentiveItems": {"incentiveItem": [`+incentiveJSON+`]}}`)
		case "/incentives/exclusive":
			assert.True(t, signed)
			writeJSON(writer, `{"total": 1, "incentiveItems": {"incentiveItem": `+incentiveJSON+`}}`)
		case "/incentives/exclusive/incentive/77":
			assert.True(t, signed)
			writeJSON(writer, `{"incentiveItem": [`+incentiveJSON+`]}`)
		case "/incentives/incentive/77":
			assert.False(t, signed)
			writeJSON(writer, `{"incentiveItem": [`+incentiveJSON+`]}`)
		default:
			writeJSON(writer, `{}`)
		}
	})

	ctx := context.Background()

	public, err := c.Incentives().Page(ctx, 0, nil)
	require.NoError(t, err)
	require.Len(t, public.Items, 1)
	assert.False(t, public.Items[0].Exclusive)
	assert.Equal(t, 551, public.Items[0].AdMedium.Identifier())

	exclusive, err := c.ExclusiveIncentives().All(ctx, nil)
	require.NoError(t, err)
	require.Len(t, exclusive.Items, 1)
	assert.True(t, exclusive.Items[0].Exclusive)

	err = c.ExclusiveIncentives().Each(ctx, nil, func(incentive zanox.Incentive) error {
		assert.True(t, incentive.Exclusive)

		return nil
	})
	require.NoError(t, err)

	incentive, err := c.ExclusiveIncentives().Find(ctx, 77, nil)
	require.NoError(t, err)
	assert.True(t, incentive.Exclusive)

	incentive, err = c.Incentives().Find(ctx, 77, nil)
	require.NoError(t, err)
	assert.False(t, incentive.Exclusive)

	_, err = c.Incentives().Find(ctx, 78, nil)
	require.True(t, zanox.IsParseError(err))
}

func TestProfilesClient(t *testing.T) {
	t.Parallel()

	t.Run("all and first", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/profiles", request.URL.Path)
			assert.NotEmpty(t, request.Header.Get("nonce"))
			writeJSON(writer, `{"profileItem": [`+profileJSON+`]}`)
		})

		profiles, err := c.Profiles().All(context.Background())
		require.NoError(t, err)
		require.Len(t, profiles, 1)

		profile, err := c.Profiles().First(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Ada", profile.FirstName)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, `{"profileItem": []}`)
		})

		profile, err := c.Profiles().First(context.Background())
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("missing wrapper", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, `{}`)
		})

		_, err := c.Profiles().All(context.Background())
		require.True(t, zanox.IsParseError(err))
	})
}
