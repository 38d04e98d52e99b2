package client_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fivetwenty-io/zanox-client/internal/client"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/stretchr/testify/require"
)

const (
	testConnectID = "connect"
	testSecretKey = "secret"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	return newTestClientWithConfig(t, handler, &zanox.Config{ConnectID: testConnectID, SecretKey: testSecretKey})
}

func newTestClientWithConfig(t *testing.T, handler http.HandlerFunc, config *zanox.Config) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config.BaseURL = server.URL

	c, err := client.New(context.Background(), config)
	require.NoError(t, err)

	return c
}

func writeJSON(writer http.ResponseWriter, body string) {
	writer.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(writer, body)
}

// programPage renders count short-form programs starting at id first.
func programPage(total, first, count int) string {
	items := make([]string, 0, count)
	for i := range count {
		items = append(items, fmt.Sprintf(`{"@id": "%d", "$": "Program %d"}`, first+i, first+i))
	}

	return fmt.Sprintf(`{"page": 0, "items": %d, "total": %d, "programItems": {"programItem": [%s]}}`,
		count, total, strings.Join(items, ","))
}

const adMediumJSON = `{
	"@id": "551",
	"name": "Summer banner",
	"adrank": 3.5,
	"admediumType": "image",
	"program": {"@id": "1803", "$": "Shoes Direct"}
}`

const incentiveJSON = `{
	"@id": "77",
	"name": "10% off",
	"program": {"@id": "1803", "$": "Shoes Direct"},
	"admedia": {"admediumItem": ` + adMediumJSON + `},
	"incentiveType": "coupons",
	"createDate": "2011-01-01T00:00:00Z",
	"modifiedDate": "2011-02-01T00:00:00Z",
	"startDate": "2011-03-01T00:00:00Z",
	"info4customer": "Use code SPRING",
	"newCustomerOnly": false
}`

const profileJSON = `{
	"@id": "42",
	"adrank": 5,
	"firstName": "Ada",
	"lastName": "Lovelace",
	"email": "ada@example.com",
	"country": "DE",
	"street1": "Main 1",
	"city": "Berlin",
	"zipcode": "10115",
	"loginName": "ada",
	"userName": "ada",
	"isAdvertiser": false,
	"isSublogin": false
}`

const adSpaceJSON = `{
	"@id": "2101",
	"name": "Running blog",
	"url": "http://run.example",
	"description": "Notes on running",
	"adspaceType": "website",
	"visitors": 1500,
	"impressions": 30000,
	"language": "de",
	"checkNumber": 44
}`
