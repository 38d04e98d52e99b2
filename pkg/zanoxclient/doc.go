// Package zanoxclient provides the primary entry point for constructing a
// Zanox publisher API client that implements the zanox.Client interface.
//
// It layers configuration, HTTP transport and request signing on top of the
// resource interfaces and types defined in the zanox package. Most
// applications should import zanoxclient to build a client, then use the
// returned zanox.Client to reach resource clients such as Programs(),
// AdSpaces() or Products().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/zanox-client/pkg/zanox"
//	  "github.com/fivetwenty-io/zanox-client/pkg/zanoxclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := zanoxclient.NewWithCredentials(ctx, "CONNECT_ID", "SECRET_KEY")
//	  if err != nil { log.Fatal(err) }
//
//	  programs, err := cli.Programs().Page(ctx, 0, &zanox.ProgramQuery{Query: zanox.String("shoes")})
//	  if err != nil { log.Fatal(err) }
//	  _ = programs
//	}
//
// # Base URL
//
// Config.BaseURL defaults to the JSON API root. A trailing slash is trimmed
// and "https://" is prepended when the value carries no scheme.
//
// # Raw connections
//
// NewConnection returns a zanox.Connection for endpoints without a
// dedicated resource client. It signs with the same credentials.
package zanoxclient
