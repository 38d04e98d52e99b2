// Package zanox provides types, interfaces, and helpers for working with the
// Zanox publisher API (JSON format, API version 2011-03-01).
//
// # Overview
//
// The zanox package defines the resource types (Program, AdSpace, AdMedium,
// Product, Incentive, ProgramApplication, Profile and their nested values)
// and the interfaces of the resource-oriented clients. A concrete
// implementation is provided by the zanoxclient package, which wires
// credentials, transport and request signing.
//
// Getting a client
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
//	  cli, err := zanoxclient.New(ctx, &zanox.Config{ConnectID: "...", SecretKey: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  programs, err := cli.Programs().Page(ctx, 0, &zanox.ProgramQuery{Query: zanox.String("shoes")})
//	  if err != nil { log.Fatal(err) }
//	  _ = programs
//	}
//
// Credentials can also be registered once for the whole process with
// Authenticate; a Config without credentials then falls back to them.
//
// # Authentication
//
// Public resources (programs, ad media, products, incentives) are requested
// with the static "ZXWS <connectID>" token. Account resources (ad spaces,
// exclusive incentives, program applications, profiles) are signed with
// HMAC-SHA1 over the verb, path, timestamp and nonce.
//
// # Pagination
//
// Every list client keeps a sticky page size (DefaultPerPage, clamped to
// MaximumPerPage) and the total reported by its most recent request. Page
// fetches one page, All walks pages at MaximumPerPage until the reported
// total is reached or a page comes back empty, and Each does the same
// while streaming items to a callback.
//
// # Errors
//
// CheckResponse maps status codes to *APIError kinds. Helpers such as
// IsBadRequest, IsUnauthorized and IsNotFound branch on them; 400 and 403
// errors carry the vendor's code, message and reason. Missing credentials
// surface as *AuthenticationError and malformed resources as *ParseError.
package zanox
