// Package auth builds the Authorization headers of the Zanox API.
package auth

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // the nonce only has to be unique, not collision resistant
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is mandated by the API
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/google/uuid"
)

// Header names set by the authenticator.
const (
	HeaderAuthorization = "Authorization"
	HeaderDate          = "Date"
	HeaderNonce         = constants.NonceHeader
)

// Authenticator produces the static-token and signed header sets.
type Authenticator struct {
	connectID string
	secretKey string
	now       func() time.Time
	nonce     func() string
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithClock replaces the time source of signed headers.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		a.now = now
	}
}

// WithNonceSource replaces the nonce generator of signed headers.
func WithNonceSource(nonce func() string) Option {
	return func(a *Authenticator) {
		a.nonce = nonce
	}
}

// NewAuthenticator creates an authenticator. Empty credentials are
// allowed; they are only rejected by the mode that needs them.
func NewAuthenticator(connectID, secretKey string, opts ...Option) *Authenticator {
	authenticator := &Authenticator{
		connectID: connectID,
		secretKey: secretKey,
		now:       time.Now,
		nonce:     NewNonce,
	}

	for _, opt := range opts {
		opt(authenticator)
	}

	return authenticator
}

// ConnectID returns the configured connect ID.
func (a *Authenticator) ConnectID() string {
	return a.connectID
}

// PublicHeaders returns the static-token header set.
func (a *Authenticator) PublicHeaders() (map[string]string, error) {
	if a.connectID == "" {
		return nil, &zanox.AuthenticationError{Err: zanox.ErrMissingConnectID}
	}

	return map[string]string{
		HeaderAuthorization: constants.AuthScheme + " " + a.connectID,
	}, nil
}

// SignedHeaders returns the signed header set for one request. path is
// the resource path without base URL or query string.
func (a *Authenticator) SignedHeaders(verb, path string) (map[string]string, error) {
	if a.connectID == "" {
		return nil, &zanox.AuthenticationError{Err: zanox.ErrMissingConnectID}
	}

	if a.secretKey == "" {
		return nil, &zanox.AuthenticationError{Err: zanox.ErrMissingSecretKey}
	}

	timestamp := FormatTimestamp(a.now())
	nonce := a.nonce()
	signature := a.Sign(verb, path, timestamp, nonce)

	return map[string]string{
		HeaderAuthorization: constants.AuthScheme + " " + a.connectID + ":" + signature,
		HeaderDate:          timestamp,
		HeaderNonce:         nonce,
	}, nil
}

// Sign returns base64(HMAC-SHA1(secretKey, VERB + path + timestamp + nonce)).
func (a *Authenticator) Sign(verb, path, timestamp, nonce string) string {
	mac := hmac.New(sha1.New, []byte(a.secretKey))
	mac.Write([]byte(StringToSign(verb, path, timestamp, nonce)))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// StringToSign concatenates the signed request parts in API order.
func StringToSign(verb, path, timestamp, nonce string) string {
	return strings.ToUpper(verb) + path + timestamp + nonce
}

// FormatTimestamp renders t in UTC as the Date header expects.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampLayout)
}

// NewNonce returns 32 hex characters derived from the current microsecond
// and a random UUID.
func NewNonce() string {
	seed := strconv.FormatInt(time.Now().UnixMicro(), 10) + uuid.NewString()
	sum := md5.Sum([]byte(seed)) //nolint:gosec // see import

	return hex.EncodeToString(sum[:])
}
