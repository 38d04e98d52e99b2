package constants

import "errors"

// Configuration errors.
var (
	ErrNoConnectID       = errors.New("no connect ID configured, use 'zanox config set connect_id <id>' or ZANOX_CONNECT_ID")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrSecretNotReadable = errors.New("secret key must be passed with --secret-key when stdin is not a terminal")
)

// Lookup errors.
var (
	ErrProgramNotFound = errors.New("program not found")
	ErrAdSpaceNotFound = errors.New("ad space not found")
	ErrProfileNotFound = errors.New("no profile returned")
	ErrInvalidID       = errors.New("identifier must be numeric")
)

// Output errors.
var (
	ErrUnsupportedOutput = errors.New("unsupported output format")
)
