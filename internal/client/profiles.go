package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
)

// ProfilesClient implements zanox.ProfilesClient. Every call is signed.
type ProfilesClient struct {
	conn *Connection
}

// NewProfilesClient creates a new profiles client.
func NewProfilesClient(conn *Connection) *ProfilesClient {
	return &ProfilesClient{
		conn: conn,
	}
}

// All implements zanox.ProfilesClient.All.
func (c *ProfilesClient) All(ctx context.Context) ([]zanox.Profile, error) {
	body, err := c.conn.SignatureGet(ctx, "", nil)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	var response struct {
		Profiles *zanox.Items[zanox.Profile] `json:"profileItem"`
	}

	err = json.Unmarshal(body, &response)
	if err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	if response.Profiles == nil {
		return nil, fmt.Errorf("parsing profiles: %w", &zanox.ParseError{Resource: "Profile", Missing: []string{"profileItem"}})
	}

	return *response.Profiles, nil
}

// First implements zanox.ProfilesClient.First.
func (c *ProfilesClient) First(ctx context.Context) (*zanox.Profile, error) {
	profiles, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	if len(profiles) == 0 {
		return nil, nil
	}

	return &profiles[0], nil
}
