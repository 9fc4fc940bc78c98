package client

import "context"

// Search queries across all RT object types. objectType optionally narrows
// the result to a single type (ticket, queue, user, asset, ...).
func (c *Client) Search(ctx context.Context, query, objectType string, page, perPage int) (map[string]any, error) {
	params := searchParams(query, page, perPage)
	if objectType != "" {
		params.Set("type", objectType)
	}
	return c.do(ctx, "GET", "/search", nil, nil, params)
}

// ServerInfo fetches RT server configuration and version information.
func (c *Client) ServerInfo(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/", nil, nil, nil)
}

// ValidateConnection performs a cheap authenticated request to verify the
// configured URL and credentials.
func (c *Client) ValidateConnection(ctx context.Context) error {
	_, err := c.do(ctx, "GET", "/queues", nil, nil, nil)
	return err
}
