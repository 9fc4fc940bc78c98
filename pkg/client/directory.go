package client

import "context"

// Queue, user, and group operations. Identifiers for these endpoints may be
// numeric IDs or names; RT resolves either form.

// ListQueues lists all queues.
func (c *Client) ListQueues(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/queues", nil, nil, nil)
}

// GetQueue fetches a queue by ID or name.
func (c *Client) GetQueue(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "GET", "/queue/"+id, nil, nil, nil)
}

// CreateQueue creates a new queue.
func (c *Client) CreateQueue(ctx context.Context, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", "/queue", data, nil, nil)
}

// UpdateQueue updates a queue.
func (c *Client) UpdateQueue(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "PUT", "/queue/"+id, data, nil, nil)
}

// SearchQueues runs a paginated queue query.
func (c *Client) SearchQueues(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/queues", nil, nil, searchParams(query, page, perPage))
}

// ListUsers lists all users.
func (c *Client) ListUsers(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/users", nil, nil, nil)
}

// GetUser fetches a user by ID or username.
func (c *Client) GetUser(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "GET", "/user/"+id, nil, nil, nil)
}

// CurrentUser fetches the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/user/current", nil, nil, nil)
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", "/user", data, nil, nil)
}

// UpdateUser updates a user.
func (c *Client) UpdateUser(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "PUT", "/user/"+id, data, nil, nil)
}

// SearchUsers runs a paginated user query.
func (c *Client) SearchUsers(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/users", nil, nil, searchParams(query, page, perPage))
}

// ListGroups lists all groups.
func (c *Client) ListGroups(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/groups", nil, nil, nil)
}

// GetGroup fetches a group by ID or name.
func (c *Client) GetGroup(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "GET", "/group/"+id, nil, nil, nil)
}

// CreateGroup creates a new group.
func (c *Client) CreateGroup(ctx context.Context, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", "/group", data, nil, nil)
}

// UpdateGroup updates a group.
func (c *Client) UpdateGroup(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "PUT", "/group/"+id, data, nil, nil)
}

// DeleteGroup deletes a group.
func (c *Client) DeleteGroup(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "DELETE", "/group/"+id, nil, nil, nil)
}

// AddGroupMember adds a user to a group.
func (c *Client) AddGroupMember(ctx context.Context, groupID, userID string) (map[string]any, error) {
	return c.do(ctx, "POST", "/group/"+groupID+"/member", map[string]any{"UserId": userID}, nil, nil)
}

// RemoveGroupMember removes a user from a group.
func (c *Client) RemoveGroupMember(ctx context.Context, groupID, userID string) (map[string]any, error) {
	return c.do(ctx, "DELETE", "/group/"+groupID+"/member/"+userID, nil, nil, nil)
}

// SearchGroups runs a paginated group query.
func (c *Client) SearchGroups(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/groups", nil, nil, searchParams(query, page, perPage))
}
