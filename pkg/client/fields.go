package client

import (
	"context"
	"fmt"
)

// Custom field, custom role, and transaction operations.

// ListCustomFields lists all custom fields.
func (c *Client) ListCustomFields(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/customfields", nil, nil, nil)
}

// GetCustomField fetches a custom field by ID or name.
func (c *Client) GetCustomField(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "GET", "/customfield/"+id, nil, nil, nil)
}

// CreateCustomField creates a new custom field.
func (c *Client) CreateCustomField(ctx context.Context, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", "/customfield", data, nil, nil)
}

// UpdateCustomField updates a custom field.
func (c *Client) UpdateCustomField(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "PUT", "/customfield/"+id, data, nil, nil)
}

// DeleteCustomField deletes a custom field.
func (c *Client) DeleteCustomField(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "DELETE", "/customfield/"+id, nil, nil, nil)
}

// SearchCustomFields runs a paginated custom field query.
func (c *Client) SearchCustomFields(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/customfields", nil, nil, searchParams(query, page, perPage))
}

// ListCustomRoles lists all custom roles.
func (c *Client) ListCustomRoles(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/customroles", nil, nil, nil)
}

// GetCustomRole fetches a custom role by ID or name.
func (c *Client) GetCustomRole(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "GET", "/customrole/"+id, nil, nil, nil)
}

// CreateCustomRole creates a new custom role.
func (c *Client) CreateCustomRole(ctx context.Context, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", "/customrole", data, nil, nil)
}

// UpdateCustomRole updates a custom role.
func (c *Client) UpdateCustomRole(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "PUT", "/customrole/"+id, data, nil, nil)
}

// DeleteCustomRole deletes a custom role.
func (c *Client) DeleteCustomRole(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "DELETE", "/customrole/"+id, nil, nil, nil)
}

// SearchCustomRoles runs a paginated custom role query.
func (c *Client) SearchCustomRoles(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/customroles", nil, nil, searchParams(query, page, perPage))
}

// GetTransaction fetches a transaction by numeric ID.
func (c *Client) GetTransaction(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "GET", fmt.Sprintf("/transaction/%d", id), nil, nil, nil)
}

// ListTransactions lists transactions.
func (c *Client) ListTransactions(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/transactions", nil, nil, nil)
}

// SearchTransactions runs a paginated transaction query.
func (c *Client) SearchTransactions(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/transactions", nil, nil, searchParams(query, page, perPage))
}
