package client

import (
	"context"
	"fmt"
)

// Asset and catalog operations.

// ListAssets lists all assets.
func (c *Client) ListAssets(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/assets", nil, nil, nil)
}

// GetAsset fetches an asset by numeric ID.
func (c *Client) GetAsset(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "GET", fmt.Sprintf("/asset/%d", id), nil, nil, nil)
}

// CreateAsset creates a new asset.
func (c *Client) CreateAsset(ctx context.Context, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", "/asset", data, nil, nil)
}

// UpdateAsset updates an asset.
func (c *Client) UpdateAsset(ctx context.Context, id int, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "PUT", fmt.Sprintf("/asset/%d", id), data, nil, nil)
}

// DeleteAsset deletes an asset.
func (c *Client) DeleteAsset(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "DELETE", fmt.Sprintf("/asset/%d", id), nil, nil, nil)
}

// SearchAssets runs a paginated asset query.
func (c *Client) SearchAssets(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/assets", nil, nil, searchParams(query, page, perPage))
}

// ListCatalogs lists all asset catalogs.
func (c *Client) ListCatalogs(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, "GET", "/catalogs", nil, nil, nil)
}

// GetCatalog fetches a catalog by ID or name.
func (c *Client) GetCatalog(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "GET", "/catalog/"+id, nil, nil, nil)
}

// CreateCatalog creates a new catalog.
func (c *Client) CreateCatalog(ctx context.Context, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", "/catalog", data, nil, nil)
}

// UpdateCatalog updates a catalog.
func (c *Client) UpdateCatalog(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "PUT", "/catalog/"+id, data, nil, nil)
}

// DeleteCatalog deletes a catalog.
func (c *Client) DeleteCatalog(ctx context.Context, id string) (map[string]any, error) {
	return c.do(ctx, "DELETE", "/catalog/"+id, nil, nil, nil)
}

// SearchCatalogs runs a paginated catalog query.
func (c *Client) SearchCatalogs(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/catalogs", nil, nil, searchParams(query, page, perPage))
}
