package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type assetIDInput struct {
	AssetID int `json:"asset_id" jsonschema:"numeric asset ID"`
}

type createAssetInput struct {
	Name        string `json:"name" jsonschema:"asset name"`
	Catalog     string `json:"catalog" jsonschema:"catalog name or ID the asset belongs to"`
	Description string `json:"description,omitempty" jsonschema:"asset description"`
	Status      string `json:"status,omitempty" jsonschema:"asset status (default allocated)"`
}

type updateAssetInput struct {
	AssetID     int    `json:"asset_id" jsonschema:"numeric asset ID"`
	Name        string `json:"name,omitempty" jsonschema:"new asset name"`
	Description string `json:"description,omitempty" jsonschema:"new description"`
	Status      string `json:"status,omitempty" jsonschema:"new status"`
}

type catalogIDInput struct {
	CatalogID string `json:"catalog_id" jsonschema:"catalog name or numeric ID"`
}

type createCatalogInput struct {
	Name        string `json:"name" jsonschema:"catalog name"`
	Description string `json:"description,omitempty" jsonschema:"catalog description"`
}

type updateCatalogInput struct {
	CatalogID   string `json:"catalog_id" jsonschema:"catalog name or numeric ID"`
	Name        string `json:"name,omitempty" jsonschema:"new catalog name"`
	Description string `json:"description,omitempty" jsonschema:"new description"`
}

func (r *Registry) registerAssets(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_assets",
		Description: "List assets visible to the authenticated user",
		Annotations: &mcp.ToolAnnotations{Title: "List Assets", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.ListAssets(ctx)
		if err != nil {
			return r.fail("list_assets", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_asset",
		Description: "Retrieve an asset by its numeric ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Asset", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in assetIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetAsset(ctx, in.AssetID)
		if err != nil {
			return r.fail("get_asset", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_asset",
		Description: "Create a new asset in a catalog",
		Annotations: &mcp.ToolAnnotations{Title: "Create Asset"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createAssetInput) (*mcp.CallToolResult, any, error) {
		status := in.Status
		if status == "" {
			status = "allocated"
		}
		data := map[string]any{"Name": in.Name, "Catalog": in.Catalog, "Status": status}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		out, err := r.rt.CreateAsset(ctx, data)
		if err != nil {
			return r.fail("create_asset", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_asset",
		Description: "Update asset details",
		Annotations: &mcp.ToolAnnotations{Title: "Update Asset"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateAssetInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{}
		if in.Name != "" {
			data["Name"] = in.Name
		}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		if in.Status != "" {
			data["Status"] = in.Status
		}
		out, err := r.rt.UpdateAsset(ctx, in.AssetID, data)
		if err != nil {
			return r.fail("update_asset", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_asset",
		Description: "Delete an asset",
		Annotations: &mcp.ToolAnnotations{Title: "Delete Asset", DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in assetIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.DeleteAsset(ctx, in.AssetID)
		if err != nil {
			return r.fail("delete_asset", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_assets",
		Description: "Search assets with an RT query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Assets", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchAssets(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_assets", err)
		}
		return nil, out, nil
	})
}

func (r *Registry) registerCatalogs(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_catalogs",
		Description: "List asset catalogs",
		Annotations: &mcp.ToolAnnotations{Title: "List Catalogs", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.ListCatalogs(ctx)
		if err != nil {
			return r.fail("list_catalogs", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_catalog",
		Description: "Retrieve an asset catalog by name or ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Catalog", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in catalogIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetCatalog(ctx, in.CatalogID)
		if err != nil {
			return r.fail("get_catalog", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_catalog",
		Description: "Create a new asset catalog",
		Annotations: &mcp.ToolAnnotations{Title: "Create Catalog"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createCatalogInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{"Name": in.Name}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		out, err := r.rt.CreateCatalog(ctx, data)
		if err != nil {
			return r.fail("create_catalog", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_catalog",
		Description: "Update asset catalog metadata",
		Annotations: &mcp.ToolAnnotations{Title: "Update Catalog"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateCatalogInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{}
		if in.Name != "" {
			data["Name"] = in.Name
		}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		out, err := r.rt.UpdateCatalog(ctx, in.CatalogID, data)
		if err != nil {
			return r.fail("update_catalog", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_catalog",
		Description: "Delete an asset catalog",
		Annotations: &mcp.ToolAnnotations{Title: "Delete Catalog", DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in catalogIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.DeleteCatalog(ctx, in.CatalogID)
		if err != nil {
			return r.fail("delete_catalog", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_catalogs",
		Description: "Search asset catalogs with an RT query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Catalogs", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchCatalogs(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_catalogs", err)
		}
		return nil, out, nil
	})
}
