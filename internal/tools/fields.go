package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type customFieldIDInput struct {
	FieldID string `json:"field_id" jsonschema:"custom field name or numeric ID"`
}

type createCustomFieldInput struct {
	Name        string `json:"name" jsonschema:"custom field name"`
	Type        string `json:"type" jsonschema:"field type, e.g. Freeform, Select, Date"`
	Description string `json:"description,omitempty" jsonschema:"field description"`
	LookupType  string `json:"lookup_type,omitempty" jsonschema:"object class the field applies to, e.g. RT::Queue-RT::Ticket"`
}

type updateCustomFieldInput struct {
	FieldID     string `json:"field_id" jsonschema:"custom field name or numeric ID"`
	Name        string `json:"name,omitempty" jsonschema:"new field name"`
	Description string `json:"description,omitempty" jsonschema:"new description"`
}

type customRoleIDInput struct {
	RoleID string `json:"role_id" jsonschema:"custom role name or numeric ID"`
}

type createCustomRoleInput struct {
	Name        string `json:"name" jsonschema:"custom role name"`
	Description string `json:"description,omitempty" jsonschema:"role description"`
}

type updateCustomRoleInput struct {
	RoleID      string `json:"role_id" jsonschema:"custom role name or numeric ID"`
	Name        string `json:"name,omitempty" jsonschema:"new role name"`
	Description string `json:"description,omitempty" jsonschema:"new description"`
}

func (r *Registry) registerCustomFields(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_custom_fields",
		Description: "List custom field definitions",
		Annotations: &mcp.ToolAnnotations{Title: "List Custom Fields", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.ListCustomFields(ctx)
		if err != nil {
			return r.fail("list_custom_fields", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_custom_field",
		Description: "Retrieve a custom field by name or ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Custom Field", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in customFieldIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetCustomField(ctx, in.FieldID)
		if err != nil {
			return r.fail("get_custom_field", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_custom_field",
		Description: "Create a new custom field definition",
		Annotations: &mcp.ToolAnnotations{Title: "Create Custom Field"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createCustomFieldInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{"Name": in.Name, "Type": in.Type}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		if in.LookupType != "" {
			data["LookupType"] = in.LookupType
		}
		out, err := r.rt.CreateCustomField(ctx, data)
		if err != nil {
			return r.fail("create_custom_field", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_custom_field",
		Description: "Update a custom field definition",
		Annotations: &mcp.ToolAnnotations{Title: "Update Custom Field"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateCustomFieldInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{}
		if in.Name != "" {
			data["Name"] = in.Name
		}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		out, err := r.rt.UpdateCustomField(ctx, in.FieldID, data)
		if err != nil {
			return r.fail("update_custom_field", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_custom_field",
		Description: "Delete a custom field definition",
		Annotations: &mcp.ToolAnnotations{Title: "Delete Custom Field", DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in customFieldIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.DeleteCustomField(ctx, in.FieldID)
		if err != nil {
			return r.fail("delete_custom_field", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_custom_fields",
		Description: "Search custom fields with an RT query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Custom Fields", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchCustomFields(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_custom_fields", err)
		}
		return nil, out, nil
	})
}

func (r *Registry) registerCustomRoles(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_custom_roles",
		Description: "List custom role definitions",
		Annotations: &mcp.ToolAnnotations{Title: "List Custom Roles", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.ListCustomRoles(ctx)
		if err != nil {
			return r.fail("list_custom_roles", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_custom_role",
		Description: "Retrieve a custom role by name or ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Custom Role", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in customRoleIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetCustomRole(ctx, in.RoleID)
		if err != nil {
			return r.fail("get_custom_role", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_custom_role",
		Description: "Create a new custom role",
		Annotations: &mcp.ToolAnnotations{Title: "Create Custom Role"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createCustomRoleInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{"Name": in.Name}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		out, err := r.rt.CreateCustomRole(ctx, data)
		if err != nil {
			return r.fail("create_custom_role", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_custom_role",
		Description: "Update a custom role",
		Annotations: &mcp.ToolAnnotations{Title: "Update Custom Role"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateCustomRoleInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{}
		if in.Name != "" {
			data["Name"] = in.Name
		}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		out, err := r.rt.UpdateCustomRole(ctx, in.RoleID, data)
		if err != nil {
			return r.fail("update_custom_role", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_custom_role",
		Description: "Delete a custom role",
		Annotations: &mcp.ToolAnnotations{Title: "Delete Custom Role", DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in customRoleIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.DeleteCustomRole(ctx, in.RoleID)
		if err != nil {
			return r.fail("delete_custom_role", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_custom_roles",
		Description: "Search custom roles with an RT query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Custom Roles", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchCustomRoles(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_custom_roles", err)
		}
		return nil, out, nil
	})
}
