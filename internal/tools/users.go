package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type userIDInput struct {
	UserID string `json:"user_id" jsonschema:"username or numeric user ID"`
}

type createUserInput struct {
	Name         string `json:"name" jsonschema:"username"`
	EmailAddress string `json:"email_address" jsonschema:"email address"`
	RealName     string `json:"real_name,omitempty" jsonschema:"real name"`
	Password     string `json:"password,omitempty" jsonschema:"initial password"`
	Privileged   bool   `json:"privileged,omitempty" jsonschema:"grant privileged access"`
}

type updateUserInput struct {
	UserID       string `json:"user_id" jsonschema:"username or numeric user ID"`
	EmailAddress string `json:"email_address,omitempty" jsonschema:"new email address"`
	RealName     string `json:"real_name,omitempty" jsonschema:"new real name"`
	Password     string `json:"password,omitempty" jsonschema:"new password"`
	Privileged   *bool  `json:"privileged,omitempty" jsonschema:"set privileged access"`
	Disabled     *bool  `json:"disabled,omitempty" jsonschema:"set the disabled flag"`
}

func (r *Registry) registerUsers(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_users",
		Description: "List users visible to the authenticated user",
		Annotations: &mcp.ToolAnnotations{Title: "List Users", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.ListUsers(ctx)
		if err != nil {
			return r.fail("list_users", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_user",
		Description: "Retrieve a user by username or ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get User", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in userIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetUser(ctx, in.UserID)
		if err != nil {
			return r.fail("get_user", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_current_user",
		Description: "Retrieve the authenticated user's own record",
		Annotations: &mcp.ToolAnnotations{Title: "Current User", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.CurrentUser(ctx)
		if err != nil {
			return r.fail("get_current_user", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_user",
		Description: "Create a new user account",
		Annotations: &mcp.ToolAnnotations{Title: "Create User"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createUserInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{
			"Name":         in.Name,
			"EmailAddress": in.EmailAddress,
			"Privileged":   boolToFlag(in.Privileged),
		}
		if in.RealName != "" {
			data["RealName"] = in.RealName
		}
		if in.Password != "" {
			data["Password"] = in.Password
		}
		out, err := r.rt.CreateUser(ctx, data)
		if err != nil {
			return r.fail("create_user", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_user",
		Description: "Update a user's details",
		Annotations: &mcp.ToolAnnotations{Title: "Update User"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateUserInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{}
		if in.EmailAddress != "" {
			data["EmailAddress"] = in.EmailAddress
		}
		if in.RealName != "" {
			data["RealName"] = in.RealName
		}
		if in.Password != "" {
			data["Password"] = in.Password
		}
		if in.Privileged != nil {
			data["Privileged"] = boolToFlag(*in.Privileged)
		}
		if in.Disabled != nil {
			data["Disabled"] = boolToFlag(*in.Disabled)
		}
		out, err := r.rt.UpdateUser(ctx, in.UserID, data)
		if err != nil {
			return r.fail("update_user", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_users",
		Description: "Search users with an RT query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Users", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchUsers(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_users", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "disable_user",
		Description: "Disable a user account",
		Annotations: &mcp.ToolAnnotations{Title: "Disable User"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in userIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.UpdateUser(ctx, in.UserID, map[string]any{"Disabled": 1})
		if err != nil {
			return r.fail("disable_user", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "enable_user",
		Description: "Re-enable a disabled user account",
		Annotations: &mcp.ToolAnnotations{Title: "Enable User"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in userIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.UpdateUser(ctx, in.UserID, map[string]any{"Disabled": 0})
		if err != nil {
			return r.fail("enable_user", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "grant_privilege",
		Description: "Grant privileged access to a user",
		Annotations: &mcp.ToolAnnotations{Title: "Grant Privilege"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in userIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.UpdateUser(ctx, in.UserID, map[string]any{"Privileged": 1})
		if err != nil {
			return r.fail("grant_privilege", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "revoke_privilege",
		Description: "Revoke privileged access from a user",
		Annotations: &mcp.ToolAnnotations{Title: "Revoke Privilege"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in userIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.UpdateUser(ctx, in.UserID, map[string]any{"Privileged": 0})
		if err != nil {
			return r.fail("revoke_privilege", err)
		}
		return nil, out, nil
	})
}
