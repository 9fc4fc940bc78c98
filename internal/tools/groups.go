package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type groupIDInput struct {
	GroupID string `json:"group_id" jsonschema:"group name or numeric ID"`
}

type createGroupInput struct {
	Name        string `json:"name" jsonschema:"group name"`
	Description string `json:"description,omitempty" jsonschema:"group description"`
}

type updateGroupInput struct {
	GroupID     string `json:"group_id" jsonschema:"group name or numeric ID"`
	Name        string `json:"name,omitempty" jsonschema:"new group name"`
	Description string `json:"description,omitempty" jsonschema:"new description"`
}

type groupMemberInput struct {
	GroupID string `json:"group_id" jsonschema:"group name or numeric ID"`
	UserID  string `json:"user_id" jsonschema:"username or numeric user ID"`
}

func (r *Registry) registerGroups(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_groups",
		Description: "List groups visible to the authenticated user",
		Annotations: &mcp.ToolAnnotations{Title: "List Groups", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.ListGroups(ctx)
		if err != nil {
			return r.fail("list_groups", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_group",
		Description: "Retrieve a group by name or ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Group", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in groupIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetGroup(ctx, in.GroupID)
		if err != nil {
			return r.fail("get_group", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_group",
		Description: "Create a new user group",
		Annotations: &mcp.ToolAnnotations{Title: "Create Group"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createGroupInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{"Name": in.Name}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		out, err := r.rt.CreateGroup(ctx, data)
		if err != nil {
			return r.fail("create_group", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_group",
		Description: "Update group metadata",
		Annotations: &mcp.ToolAnnotations{Title: "Update Group"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateGroupInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{}
		if in.Name != "" {
			data["Name"] = in.Name
		}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		out, err := r.rt.UpdateGroup(ctx, in.GroupID, data)
		if err != nil {
			return r.fail("update_group", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_group",
		Description: "Delete a group",
		Annotations: &mcp.ToolAnnotations{Title: "Delete Group", DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in groupIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.DeleteGroup(ctx, in.GroupID)
		if err != nil {
			return r.fail("delete_group", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "add_group_member",
		Description: "Add a user to a group",
		Annotations: &mcp.ToolAnnotations{Title: "Add Group Member"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in groupMemberInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.AddGroupMember(ctx, in.GroupID, in.UserID)
		if err != nil {
			return r.fail("add_group_member", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "remove_group_member",
		Description: "Remove a user from a group",
		Annotations: &mcp.ToolAnnotations{Title: "Remove Group Member"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in groupMemberInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.RemoveGroupMember(ctx, in.GroupID, in.UserID)
		if err != nil {
			return r.fail("remove_group_member", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_groups",
		Description: "Search groups with an RT query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Groups", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchGroups(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_groups", err)
		}
		return nil, out, nil
	})
}
