package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type queueIDInput struct {
	QueueID string `json:"queue_id" jsonschema:"queue name or numeric ID"`
}

type createQueueInput struct {
	Name              string `json:"name" jsonschema:"queue name"`
	Description       string `json:"description,omitempty" jsonschema:"queue description"`
	CorrespondAddress string `json:"correspond_address,omitempty" jsonschema:"email address for replies"`
	CommentAddress    string `json:"comment_address,omitempty" jsonschema:"email address for comments"`
	Lifecycle         string `json:"lifecycle,omitempty" jsonschema:"ticket lifecycle name (default default)"`
	SubjectTag        string `json:"subject_tag,omitempty" jsonschema:"tag prepended to outgoing mail subjects"`
}

type updateQueueInput struct {
	QueueID           string `json:"queue_id" jsonschema:"queue name or numeric ID"`
	Name              string `json:"name,omitempty" jsonschema:"new queue name"`
	Description       string `json:"description,omitempty" jsonschema:"new description"`
	CorrespondAddress string `json:"correspond_address,omitempty" jsonschema:"new reply address"`
	CommentAddress    string `json:"comment_address,omitempty" jsonschema:"new comment address"`
}

func (r *Registry) registerQueues(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_queues",
		Description: "List all queues visible to the authenticated user",
		Annotations: &mcp.ToolAnnotations{Title: "List Queues", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.ListQueues(ctx)
		if err != nil {
			return r.fail("list_queues", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_queue",
		Description: "Retrieve a queue by name or ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Queue", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in queueIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetQueue(ctx, in.QueueID)
		if err != nil {
			return r.fail("get_queue", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_queue",
		Description: "Create a new queue",
		Annotations: &mcp.ToolAnnotations{Title: "Create Queue"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createQueueInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{"Name": in.Name}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		if in.CorrespondAddress != "" {
			data["CorrespondAddress"] = in.CorrespondAddress
		}
		if in.CommentAddress != "" {
			data["CommentAddress"] = in.CommentAddress
		}
		if in.Lifecycle != "" {
			data["Lifecycle"] = in.Lifecycle
		}
		if in.SubjectTag != "" {
			data["SubjectTag"] = in.SubjectTag
		}
		out, err := r.rt.CreateQueue(ctx, data)
		if err != nil {
			return r.fail("create_queue", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_queue",
		Description: "Update queue metadata",
		Annotations: &mcp.ToolAnnotations{Title: "Update Queue"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateQueueInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{}
		if in.Name != "" {
			data["Name"] = in.Name
		}
		if in.Description != "" {
			data["Description"] = in.Description
		}
		if in.CorrespondAddress != "" {
			data["CorrespondAddress"] = in.CorrespondAddress
		}
		if in.CommentAddress != "" {
			data["CommentAddress"] = in.CommentAddress
		}
		out, err := r.rt.UpdateQueue(ctx, in.QueueID, data)
		if err != nil {
			return r.fail("update_queue", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "disable_queue",
		Description: "Disable a queue so it no longer accepts new tickets",
		Annotations: &mcp.ToolAnnotations{Title: "Disable Queue"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in queueIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.UpdateQueue(ctx, in.QueueID, map[string]any{"Disabled": 1})
		if err != nil {
			return r.fail("disable_queue", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "enable_queue",
		Description: "Re-enable a disabled queue",
		Annotations: &mcp.ToolAnnotations{Title: "Enable Queue"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in queueIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.UpdateQueue(ctx, in.QueueID, map[string]any{"Disabled": 0})
		if err != nil {
			return r.fail("enable_queue", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_queues",
		Description: "Search queues with an RT query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Queues", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchQueues(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_queues", err)
		}
		return nil, out, nil
	})
}
