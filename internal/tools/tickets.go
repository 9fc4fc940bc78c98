package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type createTicketInput struct {
	Queue     string `json:"queue" jsonschema:"queue name or ID"`
	Subject   string `json:"subject" jsonschema:"ticket subject"`
	Content   string `json:"content,omitempty" jsonschema:"initial ticket body"`
	Requestor string `json:"requestor,omitempty" jsonschema:"requestor email address"`
	Owner     string `json:"owner,omitempty" jsonschema:"owner username"`
	Status    string `json:"status,omitempty" jsonschema:"initial status (default new)"`
	Priority  int    `json:"priority,omitempty" jsonschema:"priority, 0-99"`
}

type getTicketInput struct {
	TicketID int `json:"ticket_id" jsonschema:"numeric ticket ID"`
}

type updateTicketInput struct {
	TicketID int    `json:"ticket_id" jsonschema:"numeric ticket ID"`
	Subject  string `json:"subject,omitempty" jsonschema:"new subject"`
	Status   string `json:"status,omitempty" jsonschema:"new status (new, open, stalled, resolved, rejected, deleted)"`
	Owner    string `json:"owner,omitempty" jsonschema:"new owner username"`
	Queue    string `json:"queue,omitempty" jsonschema:"move ticket to this queue"`
	Priority *int   `json:"priority,omitempty" jsonschema:"new priority, 0-99"`
	ETag     string `json:"etag,omitempty" jsonschema:"entity tag from a prior read; update fails with a conflict if the ticket changed since"`
}

type ticketMessageInput struct {
	TicketID int    `json:"ticket_id" jsonschema:"numeric ticket ID"`
	Content  string `json:"content" jsonschema:"message body"`
	Cc       string `json:"cc,omitempty" jsonschema:"comma-separated Cc addresses"`
	Bcc      string `json:"bcc,omitempty" jsonschema:"comma-separated Bcc addresses"`
}

type linkTicketsInput struct {
	TicketID       int    `json:"ticket_id" jsonschema:"source ticket ID"`
	LinkType       string `json:"link_type" jsonschema:"link relation: DependsOn, DependedOnBy, RefersTo, ReferredToBy, MemberOf, HasMember"`
	TargetTicketID int    `json:"target_ticket_id" jsonschema:"target ticket ID"`
}

type mergeTicketsInput struct {
	TicketID     int `json:"ticket_id" jsonschema:"ticket to merge away"`
	IntoTicketID int `json:"into_ticket_id" jsonschema:"ticket that absorbs the merged ticket"`
}

func (r *Registry) registerTickets(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_ticket",
		Description: "Create a new ticket in Request Tracker",
		Annotations: &mcp.ToolAnnotations{Title: "Create Ticket"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createTicketInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{
			"Queue":   in.Queue,
			"Subject": in.Subject,
		}
		if in.Content != "" {
			data["Content"] = in.Content
		}
		if in.Requestor != "" {
			data["Requestor"] = in.Requestor
		}
		if in.Owner != "" {
			data["Owner"] = in.Owner
		}
		if in.Status != "" {
			data["Status"] = in.Status
		}
		if in.Priority != 0 {
			data["Priority"] = in.Priority
		}
		out, err := r.rt.CreateTicket(ctx, data)
		if err != nil {
			return r.fail("create_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_ticket",
		Description: "Retrieve a ticket by its numeric ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Ticket", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in getTicketInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetTicket(ctx, in.TicketID)
		if err != nil {
			return r.fail("get_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_ticket",
		Description: "Update ticket metadata; pass an etag to make the update conditional",
		Annotations: &mcp.ToolAnnotations{Title: "Update Ticket"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateTicketInput) (*mcp.CallToolResult, any, error) {
		data := map[string]any{}
		if in.Subject != "" {
			data["Subject"] = in.Subject
		}
		if in.Status != "" {
			data["Status"] = in.Status
		}
		if in.Owner != "" {
			data["Owner"] = in.Owner
		}
		if in.Queue != "" {
			data["Queue"] = in.Queue
		}
		if in.Priority != nil {
			data["Priority"] = *in.Priority
		}
		out, err := r.rt.UpdateTicket(ctx, in.TicketID, data, in.ETag)
		if err != nil {
			return r.fail("update_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_ticket",
		Description: "Set a ticket's status to deleted",
		Annotations: &mcp.ToolAnnotations{Title: "Delete Ticket", DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in getTicketInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.DeleteTicket(ctx, in.TicketID)
		if err != nil {
			return r.fail("delete_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_tickets",
		Description: "Search tickets with a TicketSQL query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Tickets", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchTickets(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_tickets", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "correspond_ticket",
		Description: "Add a reply to a ticket; the message is sent to the requestors",
		Annotations: &mcp.ToolAnnotations{Title: "Reply to Ticket"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in ticketMessageInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.CorrespondTicket(ctx, in.TicketID, messageData(in))
		if err != nil {
			return r.fail("correspond_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "comment_ticket",
		Description: "Add an internal comment to a ticket; comments are not sent to requestors",
		Annotations: &mcp.ToolAnnotations{Title: "Comment on Ticket"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in ticketMessageInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.CommentTicket(ctx, in.TicketID, messageData(in))
		if err != nil {
			return r.fail("comment_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "take_ticket",
		Description: "Assign a ticket to the authenticated user",
		Annotations: &mcp.ToolAnnotations{Title: "Take Ticket"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in getTicketInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.TakeTicket(ctx, in.TicketID)
		if err != nil {
			return r.fail("take_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "steal_ticket",
		Description: "Take a ticket that is owned by another user",
		Annotations: &mcp.ToolAnnotations{Title: "Steal Ticket"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in getTicketInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.StealTicket(ctx, in.TicketID)
		if err != nil {
			return r.fail("steal_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "untake_ticket",
		Description: "Release ownership of a ticket back to Nobody",
		Annotations: &mcp.ToolAnnotations{Title: "Untake Ticket"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in getTicketInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.UntakeTicket(ctx, in.TicketID)
		if err != nil {
			return r.fail("untake_ticket", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_ticket_history",
		Description: "List the transaction history of a ticket",
		Annotations: &mcp.ToolAnnotations{Title: "Ticket History", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in getTicketInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.TicketHistory(ctx, in.TicketID)
		if err != nil {
			return r.fail("get_ticket_history", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_ticket_attachments",
		Description: "List the attachments of a ticket",
		Annotations: &mcp.ToolAnnotations{Title: "Ticket Attachments", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in getTicketInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.TicketAttachments(ctx, in.TicketID)
		if err != nil {
			return r.fail("get_ticket_attachments", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "link_tickets",
		Description: "Create a link between two tickets",
		Annotations: &mcp.ToolAnnotations{Title: "Link Tickets"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in linkTicketsInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.LinkTickets(ctx, in.TicketID, map[string]any{in.LinkType: in.TargetTicketID})
		if err != nil {
			return r.fail("link_tickets", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "merge_tickets",
		Description: "Merge one ticket into another; the source ticket is absorbed",
		Annotations: &mcp.ToolAnnotations{Title: "Merge Tickets", DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in mergeTicketsInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.MergeTickets(ctx, in.TicketID, in.IntoTicketID)
		if err != nil {
			return r.fail("merge_tickets", err)
		}
		return nil, out, nil
	})
}

func messageData(in ticketMessageInput) map[string]any {
	data := map[string]any{"Content": in.Content, "ContentType": "text/plain"}
	if in.Cc != "" {
		data["Cc"] = in.Cc
	}
	if in.Bcc != "" {
		data["Bcc"] = in.Bcc
	}
	return data
}
