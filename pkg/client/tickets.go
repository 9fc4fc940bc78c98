package client

import (
	"context"
	"fmt"
)

// GetTicket fetches a ticket by numeric ID.
func (c *Client) GetTicket(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "GET", fmt.Sprintf("/ticket/%d", id), nil, nil, nil)
}

// CreateTicket creates a new ticket.
func (c *Client) CreateTicket(ctx context.Context, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", "/ticket", data, nil, nil)
}

// UpdateTicket updates ticket fields. A non-empty etag is sent as an
// If-Match header so a stale token is rejected with a conflict error.
func (c *Client) UpdateTicket(ctx context.Context, id int, data map[string]any, etag string) (map[string]any, error) {
	var headers map[string]string
	if etag != "" {
		headers = map[string]string{"If-Match": etag}
	}
	return c.do(ctx, "PUT", fmt.Sprintf("/ticket/%d", id), data, headers, nil)
}

// DeleteTicket deletes (disables) a ticket.
func (c *Client) DeleteTicket(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "DELETE", fmt.Sprintf("/ticket/%d", id), nil, nil, nil)
}

// SearchTickets runs a TicketSQL query with pagination. page is 1-indexed;
// perPage is capped server-side at 100.
func (c *Client) SearchTickets(ctx context.Context, query string, page, perPage int) (map[string]any, error) {
	return c.do(ctx, "GET", "/tickets", nil, nil, searchParams(query, page, perPage))
}

// CorrespondTicket adds customer-visible correspondence to a ticket.
func (c *Client) CorrespondTicket(ctx context.Context, id int, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", fmt.Sprintf("/ticket/%d/correspond", id), data, nil, nil)
}

// CommentTicket adds an internal comment to a ticket.
func (c *Client) CommentTicket(ctx context.Context, id int, data map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", fmt.Sprintf("/ticket/%d/comment", id), data, nil, nil)
}

// TakeTicket assigns the ticket to the current user.
func (c *Client) TakeTicket(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "PUT", fmt.Sprintf("/ticket/%d/take", id), nil, nil, nil)
}

// StealTicket takes ownership of a ticket away from another user.
func (c *Client) StealTicket(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "PUT", fmt.Sprintf("/ticket/%d/steal", id), nil, nil, nil)
}

// UntakeTicket releases ownership (owner becomes Nobody).
func (c *Client) UntakeTicket(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "PUT", fmt.Sprintf("/ticket/%d/untake", id), nil, nil, nil)
}

// TicketHistory fetches a ticket's transaction history.
func (c *Client) TicketHistory(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "GET", fmt.Sprintf("/ticket/%d/history", id), nil, nil, nil)
}

// TicketAttachments lists a ticket's attachments.
func (c *Client) TicketAttachments(ctx context.Context, id int) (map[string]any, error) {
	return c.do(ctx, "GET", fmt.Sprintf("/ticket/%d/attachments", id), nil, nil, nil)
}

// LinkTickets creates links between tickets, e.g. {"DependsOn": 42}.
func (c *Client) LinkTickets(ctx context.Context, id int, links map[string]any) (map[string]any, error) {
	return c.do(ctx, "POST", fmt.Sprintf("/ticket/%d/links", id), links, nil, nil)
}

// MergeTickets merges a ticket into another ticket.
func (c *Client) MergeTickets(ctx context.Context, id, intoID int) (map[string]any, error) {
	return c.do(ctx, "POST", fmt.Sprintf("/ticket/%d/merge", id), map[string]any{"Into": intoID}, nil, nil)
}
