package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/opsqueue/rt-mcp-server/pkg/pagination"
)

type searchAllInput struct {
	Query      string `json:"query" jsonschema:"RT query string"`
	ObjectType string `json:"object_type,omitempty" jsonschema:"restrict the search to one object type: ticket, queue, user, group, asset"`
	Page       int    `json:"page,omitempty" jsonschema:"page number, 1-indexed (default 1)"`
	PerPage    int    `json:"per_page,omitempty" jsonschema:"items per page, max 100 (default 20)"`
}

type bulkUpdateInput struct {
	ObjectType string         `json:"object_type" jsonschema:"type of the objects to update: ticket, asset, queue or user"`
	ObjectIDs  []string       `json:"object_ids" jsonschema:"identifiers of the objects to update"`
	Updates    map[string]any `json:"updates" jsonschema:"field values to apply to every object"`
}

type advancedSearchInput struct {
	Query      string `json:"query" jsonschema:"TicketSQL query string"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of tickets to retrieve across pages (default 1000)"`
}

func (r *Registry) registerSearch(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_all",
		Description: "Search across RT object types, optionally restricted to one type",
		Annotations: &mcp.ToolAnnotations{Title: "Global Search", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in searchAllInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.Page, in.PerPage
		if page <= 0 {
			page = 1
		}
		if perPage <= 0 {
			perPage = 20
		}
		out, err := r.rt.Search(ctx, in.Query, in.ObjectType, page, perPage)
		if err != nil {
			return r.fail("search_all", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "bulk_update",
		Description: "Apply the same update to many objects; failures are reported per object, not raised",
		Annotations: &mcp.ToolAnnotations{Title: "Bulk Update"},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in bulkUpdateInput) (*mcp.CallToolResult, any, error) {
		update, err := r.bulkUpdater(in.ObjectType, in.Updates)
		if err != nil {
			return r.fail("bulk_update", err)
		}

		res := pagination.Apply(ctx, in.ObjectIDs, update)
		out := map[string]any{
			"total":         len(in.ObjectIDs),
			"success_count": len(res.Success),
			"failed_count":  len(res.Failed),
			"results":       res,
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "advanced_ticket_search",
		Description: "Search tickets and page through the results automatically, up to a result limit",
		Annotations: &mcp.ToolAnnotations{Title: "Advanced Ticket Search", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in advancedSearchInput) (*mcp.CallToolResult, any, error) {
		maxResults := in.MaxResults
		if maxResults == 0 {
			maxResults = pagination.DefaultMaxResults
		}

		fetch := func(ctx context.Context, query string, page, perPage int) (pagination.Page, error) {
			raw, err := r.rt.SearchTickets(ctx, query, page, perPage)
			if err != nil {
				return pagination.Page{}, err
			}
			return pagination.PageFromMap(raw), nil
		}

		res, err := pagination.Collect(ctx, fetch, in.Query, maxResults)
		if err != nil {
			return r.fail("advanced_ticket_search", err)
		}
		out := map[string]any{
			"query":           res.Query,
			"total_available": res.Total,
			"retrieved_count": len(res.Items),
			"max_results":     maxResults,
			"items":           res.Items,
		}
		return nil, out, nil
	})
}

// bulkUpdater resolves the per-object update function for an object type.
// Ticket and asset identifiers must be numeric; queue and user identifiers
// pass through as names or IDs.
func (r *Registry) bulkUpdater(objectType string, updates map[string]any) (pagination.UpdateFunc, error) {
	switch objectType {
	case "ticket":
		return func(ctx context.Context, id string) error {
			n, err := strconv.Atoi(id)
			if err != nil {
				return fmt.Errorf("invalid ticket id %q", id)
			}
			_, err = r.rt.UpdateTicket(ctx, n, updates, "")
			return err
		}, nil
	case "asset":
		return func(ctx context.Context, id string) error {
			n, err := strconv.Atoi(id)
			if err != nil {
				return fmt.Errorf("invalid asset id %q", id)
			}
			_, err = r.rt.UpdateAsset(ctx, n, updates)
			return err
		}, nil
	case "queue":
		return func(ctx context.Context, id string) error {
			_, err := r.rt.UpdateQueue(ctx, id, updates)
			return err
		}, nil
	case "user":
		return func(ctx context.Context, id string) error {
			_, err := r.rt.UpdateUser(ctx, id, updates)
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unsupported object type %q", objectType)
	}
}
