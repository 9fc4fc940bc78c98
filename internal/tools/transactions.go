package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type transactionIDInput struct {
	TransactionID int `json:"transaction_id" jsonschema:"numeric transaction ID"`
}

func (r *Registry) registerTransactions(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_transaction",
		Description: "Retrieve a transaction by its numeric ID",
		Annotations: &mcp.ToolAnnotations{Title: "Get Transaction", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in transactionIDInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.GetTransaction(ctx, in.TransactionID)
		if err != nil {
			return r.fail("get_transaction", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_transactions",
		Description: "List transactions visible to the authenticated user",
		Annotations: &mcp.ToolAnnotations{Title: "List Transactions", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		out, err := r.rt.ListTransactions(ctx)
		if err != nil {
			return r.fail("list_transactions", err)
		}
		return nil, out, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_transactions",
		Description: "Search transactions with an RT query, one page at a time",
		Annotations: &mcp.ToolAnnotations{Title: "Search Transactions", ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pagedInput) (*mcp.CallToolResult, any, error) {
		page, perPage := in.normalize()
		out, err := r.rt.SearchTransactions(ctx, in.Query, page, perPage)
		if err != nil {
			return r.fail("search_transactions", err)
		}
		return nil, out, nil
	})
}
