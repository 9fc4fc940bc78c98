// Package tools registers the RT tool catalogue on an MCP server.
//
// Every tool is a thin adapter: decode typed arguments, perform one or more
// gateway calls, and return the RT response as structured content. Failures
// are logged with a single diagnostic line and propagated unchanged; the
// bulk helpers are the only place per-item errors are captured instead of
// raised.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/opsqueue/rt-mcp-server/pkg/client"
	"github.com/opsqueue/rt-mcp-server/pkg/logging"
)

// Registry binds the gateway client to tool registrations. The client is
// injected explicitly; tools hold no global state.
type Registry struct {
	rt     *client.Client
	logger zerolog.Logger
}

// NewRegistry creates a tool registry backed by the given gateway client.
func NewRegistry(rt *client.Client) *Registry {
	return &Registry{
		rt:     rt,
		logger: logging.NewLogger("tools"),
	}
}

// RegisterAll registers every RT tool on the server.
func (r *Registry) RegisterAll(s *mcp.Server) {
	r.registerTickets(s)
	r.registerQueues(s)
	r.registerUsers(s)
	r.registerGroups(s)
	r.registerAssets(s)
	r.registerCatalogs(s)
	r.registerCustomFields(s)
	r.registerCustomRoles(s)
	r.registerTransactions(s)
	r.registerAttachments(s)
	r.registerSearch(s)
}

// fail logs a one-line diagnostic and propagates err unchanged.
func (r *Registry) fail(tool string, err error) (*mcp.CallToolResult, any, error) {
	r.logger.Warn().Err(err).Str("tool", tool).Msg("Tool call failed")
	return nil, nil, err
}

// emptyInput is the argument type for parameter-less tools.
type emptyInput struct{}

// pagedInput is the shared argument shape for single-page search tools.
type pagedInput struct {
	Query   string `json:"query" jsonschema:"RT query string"`
	Page    int    `json:"page,omitempty" jsonschema:"page number, 1-indexed (default 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"items per page, max 100 (default 20)"`
}

// normalize applies the server-side pagination defaults.
func (p pagedInput) normalize() (page, perPage int) {
	page, perPage = p.Page, p.PerPage
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	return page, perPage
}

func boolPtr(b bool) *bool { return &b }

func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
