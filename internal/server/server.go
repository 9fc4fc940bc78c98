// Package server assembles the MCP server from the tool and resource
// registries.
package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/opsqueue/rt-mcp-server/internal/resources"
	"github.com/opsqueue/rt-mcp-server/internal/tools"
	"github.com/opsqueue/rt-mcp-server/pkg/client"
)

// Name identifies this server to MCP clients.
const Name = "rt-mcp-server"

// Version is the server version reported during the MCP handshake.
const Version = "1.0.0"

const instructions = `Tools for working with a Request Tracker (RT) instance: tickets, queues,
users, groups, assets, catalogs, custom fields, custom roles, transactions
and attachments. Search tools take RT's TicketSQL-style query syntax, e.g.
Queue = 'General' AND Status = 'open'. Paged search tools return one page
per call; advanced_ticket_search pages automatically up to a result limit.
Reference data is also available as resources under the rt:// scheme.`

// New builds the MCP server with the full RT tool catalogue registered
// against the given gateway client.
func New(rt *client.Client) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: Version,
	}, &mcp.ServerOptions{
		Instructions: instructions,
	})

	tools.NewRegistry(rt).RegisterAll(s)
	resources.Register(s, rt)
	return s
}
