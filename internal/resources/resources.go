// Package resources exposes frequently needed RT reference data as MCP
// resources. Unlike tools, a resource read never fails the protocol call:
// gateway errors are serialized into the resource body so clients always
// get well-formed JSON.
package resources

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/opsqueue/rt-mcp-server/pkg/client"
	"github.com/opsqueue/rt-mcp-server/pkg/logging"
)

type registry struct {
	rt     *client.Client
	logger zerolog.Logger
}

// Register adds the RT reference resources to the server.
func Register(s *mcp.Server, rt *client.Client) {
	r := &registry{rt: rt, logger: logging.NewLogger("resources")}

	r.add(s, &mcp.Resource{
		URI:         "rt://queues/list",
		Name:        "queues",
		Description: "All queues visible to the authenticated user",
		MIMEType:    "application/json",
	}, func(ctx context.Context) (map[string]any, error) {
		return rt.ListQueues(ctx)
	})

	r.add(s, &mcp.Resource{
		URI:         "rt://custom-fields/list",
		Name:        "custom-fields",
		Description: "All custom field definitions",
		MIMEType:    "application/json",
	}, func(ctx context.Context) (map[string]any, error) {
		return rt.ListCustomFields(ctx)
	})

	r.add(s, &mcp.Resource{
		URI:         "rt://user/current",
		Name:        "current-user",
		Description: "The authenticated user's own record",
		MIMEType:    "application/json",
	}, func(ctx context.Context) (map[string]any, error) {
		return rt.CurrentUser(ctx)
	})

	r.add(s, &mcp.Resource{
		URI:         "rt://server/info",
		Name:        "server-info",
		Description: "RT server version and configuration",
		MIMEType:    "application/json",
	}, func(ctx context.Context) (map[string]any, error) {
		return rt.ServerInfo(ctx)
	})
}

func (r *registry) add(s *mcp.Server, res *mcp.Resource, fetch func(context.Context) (map[string]any, error)) {
	s.AddResource(res, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		body, err := fetch(ctx)
		if err != nil {
			r.logger.Warn().Err(err).Str("uri", res.URI).Msg("Resource read failed")
			return r.contents(res, map[string]any{"error": err.Error()})
		}
		return r.contents(res, body)
	})
}

func (r *registry) contents(res *mcp.Resource, body map[string]any) (*mcp.ReadResourceResult, error) {
	text, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      res.URI,
			MIMEType: res.MIMEType,
			Text:     string(text),
		}},
	}, nil
}
