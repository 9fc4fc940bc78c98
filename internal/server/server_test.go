package server

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/opsqueue/rt-mcp-server/internal/testutil"
	"github.com/opsqueue/rt-mcp-server/pkg/client"
	"github.com/opsqueue/rt-mcp-server/pkg/config"
)

// connect builds a server against the mock RT instance and connects an
// in-process MCP client to it.
func connect(t *testing.T, mock *testutil.MockRT) *mcp.ClientSession {
	t.Helper()

	cfg := &config.Config{
		URL:      mock.URL(),
		Token:    "1-test-token",
		Timeout:  5 * time.Second,
		BasePath: "/REST/2.0",
	}
	rt, err := client.New(cfg)
	if err != nil {
		t.Fatalf("client.New() error = %v", err)
	}
	t.Cleanup(func() { rt.Close() })

	srv := New(rt)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()
	if _, err := srv.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect error = %v", err)
	}

	c := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := c.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect error = %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestServer_ToolCatalogue(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	session := connect(t, mock)

	names := map[string]bool{}
	for tool, err := range session.Tools(context.Background(), nil) {
		if err != nil {
			t.Fatalf("listing tools: %v", err)
		}
		names[tool.Name] = true
	}

	// One representative tool per registration group.
	expected := []string{
		"create_ticket", "search_tickets", "merge_tickets",
		"list_queues", "disable_queue",
		"get_current_user", "grant_privilege",
		"add_group_member",
		"create_asset", "search_catalogs",
		"create_custom_field", "delete_custom_role",
		"get_transaction",
		"upload_attachment", "get_attachment_content",
		"search_all", "bulk_update", "advanced_ticket_search",
	}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("tool %q not registered", name)
		}
	}
}

func TestServer_GetTicket(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	mock.RespondJSON("GET", "/REST/2.0/ticket/42", 200, map[string]any{
		"id":      float64(42),
		"Subject": "Printer on fire",
		"Status":  "open",
	})

	session := connect(t, mock)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_ticket",
		Arguments: map[string]any{"ticket_id": 42},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("CallTool() returned tool error: %+v", res.Content)
	}

	body := textContent(t, res)
	var ticket map[string]any
	if err := json.Unmarshal([]byte(body), &ticket); err != nil {
		t.Fatalf("decoding tool result: %v", err)
	}
	if ticket["Subject"] != "Printer on fire" {
		t.Errorf("Subject = %v, want Printer on fire", ticket["Subject"])
	}
}

func TestServer_GetTicket_NotFound(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	session := connect(t, mock)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_ticket",
		Arguments: map[string]any{"ticket_id": 9999},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing ticket")
	}
}

func TestServer_BulkUpdate_PartialFailure(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	mock.RespondJSON("PUT", "/REST/2.0/ticket/1", 200, map[string]any{"message": "Ticket 1 updated"})
	mock.RespondJSON("PUT", "/REST/2.0/ticket/2", 422, map[string]any{"message": "Status invalid"})
	mock.RespondJSON("PUT", "/REST/2.0/ticket/3", 200, map[string]any{"message": "Ticket 3 updated"})

	session := connect(t, mock)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "bulk_update",
		Arguments: map[string]any{
			"object_type": "ticket",
			"object_ids":  []string{"1", "2", "3"},
			"updates":     map[string]any{"Status": "resolved"},
		},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("bulk_update must not fail on per-item errors: %+v", res.Content)
	}

	var out struct {
		Total        int `json:"total"`
		SuccessCount int `json:"success_count"`
		FailedCount  int `json:"failed_count"`
		Results      struct {
			Success []string `json:"success"`
			Failed  []struct {
				ID    string `json:"id"`
				Error string `json:"error"`
			} `json:"failed"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(textContent(t, res)), &out); err != nil {
		t.Fatalf("decoding tool result: %v", err)
	}

	if out.Total != 3 || out.SuccessCount != 2 || out.FailedCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", out.Total, out.SuccessCount, out.FailedCount)
	}
	if len(out.Results.Success) != 2 || out.Results.Success[0] != "1" || out.Results.Success[1] != "3" {
		t.Errorf("success order = %v, want [1 3]", out.Results.Success)
	}
	if len(out.Results.Failed) != 1 || out.Results.Failed[0].ID != "2" {
		t.Errorf("failed = %+v, want one entry for id 2", out.Results.Failed)
	}
}

func TestServer_QueuesResource(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	mock.RespondJSON("GET", "/REST/2.0/queues", 200, map[string]any{
		"count": float64(1),
		"items": []any{map[string]any{"id": float64(1), "Name": "General"}},
	})

	session := connect(t, mock)

	res, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "rt://queues/list",
	})
	if err != nil {
		t.Fatalf("ReadResource() error = %v", err)
	}
	if len(res.Contents) != 1 {
		t.Fatalf("len(Contents) = %d, want 1", len(res.Contents))
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(res.Contents[0].Text), &body); err != nil {
		t.Fatalf("decoding resource body: %v", err)
	}
	if _, hasErr := body["error"]; hasErr {
		t.Fatalf("resource reported error: %v", body["error"])
	}
	if body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}
}

func TestServer_ResourceErrorIsSerialized(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	// No handler for /user/current: the mock returns 404, which must surface
	// as an error body rather than a protocol failure.
	session := connect(t, mock)

	res, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "rt://user/current",
	})
	if err != nil {
		t.Fatalf("ReadResource() error = %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(res.Contents[0].Text), &body); err != nil {
		t.Fatalf("decoding resource body: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Error("expected serialized error in resource body")
	}
}

// textContent extracts the single text block of a tool result.
func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatal("tool result has no text content")
	return ""
}
