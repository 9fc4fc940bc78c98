package integration

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/opsqueue/rt-mcp-server/internal/testutil"
	"github.com/opsqueue/rt-mcp-server/pkg/client"
	"github.com/opsqueue/rt-mcp-server/pkg/config"
	"github.com/opsqueue/rt-mcp-server/pkg/pagination"
)

func newClient(t *testing.T, mock *testutil.MockRT) *client.Client {
	t.Helper()

	cfg := &config.Config{
		URL:      mock.URL(),
		Token:    "1-integration-token",
		Timeout:  5 * time.Second,
		BasePath: "/REST/2.0",
	}
	rt, err := client.New(cfg)
	if err != nil {
		t.Fatalf("client.New() error = %v", err)
	}
	t.Cleanup(func() { rt.Close() })
	return rt
}

// TestTicketLifecycle drives a ticket through creation, retrieval,
// conditional update and deletion against the mock RT instance.
func TestTicketLifecycle(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	ctx := context.Background()
	rt := newClient(t, mock)

	mock.RespondJSON("POST", "/REST/2.0/ticket", 201, map[string]any{
		"id": float64(101), "type": "ticket",
	})

	created, err := rt.CreateTicket(ctx, map[string]any{
		"Queue":   "General",
		"Subject": "Disk almost full on db-02",
	})
	if err != nil {
		t.Fatalf("CreateTicket() error = %v", err)
	}
	if created["id"] != float64(101) {
		t.Fatalf("created id = %v, want 101", created["id"])
	}

	mock.RespondJSON("GET", "/REST/2.0/ticket/101", 200, map[string]any{
		"id": float64(101), "Subject": "Disk almost full on db-02", "Status": "new",
	})

	got, err := rt.GetTicket(ctx, 101)
	if err != nil {
		t.Fatalf("GetTicket() error = %v", err)
	}
	if got["Status"] != "new" {
		t.Errorf("Status = %v, want new", got["Status"])
	}

	// Conditional update with a fresh etag succeeds.
	mock.Handle("PUT", "/REST/2.0/ticket/101", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("If-Match") != `"v1"` {
			w.WriteHeader(http.StatusPreconditionFailed)
			w.Write([]byte(`{"message": "Ticket changed since last read"}`))
			return
		}
		w.Write([]byte(`{"message": "Ticket 101 updated"}`))
	})

	if _, err := rt.UpdateTicket(ctx, 101, map[string]any{"Status": "open"}, `"v1"`); err != nil {
		t.Fatalf("UpdateTicket() with fresh etag error = %v", err)
	}

	// A stale etag must surface as a conflict.
	_, err = rt.UpdateTicket(ctx, 101, map[string]any{"Status": "resolved"}, `"v0"`)
	if !client.IsConflict(err) {
		t.Fatalf("UpdateTicket() with stale etag error = %v, want conflict", err)
	}

	mock.RespondJSON("DELETE", "/REST/2.0/ticket/101", 200, map[string]any{
		"message": "Ticket 101 deleted",
	})
	if _, err := rt.DeleteTicket(ctx, 101); err != nil {
		t.Fatalf("DeleteTicket() error = %v", err)
	}
}

// TestBulkRetrieval exercises the client and pagination helper together
// across a multi-page result set.
func TestBulkRetrieval(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	items := make([]map[string]any, 250)
	for i := range items {
		items[i] = map[string]any{"id": float64(i + 1), "Status": "open"}
	}
	mock.ServePaginated("/REST/2.0/tickets", items)

	ctx := context.Background()
	rt := newClient(t, mock)

	fetch := func(ctx context.Context, query string, page, perPage int) (pagination.Page, error) {
		raw, err := rt.SearchTickets(ctx, query, page, perPage)
		if err != nil {
			return pagination.Page{}, err
		}
		return pagination.PageFromMap(raw), nil
	}

	res, err := pagination.Collect(ctx, fetch, "Status = 'open'", 180)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(res.Items) != 180 {
		t.Errorf("len(Items) = %d, want 180", len(res.Items))
	}
	if res.Total != 250 {
		t.Errorf("Total = %d, want 250", res.Total)
	}
	// Items must arrive in server order.
	if res.Items[0]["id"] != float64(1) || res.Items[179]["id"] != float64(180) {
		t.Errorf("item order broken: first=%v last=%v", res.Items[0]["id"], res.Items[179]["id"])
	}
}

// TestBulkMutation applies a status change across identifiers where one
// target is missing, and verifies the partition.
func TestBulkMutation(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	mock.RespondJSON("PUT", "/REST/2.0/ticket/1", 200, map[string]any{"message": "updated"})
	mock.RespondJSON("PUT", "/REST/2.0/ticket/3", 200, map[string]any{"message": "updated"})

	ctx := context.Background()
	rt := newClient(t, mock)

	res := pagination.Apply(ctx, []string{"1", "2", "3"}, func(ctx context.Context, id string) error {
		n, _ := strconv.Atoi(id)
		_, err := rt.UpdateTicket(ctx, n, map[string]any{"Status": "resolved"}, "")
		return err
	})

	if len(res.Success) != 2 {
		t.Errorf("len(Success) = %d, want 2", len(res.Success))
	}
	if len(res.Failed) != 1 || res.Failed[0].ID != "2" {
		t.Fatalf("Failed = %+v, want one entry for id 2", res.Failed)
	}
}
