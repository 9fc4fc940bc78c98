package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/opsqueue/rt-mcp-server/internal/testutil"
	"github.com/opsqueue/rt-mcp-server/pkg/config"
)

func newTestClient(t *testing.T, mock *testutil.MockRT) *Client {
	t.Helper()

	cfg := &config.Config{
		URL:      mock.URL(),
		Token:    "1-test-token",
		Timeout:  5 * time.Second,
		BasePath: "/REST/2.0",
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestNew_NoAuthScheme(t *testing.T) {
	cfg := &config.Config{URL: "https://rt.example.com", BasePath: "/REST/2.0"}

	if _, err := New(cfg); err == nil {
		t.Fatal("expected constructor to fail without an auth scheme")
	}
}

func TestDo_StatusToErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{401, KindAuthentication},
		{403, KindAuthorization},
		{404, KindNotFound},
		{409, KindConflict},
		{412, KindConflict},
		{422, KindValidation},
		{500, KindAPI},
		{502, KindAPI},
	}

	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			mock.RespondJSON("GET", "/REST/2.0/ticket/1", tt.status, map[string]any{"message": "nope"})

			_, err := c.GetTicket(context.Background(), 1)
			if err == nil {
				t.Fatalf("status %d: expected error", tt.status)
			}

			var rtErr *Error
			if !errors.As(err, &rtErr) {
				t.Fatalf("status %d: error is %T, want *Error", tt.status, err)
			}
			if rtErr.Kind != tt.kind {
				t.Errorf("status %d: kind = %q, want %q", tt.status, rtErr.Kind, tt.kind)
			}
			if rtErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", rtErr.StatusCode, tt.status)
			}
			if rtErr.Message != "nope" {
				t.Errorf("Message = %q, want body message", rtErr.Message)
			}
			if rtErr.Body == nil {
				t.Error("Body should retain the raw response for diagnostics")
			}
		})
	}
}

func TestDo_SuccessReturnsParsedBody(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	mock.RespondJSON("GET", "/REST/2.0/ticket/7", 200, map[string]any{
		"id":      "7",
		"Subject": "Printer on fire",
	})

	got, err := c.GetTicket(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["Subject"] != "Printer on fire" {
		t.Errorf("Subject = %v", got["Subject"])
	}
}

func TestDo_Created(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	mock.RespondJSON("POST", "/REST/2.0/ticket", 201, map[string]any{"id": "42"})

	got, err := c.CreateTicket(context.Background(), map[string]any{"Queue": "General", "Subject": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["id"] != "42" {
		t.Errorf("id = %v, want 42", got["id"])
	}
}

func TestDo_NonJSONSuccessBody(t *testing.T) {
	// A success that is not valid JSON never fails; the raw text is
	// substituted under a message key.
	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	mock.RespondRaw("GET", "/REST/2.0/ticket/1", 200, "Ticket 1 updated.")

	got, err := c.GetTicket(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["message"] != "Ticket 1 updated." {
		t.Errorf("message = %v, want raw text", got["message"])
	}
}

func TestDo_NotModifiedSentinel(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	mock.RespondRaw("GET", "/REST/2.0/ticket/1", 304, "")

	got, err := c.GetTicket(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["_status"] != "not_modified" {
		t.Errorf(`got %v, want {"_status": "not_modified"}`, got)
	}
}

func TestDo_AuthAndAcceptHeaders(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	mock.RespondJSON("GET", "/REST/2.0/queues", 200, map[string]any{"items": []any{}})

	if err := c.ValidateConnection(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mock.LastRequestHeader.Get("Authorization"); got != "token 1-test-token" {
		t.Errorf("Authorization = %q", got)
	}
	if got := mock.LastRequestHeader.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
}

func TestUpdateTicket_ConditionalUpdate(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	mock.Handle("PUT", "/REST/2.0/ticket/5", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("If-Match") != `"current-version"` {
			w.WriteHeader(http.StatusPreconditionFailed)
			w.Write([]byte(`{"message": "Precondition Failed"}`))
			return
		}
		w.Write([]byte(`{"id": "5"}`))
	})

	// Fresh token succeeds.
	if _, err := c.UpdateTicket(context.Background(), 5, map[string]any{"Status": "open"}, `"current-version"`); err != nil {
		t.Fatalf("fresh token: unexpected error: %v", err)
	}

	// Stale token maps to a conflict.
	_, err := c.UpdateTicket(context.Background(), 5, map[string]any{"Status": "open"}, `"stale-version"`)
	if !IsConflict(err) {
		t.Fatalf("stale token: err = %v, want conflict", err)
	}
}

func TestUpdateTicket_NoEtagOmitsIfMatch(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	mock.RespondJSON("PUT", "/REST/2.0/ticket/5", 200, map[string]any{"id": "5"})

	if _, err := c.UpdateTicket(context.Background(), 5, map[string]any{"Status": "open"}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := mock.LastRequestHeader["If-Match"]; ok {
		t.Error("If-Match header must be absent when no token is given")
	}
}

func TestDo_Timeout(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()

	mock.Handle("GET", "/REST/2.0/ticket/1", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	})

	cfg := &config.Config{
		URL:      mock.URL(),
		Token:    "t",
		Timeout:  20 * time.Millisecond,
		BasePath: "/REST/2.0",
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer c.Close()

	_, err = c.GetTicket(context.Background(), 1)
	if !IsNetwork(err) {
		t.Fatalf("err = %v, want network error", err)
	}
	var rtErr *Error
	errors.As(err, &rtErr)
	if !rtErr.Timeout {
		t.Error("Timeout flag should be set on deadline expiry")
	}
}

func TestDo_ConnectionRefused(t *testing.T) {
	cfg := &config.Config{
		// Reserved port with nothing listening.
		URL:      "http://127.0.0.1:1",
		Token:    "t",
		Timeout:  2 * time.Second,
		BasePath: "/REST/2.0",
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer c.Close()

	_, err = c.GetTicket(context.Background(), 1)
	if !IsNetwork(err) {
		t.Fatalf("err = %v, want network error", err)
	}
}

func TestSearchTickets_QueryParams(t *testing.T) {
	mock := testutil.NewMockRT()
	defer mock.Close()
	c := newTestClient(t, mock)

	var gotQuery string
	mock.Handle("GET", "/REST/2.0/tickets", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 0, "page": 3, "pages": 0, "per_page": 50, "total": 0, "items": []}`))
	})

	got, err := c.SearchTickets(context.Background(), "Queue = 'General'", 3, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["page"].(float64) != 3 {
		t.Errorf("page = %v, want 3", got["page"])
	}
	for _, want := range []string{"page=3", "per_page=50", "query=Queue+%3D+%27General%27"} {
		if !containsParam(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

func containsParam(rawQuery, param string) bool {
	for _, p := range strings.Split(rawQuery, "&") {
		if p == param {
			return true
		}
	}
	return false
}

func TestEndpointLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/ticket/42", "ticket"},
		{"/tickets", "tickets"},
		{"/", "/"},
		{"/ticket/42/history", "ticket"},
	}
	for _, tt := range tests {
		if got := endpointLabel(tt.path); got != tt.want {
			t.Errorf("endpointLabel(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
