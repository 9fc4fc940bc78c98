package tools

import (
	"context"
	"testing"
	"time"

	"github.com/opsqueue/rt-mcp-server/pkg/client"
	"github.com/opsqueue/rt-mcp-server/pkg/config"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()

	rt, err := client.New(&config.Config{
		URL:      "http://127.0.0.1:1",
		Token:    "1-test-token",
		Timeout:  time.Second,
		BasePath: "/REST/2.0",
	})
	if err != nil {
		t.Fatalf("client.New() error = %v", err)
	}
	t.Cleanup(func() { rt.Close() })
	return NewRegistry(rt)
}

func TestBulkUpdater_UnsupportedType(t *testing.T) {
	r := newRegistry(t)

	if _, err := r.bulkUpdater("catalog", map[string]any{"Name": "x"}); err == nil {
		t.Error("expected error for unsupported object type")
	}
}

func TestBulkUpdater_NumericIDValidation(t *testing.T) {
	r := newRegistry(t)

	for _, objectType := range []string{"ticket", "asset"} {
		update, err := r.bulkUpdater(objectType, map[string]any{"Status": "resolved"})
		if err != nil {
			t.Fatalf("bulkUpdater(%q) error = %v", objectType, err)
		}
		// A non-numeric identifier must fail locally, before any request.
		if err := update(context.Background(), "general"); err == nil {
			t.Errorf("%s update with non-numeric id should fail", objectType)
		}
	}
}

func TestPagedInput_Normalize(t *testing.T) {
	tests := []struct {
		name        string
		in          pagedInput
		wantPage    int
		wantPerPage int
	}{
		{"defaults", pagedInput{}, 1, 20},
		{"explicit", pagedInput{Page: 3, PerPage: 50}, 3, 50},
		{"negative page", pagedInput{Page: -1, PerPage: 10}, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := tt.in.normalize()
			if page != tt.wantPage || perPage != tt.wantPerPage {
				t.Errorf("normalize() = (%d, %d), want (%d, %d)", page, perPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}
