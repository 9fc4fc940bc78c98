// Package testutil provides testing utilities for the RT MCP server.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// MockRT is a configurable mock RT REST2 server for testing.
type MockRT struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
	LastRequestBody   []byte
}

// NewMockRT creates a started mock RT server. Paths without a registered
// handler answer 404 with an RT-style message body.
func NewMockRT() *MockRT {
	mock := &MockRT{
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		// Restore the body so registered handlers can read it too.
		r.Body = io.NopCloser(bytes.NewReader(body))

		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.LastRequestBody = body
		handler, exists := mock.handlers[r.Method+" "+r.URL.Path]
		mock.mu.Unlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"message": "Resource not found"})
	}))

	return mock
}

// URL returns the mock server base URL.
func (m *MockRT) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockRT) Close() {
	m.server.Close()
}

// Reset clears tracking state and registered handlers.
func (m *MockRT) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastRequestHeader = nil
	m.LastRequestBody = nil
	m.handlers = make(map[string]http.HandlerFunc)
}

// Handle registers a custom handler for a method and path.
func (m *MockRT) Handle(method, path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[method+" "+path] = handler
}

// RespondJSON registers a fixed JSON response for a method and path.
func (m *MockRT) RespondJSON(method, path string, status int, body map[string]any) {
	m.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	})
}

// RespondRaw registers a fixed non-JSON response for a method and path.
func (m *MockRT) RespondRaw(method, path string, status int, body string) {
	m.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// ServePaginated registers a search endpoint over a fixed item list. The
// handler honors the page and per_page query parameters and emits the
// standard RT pagination envelope.
func (m *MockRT) ServePaginated(path string, items []map[string]any) {
	m.Handle("GET", path, func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		perPage := queryInt(r, "per_page", 20)

		total := len(items)
		pages := (total + perPage - 1) / perPage
		start := (page - 1) * perPage
		end := start + perPage
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		pageItems := items[start:end]

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"count":    len(pageItems),
			"page":     page,
			"pages":    pages,
			"per_page": perPage,
			"total":    total,
			"items":    pageItems,
		})
	})
}

// GetRequestCount returns the number of requests served.
func (m *MockRT) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
