// Package pagination assembles bounded result sets from RT's paginated
// search endpoints and applies mutations across identifier lists.
package pagination

import "context"

// MaxPageSize is the largest page size RT accepts.
const MaxPageSize = 100

// DefaultMaxResults bounds bulk retrieval when the caller gives no limit.
const DefaultMaxResults = 1000

// Page is one page of a paginated RT response. For a well-formed response
// Count == len(Items), Page is 1-indexed, and Pages == ceil(Total/PerPage).
type Page struct {
	Count   int              `json:"count"`
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
	PerPage int              `json:"per_page"`
	Total   int              `json:"total"`
	Items   []map[string]any `json:"items"`
}

// FetchFunc fetches one page of results for a query.
type FetchFunc func(ctx context.Context, query string, page, perPage int) (Page, error)

// Result is a bounded, ordered result set accumulated across pages.
type Result struct {
	Query string           `json:"query"`
	Total int              `json:"total_available"`
	Items []map[string]any `json:"items"`
}

// Collect pages through fetch at MaxPageSize starting at page 1 and
// accumulates items in server order until maxResults items have been
// gathered, the server-reported page total is reached, or a page comes back
// empty. The result is truncated to exactly maxResults entries. Errors from
// fetch abort the retrieval and propagate unchanged; no partial result is
// returned. maxResults <= 0 yields an empty result without fetching.
func Collect(ctx context.Context, fetch FetchFunc, query string, maxResults int) (Result, error) {
	result := Result{Query: query, Items: []map[string]any{}}
	if maxResults <= 0 {
		return result, nil
	}

	for page := 1; len(result.Items) < maxResults; page++ {
		p, err := fetch(ctx, query, page, MaxPageSize)
		if err != nil {
			return Result{}, err
		}

		result.Items = append(result.Items, p.Items...)
		result.Total = p.Total

		// An empty page terminates the loop even when the reported page
		// count says more pages exist; inconsistent pagination metadata
		// must not cause an infinite loop.
		if len(p.Items) == 0 || page >= p.Pages {
			break
		}
	}

	if len(result.Items) > maxResults {
		result.Items = result.Items[:maxResults]
	}
	return result, nil
}

// UpdateFunc applies one mutation to the object with the given identifier.
type UpdateFunc func(ctx context.Context, id string) error

// Failure records one identifier whose mutation failed.
type Failure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkResult partitions a bulk mutation into ordered successes and failures.
type BulkResult struct {
	Success []string  `json:"success"`
	Failed  []Failure `json:"failed"`
}

// Apply invokes fn for each identifier sequentially, in input order. A
// failing item is recorded rather than raised, so one bad identifier never
// blocks attempts on the rest.
func Apply(ctx context.Context, ids []string, fn UpdateFunc) BulkResult {
	result := BulkResult{Success: []string{}, Failed: []Failure{}}
	for _, id := range ids {
		if err := fn(ctx, id); err != nil {
			result.Failed = append(result.Failed, Failure{ID: id, Error: err.Error()})
			continue
		}
		result.Success = append(result.Success, id)
	}
	return result
}

// PageFromMap decodes the generic map form of a paginated response, as
// returned by the gateway client, into a Page. JSON numbers arrive as
// float64 and are truncated to ints.
func PageFromMap(m map[string]any) Page {
	p := Page{
		Count:   intAt(m, "count"),
		Page:    intAt(m, "page"),
		Pages:   intAt(m, "pages"),
		PerPage: intAt(m, "per_page"),
		Total:   intAt(m, "total"),
	}
	if items, ok := m["items"].([]any); ok {
		p.Items = make([]map[string]any, 0, len(items))
		for _, item := range items {
			if obj, ok := item.(map[string]any); ok {
				p.Items = append(p.Items, obj)
			}
		}
	}
	return p
}

func intAt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
