package imaging

import (
	"context"

	"github.com/huynhanx03/go-utilskit/pkg/async"
)

// Result is the outcome of fetching one url.
type Result struct {
	URL  string
	Data []byte
	Err  error
}

// FetchAll fetches every url concurrently and returns the results keyed by url.
// Duplicate urls are fetched once.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, opts Options) map[string]Result {
	unique := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
	}

	results := async.TaskGroupLimit(ctx, f.limit, unique, func(ctx context.Context, url string) Result {
		data, err := f.Fetch(ctx, url, opts)
		return Result{URL: url, Data: data, Err: err}
	})

	out := make(map[string]Result, len(results))
	for _, r := range results {
		out[r.URL] = r
	}
	return out
}
