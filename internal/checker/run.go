package checker

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"urlcheck/pkg/models"
)

// CheckAll checks every entry's key URL and its truelink concurrently and
// returns the formatted rows for everything that is not Normal.
//
// Fan-out is unbounded: two requests per entry, all in flight at once. An
// entry without a truelink is a config-data defect and aborts the whole
// batch; individual request failures never do (they already classified as
// Unavailable inside Check).
func CheckAll(ctx context.Context, c *Checker, entries map[string]models.SubscribedURL) ([]string, error) {
	var (
		rows   []string
		rowsMu sync.Mutex
	)

	group, gctx := errgroup.WithContext(ctx)

	check := func(url string) error {
		if row, ok := InterpretResult(url, c.Check(gctx, url)); ok {
			rowsMu.Lock()
			rows = append(rows, row)
			rowsMu.Unlock()
		}
		return nil
	}

	for key, entry := range entries {
		key, entry := key, entry
		group.Go(func() error {
			return check(key)
		})
		group.Go(func() error {
			if entry.TrueLink == "" {
				return fmt.Errorf("subscribed URL %q has no truelink", key)
			}
			return check(entry.TrueLink)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
