package scans

import (
	"context"
	"errors"
	"sync"

	"github.com/reusee/arithlex/lexconfigs"
	"github.com/reusee/arithlex/sources"
	"github.com/reusee/arithlex/syncs"
)

// ScanAll scans sources concurrently, each with its own scanner. Results keep the order of sources.
type ScanAll func(ctx context.Context, srcs []*sources.Source) ([]Result, error)

func (Module) ScanAll(
	scan Scan,
	jobs lexconfigs.Jobs,
) ScanAll {
	return func(ctx context.Context, srcs []*sources.Source) ([]Result, error) {
		results := make([]Result, len(srcs))
		errs := make([]error, len(srcs))
		sem := syncs.NewSemaphore(int(jobs))
		var wg sync.WaitGroup
		for i, source := range srcs {
			if err := sem.Acquire(ctx); err != nil {
				errs[i] = err
				break
			}
			wg.Go(func() {
				defer sem.Release()
				results[i], errs[i] = scan(ctx, source)
			})
		}
		wg.Wait()
		return results, errors.Join(errs...)
	}
}
