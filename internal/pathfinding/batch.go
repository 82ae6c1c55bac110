package pathfinding

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one query of a batch.
type BatchResult struct {
	Result Result
	Err    error
}

// SearchBatch runs queries concurrently, at most limit at a time (limit <= 0
// means one goroutine per query). Query failures are reported per entry and
// do not stop the others; the returned error is only set when ctx ends.
func (p *Pathfinder) SearchBatch(ctx context.Context, queries []Query, limit int) ([]BatchResult, error) {
	results := make([]BatchResult, len(queries))
	if len(queries) == 0 {
		return results, nil
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			res, err := p.run(ctx, q, p.opts.Logger.WithQuery(i))
			results[i] = BatchResult{Result: res, Err: err}
			return nil
		})
	}
	// goroutines report through results and never fail the group
	if err := g.Wait(); err != nil {
		return results, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	p.opts.Logger.LogBatch(ctx, len(queries), failed)
	return results, ctx.Err()
}
