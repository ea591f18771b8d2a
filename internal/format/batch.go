package format

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FormatBatch formats every input with mode, running at most limit
// formatters at a time. Results keep the order of inputs. A limit below 1
// means runtime.NumCPU().
//
// Parameters:
//   - ctx: Cancels the batch; remaining inputs are skipped.
//   - inputs: The numeric texts to format.
//   - mode: The grouping operation to apply.
//   - limit: The maximum number of concurrent formatters.
//
// Returns:
//   - []string: The grouped texts, index-aligned with inputs.
//   - error: The context error if the batch was cancelled.
func FormatBatch(ctx context.Context, inputs []string, mode Mode, limit int) ([]string, error) {
	if limit < 1 {
		limit = runtime.NumCPU()
	}
	results := make([]string, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = mode.Apply(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
