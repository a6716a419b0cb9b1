package tensorize

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// EncodeAll encodes many rows concurrently and returns the results in input
// order, ready for Tensorize. Encoding one row is an atomic unit of work:
// cancellation is only observed between rows, never inside one.
//
// On failure the first encoding error is returned and no partially encoded
// result is handed back.
func (t *Tensorizer) EncodeAll(ctx context.Context, rows []Row) ([]*EncodedRow, error) {
	encoded := make([]*EncodedRow, len(rows))
	workers := pool.New().
		WithMaxGoroutines(runtime.GOMAXPROCS(0)).
		WithContext(ctx).
		WithFirstError()
	for i, row := range rows {
		workers.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := t.Encode(row)
			if err != nil {
				return err
			}
			encoded[i] = result
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}
