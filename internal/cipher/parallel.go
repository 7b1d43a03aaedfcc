package cipher

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/san-kum/chaoscrypt/internal/pixel"
)

// minRowsPerChunk keeps small images on a single goroutine where
// fan-out costs more than it saves.
const minRowsPerChunk = 64

// ProgressFunc is called after each completed row chunk, possibly
// from multiple goroutines.
type ProgressFunc func(doneRows, totalRows int)

// TransformParallel is Transform with the row traversal split across
// workers. The keystream is precomputed, so each row's substitution
// is independent; only key generation has to stay sequential.
func TransformParallel(ctx context.Context, g *pixel.Grid, keys []byte, workers int) (*pixel.Grid, error) {
	return TransformProgress(ctx, g, keys, workers, nil)
}

// TransformProgress is TransformParallel with chunk-level progress
// reporting. The context is checked between chunk launches; on
// cancellation no output grid is returned.
func TransformProgress(ctx context.Context, g *pixel.Grid, keys []byte, workers int, progress ProgressFunc) (*pixel.Grid, error) {
	if len(keys) != g.Size() {
		return nil, fmt.Errorf("%w: %d keys for %dx%d grid", ErrKeyLength, len(keys), g.Height, g.Width)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > 1 && g.Height/workers < minRowsPerChunk {
		workers = g.Height / minRowsPerChunk
	}
	if workers <= 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		out, err := Transform(g, keys)
		if err == nil && progress != nil {
			progress(g.Height, g.Height)
		}
		return out, err
	}

	out := pixel.NewGrid(g.Height, g.Width)
	chunk := (g.Height + workers - 1) / workers

	var doneRows atomic.Int64
	var wg sync.WaitGroup
	for start := 0; start < g.Height; start += chunk {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		end := start + chunk
		if end > g.Height {
			end = g.Height
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			transformRows(g, out, keys, start, end)
			if progress != nil {
				progress(int(doneRows.Add(int64(end-start))), g.Height)
			}
		}(start, end)
	}
	wg.Wait()

	return out, nil
}
