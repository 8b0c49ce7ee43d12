// Package parallel splits index ranges across goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunksPerWorker oversubscribes workers a little so uneven chunks balance out.
const chunksPerWorker = 4

// Chunk is a half-open index range [Lo, Hi).
type Chunk struct {
	Lo, Hi int
}

// Len returns the number of indices in the chunk.
func (c Chunk) Len() int {
	return c.Hi - c.Lo
}

// Chunks partitions [0, n) into contiguous, non-overlapping chunks of at least minChunk
// indices (except possibly the last), at most workers*4 of them.
func Chunks(n, workers, minChunk int) []Chunk {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if minChunk < 1 {
		minChunk = 1
	}

	count := (n + minChunk - 1) / minChunk
	if limit := workers * chunksPerWorker; count > limit {
		count = limit
	}
	size := (n + count - 1) / count

	chunks := make([]Chunk, 0, count)
	for lo := 0; lo < n; lo += size {
		chunks = append(chunks, Chunk{Lo: lo, Hi: min(lo+size, n)})
	}
	return chunks
}

// Range calls fn for every chunk of [0, n) on at most workers goroutines (GOMAXPROCS when
// workers <= 0) and waits for all of them. Chunks are disjoint, so fn may write to its
// own region of a shared slice without locking. A single chunk runs on the calling
// goroutine.
//
// If ctx is cancelled, chunks that have not started are skipped and ctx.Err() is returned.
// Once every chunk has run, Range returns nil even if ctx is cancelled afterwards.
func Range(ctx context.Context, n, workers, minChunk int, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunks := Chunks(n, workers, minChunk)
	switch len(chunks) {
	case 0:
		return nil
	case 1:
		fn(chunks[0].Lo, chunks[0].Hi)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	scheduled := 0
	for _, c := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(c.Lo, c.Hi)
			return nil
		})
		scheduled++
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if scheduled < len(chunks) {
		return ctx.Err()
	}
	return nil
}
