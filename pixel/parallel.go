package pixel

import (
	"context"

	"github.com/BeatGlow/pixconv/internal/parallel"
)

// minChunkPixels is the smallest pixel run handed to a worker.
const minChunkPixels = 16 << 10

// ConvertParallel produces the same result as [Convert], spreading the pixels over up
// to workers goroutines (GOMAXPROCS when workers <= 0). Each worker writes only its own
// region of the pre-sized output. Buffers smaller than one chunk are converted inline.
func ConvertParallel(ctx context.Context, buf []byte, from, to Format, workers int) ([]byte, error) {
	offsets, err := prepare(buf, from, to)
	if err != nil {
		return nil, err
	}

	var (
		srcChannels = formats[from].count
		dstChannels = formats[to].count
		pixels      = len(buf) / srcChannels
		out         = make([]byte, pixels*dstChannels)
	)
	err = parallel.Range(ctx, pixels, workers, minChunkPixels, func(lo, hi int) {
		convertPixels(out, buf, offsets, srcChannels, dstChannels, lo, hi)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
