package pixconv

import (
	"context"
	"fmt"
	"io"

	"github.com/BeatGlow/pixconv/draw"
	"github.com/BeatGlow/pixconv/imageio"
	"github.com/BeatGlow/pixconv/pixel"
)

// Options controls a pipeline run.
type Options struct {
	// Format is the requested output pixel format.
	Format pixel.Format

	// Workers bounds the goroutines used for byte-level conversion, 0 means GOMAXPROCS.
	Workers int

	// Width and Height resize the decoded image when non-zero. A zero dimension keeps
	// the aspect ratio of the source.
	Width, Height int

	// Interpolator used for resizing, nil selects [draw.ApproxBiLinear].
	Interpolator draw.Interpolator
}

// Result holds the output of a pipeline run.
type Result struct {
	Pix    []byte       // packed pixels, no row padding
	Width  int          // in pixels
	Height int          // in pixels
	Format pixel.Format // format of Pix
	Source pixel.Format // format the decoder produced
	Codec  string       // codec of the input
}

// Run decodes an image, optionally resizes it and converts its pixels to opts.Format.
//
// When the decoded format and the requested one share a channel family the pixels are
// remapped byte by byte; otherwise every pixel is converted through its color value.
// Requesting the decoded format returns the decoded pixels unchanged.
func Run(ctx context.Context, data []byte, opts Options) (*Result, error) {
	log := Logger()

	if !opts.Format.IsValid() {
		return nil, fmt.Errorf("%w: %s", pixel.ErrUnknownFormat, opts.Format)
	}

	// 1. Decode
	img, codec, err := imageio.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	log.Debug("decoded image",
		"codec", codec,
		"bounds", img.Bounds().String(),
		"format", img.Format.String(),
		"bytes", len(data))

	// 2. Resize
	if opts.Width != 0 || opts.Height != 0 {
		if img, err = resize(img, opts.Width, opts.Height, opts.Interpolator); err != nil {
			return nil, err
		}
		log.Debug("resized image", "bounds", img.Bounds().String())
	}

	result := &Result{
		Width:  img.Rect.Dx(),
		Height: img.Rect.Dy(),
		Format: opts.Format,
		Source: img.Format,
		Codec:  codec,
	}

	// 3. Convert
	switch {
	case img.Format == opts.Format:
		log.Debug("formats match, no conversion", "format", opts.Format.String())
		result.Pix = img.Bytes()

	case img.Format.Family() == opts.Format.Family():
		log.Debug("remapping channels",
			"from", img.Format.String(),
			"to", opts.Format.String(),
			"workers", opts.Workers)
		pix := img.Bytes()
		if len(pix) < 3 {
			// The buffer converter rejects buffers under three bytes.
			var out *pixel.Image
			if out, err = img.Convert(opts.Format); err != nil {
				return nil, fmt.Errorf("convert: %w", err)
			}
			result.Pix = out.Bytes()
			break
		}
		if result.Pix, err = pixel.ConvertParallel(ctx, pix, img.Format, opts.Format, opts.Workers); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}

	default:
		log.Debug("converting color family",
			"from", img.Format.Family().String(),
			"to", opts.Format.Family().String())
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		result.Pix = pixel.FromImage(img, opts.Format).Bytes()
	}

	log.Debug("pipeline done", "bytes", len(result.Pix))
	return result, nil
}

// resize scales img to w×h. One zero dimension is derived from the other to keep the
// aspect ratio.
func resize(img *pixel.Image, w, h int, q draw.Interpolator) (*pixel.Image, error) {
	var (
		sw = img.Rect.Dx()
		sh = img.Rect.Dy()
	)
	if w < 0 || h < 0 || sw == 0 || sh == 0 {
		return nil, fmt.Errorf("%w: resize %dx%d to %dx%d", ErrBounds, sw, sh, w, h)
	}
	switch {
	case w == 0:
		w = max(1, (sw*h+sh/2)/sh)
	case h == 0:
		h = max(1, (sh*w+sw/2)/sw)
	}
	if w == sw && h == sh {
		return img, nil
	}

	dst := pixel.NewImage(w, h, img.Format)
	draw.Scale(dst, img, q)
	return dst, nil
}

// Render wraps width×height pixels of format f and encodes them with codec.
func Render(w io.Writer, pix []byte, width, height int, f pixel.Format, codec string, opts ...imageio.Option) error {
	img, err := pixel.FromBytes(pix, width, height, f)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	Logger().Debug("rendering",
		"codec", codec,
		"format", f.String(),
		"width", width,
		"height", height)
	if err = imageio.Encode(w, img, codec, opts...); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
