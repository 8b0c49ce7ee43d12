package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/BeatGlow/pixconv/pixel"
)

// Errors
var (
	// ErrUnsupported is returned for codecs that cannot be encoded or file extensions
	// that name no codec.
	ErrUnsupported = errors.New("imageio: unsupported codec")

	// ErrEmptyData is returned when there is nothing to decode.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Codec names, as reported by [image.Decode].
const (
	PNG  = "png"
	JPEG = "jpeg"
	GIF  = "gif"
	BMP  = "bmp"
	TIFF = "tiff"
	WebP = "webp"
)

var codecsByExt = map[string]string{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".webp": WebP,
}

// CodecForPath returns the codec named by the extension of path.
func CodecForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if codec, ok := codecsByExt[ext]; ok {
		return codec, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnsupported, ext)
}

// FormatFor returns the catalog format Decode uses for src.
func FormatFor(src image.Image) pixel.Format {
	switch src := src.(type) {
	case *image.Gray, *image.Gray16:
		return pixel.Gray
	case *image.YCbCr, *image.CMYK:
		return pixel.RGB
	case interface{ Opaque() bool }:
		if src.Opaque() {
			return pixel.RGB
		}
	}
	return pixel.RGBA
}

// FromImage packs src into its [FormatFor] format.
func FromImage(src image.Image) *pixel.Image {
	f := FormatFor(src)
	switch src := src.(type) {
	case *image.Gray:
		return copyRows(src.Rect, src.Pix, src.Stride, f)
	case *image.NRGBA:
		if f == pixel.RGBA {
			return copyRows(src.Rect, src.Pix, src.Stride, f)
		}
	}
	return pixel.FromImage(src, f)
}

// copyRows copies pixels that already have the layout of f.
func copyRows(r image.Rectangle, pix []byte, stride int, f pixel.Format) *pixel.Image {
	var (
		dst = pixel.NewImage(r.Dx(), r.Dy(), f)
		w   = r.Dx() * f.ChannelCount()
	)
	for y := 0; y < r.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], pix[y*stride:y*stride+w])
	}
	return dst
}

// Decode decodes an image and returns it packed, together with the codec name.
func Decode(r io.Reader) (*pixel.Image, string, error) {
	src, codec, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	return FromImage(src), codec, nil
}

// DecodeBytes is [Decode] for an in-memory image.
func DecodeBytes(data []byte) (*pixel.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Open decodes the image file at path.
func Open(path string) (*pixel.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Option configures an encoder.
type Option func(*options)

type options struct {
	quality   int
	numColors int
}

func defaultOptions() options {
	return options{
		quality:   jpeg.DefaultQuality,
		numColors: 256,
	}
}

// WithQuality sets the JPEG quality, clamped to [1, 100].
func WithQuality(quality int) Option {
	return func(o *options) {
		o.quality = min(max(quality, 1), 100)
	}
}

// WithColors sets the GIF palette size, clamped to [1, 256].
func WithColors(n int) Option {
	return func(o *options) {
		o.numColors = min(max(n, 1), 256)
	}
}

// Encode writes img to w using codec.
func Encode(w io.Writer, img image.Image, codec string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img = toStd(img)

	var err error
	switch codec {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: o.quality})
	case GIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: o.numColors})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupported, codec)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", strings.ToUpper(codec), err)
	}
	return nil
}

// Save encodes img to the file at path, picking the codec from the extension.
func Save(path string, img image.Image, opts ...Option) error {
	codec, err := CodecForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, img, codec, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// toStd turns a packed image into a standard library image the encoders have fast
// paths for.
func toStd(img image.Image) image.Image {
	p, ok := img.(*pixel.Image)
	if !ok {
		return img
	}

	r := p.Bounds()
	if p.Format == pixel.Gray {
		dst := image.NewGray(r)
		copy(dst.Pix, p.Bytes())
		return dst
	}

	dst := image.NewNRGBA(r)
	switch {
	case p.Format == pixel.RGBA:
		copy(dst.Pix, p.Bytes())
		return dst
	case p.Format.Family() == pixel.FamilyRGB:
		if rgba, err := p.Convert(pixel.RGBA); err == nil {
			copy(dst.Pix, rgba.Pix)
			return dst
		}
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, p.At(x, y))
		}
	}
	return dst
}
