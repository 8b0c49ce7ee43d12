package pixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/pixconv/draw"
)

// Buffer holds the pixel values of an image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// Clear zeroes every byte of the buffer.
func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(r image.Rectangle, stride, size int) Buffer {
	return Buffer{
		Rect:   r,
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// Image is an image whose pixels are packed in one of the catalog formats.
type Image struct {
	Buffer

	// Format is the pixel layout of Pix.
	Format Format
}

// NewImage returns a blank w×h image in format f.
func NewImage(w, h int, f Format) *Image {
	return newImage(image.Rect(0, 0, w, h), f)
}

func newImage(r image.Rectangle, f Format) *Image {
	stride := r.Dx() * f.ChannelCount()
	return &Image{
		Buffer: makeBuffer(r, stride, stride*r.Dy()),
		Format: f,
	}
}

// FromBytes wraps pix, holding w×h pixels in format f, without copying.
func FromBytes(pix []byte, w, h int, f Format) (*Image, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("pixel: invalid dimensions %dx%d", w, h)
	}
	stride := w * f.ChannelCount()
	if need := stride * h; len(pix) < need {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d %s, need %d", ErrInvalidInputLength, len(pix), w, h, f, need)
	}
	return &Image{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    pix[:stride*h],
			Stride: stride,
		},
		Format: f,
	}, nil
}

// FromImage converts src to a new image in format f, pixel by pixel through the
// color model of f.
func FromImage(src image.Image, f Format) *Image {
	r := src.Bounds()
	dst := newImage(r, f)
	draw.Draw(dst, r, src, r.Min, draw.Src)
	return dst
}

func (p *Image) ColorModel() color.Model {
	return p.Format.Model()
}

func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*formats[p.Format].count
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		n = formats[p.Format].count
		i = p.PixOffset(x, y)
		c = Color{Format: p.Format}
	)
	copy(c.Pix[:n], p.Pix[i:i+n])
	return c
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		n = formats[p.Format].count
		i = p.PixOffset(x, y)
	)
	p.Format.encode(p.Pix[i:i+n], c)
}

// Fill sets every pixel to c.
func (p *Image) Fill(c color.Color) {
	var (
		n     = formats[p.Format].count
		value = make([]byte, n)
		w     = p.Rect.Dx() * n
	)
	p.Format.encode(value, c)
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+w]
		for i := 0; i < w; i += n {
			copy(row[i:], value)
		}
	}
}

// Convert returns a copy of the image with its channels remapped to format to, using
// the same rules as [Convert]. Unlike [Convert], images of any size are accepted.
func (p *Image) Convert(to Format) (*Image, error) {
	if p.Format == to {
		return nil, ErrSameFormat
	}
	if !p.Format.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, p.Format)
	}
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, to)
	}
	offsets, err := plan(p.Format, to)
	if err != nil {
		return nil, err
	}

	var (
		out         = newImage(p.Rect, to)
		srcChannels = formats[p.Format].count
		dstChannels = formats[to].count
		w           = p.Rect.Dx()
	)
	for y := 0; y < p.Rect.Dy(); y++ {
		var (
			src = p.Pix[y*p.Stride : y*p.Stride+w*srcChannels]
			dst = out.Pix[y*out.Stride : (y+1)*out.Stride]
		)
		convertPixels(dst, src, offsets, srcChannels, dstChannels, 0, w)
	}
	return out, nil
}

// Bytes returns the pixels of the image without row padding. The result shares
// memory with Pix when the rows are already contiguous.
func (p *Image) Bytes() []byte {
	w := p.Rect.Dx() * formats[p.Format].count
	if p.Stride == w {
		return p.Pix[:w*p.Rect.Dy()]
	}
	out := make([]byte, 0, w*p.Rect.Dy())
	for y := 0; y < p.Rect.Dy(); y++ {
		out = append(out, p.Pix[y*p.Stride:y*p.Stride+w]...)
	}
	return out
}

// Interface checks.
var (
	_ draw.Image  = (*Image)(nil)
	_ color.Color = Color{}
)
