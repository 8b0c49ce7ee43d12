package pixel

import (
	"image/color"
	"math"

	"github.com/BeatGlow/pixconv/colorspace"
)

// maxChannels is the widest pixel in the catalog.
const maxChannels = 5

// models holds one color model per format, built at init.
var models [formatCount]color.Model

// Color is a single packed pixel in a catalog format.
//
// CMYK channels are raw inks (255 is full coverage). HSL channels store hue scaled from
// [0, 360) to [0, 255] and saturation and lightness scaled from [0, 1] to [0, 255].
// A format without alpha is opaque.
type Color struct {
	Format Format
	Pix    [maxChannels]byte
}

// Channel returns the value of channel ch, if the format carries it.
func (c Color) Channel(ch Channel) (byte, bool) {
	i := c.Format.Index(ch)
	if i < 0 {
		return 0, false
	}
	return c.Pix[i], true
}

func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.Format.IsValid() {
		return 0, 0, 0, 0
	}
	return c.Format.nrgba(c.Pix[:formats[c.Format].count]).RGBA()
}

// Model returns the color model of format f. It converts any color to a [Color] holding
// exactly the bytes an [Image] of that format stores for it.
func (f Format) Model() color.Model {
	if !f.IsValid() {
		return nil
	}
	return models[f]
}

func (f Format) convertColor(c color.Color) color.Color {
	if pc, ok := c.(Color); ok && pc.Format == f {
		return c
	}
	out := Color{Format: f}
	f.encode(out.Pix[:formats[f].count], c)
	return out
}

// luma uses the JFIF coefficients; 19595 + 38470 + 7471 equals 65536.
func luma(r, g, b uint8) uint8 {
	return uint8((19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16)
}

// unit scales v in [0, 1] to a byte.
func unit(v float32) byte {
	return byte(math.Round(float64(v) * 0xff))
}

// encode writes the pixel bytes of c in format f to dst.
func (f Format) encode(dst []byte, c color.Color) {
	if pc, ok := c.(Color); ok && pc.Format == f {
		copy(dst, pc.Pix[:])
		return
	}

	var (
		n = color.NRGBAModel.Convert(c).(color.NRGBA)
		v [channelCount]byte
	)
	v[ChannelAlpha] = n.A
	switch f.Family() {
	case FamilyRGB:
		v[ChannelRed], v[ChannelGreen], v[ChannelBlue] = n.R, n.G, n.B
	case FamilyGray:
		v[ChannelGray] = luma(n.R, n.G, n.B)
	case FamilyCMYK:
		v[ChannelCyan], v[ChannelMagenta], v[ChannelYellow], v[ChannelKey] = colorspace.RGBToCMYKInteger(n.R, n.G, n.B)
	case FamilyHSL:
		h, s, l := colorspace.RGBToHSL(n.R, n.G, n.B)
		v[ChannelHue] = unit(h / 360)
		v[ChannelSaturation] = unit(s)
		v[ChannelLightness] = unit(l)
	}

	for i, ch := range formats[f].channels {
		dst[i] = v[ch]
	}
}

// nrgba decodes the pixel bytes src of format f.
func (f Format) nrgba(src []byte) color.NRGBA {
	var v [channelCount]byte
	v[ChannelAlpha] = opaque
	for i, ch := range formats[f].channels {
		v[ch] = src[i]
	}

	n := color.NRGBA{A: v[ChannelAlpha]}
	switch f.Family() {
	case FamilyRGB:
		n.R, n.G, n.B = v[ChannelRed], v[ChannelGreen], v[ChannelBlue]
	case FamilyGray:
		n.R, n.G, n.B = v[ChannelGray], v[ChannelGray], v[ChannelGray]
	case FamilyCMYK:
		n.R, n.G, n.B = colorspace.CMYKToRGBInteger(v[ChannelCyan], v[ChannelMagenta], v[ChannelYellow], v[ChannelKey])
	case FamilyHSL:
		n.R, n.G, n.B = colorspace.HSLToRGB(
			float32(v[ChannelHue])*360/0xff,
			float32(v[ChannelSaturation])/0xff,
			float32(v[ChannelLightness])/0xff,
		)
	}
	return n
}
