package colorspace

import "image/color"

// HSLModel converts any color to [HSL].
var HSLModel color.Model = color.ModelFunc(hslModel)

// HSL is an opaque color with hue in degrees and saturation and lightness in [0, 1].
type HSL struct {
	H, S, L float32
}

func (c HSL) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := HSLToRGB(c.H, c.S, c.L)
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

func hslModel(c color.Color) color.Color {
	if _, ok := c.(HSL); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	h, s, l := RGBToHSL(n.R, n.G, n.B)
	return HSL{H: h, S: s, L: l}
}
