package colorspace

// RGBToCMYK converts raw RGB to raw CMYK in floating point. Every result is rounded to
// the nearest integer value.
//
// Pure black maps to (0, 0, 0, 255).
func RGBToCMYK(r, g, b float32) (c, m, y, k float32) {
	return rgbToCMYK(r, g, b, maxRaw)
}

// RGBToCMYKPercentile converts raw RGB to CMYK on a 0–100 scale in floating point.
// Every result is rounded to the nearest integer value.
//
// Pure black maps to (0, 0, 0, 100).
func RGBToCMYKPercentile(r, g, b float32) (c, m, y, k float32) {
	return rgbToCMYK(r, g, b, maxPercent)
}

func rgbToCMYK(r, g, b, scale float32) (c, m, y, k float32) {
	w := max(r, g, b)
	if w == 0 {
		return 0, 0, 0, scale
	}

	var (
		rn = r / maxRaw
		gn = g / maxRaw
		bn = b / maxRaw
		kn = 1 - w/maxRaw
	)
	c = round(scale * (1 - rn - kn) / (1 - kn))
	m = round(scale * (1 - gn - kn) / (1 - kn))
	y = round(scale * (1 - bn - kn) / (1 - kn))
	k = round(scale * kn)
	return
}

// RGBToCMYKChecked is [RGBToCMYK] for input that must lie in [0, 255].
func RGBToCMYKChecked(r, g, b float32) (c, m, y, k float32, err error) {
	if err = checkRange(maxRaw, "RGB", r, g, b); err != nil {
		return
	}
	c, m, y, k = RGBToCMYK(r, g, b)
	return
}

// RGBToCMYKInteger is the fixed-point version of [RGBToCMYK]. Results may differ from the
// float version by one unit per channel.
//
// Each ink is round((max-v)*255/max), computed as ((max-v)*255 + max/2) / max.
func RGBToCMYKInteger(r, g, b uint8) (c, m, y, k uint8) {
	w := uint32(max(r, g, b))
	if w == 0 {
		return 0, 0, 0, maxRaw
	}

	ink := func(v uint8) uint8 {
		return uint8(((w-uint32(v))*maxRaw + w/2) / w)
	}
	return ink(r), ink(g), ink(b), uint8(maxRaw - w)
}

// RGBToCMYKIntegerPercentile is the fixed-point version of [RGBToCMYKPercentile].
//
// Values are computed in hundredths of a percent and rounded half up by adding 50 before
// dividing by 100.
func RGBToCMYKIntegerPercentile(r, g, b uint8) (c, m, y, k uint8) {
	w := uint32(max(r, g, b))
	if w == 0 {
		return 0, 0, 0, maxPercent
	}

	percent := func(num, den uint32) uint8 {
		return uint8((num*maxPercent*maxPercent/den + 50) / maxPercent)
	}
	c = percent(w-uint32(r), w)
	m = percent(w-uint32(g), w)
	y = percent(w-uint32(b), w)
	k = percent(maxRaw-w, maxRaw)
	return
}

// CMYKToRGB converts raw CMYK to raw RGB in floating point, rounding each channel.
func CMYKToRGB(c, m, y, k float32) (r, g, b float32) {
	return cmykToRGB(c, m, y, k, maxRaw)
}

// CMYKToRGBPercentile converts CMYK on a 0–100 scale to raw RGB in floating point.
func CMYKToRGBPercentile(c, m, y, k float32) (r, g, b float32) {
	return cmykToRGB(c, m, y, k, maxPercent)
}

func cmykToRGB(c, m, y, k, scale float32) (r, g, b float32) {
	w := maxRaw * (1 - k/scale)
	r = round(w * (1 - c/scale))
	g = round(w * (1 - m/scale))
	b = round(w * (1 - y/scale))
	return
}

// CMYKToRGBChecked is [CMYKToRGB] for input that must lie in [0, 255].
func CMYKToRGBChecked(c, m, y, k float32) (r, g, b float32, err error) {
	if err = checkRange(maxRaw, "CMYK", c, m, y, k); err != nil {
		return
	}
	r, g, b = CMYKToRGB(c, m, y, k)
	return
}

// CMYKToRGBPercentileChecked is [CMYKToRGBPercentile] for input that must lie in [0, 100].
func CMYKToRGBPercentileChecked(c, m, y, k float32) (r, g, b float32, err error) {
	if err = checkRange(maxPercent, "CMYK", c, m, y, k); err != nil {
		return
	}
	r, g, b = CMYKToRGBPercentile(c, m, y, k)
	return
}

// CMYKToRGBInteger is the fixed-point version of [CMYKToRGB].
func CMYKToRGBInteger(c, m, y, k uint8) (r, g, b uint8) {
	w := maxRaw - uint32(k)
	channel := func(v uint8) uint8 {
		return uint8(((maxRaw-uint32(v))*w + maxRaw/2) / maxRaw)
	}
	return channel(c), channel(m), channel(y)
}

// CMYKToRGBIntegerPercentile is the fixed-point version of [CMYKToRGBPercentile].
// Channels above 100 give unspecified results; see [CMYKToRGBIntegerPercentileChecked].
func CMYKToRGBIntegerPercentile(c, m, y, k uint8) (r, g, b uint8) {
	const den = maxPercent * maxPercent
	w := maxPercent - int(k)
	channel := func(v uint8) uint8 {
		return clampU8(((maxPercent-int(v))*w*maxRaw + den/2) / den)
	}
	return channel(c), channel(m), channel(y)
}

// CMYKToRGBIntegerPercentileChecked is [CMYKToRGBIntegerPercentile] for input that must
// lie in [0, 100].
func CMYKToRGBIntegerPercentileChecked(c, m, y, k uint8) (r, g, b uint8, err error) {
	if err = checkRangeInt(maxPercent, "CMYK", int(c), int(m), int(y), int(k)); err != nil {
		return
	}
	r, g, b = CMYKToRGBIntegerPercentile(c, m, y, k)
	return
}
