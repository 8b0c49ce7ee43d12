package colorspace

import "math"

// RGBToHSL converts raw RGB to hue in degrees [0, 360), saturation and lightness in
// [0, 1]. Channels are normalized to [0, 1] before any arithmetic. Achromatic colors
// have zero hue and saturation.
func RGBToHSL(r, g, b uint8) (h, s, l float32) {
	var (
		rf = float64(r) / maxRaw
		gf = float64(g) / maxRaw
		bf = float64(b) / maxRaw
		hi = max(rf, gf, bf)
		lo = min(rf, gf, bf)
		d  = hi - lo
		lf = (hi + lo) / 2
	)
	if d == 0 {
		return 0, 0, float32(lf)
	}

	// 1-|2L-1| only reaches zero at L=0 or L=1, where d is zero as well.
	var sf float64
	if den := 1 - math.Abs(2*lf-1); den > 0 {
		sf = d / den
	}

	var hf float64
	switch hi {
	case rf:
		hf = math.Mod((gf-bf)/d, 6)
	case gf:
		hf = (bf-rf)/d + 2
	default:
		hf = (rf-gf)/d + 4
	}
	hf *= 60
	if hf < 0 {
		hf += maxHue
	}

	h = float32(hf)
	if h >= maxHue {
		h -= maxHue
	}
	return h, float32(sf), float32(lf)
}

// RGBToHSLInteger converts raw RGB to hue in whole degrees [0, 359] and saturation and
// lightness in whole percent [0, 100] using integer arithmetic only. Results match
// rounding [RGBToHSL] to within one unit; hue compares modulo 360.
func RGBToHSLInteger(r, g, b uint8) (h uint16, s, l uint8) {
	var (
		ri, gi, bi = int(r), int(g), int(b)
		hi         = max(ri, gi, bi)
		lo         = min(ri, gi, bi)
		d          = hi - lo
		sum        = hi + lo // 0..510
	)
	l = uint8((sum*maxPercent + maxRaw) / (2 * maxRaw))
	if d == 0 {
		return 0, 0, l
	}

	den := maxRaw - abs(sum-maxRaw) // 255*(1-|2L-1|), > 0 whenever d > 0
	s = uint8((d*maxPercent + den/2) / den)

	var hue int
	switch hi {
	case ri:
		hue = divRound(60*(gi-bi), d)
	case gi:
		hue = 120 + divRound(60*(bi-ri), d)
	default:
		hue = 240 + divRound(60*(ri-gi), d)
	}
	hue %= maxHue
	if hue < 0 {
		hue += maxHue
	}
	return uint16(hue), s, l
}

// HSLToRGB converts hue in degrees and saturation and lightness in [0, 1] to raw RGB.
// Hue wraps around modulo 360. Saturation and lightness are not validated; results
// saturate at 0 and 255.
func HSLToRGB(h, s, l float32) (r, g, b uint8) {
	hf := math.Mod(float64(h), maxHue)
	if hf < 0 {
		hf += maxHue
	}
	var (
		sf = float64(s)
		lf = float64(l)
		c  = (1 - math.Abs(2*lf-1)) * sf
		x  = c * (1 - math.Abs(math.Mod(hf/60, 2)-1))
		m  = lf - c/2
	)

	var rf, gf, bf float64
	switch {
	case hf < 60:
		rf, gf, bf = c, x, 0
	case hf < 120:
		rf, gf, bf = x, c, 0
	case hf < 180:
		rf, gf, bf = 0, c, x
	case hf < 240:
		rf, gf, bf = 0, x, c
	case hf < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}
	return toU8(rf + m), toU8(gf + m), toU8(bf + m)
}

// HSLToRGBChecked is [HSLToRGB] for hue in [0, 360] and saturation and lightness in [0, 1].
func HSLToRGBChecked(h, s, l float32) (r, g, b uint8, err error) {
	if err = checkRange(maxHue, "H", h); err != nil {
		return
	}
	if err = checkRange(1, "SL", s, l); err != nil {
		return
	}
	r, g, b = HSLToRGB(h, s, l)
	return
}

// HSLToRGBInteger converts hue in whole degrees and saturation and lightness in whole
// percent to raw RGB using integer arithmetic only. Hue wraps modulo 360.
func HSLToRGBInteger(h uint16, s, l uint8) (r, g, b uint8) {
	// Everything below is in units of 1/600000: percent*percent*60.
	const one = maxPercent * maxPercent * 60

	var (
		hue = int(h) % maxHue
		si  = int(s)
		li  = int(l)
		c   = (maxPercent - abs(2*li-maxPercent)) * si * 60
		x   = (maxPercent - abs(2*li-maxPercent)) * si * (60 - abs(hue%120-60))
		m   = li*maxPercent*60 - c/2
	)

	var rv, gv, bv int
	switch hue / 60 {
	case 0:
		rv, gv, bv = c, x, 0
	case 1:
		rv, gv, bv = x, c, 0
	case 2:
		rv, gv, bv = 0, c, x
	case 3:
		rv, gv, bv = 0, x, c
	case 4:
		rv, gv, bv = x, 0, c
	default:
		rv, gv, bv = c, 0, x
	}
	scale := func(v int) uint8 {
		return clampU8(divRound((v+m)*maxRaw, one))
	}
	return scale(rv), scale(gv), scale(bv)
}

// HSLToRGBIntegerChecked is [HSLToRGBInteger] for hue in [0, 360] and saturation and
// lightness in [0, 100].
func HSLToRGBIntegerChecked(h uint16, s, l uint8) (r, g, b uint8, err error) {
	if err = checkRangeInt(maxHue, "H", int(h)); err != nil {
		return
	}
	if err = checkRangeInt(maxPercent, "SL", int(s), int(l)); err != nil {
		return
	}
	r, g, b = HSLToRGBInteger(h, s, l)
	return
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// divRound divides n by a positive d, rounding half away from zero like [math.Round].
func divRound(n, d int) int {
	if n < 0 {
		return -((-n + d/2) / d)
	}
	return (n + d/2) / d
}
