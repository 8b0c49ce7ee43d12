// Package colorspace converts single color tuples between RGB, CMYK and HSL.
//
// Most conversions come in several flavors:
//
//   - raw: channels on a 0–255 scale
//   - percentile: CMYK channels on a 0–100 scale
//   - float (float32) or integer (uint8 fixed-point) arithmetic
//
// Integer variants avoid floating point and may differ from their float counterparts by
// at most one unit per channel.
//
// Functions without a Checked suffix do not validate their input: out-of-domain values
// produce unspecified, but never panicking, results. The Checked variants return
// [ErrOutOfRange] when any channel lies outside its domain and otherwise return exactly
// what the unchecked function returns.
package colorspace

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned by the Checked functions for out-of-domain input.
var ErrOutOfRange = errors.New("colorspace: value out of range")

// Channel domains.
const (
	maxRaw     = 255
	maxPercent = 100
	maxHue     = 360
)

// checkRange validates named values against [0, hi]. NaN is out of range.
func checkRange(hi float32, names string, values ...float32) error {
	for i, v := range values {
		if !(v >= 0 && v <= hi) {
			return fmt.Errorf("%w: %c=%g not in [0, %g]", ErrOutOfRange, names[i], v, hi)
		}
	}
	return nil
}

// checkRangeInt validates named values against [0, hi].
func checkRangeInt(hi int, names string, values ...int) error {
	for i, v := range values {
		if v < 0 || v > hi {
			return fmt.Errorf("%w: %c=%d not in [0, %d]", ErrOutOfRange, names[i], v, hi)
		}
	}
	return nil
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// clampU8 clamps v to [0, 255].
func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > maxRaw {
		return maxRaw
	}
	return uint8(v)
}

// toU8 scales v in [0, 1] to a rounded byte, saturating out-of-range values and NaN.
func toU8(v float64) uint8 {
	v = math.Round(v * maxRaw)
	if !(v > 0) {
		return 0
	}
	if v > maxRaw {
		return maxRaw
	}
	return uint8(v)
}
