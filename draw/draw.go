// Package draw provides image composition and scaling for pixel images.
//
// It re-exports the parts of [golang.org/x/image/draw] the rest of the module needs, so
// callers do not have to import both image/draw and x/image/draw.
package draw

import (
	"image"

	"golang.org/x/image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

// Src specifies ``src in mask''.
const Src = draw.Src

// Interpolator is an alias for [golang.org/x/image/draw.Interpolator].
type Interpolator = draw.Interpolator

// Interpolators, from fastest to highest quality.
var (
	NearestNeighbor = draw.NearestNeighbor
	ApproxBiLinear  = draw.ApproxBiLinear
	BiLinear        = draw.BiLinear
	CatmullRom      = draw.CatmullRom
)

// Draw aligns r.Min in dst with sp in src and then replaces the rectangle r in dst with
// the result of a Porter-Duff composition.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

// Scale scales all of src into all of dst using interpolator q. A nil q selects
// [ApproxBiLinear].
func Scale(dst Image, src image.Image, q Interpolator) {
	if q == nil {
		q = ApproxBiLinear
	}
	q.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// InterpolatorByName returns the interpolator called name: "nearest", "approx",
// "bilinear" or "catmullrom".
func InterpolatorByName(name string) (Interpolator, bool) {
	switch name {
	case "nearest":
		return NearestNeighbor, true
	case "approx", "":
		return ApproxBiLinear, true
	case "bilinear":
		return BiLinear, true
	case "catmullrom":
		return CatmullRom, true
	default:
		return nil, false
	}
}
