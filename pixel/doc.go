// Package pixel converts packed-byte pixel buffers between channel layouts.
//
// A [Format] names a layout such as RGBA, BGR, GrayA, KCMYA or HLS: one byte per channel,
// channels in the order the name spells. The catalog of formats is fixed; [Format.Channels]
// and [Format.ChannelCount] describe each one.
//
// [Convert] remaps a flat buffer from one layout to another, copying shared channels and
// filling a missing alpha channel with 255. [Image] wraps a buffer as an [image.Image] /
// [draw.Image] so pixels can also be converted between color families (RGB, Gray, CMYK
// and HSL) through Go's [color.Model] machinery.
package pixel
