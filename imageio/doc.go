// Package imageio reads and writes image files as packed pixel images.
//
// Decoding supports PNG, JPEG and GIF from the standard library and BMP, TIFF and WebP from
// golang.org/x/image. A decoded image is returned as a [pixel.Image] in the catalog format
// closest to the source: Gray for grayscale sources, RGB for opaque sources and RGBA
// otherwise.
//
// Encoding supports every decoded codec except WebP, which has no encoder.
package imageio
