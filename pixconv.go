// Package pixconv converts images and raw pixel buffers between packed pixel formats.
//
// The work is done by the sub-packages:
//
//   - [github.com/BeatGlow/pixconv/pixel]: the format catalog, the buffer converter and
//     the packed image type
//   - [github.com/BeatGlow/pixconv/colorspace]: RGB, CMYK and HSL color transforms
//   - [github.com/BeatGlow/pixconv/imageio]: image file decoding and encoding
//
// This package ties them together into a decode, convert and encode pipeline. Setting
// the PIXCONV_DEBUG environment variable enables debug logging to stderr.
package pixconv

import (
	"errors"
	"os"
)

// Version of the module.
const Version = "0.3.0"

// EnvDebug is the environment variable that enables debug logging.
const EnvDebug = "PIXCONV_DEBUG"

func init() {
	if os.Getenv(EnvDebug) != "" {
		SetLogger(NewDebugLogger())
	}
}

// Errors
var (
	ErrBounds = errors.New("pixconv: invalid image dimensions")
)
