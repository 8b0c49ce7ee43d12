package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/BeatGlow/pixconv/colorspace"
)

var errColor = errors.New("invalid color")

var cmykCmd = &cobra.Command{
	Use:   "cmyk <color>",
	Short: "Show the CMYK values of an RGB color",
	Long: `Show the CMYK values of an RGB color, raw (0-255) and percentile (0-100), computed with
float and integer arithmetic. The color is a name ("tomato"), hex ("#ff6347", "f63") or
"r,g,b".`,
	Args: cobra.ExactArgs(1),
	RunE: runCMYK,
}

var rgbCmd = &cobra.Command{
	Use:   "rgb <c,m,y,k>",
	Short: "Convert CMYK values to RGB",
	Args:  cobra.ExactArgs(1),
	RunE:  runRGB,
}

var hslCmd = &cobra.Command{
	Use:   "hsl <color | h,s,l>",
	Short: "Convert an RGB color to HSL, or HSL to RGB with --inverse",
	Args:  cobra.ExactArgs(1),
	RunE:  runHSL,
}

func init() {
	rgbCmd.Flags().BoolP("percentile", "p", false, "CMYK values are on a 0-100 scale")
	rgbCmd.Flags().Bool("integer", false, "Use integer arithmetic")
	hslCmd.Flags().Bool("inverse", false, "Convert h,s,l (degrees, 0-1, 0-1) to RGB")
	hslCmd.Flags().Bool("integer", false, "Use integer arithmetic (saturation and lightness in percent)")
	rootCmd.AddCommand(cmykCmd, rgbCmd, hslCmd)
}

// parseColor parses a color name, a 3 or 6 digit hex code or an "r,g,b" triple.
func parseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(name, ",") {
		v, err := parseTuple(name, 3)
		if err != nil {
			return color.RGBA{}, err
		}
		for _, c := range v {
			if !isWhole(c, 255) {
				return color.RGBA{}, fmt.Errorf("%w: %q: channels must be integers in [0, 255]", errColor, s)
			}
		}
		return color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 0xff}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if c, ok := parseHexColor(strings.TrimPrefix(name, "#")); ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", errColor, s)
}

// parseHexColor parses a hex color string (3 or 6 characters).
func parseHexColor(s string) (c color.RGBA, ok bool) {
	if len(s) != 3 && len(s) != 6 {
		return
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return
	}
	c.A = 0xff
	if len(s) == 3 {
		c.R = uint8(v>>8&0xf) * 17
		c.G = uint8(v>>4&0xf) * 17
		c.B = uint8(v&0xf) * 17
	} else {
		c.R = uint8(v >> 16)
		c.G = uint8(v >> 8)
		c.B = uint8(v)
	}
	return c, true
}

// parseTuple parses n comma separated numbers.
func parseTuple(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%w: %q: expected %d comma separated values", errColor, s, n)
	}
	out := make([]float64, n)
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errColor, s, err)
		}
		out[i] = v
	}
	return out, nil
}

func runCMYK(cmd *cobra.Command, args []string) error {
	c, err := parseColor(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printer.Fprintf(w, "RGB            #%02x%02x%02x (%d, %d, %d)\n", c.R, c.G, c.B, c.R, c.G, c.B)

	cf, mf, yf, kf := colorspace.RGBToCMYK(float32(c.R), float32(c.G), float32(c.B))
	printer.Fprintf(w, "raw float      %3.0f %3.0f %3.0f %3.0f\n", cf, mf, yf, kf)
	ci, mi, yi, ki := colorspace.RGBToCMYKInteger(c.R, c.G, c.B)
	printer.Fprintf(w, "raw integer    %3d %3d %3d %3d\n", ci, mi, yi, ki)

	cf, mf, yf, kf = colorspace.RGBToCMYKPercentile(float32(c.R), float32(c.G), float32(c.B))
	printer.Fprintf(w, "percent float  %3.0f %3.0f %3.0f %3.0f\n", cf, mf, yf, kf)
	ci, mi, yi, ki = colorspace.RGBToCMYKIntegerPercentile(c.R, c.G, c.B)
	printer.Fprintf(w, "percent integer%3d %3d %3d %3d\n", ci, mi, yi, ki)
	return nil
}

func runRGB(cmd *cobra.Command, args []string) error {
	percentile, _ := cmd.Flags().GetBool("percentile")
	integer, _ := cmd.Flags().GetBool("integer")

	v, err := parseTuple(args[0], 4)
	if err != nil {
		return err
	}

	var (
		r, g, b    float32
		c, m, y, k = float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])
	)
	switch {
	case integer && percentile:
		var ri, gi, bi uint8
		if err = checkBytes(v); err != nil {
			return err
		}
		if ri, gi, bi, err = colorspace.CMYKToRGBIntegerPercentileChecked(uint8(c), uint8(m), uint8(y), uint8(k)); err != nil {
			return err
		}
		r, g, b = float32(ri), float32(gi), float32(bi)
	case integer:
		if err = checkBytes(v); err != nil {
			return err
		}
		ri, gi, bi := colorspace.CMYKToRGBInteger(uint8(c), uint8(m), uint8(y), uint8(k))
		r, g, b = float32(ri), float32(gi), float32(bi)
	case percentile:
		if r, g, b, err = colorspace.CMYKToRGBPercentileChecked(c, m, y, k); err != nil {
			return err
		}
	default:
		if r, g, b, err = colorspace.CMYKToRGBChecked(c, m, y, k); err != nil {
			return err
		}
	}

	printer.Fprintf(cmd.OutOrStdout(), "RGB %.0f %.0f %.0f (#%02x%02x%02x)\n", r, g, b, uint8(r), uint8(g), uint8(b))
	return nil
}

func runHSL(cmd *cobra.Command, args []string) error {
	inverse, _ := cmd.Flags().GetBool("inverse")
	integer, _ := cmd.Flags().GetBool("integer")
	w := cmd.OutOrStdout()

	if !inverse {
		c, err := parseColor(args[0])
		if err != nil {
			return err
		}
		if integer {
			h, s, l := colorspace.RGBToHSLInteger(c.R, c.G, c.B)
			printer.Fprintf(w, "HSL %d° %d%% %d%%\n", h, s, l)
			return nil
		}
		h, s, l := colorspace.RGBToHSL(c.R, c.G, c.B)
		printer.Fprintf(w, "HSL %.2f° %.4f %.4f\n", h, s, l)
		return nil
	}

	v, err := parseTuple(args[0], 3)
	if err != nil {
		return err
	}
	var r, g, b uint8
	if integer {
		for _, c := range v {
			if !isWhole(c, 360) {
				return fmt.Errorf("%w: %q: integer HSL takes whole numbers", colorspace.ErrOutOfRange, args[0])
			}
		}
		r, g, b, err = colorspace.HSLToRGBIntegerChecked(uint16(v[0]), uint8(min(v[1], 255)), uint8(min(v[2], 255)))
	} else {
		r, g, b, err = colorspace.HSLToRGBChecked(float32(v[0]), float32(v[1]), float32(v[2]))
	}
	if err != nil {
		return err
	}
	printer.Fprintf(w, "RGB %d %d %d (#%02x%02x%02x)\n", r, g, b, r, g, b)
	return nil
}

// isWhole reports whether v is an integer in [0, hi].
func isWhole(v, hi float64) bool {
	return v >= 0 && v <= hi && v == math.Trunc(v)
}

// checkBytes rejects values the integer transforms cannot take.
func checkBytes(v []float64) error {
	for _, c := range v {
		if !isWhole(c, 255) {
			return fmt.Errorf("%w: %v: integer CMYK takes whole numbers in [0, 255]", colorspace.ErrOutOfRange, v)
		}
	}
	return nil
}
