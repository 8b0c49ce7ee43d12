package main

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BeatGlow/pixconv/colorspace"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		In   string
		Want color.RGBA
	}{
		{"red", color.RGBA{R: 0xff, A: 0xff}},
		{" Tomato ", color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}},
		{"#00ff80", color.RGBA{G: 0xff, B: 0x80, A: 0xff}},
		{"0f8", color.RGBA{G: 0xff, B: 0x88, A: 0xff}},
		{"10, 20,30", color.RGBA{R: 10, G: 20, B: 30, A: 0xff}},
	}
	for _, test := range tests {
		v, err := parseColor(test.In)
		if err != nil {
			t.Errorf("%q: %v", test.In, err)
			continue
		}
		if v != test.Want {
			t.Errorf("%q: expected %+v, got %+v", test.In, test.Want, v)
		}
	}

	for _, in := range []string{"", "notacolor", "#12", "#gggggg", "1,2", "1,2,256", "1,2,3.5", "-1,0,0"} {
		if _, err := parseColor(in); !errors.Is(err, errColor) {
			t.Errorf("%q: expected errColor, got %v", in, err)
		}
	}
}

func TestParseTuple(t *testing.T) {
	v, err := parseTuple("0, 12.5,100,255", 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 12.5, 100, 255}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, v)
		}
	}
	if _, err = parseTuple("1,2,x", 3); !errors.Is(err, errColor) {
		t.Errorf("expected errColor, got %v", err)
	}
}

func TestColorCommands(t *testing.T) {
	tests := []struct {
		Args []string
		Want string
	}{
		{[]string{"cmyk", "red"}, "raw integer      0 255 255   0"},
		{[]string{"cmyk", "127,127,127"}, "percent float    0   0   0  50"},
		{[]string{"rgb", "--percentile=false", "--integer=false", "0,255,255,0"}, "RGB 255 0 0 (#ff0000)"},
		{[]string{"rgb", "--integer=false", "--percentile", "0,0,0,50"}, "RGB 128 128 128 (#808080)"},
		{[]string{"rgb", "--integer", "--percentile", "0,100,100,0"}, "RGB 255 0 0 (#ff0000)"},
		{[]string{"hsl", "--inverse=false", "--integer", "blue"}, "HSL 240° 100% 50%"},
		{[]string{"hsl", "--integer=false", "--inverse", "120,1,0.5"}, "RGB 0 255 0 (#00ff00)"},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.Args, " "), func(it *testing.T) {
			out, err := execute(it, test.Args...)
			if err != nil {
				it.Fatal(err)
			}
			if !strings.Contains(out, test.Want) {
				it.Errorf("expected output to contain %q, got:\n%s", test.Want, out)
			}
		})
	}

	// Reset flags the table above set, cobra keeps them between runs.
	t.Cleanup(func() {
		_ = rgbCmd.Flags().Set("percentile", "false")
		_ = rgbCmd.Flags().Set("integer", "false")
		_ = hslCmd.Flags().Set("inverse", "false")
		_ = hslCmd.Flags().Set("integer", "false")
	})
}

func TestColorCommandsOutOfRange(t *testing.T) {
	_, err := execute(t, "rgb", "--percentile=false", "--integer=false", "0,0,0,300")
	if !errors.Is(err, colorspace.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	_, err = execute(t, "hsl", "--inverse", "--integer=false", "400,1,1")
	if !errors.Is(err, colorspace.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	_ = hslCmd.Flags().Set("inverse", "false")
}

func TestConvertCommand(t *testing.T) {
	var (
		dir    = t.TempDir()
		input  = filepath.Join(dir, "in.raw")
		output = filepath.Join(dir, "out.raw")
	)
	if err := os.WriteFile(input, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "convert", "-i", input, "-o", output, "--from", "rgba", "--to", "bgr", "--strict")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Converted 2 pixels RGBA → BGR") {
		t.Errorf("unexpected output:\n%s", out)
	}
	v, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{3, 2, 1, 7, 6, 5}; !bytes.Equal(v, want) {
		t.Errorf("expected %v, got %v", want, v)
	}

	if _, err = execute(t, "convert", "-i", input, "-o", output, "--from", "rgb", "--to", "bgr", "--strict"); err == nil {
		t.Error("expected strict conversion of 8 RGB bytes to fail")
	}
	if _, err = execute(t, "convert", "-i", input, "-o", output, "--from", "rgb", "--to", "xyz"); err == nil {
		t.Error("expected an unknown format to fail")
	}
}

func TestDecodeEncodeCommands(t *testing.T) {
	var (
		dir    = t.TempDir()
		raw    = filepath.Join(dir, "img.raw")
		png    = filepath.Join(dir, "img.png")
		bmp    = filepath.Join(dir, "img.bmp")
		decode = filepath.Join(dir, "back.raw")
	)
	// 2x2 BGR image: red, green, blue, white.
	pix := []byte{0, 0, 255, 0, 255, 0, 255, 0, 0, 255, 255, 255}
	if err := os.WriteFile(raw, pix, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "encode", "-i", raw, "-o", png, "--format", "bgr", "--width", "2", "--height", "2"); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "decode", "-i", png, "-o", decode, "--to", "bgr"); err != nil {
		t.Fatal(err)
	}
	v, err := os.ReadFile(decode)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(v, pix) {
		t.Errorf("expected %v, got %v", pix, v)
	}

	meta, err := readMeta(decode)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Width != 2 || meta.Height != 2 || meta.Format != "BGR" || meta.Codec != "png" {
		t.Errorf("unexpected sidecar %+v", meta)
	}

	// Dimensions and format come from the sidecar.
	if _, err = execute(t, "encode", "-i", decode, "-o", bmp, "--width", "0", "--height", "0"); err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(bmp); err != nil {
		t.Error(err)
	}
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats", "--family", "gray")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "GrayA") || strings.Contains(out, "CMYK") {
		t.Errorf("unexpected output:\n%s", out)
	}
	_, _ = execute(t, "formats", "--family", "")
}
