package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/BeatGlow/pixconv/pixel"
)

func testGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestCodecForPath(t *testing.T) {
	tests := []struct {
		Path  string
		Codec string
	}{
		{"a.png", PNG},
		{"b.JPG", JPEG},
		{"c.jpeg", JPEG},
		{"dir/d.gif", GIF},
		{"e.bmp", BMP},
		{"f.tif", TIFF},
		{"g.tiff", TIFF},
		{"h.webp", WebP},
	}
	for _, test := range tests {
		v, err := CodecForPath(test.Path)
		if err != nil {
			t.Errorf("%s: %v", test.Path, err)
			continue
		}
		if v != test.Codec {
			t.Errorf("%s: expected %s, got %s", test.Path, test.Codec, v)
		}
	}

	for _, path := range []string{"noext", "a.raw", "b.png.bak"} {
		if _, err := CodecForPath(path); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: expected ErrUnsupported, got %v", path, err)
		}
	}
}

func TestFormatFor(t *testing.T) {
	translucent := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	tests := []struct {
		Name   string
		Image  image.Image
		Format pixel.Format
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), pixel.Gray},
		{"gray16", image.NewGray16(image.Rect(0, 0, 1, 1)), pixel.Gray},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420), pixel.RGB},
		{"cmyk", image.NewCMYK(image.Rect(0, 0, 1, 1)), pixel.RGB},
		{"opaque", testGradient(2, 2), pixel.RGB},
		{"translucent", translucent, pixel.RGBA},
	}
	for _, test := range tests {
		if v := FormatFor(test.Image); v != test.Format {
			t.Errorf("%s: expected %s, got %s", test.Name, test.Format, v)
		}
	}
}

// TestRoundTrip encodes with every lossless codec and decodes the result.
func TestRoundTrip(t *testing.T) {
	src := testGradient(8, 4)
	for _, codec := range []string{PNG, BMP, TIFF} {
		t.Run(codec, func(it *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, codec); err != nil {
				it.Fatal(err)
			}

			img, name, err := DecodeBytes(buf.Bytes())
			if err != nil {
				it.Fatal(err)
			}
			if name != codec {
				it.Errorf("expected codec %s, got %s", codec, name)
			}
			if img.Format != pixel.RGB {
				it.Errorf("expected format RGB, got %s", img.Format)
			}
			if v := img.Bounds(); v != src.Bounds() {
				it.Fatalf("expected bounds %s, got %s", src.Bounds(), v)
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 8; x++ {
					want := src.NRGBAAt(x, y)
					i := img.PixOffset(x, y)
					if v := img.Pix[i : i+3]; v[0] != want.R || v[1] != want.G || v[2] != want.B {
						it.Fatalf("pixel (%d,%d) is %v, expected %+v", x, y, v, want)
					}
				}
			}
		})
	}
}

func TestEncodePacked(t *testing.T) {
	tests := []pixel.Format{pixel.BGR, pixel.Gray, pixel.GrayA, pixel.RGBA}
	for _, f := range tests {
		t.Run(f.String(), func(it *testing.T) {
			src := pixel.FromImage(testGradient(4, 4), f)

			var buf bytes.Buffer
			if err := Encode(&buf, src, PNG); err != nil {
				it.Fatal(err)
			}
			img, _, err := DecodeBytes(buf.Bytes())
			if err != nil {
				it.Fatal(err)
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					want := color.NRGBAModel.Convert(src.At(x, y))
					if v := color.NRGBAModel.Convert(img.At(x, y)); v != want {
						it.Fatalf("pixel (%d,%d) is %+v, expected %+v", x, y, v, want)
					}
				}
			}
		})
	}
}

func TestEncodeLossy(t *testing.T) {
	src := testGradient(16, 16)
	for _, codec := range []string{JPEG, GIF} {
		var buf bytes.Buffer
		if err := Encode(&buf, src, codec, WithQuality(90), WithColors(64)); err != nil {
			t.Fatalf("%s: %v", codec, err)
		}
		img, name, err := DecodeBytes(buf.Bytes())
		if err != nil {
			t.Fatalf("%s: %v", codec, err)
		}
		if name != codec {
			t.Errorf("expected codec %s, got %s", codec, name)
		}
		if v := img.Bounds(); v != src.Bounds() {
			t.Errorf("%s: expected bounds %s, got %s", codec, src.Bounds(), v)
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	for _, codec := range []string{WebP, "qoi", ""} {
		if err := Encode(new(bytes.Buffer), testGradient(1, 1), codec); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%q: expected ErrUnsupported, got %v", codec, err)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
	if _, _, err := DecodeBytes([]byte("not an image")); !errors.Is(err, image.ErrFormat) {
		t.Errorf("expected image.ErrFormat, got %v", err)
	}
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSaveOpen(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, "gray.png")
		src  = image.NewGray(image.Rect(0, 0, 3, 3))
	)
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 20)
	}
	if err := Save(path, src); err != nil {
		t.Fatal(err)
	}

	img, codec, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if codec != PNG {
		t.Errorf("expected codec png, got %s", codec)
	}
	if img.Format != pixel.Gray {
		t.Errorf("expected format Gray, got %s", img.Format)
	}
	if !bytes.Equal(img.Bytes(), src.Pix) {
		t.Errorf("expected %v, got %v", src.Pix, img.Bytes())
	}

	if err := Save(filepath.Join(dir, "out.raw"), src); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
