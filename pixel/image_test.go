package pixel

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestImage(t *testing.T) {
	for _, f := range []Format{RGBA, BGR, Gray, GrayA, CMYK, KCMYA, HSL, HLSA} {
		t.Run(f.String(), func(it *testing.T) {
			testImage(it, func(size image.Point) *Image {
				return NewImage(size.X, size.Y, f)
			}, f.Model())
		})
	}
}

func testImage(t *testing.T, f func(image.Point) *Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
		image.Pt(256, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := model.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				before := append([]byte(nil), i.Pix...)
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						if x >= 0 && x < test.X && y >= 0 && y < test.Y {
							continue
						}
						i.Set(x, y, testRandomColor())
						if v := i.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							return
						}
					}
				}
				if !bytes.Equal(before, i.Pix) {
					itt.Fatal("out of bounds Set modified the image")
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.At(x, y); v != (Color{Format: i.Format}) {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected all zero bytes", x, y, v)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}

func TestFromBytes(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	i, err := FromBytes(pix, 2, 2, RGB)
	if err != nil {
		t.Fatal(err)
	}
	if v := i.Bounds().Size(); v != image.Pt(2, 2) {
		t.Errorf("expected size 2x2, got %s", v)
	}
	if i.Stride != 6 || len(i.Pix) != 12 {
		t.Errorf("expected stride 6 and 12 bytes, got %d and %d", i.Stride, len(i.Pix))
	}
	if v, _ := i.At(1, 1).(Color).Channel(ChannelBlue); v != 12 {
		t.Errorf("expected blue 12 at (1,1), got %d", v)
	}

	// FromBytes shares memory with its input.
	pix[0] = 99
	if v, _ := i.At(0, 0).(Color).Channel(ChannelRed); v != 99 {
		t.Errorf("expected red 99 at (0,0), got %d", v)
	}

	if _, err = FromBytes(pix, 3, 2, RGBA); !errors.Is(err, ErrInvalidInputLength) {
		t.Errorf("expected ErrInvalidInputLength, got %v", err)
	}
	if _, err = FromBytes(pix, 1, 1, formatCount); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err = FromBytes(pix, -1, 1, RGB); err == nil {
		t.Error("expected an error for negative width")
	}
}

func TestImageConvert(t *testing.T) {
	i := NewImage(1, 1, Gray)
	i.Pix[0] = 42

	v, err := i.Convert(GrayA)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{42, 0xff}; !bytes.Equal(v.Pix, want) {
		t.Errorf("expected %v, got %v", want, v.Pix)
	}
	if v.Format != GrayA {
		t.Errorf("expected format GrayA, got %s", v.Format)
	}

	if _, err = i.Convert(Gray); !errors.Is(err, ErrSameFormat) {
		t.Errorf("expected ErrSameFormat, got %v", err)
	}
	var missing *MissingChannelError
	if _, err = i.Convert(RGB); !errors.As(err, &missing) {
		t.Errorf("expected MissingChannelError, got %v", err)
	}
	if _, err = i.Convert(formatCount); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat for an invalid target, got %v", err)
	}
	bad := &Image{Buffer: i.Buffer, Format: formatCount}
	if _, err = bad.Convert(RGB); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat for an invalid image format, got %v", err)
	}

	src := NewImage(3, 2, RGBA)
	rand.Read(src.Pix)
	dst, err := src.Convert(BGR)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Convert(src.Pix, RGBA, BGR)
	if !bytes.Equal(dst.Bytes(), want) {
		t.Errorf("expected %v, got %v", want, dst.Bytes())
	}
}

func TestImageSubBytes(t *testing.T) {
	i := NewImage(4, 2, RGB)
	for j := range i.Pix {
		i.Pix[j] = byte(j)
	}
	// A view of the right half has padded rows.
	sub := &Image{
		Buffer: Buffer{
			Rect:   image.Rect(2, 0, 4, 2),
			Pix:    i.Pix[6:],
			Stride: i.Stride,
		},
		Format: RGB,
	}
	want := []byte{6, 7, 8, 9, 10, 11, 18, 19, 20, 21, 22, 23}
	if v := sub.Bytes(); !bytes.Equal(v, want) {
		t.Errorf("expected %v, got %v", want, v)
	}
	if v := sub.At(3, 1); v != (Color{Format: RGB, Pix: [maxChannels]byte{21, 22, 23}}) {
		t.Errorf("unexpected pixel at (3,1): %#+v", v)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 100), G: uint8(y * 200), B: 50, A: 0xff})
		}
	}

	tests := []Format{BGRA, RGB, Gray, CMYK, YMCKA, HSL, SLHA}
	for _, f := range tests {
		t.Run(f.String(), func(it *testing.T) {
			dst := FromImage(src, f)
			if dst.Format != f {
				it.Errorf("expected format %s, got %s", f, dst.Format)
			}
			if v := dst.Bounds(); v != src.Bounds() {
				it.Errorf("expected bounds %s, got %s", src.Bounds(), v)
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					if v, want := dst.At(x, y), f.Model().Convert(src.At(x, y)); v != want {
						it.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, v, want)
					}
				}
			}
		})
	}

	t.Run("rgb exact", func(it *testing.T) {
		dst := FromImage(src, BGR)
		want := []byte{50, 0, 0, 50, 0, 100, 50, 0, 200, 50, 200, 0, 50, 200, 100, 50, 200, 200}
		if !bytes.Equal(dst.Pix, want) {
			it.Errorf("expected %v, got %v", want, dst.Pix)
		}
	})
}
