package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Format identifies a packed-byte pixel layout: one byte per channel, channels in a
// fixed order.
type Format uint8

const (
	// RGB channel permutations, with and without alpha.
	RGBA Format = iota
	RGB
	RBGA
	RBG
	GRBA
	GRB
	GBRA
	GBR
	BRGA
	BRG
	BGRA
	BGR

	// Grayscale.
	Gray
	GrayA

	// CMYK channel permutations.
	CMYK
	CMKY
	CKYM
	CKMY
	CYMK
	CYKM
	KCMY
	KCYM
	KYCM
	KYMC
	KMCY
	KMYC
	MCYK
	MCKY
	MYCK
	MYKC
	MKCY
	MKYC
	YCMK
	YCKM
	YKCM
	YKMC
	YMCK
	YMKC

	// CMYK channel permutations with trailing alpha.
	CMYKA
	CMKYA
	CKYMA
	CKMYA
	CYMKA
	CYKMA
	KCMYA
	KCYMA
	KYCMA
	KYMCA
	KMCYA
	KMYCA
	MCYKA
	MCKYA
	MYCKA
	MYKCA
	MKCYA
	MKYCA
	YCMKA
	YCKMA
	YKCMA
	YKMCA
	YMCKA
	YMKCA

	// HSL channel permutations.
	HSL
	HLS
	SHL
	SLH
	LHS
	LSH

	// HSL channel permutations with trailing alpha.
	HSLA
	HLSA
	SHLA
	SLHA
	LHSA
	LSHA
	formatCount
)

// Family groups formats that share a channel set, ignoring alpha and order.
type Family uint8

// Format families.
const (
	FamilyRGB Family = iota
	FamilyGray
	FamilyCMYK
	FamilyHSL

	familyUnknown Family = 0xff
)

func (f Family) String() string {
	switch f {
	case FamilyRGB:
		return "RGB"
	case FamilyGray:
		return "Gray"
	case FamilyCMYK:
		return "CMYK"
	case FamilyHSL:
		return "HSL"
	default:
		return "Unknown"
	}
}

// ErrUnknownFormat is returned for format values or names outside the catalog.
var ErrUnknownFormat = errors.New("pixel: unknown format")

type formatInfo struct {
	name     string
	family   Family
	count    int
	channels []Channel
}

// formats is the catalog. The channel count is stored per entry and must equal
// len(channels).
var formats = [formatCount]formatInfo{
	RGBA: {name: "RGBA", family: FamilyRGB, count: 4, channels: []Channel{chR, chG, chB, chA}},
	RGB:  {name: "RGB", family: FamilyRGB, count: 3, channels: []Channel{chR, chG, chB}},
	RBGA: {name: "RBGA", family: FamilyRGB, count: 4, channels: []Channel{chR, chB, chG, chA}},
	RBG:  {name: "RBG", family: FamilyRGB, count: 3, channels: []Channel{chR, chB, chG}},
	GRBA: {name: "GRBA", family: FamilyRGB, count: 4, channels: []Channel{chG, chR, chB, chA}},
	GRB:  {name: "GRB", family: FamilyRGB, count: 3, channels: []Channel{chG, chR, chB}},
	GBRA: {name: "GBRA", family: FamilyRGB, count: 4, channels: []Channel{chG, chB, chR, chA}},
	GBR:  {name: "GBR", family: FamilyRGB, count: 3, channels: []Channel{chG, chB, chR}},
	BRGA: {name: "BRGA", family: FamilyRGB, count: 4, channels: []Channel{chB, chR, chG, chA}},
	BRG:  {name: "BRG", family: FamilyRGB, count: 3, channels: []Channel{chB, chR, chG}},
	BGRA: {name: "BGRA", family: FamilyRGB, count: 4, channels: []Channel{chB, chG, chR, chA}},
	BGR:  {name: "BGR", family: FamilyRGB, count: 3, channels: []Channel{chB, chG, chR}},

	Gray:  {name: "Gray", family: FamilyGray, count: 1, channels: []Channel{chGray}},
	GrayA: {name: "GrayA", family: FamilyGray, count: 2, channels: []Channel{chGray, chA}},

	CMYK: {name: "CMYK", family: FamilyCMYK, count: 4, channels: []Channel{chC, chM, chY, chK}},
	CMKY: {name: "CMKY", family: FamilyCMYK, count: 4, channels: []Channel{chC, chM, chK, chY}},
	CKYM: {name: "CKYM", family: FamilyCMYK, count: 4, channels: []Channel{chC, chK, chY, chM}},
	CKMY: {name: "CKMY", family: FamilyCMYK, count: 4, channels: []Channel{chC, chK, chM, chY}},
	CYMK: {name: "CYMK", family: FamilyCMYK, count: 4, channels: []Channel{chC, chY, chM, chK}},
	CYKM: {name: "CYKM", family: FamilyCMYK, count: 4, channels: []Channel{chC, chY, chK, chM}},
	KCMY: {name: "KCMY", family: FamilyCMYK, count: 4, channels: []Channel{chK, chC, chM, chY}},
	KCYM: {name: "KCYM", family: FamilyCMYK, count: 4, channels: []Channel{chK, chC, chY, chM}},
	KYCM: {name: "KYCM", family: FamilyCMYK, count: 4, channels: []Channel{chK, chY, chC, chM}},
	KYMC: {name: "KYMC", family: FamilyCMYK, count: 4, channels: []Channel{chK, chY, chM, chC}},
	KMCY: {name: "KMCY", family: FamilyCMYK, count: 4, channels: []Channel{chK, chM, chC, chY}},
	KMYC: {name: "KMYC", family: FamilyCMYK, count: 4, channels: []Channel{chK, chM, chY, chC}},
	MCYK: {name: "MCYK", family: FamilyCMYK, count: 4, channels: []Channel{chM, chC, chY, chK}},
	MCKY: {name: "MCKY", family: FamilyCMYK, count: 4, channels: []Channel{chM, chC, chK, chY}},
	MYCK: {name: "MYCK", family: FamilyCMYK, count: 4, channels: []Channel{chM, chY, chC, chK}},
	MYKC: {name: "MYKC", family: FamilyCMYK, count: 4, channels: []Channel{chM, chY, chK, chC}},
	MKCY: {name: "MKCY", family: FamilyCMYK, count: 4, channels: []Channel{chM, chK, chC, chY}},
	MKYC: {name: "MKYC", family: FamilyCMYK, count: 4, channels: []Channel{chM, chK, chY, chC}},
	YCMK: {name: "YCMK", family: FamilyCMYK, count: 4, channels: []Channel{chY, chC, chM, chK}},
	YCKM: {name: "YCKM", family: FamilyCMYK, count: 4, channels: []Channel{chY, chC, chK, chM}},
	YKCM: {name: "YKCM", family: FamilyCMYK, count: 4, channels: []Channel{chY, chK, chC, chM}},
	YKMC: {name: "YKMC", family: FamilyCMYK, count: 4, channels: []Channel{chY, chK, chM, chC}},
	YMCK: {name: "YMCK", family: FamilyCMYK, count: 4, channels: []Channel{chY, chM, chC, chK}},
	YMKC: {name: "YMKC", family: FamilyCMYK, count: 4, channels: []Channel{chY, chM, chK, chC}},

	CMYKA: {name: "CMYKA", family: FamilyCMYK, count: 5, channels: []Channel{chC, chM, chY, chK, chA}},
	CMKYA: {name: "CMKYA", family: FamilyCMYK, count: 5, channels: []Channel{chC, chM, chK, chY, chA}},
	CKYMA: {name: "CKYMA", family: FamilyCMYK, count: 5, channels: []Channel{chC, chK, chY, chM, chA}},
	CKMYA: {name: "CKMYA", family: FamilyCMYK, count: 5, channels: []Channel{chC, chK, chM, chY, chA}},
	CYMKA: {name: "CYMKA", family: FamilyCMYK, count: 5, channels: []Channel{chC, chY, chM, chK, chA}},
	CYKMA: {name: "CYKMA", family: FamilyCMYK, count: 5, channels: []Channel{chC, chY, chK, chM, chA}},
	KCMYA: {name: "KCMYA", family: FamilyCMYK, count: 5, channels: []Channel{chK, chC, chM, chY, chA}},
	KCYMA: {name: "KCYMA", family: FamilyCMYK, count: 5, channels: []Channel{chK, chC, chY, chM, chA}},
	KYCMA: {name: "KYCMA", family: FamilyCMYK, count: 5, channels: []Channel{chK, chY, chC, chM, chA}},
	KYMCA: {name: "KYMCA", family: FamilyCMYK, count: 5, channels: []Channel{chK, chY, chM, chC, chA}},
	KMCYA: {name: "KMCYA", family: FamilyCMYK, count: 5, channels: []Channel{chK, chM, chC, chY, chA}},
	KMYCA: {name: "KMYCA", family: FamilyCMYK, count: 5, channels: []Channel{chK, chM, chY, chC, chA}},
	MCYKA: {name: "MCYKA", family: FamilyCMYK, count: 5, channels: []Channel{chM, chC, chY, chK, chA}},
	MCKYA: {name: "MCKYA", family: FamilyCMYK, count: 5, channels: []Channel{chM, chC, chK, chY, chA}},
	MYCKA: {name: "MYCKA", family: FamilyCMYK, count: 5, channels: []Channel{chM, chY, chC, chK, chA}},
	MYKCA: {name: "MYKCA", family: FamilyCMYK, count: 5, channels: []Channel{chM, chY, chK, chC, chA}},
	MKCYA: {name: "MKCYA", family: FamilyCMYK, count: 5, channels: []Channel{chM, chK, chC, chY, chA}},
	MKYCA: {name: "MKYCA", family: FamilyCMYK, count: 5, channels: []Channel{chM, chK, chY, chC, chA}},
	YCMKA: {name: "YCMKA", family: FamilyCMYK, count: 5, channels: []Channel{chY, chC, chM, chK, chA}},
	YCKMA: {name: "YCKMA", family: FamilyCMYK, count: 5, channels: []Channel{chY, chC, chK, chM, chA}},
	YKCMA: {name: "YKCMA", family: FamilyCMYK, count: 5, channels: []Channel{chY, chK, chC, chM, chA}},
	YKMCA: {name: "YKMCA", family: FamilyCMYK, count: 5, channels: []Channel{chY, chK, chM, chC, chA}},
	YMCKA: {name: "YMCKA", family: FamilyCMYK, count: 5, channels: []Channel{chY, chM, chC, chK, chA}},
	YMKCA: {name: "YMKCA", family: FamilyCMYK, count: 5, channels: []Channel{chY, chM, chK, chC, chA}},

	HSL: {name: "HSL", family: FamilyHSL, count: 3, channels: []Channel{chH, chS, chL}},
	HLS: {name: "HLS", family: FamilyHSL, count: 3, channels: []Channel{chH, chL, chS}},
	SHL: {name: "SHL", family: FamilyHSL, count: 3, channels: []Channel{chS, chH, chL}},
	SLH: {name: "SLH", family: FamilyHSL, count: 3, channels: []Channel{chS, chL, chH}},
	LHS: {name: "LHS", family: FamilyHSL, count: 3, channels: []Channel{chL, chH, chS}},
	LSH: {name: "LSH", family: FamilyHSL, count: 3, channels: []Channel{chL, chS, chH}},

	HSLA: {name: "HSLA", family: FamilyHSL, count: 4, channels: []Channel{chH, chS, chL, chA}},
	HLSA: {name: "HLSA", family: FamilyHSL, count: 4, channels: []Channel{chH, chL, chS, chA}},
	SHLA: {name: "SHLA", family: FamilyHSL, count: 4, channels: []Channel{chS, chH, chL, chA}},
	SLHA: {name: "SLHA", family: FamilyHSL, count: 4, channels: []Channel{chS, chL, chH, chA}},
	LHSA: {name: "LHSA", family: FamilyHSL, count: 4, channels: []Channel{chL, chH, chS, chA}},
	LSHA: {name: "LSHA", family: FamilyHSL, count: 4, channels: []Channel{chL, chS, chH, chA}},
}

// formatsByName maps upper-cased names to formats.
var formatsByName = make(map[string]Format, formatCount)

func init() {
	for f := Format(0); f < formatCount; f++ {
		formatsByName[strings.ToUpper(formats[f].name)] = f
		models[f] = color.ModelFunc(f.convertColor)
	}
}

// IsValid reports whether f is a catalog format.
func (f Format) IsValid() bool {
	return f < formatCount
}

func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formats[f].name
}

// Channels returns the per-pixel channel order. The returned slice is a copy.
func (f Format) Channels() []Channel {
	if !f.IsValid() {
		return nil
	}
	out := make([]Channel, len(formats[f].channels))
	copy(out, formats[f].channels)
	return out
}

// ChannelCount is the number of bytes per pixel, or 0 for an invalid format.
func (f Format) ChannelCount() int {
	if !f.IsValid() {
		return 0
	}
	return formats[f].count
}

// Index returns the position of c within a pixel of format f, or -1.
func (f Format) Index(c Channel) int {
	if !f.IsValid() {
		return -1
	}
	for i, ch := range formats[f].channels {
		if ch == c {
			return i
		}
	}
	return -1
}

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Index(ChannelAlpha) >= 0
}

// Family returns the channel family of the format.
func (f Format) Family() Family {
	if !f.IsValid() {
		return familyUnknown
	}
	return formats[f].family
}

// Formats returns every catalog format in declaration order.
func Formats() []Format {
	out := make([]Format, formatCount)
	for i := range out {
		out[i] = Format(i)
	}
	return out
}

// ParseFormat looks up a format by name, ignoring case.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatsByName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Set implements [flag.Value] and [github.com/spf13/pflag.Value].
func (f *Format) Set(name string) error {
	v, err := ParseFormat(name)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements [github.com/spf13/pflag.Value].
func (f *Format) Type() string {
	return "format"
}
