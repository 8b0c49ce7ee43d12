package pixel

import (
	"errors"
	"fmt"
)

// Conversion errors.
var (
	// ErrInvalidInputLength is returned when a buffer is too short to convert.
	ErrInvalidInputLength = errors.New("pixel: invalid input length")

	// ErrSameFormat is returned when source and destination formats are identical.
	ErrSameFormat = errors.New("pixel: source and destination formats are the same")
)

// minInputLength is the smallest buffer Convert accepts.
const minInputLength = 3

// MissingChannelError is returned when the destination format needs a channel
// that the source format does not carry and that cannot be synthesized.
// Only alpha is ever synthesized.
type MissingChannelError struct {
	From, To Format
	Channel  Channel
}

func (err *MissingChannelError) Error() string {
	return fmt.Sprintf("pixel: %s has no %s channel required by %s", err.From, err.Channel, err.To)
}

// opaque is the value written for a synthesized alpha channel.
const opaque = 0xff

// plan maps every destination channel to its offset within a source pixel.
// An offset of -1 means the channel is synthesized alpha.
func plan(from, to Format) ([]int, error) {
	dst := formats[to].channels
	offsets := make([]int, len(dst))
	for i, c := range dst {
		j := from.Index(c)
		if j < 0 && c != ChannelAlpha {
			return nil, &MissingChannelError{From: from, To: to, Channel: c}
		}
		offsets[i] = j
	}
	return offsets, nil
}

// prepare validates a conversion request and returns its channel plan.
func prepare(buf []byte, from, to Format) ([]int, error) {
	if from == to {
		return nil, ErrSameFormat
	}
	if !from.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, from)
	}
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, to)
	}
	if len(buf) < minInputLength {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidInputLength, len(buf), minInputLength)
	}
	return plan(from, to)
}

// convertPixels remaps pixels [lo, hi) from src into dst.
func convertPixels(dst, src []byte, offsets []int, srcChannels, dstChannels, lo, hi int) {
	for p := lo; p < hi; p++ {
		var (
			s = src[p*srcChannels : (p+1)*srcChannels]
			d = dst[p*dstChannels : (p+1)*dstChannels]
		)
		for i, j := range offsets {
			if j < 0 {
				d[i] = opaque
			} else {
				d[i] = s[j]
			}
		}
	}
}

// Convert remaps a packed pixel buffer from one channel layout to another and returns
// a newly allocated buffer. The input is never modified.
//
// Buffers shorter than three bytes are rejected with [ErrInvalidInputLength]. The pixel
// count is len(buf) divided by the source channel count; trailing bytes that do not
// form a whole pixel are ignored. Use [ConvertStrict] to reject them instead.
//
// Channels present in both formats are copied, a missing alpha channel is written as
// 255 (opaque), and any other missing channel yields a [*MissingChannelError].
func Convert(buf []byte, from, to Format) ([]byte, error) {
	offsets, err := prepare(buf, from, to)
	if err != nil {
		return nil, err
	}

	var (
		srcChannels = formats[from].count
		dstChannels = formats[to].count
		pixels      = len(buf) / srcChannels
		out         = make([]byte, pixels*dstChannels)
	)
	convertPixels(out, buf, offsets, srcChannels, dstChannels, 0, pixels)
	return out, nil
}

// ConvertStrict is like [Convert] but also rejects buffers whose length is not an exact
// multiple of the source channel count.
func ConvertStrict(buf []byte, from, to Format) ([]byte, error) {
	if from != to && from.IsValid() {
		if n := formats[from].count; len(buf)%n != 0 {
			return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d (%s)", ErrInvalidInputLength, len(buf), n, from)
		}
	}
	return Convert(buf, from, to)
}

// ConvertInto is like [Convert] but writes into dst instead of allocating. dst must hold
// at least the converted size; the number of bytes written is returned.
func ConvertInto(dst, src []byte, from, to Format) (int, error) {
	offsets, err := prepare(src, from, to)
	if err != nil {
		return 0, err
	}

	var (
		srcChannels = formats[from].count
		dstChannels = formats[to].count
		pixels      = len(src) / srcChannels
		size        = pixels * dstChannels
	)
	if len(dst) < size {
		return 0, fmt.Errorf("%w: destination holds %d bytes, need %d", ErrInvalidInputLength, len(dst), size)
	}
	convertPixels(dst, src, offsets, srcChannels, dstChannels, 0, pixels)
	return size, nil
}

// ConvertedSize returns the length of the buffer [Convert] produces for an input of n bytes.
func ConvertedSize(n int, from, to Format) int {
	if !from.IsValid() || !to.IsValid() {
		return 0
	}
	return n / formats[from].count * formats[to].count
}
