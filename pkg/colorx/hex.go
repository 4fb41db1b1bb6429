package colorx

import (
	"fmt"
	"image/color"
	"strings"
	"unicode"
)

// ParseHex converts "#rrggbb" into an opaque color.
//
// Leading whitespace after "#" is skipped and digits are read up to the first
// non-hex character, the way a hex scanner would, so "#ff8800zz" parses as
// "#ff8800" and "#zz" parses as black. Only the low 24 bits of the value are
// used; values that do not fit in 64 bits overflow.
func ParseHex(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, ErrMissingPrefix
	}

	var value uint64
	for _, r := range strings.TrimLeftFunc(hex, unicode.IsSpace) {
		d, ok := hexDigit(r)
		if !ok {
			break
		}
		if value>>60 != 0 {
			return color.RGBA{}, fmt.Errorf("%w: %s", ErrOverflow, s)
		}
		value = value<<4 | uint64(d)
	}

	return color.RGBA{
		R: uint8(value >> 16 & 0xff),
		G: uint8(value >> 8 & 0xff),
		B: uint8(value & 0xff),
		A: 0xff,
	}, nil
}

// ToHex formats c as "#rrggbb". Alpha is ignored.
func ToHex(c color.Color) string {
	// RGBA returns alpha-premultiplied 16-bit channels.
	r, g, b, a := c.RGBA()
	if a != 0 && a != 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	rgb := (r>>8)<<16 | (g>>8)<<8 | b>>8
	return fmt.Sprintf("#%06x", rgb)
}

// Normalize parses s and formats it back, e.g. "#FFaa00" becomes "#ffaa00".
func Normalize(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return ToHex(c), nil
}

func hexDigit(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}
