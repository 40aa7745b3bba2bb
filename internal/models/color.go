package models

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit sRGB color with straight alpha.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{A: 0xFF}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// ParseHex accepts RGB (3 digits), RRGGBB (6) and AARRGGBB (8) after
// removing every non-alphanumeric character. Any other length yields opaque
// black. Parsing stops at the first non-hex digit.
func ParseHex(s string) Color {
	hex := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)

	v := scanHex(hex)
	switch utf8.RuneCountInString(hex) {
	case 3:
		return Color{
			R: uint8((v >> 8) * 17),
			G: uint8((v >> 4 & 0xF) * 17),
			B: uint8((v & 0xF) * 17),
			A: 0xFF,
		}
	case 6:
		return Color{R: uint8(v >> 16), G: uint8(v >> 8 & 0xFF), B: uint8(v & 0xFF), A: 0xFF}
	case 8:
		return Color{R: uint8(v >> 16 & 0xFF), G: uint8(v >> 8 & 0xFF), B: uint8(v & 0xFF), A: uint8(v >> 24)}
	default:
		return Black
	}
}

func scanHex(s string) uint64 {
	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseUint(s[:end], 16, 64)
	if err != nil {
		return 0
	}
	return v
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex serialises as uppercase #RRGGBB. Alpha is dropped.
func (c Color) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// Luminance is the relative luminance of the color in [0, 1].
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Foreground picks black or white text for legibility on c.
func (c Color) Foreground() Color {
	if c.Luminance() < 0.5 {
		return White
	}
	return Black
}

// DefaultBackground is used when an event is created without a color.
const DefaultBackground = "#F2F2F7"

// Presets are the theme colors offered when picking a background.
var Presets = []string{
	"#F4A261", "#E76F51", "#2A9D8F", "#264653",
	"#E9C46A", "#8AB17D", "#6B5B95", "#FF6F61",
}
