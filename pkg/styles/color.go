// Package styles parses the style map accepted by BeginRendering into a
// Theme consumable by renderers.
package styles

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha byte.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// ParseColor parses a style color token: "#RGB", "#RRGGBB", "#AARRGGBB"
// hex forms, or an SVG 1.1 color name ("tomato", "steelblue", ...).
func ParseColor(token string) (Color, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}
	if strings.HasPrefix(token, "#") {
		return parseHexColor(token[1:])
	}
	if named, ok := colornames.Map[strings.ToLower(token)]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), true
	}
	return 0, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		// #RGB expands each nibble: #f0a -> #ff00aa.
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		return parseHexColor(expanded.String())
	case 6:
		value, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		return Color(0xFF000000 | uint32(value)), true
	case 8:
		value, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		return Color(uint32(value)), true
	default:
		return 0, false
	}
}
