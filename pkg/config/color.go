package config

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/shapeview/pkg/graphics"
)

// ParseColor reads "#RRGGBB", "#RGB" or "#AARRGGBB". The leading '#' is
// optional. Colours without an alpha component are opaque.
func ParseColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(0xFF)
	switch len(hex) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(hex[:2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("bad alpha in %q", s)
		}
		alpha = uint8(a)
		hex = hex[2:]
	default:
		return 0, fmt.Errorf("want #RGB, #RRGGBB or #AARRGGBB, got %q", s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, fmt.Errorf("bad colour %q", s)
	}
	r, g, b := c.RGB255()
	return graphics.RGBA8(r, g, b, alpha), nil
}

// FormatColor writes c as "#AARRGGBB", or "#RRGGBB" when opaque.
func FormatColor(c graphics.Color) string {
	n := c.NRGBA()
	hex := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}.Hex()
	if n.A == 0xFF {
		return hex
	}
	return fmt.Sprintf("#%02x%s", n.A, hex[1:])
}

func colorOr(s string, def graphics.Color) (graphics.Color, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return ParseColor(s)
}
