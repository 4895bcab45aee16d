package shape

import (
	"fmt"
	"strings"
)

// Kind selects the clip shape applied to the image.
type Kind int

const (
	// Normal draws the image unclipped.
	Normal Kind = iota
	// Circle clips the image to a circle.
	Circle
	// Round clips the image to a rectangle with per-corner radii.
	Round
)

// String returns the lowercase name used in style documents.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Circle:
		return "circle"
	case Round:
		return "round"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts a shape name or its numeric attribute value
// ("0", "1", "2"). Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "0":
		return Normal, nil
	case "circle", "1":
		return Circle, nil
	case "round", "2":
		return Round, nil
	}
	return Normal, fmt.Errorf("unknown shape %q", s)
}
