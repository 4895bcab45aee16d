package shape

import (
	"github.com/go-drift/shapeview/pkg/graphics"
)

// Named defaults applied when a style leaves a colour unset.
const (
	DefaultBorderColor = graphics.ColorWhite
	DefaultShadowColor = graphics.Color(0x44000000)
)

// CornerRadii holds one radius per corner of a Round shape. A radius <= 0
// leaves that corner square.
type CornerRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadii returns radii with the same value on every corner.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// RRect builds the rounded rectangle for rect. Non-positive radii become 0.
func (c CornerRadii) RRect(rect graphics.Rect) graphics.RRect {
	corner := func(r float64) graphics.Radius {
		if r <= 0 {
			return graphics.Radius{}
		}
		return graphics.CircularRadius(r)
	}
	return graphics.RRect{
		Rect:        rect,
		TopLeft:     corner(c.TopLeft),
		TopRight:    corner(c.TopRight),
		BottomRight: corner(c.BottomRight),
		BottomLeft:  corner(c.BottomLeft),
	}
}

// BorderSpec describes the stroked outline. A Width <= 0 disables it.
type BorderSpec struct {
	Width float64
	Color graphics.Color
}

// ShadowSpec is one of the two shadow models: DirectionalShadow or
// BlurredShadow. A nil ShadowSpec means no shadow.
type ShadowSpec interface {
	// Enabled reports whether the shadow draws anything.
	Enabled() bool
	// pad grows the content padding to make room for the shadow.
	pad(base graphics.EdgeInsets) graphics.EdgeInsets
	isShadowSpec()
}

// Edge is a bitmask of the sides a DirectionalShadow is drawn on.
type Edge uint8

const (
	EdgeLeft   Edge = 0x01
	EdgeRight  Edge = 0x02
	EdgeTop    Edge = 0x04
	EdgeBottom Edge = 0x08

	EdgeAll = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
)

// Has reports whether every edge in other is set.
func (e Edge) Has(other Edge) bool {
	return e&other == other
}

// DirectionalShadow fades the shadow in along each flagged edge with a
// linear gradient and fills the corner between two flagged edges with a
// radial gradient. It is drawn inside the padding it adds.
type DirectionalShadow struct {
	Depth float64
	Color graphics.Color
	Edges Edge
}

func (DirectionalShadow) isShadowSpec() {}

// Enabled reports whether the shadow has depth and at least one edge.
func (s DirectionalShadow) Enabled() bool {
	return s.Depth > 0 && s.Edges&EdgeAll != 0
}

func (s DirectionalShadow) pad(base graphics.EdgeInsets) graphics.EdgeInsets {
	if s.Depth <= 0 {
		return base
	}
	if s.Edges.Has(EdgeLeft) {
		base.Left += s.Depth
	}
	if s.Edges.Has(EdgeTop) {
		base.Top += s.Depth
	}
	if s.Edges.Has(EdgeRight) {
		base.Right += s.Depth
	}
	if s.Edges.Has(EdgeBottom) {
		base.Bottom += s.Depth
	}
	return base
}

// BlurredShadow draws a single blurred copy of the shape, offset by
// (Dx, Dy). Radius is the blur radius.
type BlurredShadow struct {
	Radius float64
	Color  graphics.Color
	Dx     float64
	Dy     float64
}

func (BlurredShadow) isShadowSpec() {}

// Enabled reports whether the blur radius is positive.
func (s BlurredShadow) Enabled() bool {
	return s.Radius > 0
}

func (s BlurredShadow) pad(base graphics.EdgeInsets) graphics.EdgeInsets {
	if s.Radius <= 0 {
		return base
	}
	base.Left += max(s.Radius-s.Dx, 0)
	base.Right += max(s.Radius+s.Dx, 0)
	base.Top += max(s.Radius-s.Dy, 0)
	base.Bottom += max(s.Radius+s.Dy, 0)
	return base
}

// Style is the resolved, immutable configuration of one shaped image.
type Style struct {
	Kind   Kind
	Radii  CornerRadii
	Border BorderSpec
	Shadow ShadowSpec

	// SupportZoomGesture is carried for hosts that implement pinch zoom.
	// Rendering ignores it.
	SupportZoomGesture bool
}

// DefaultStyle returns an unclipped style with no border and no shadow.
func DefaultStyle() Style {
	return Style{
		Kind:   Normal,
		Border: BorderSpec{Color: DefaultBorderColor},
	}
}

// ResolvePadding applies the one-time padding adjustment of the style's
// shadow to base. Without an enabled shadow, base is returned unchanged.
func ResolvePadding(style Style, base graphics.EdgeInsets) graphics.EdgeInsets {
	if style.Shadow == nil {
		return base
	}
	return style.Shadow.pad(base)
}

// extraInset is the additional inset of a Round clip: one unit per side
// under an enabled blurred shadow, none otherwise.
func (s Style) extraInset() float64 {
	if b, ok := s.Shadow.(BlurredShadow); ok && b.Enabled() && s.Kind == Round {
		return 1
	}
	return 0
}
