package shape

import (
	"github.com/go-drift/shapeview/pkg/graphics"
)

// Clip writes the clip outline of kind into path, replacing its contents,
// and reports whether a clip applies. Normal never clips and leaves path
// empty.
//
// Circle takes its radius from the padded content box but its center from
// the unpadded bounds, so asymmetric padding moves the circle off the
// content center. Round insets bounds by padding plus extraInset on every
// side. Both wind counter-clockwise. A shape with no area produces an empty
// path, which clips everything.
func Clip(path *graphics.Path, kind Kind, bounds graphics.Rect, padding graphics.EdgeInsets, radii CornerRadii, extraInset float64) bool {
	path.Reset()
	switch kind {
	case Circle:
		center, radius := CircleGeometry(bounds, padding)
		path.AddCircle(center.X, center.Y, radius, graphics.DirectionCCW)
		return true
	case Round:
		rect := bounds.Deflate(padding).Inset(extraInset)
		if !rect.IsEmpty() {
			path.AddRRect(radii.RRect(rect), graphics.DirectionCCW)
		}
		return true
	default:
		return false
	}
}

// CircleGeometry returns the center and radius of a Circle clip. The radius
// is half the smaller padded content dimension, clamped at 0.
func CircleGeometry(bounds graphics.Rect, padding graphics.EdgeInsets) (graphics.Offset, float64) {
	w := bounds.Width() - padding.Horizontal()
	h := bounds.Height() - padding.Vertical()
	return bounds.Center(), max(min(w, h)/2, 0)
}
