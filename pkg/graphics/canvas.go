package graphics

import (
	"fmt"
	"image"
)

// FilterQuality controls image sampling quality during scaling.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Bilinear
	FilterQualityMedium                      // Bilinear, higher quality kernel
	FilterQualityHigh                        // Bicubic (Catmull-Rom)
)

// ClipOp selects how a clip shape combines with the current clip.
type ClipOp int

const (
	// ClipOpIntersect keeps only the area inside both the current clip and the shape.
	ClipOpIntersect ClipOp = iota
	// ClipOpDifference removes the shape from the current clip.
	ClipOpDifference
)

// String returns a human-readable representation of the clip op.
func (o ClipOp) String() string {
	switch o {
	case ClipOpIntersect:
		return "intersect"
	case ClipOpDifference:
		return "difference"
	default:
		return fmt.Sprintf("ClipOp(%d)", int(o))
	}
}

// Canvas records or renders drawing commands.
//
// A Canvas is borrowed for the duration of one frame and must not be retained
// by painters after the frame returns.
type Canvas interface {
	// Save pushes the current clip state.
	Save()

	// Restore pops the most recent clip state. Unbalanced calls are ignored.
	Restore()

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipPath restricts future drawing to the interior of path.
	ClipPath(path *Path, op ClipOp, antialias bool)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImageRect draws an image from srcRect to dstRect with sampling quality.
	// srcRect selects the source region (zero rect = entire image).
	DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

// LayerType selects how a surface composites its drawing.
type LayerType int

const (
	// LayerTypeNone leaves compositing to the surface default.
	LayerTypeNone LayerType = iota
	// LayerTypeSoftware forces CPU compositing. Shadow layers on a Paint are
	// only rendered in this mode.
	LayerTypeSoftware
	// LayerTypeHardware composites on the GPU. Shadow layers are dropped.
	LayerTypeHardware
)

// String returns a human-readable representation of the layer type.
func (t LayerType) String() string {
	switch t {
	case LayerTypeNone:
		return "none"
	case LayerTypeSoftware:
		return "software"
	case LayerTypeHardware:
		return "hardware"
	default:
		return fmt.Sprintf("LayerType(%d)", int(t))
	}
}

// LayerTypeSetter is implemented by surfaces that can switch compositing
// mode. Surfaces that do not implement it are treated as software capable.
type LayerTypeSetter interface {
	// SetLayerType switches the compositing mode and returns the previous one.
	SetLayerType(t LayerType) LayerType
}

// EnsureSoftwareLayer switches canvas to software compositing when it
// supports mode switching, and returns a func restoring the previous mode.
func EnsureSoftwareLayer(canvas Canvas) (restore func()) {
	setter, ok := canvas.(LayerTypeSetter)
	if !ok {
		return func() {}
	}
	prev := setter.SetLayerType(LayerTypeSoftware)
	if prev == LayerTypeSoftware {
		return func() {}
	}
	return func() { setter.SetLayerType(prev) }
}
