package testing

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/go-drift/shapeview/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops       []DisplayOp
	size      graphics.Size
	layerType graphics.LayerType
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) ClipPath(path *graphics.Path, op graphics.ClipOp, antialias bool) {
	c.ops = append(c.ops, DisplayOp{
		Op: "clipPath",
		Params: sortedMap(
			"path", serializePath(path),
			"op", op.String(),
			"antialias", antialias,
		),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rrect.Rect)
	params["radius"] = serializeRadius(rrect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRRect", Params: params})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	params := serializePaint(paint)
	params["cx"] = round2(center.X)
	params["cy"] = round2(center.Y)
	params["radius"] = round2(radius)
	c.ops = append(c.ops, DisplayOp{Op: "drawCircle", Params: params})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint)
	params["path"] = serializePath(path)
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) DrawImageRect(img image.Image, _, dstRect graphics.Rect, quality graphics.FilterQuality) {
	params := sortedMap("dst", serializeRect(dstRect), "quality", int(quality))
	if img != nil {
		b := img.Bounds()
		params["image"] = sortedMap("width", b.Dx(), "height", b.Dy())
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawImageRect", Params: params})
}

func (c *serializingCanvas) SetLayerType(t graphics.LayerType) graphics.LayerType {
	prev := c.layerType
	c.layerType = t
	c.ops = append(c.ops, DisplayOp{
		Op:     "setLayerType",
		Params: sortedMap("type", t.String()),
	})
	return prev
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint) map[string]any {
	m := sortedMap("color", serializeColor(p.Color), "style", p.Style.String())
	if p.Style != graphics.PaintStyleFill {
		m["strokeWidth"] = round2(p.StrokeWidth)
	}
	if p.Gradient != nil {
		m["gradient"] = serializeGradient(p.Gradient)
	}
	if p.Shadow != nil {
		m["shadow"] = sortedMap(
			"color", serializeColor(p.Shadow.Color),
			"dx", round2(p.Shadow.Offset.X),
			"dy", round2(p.Shadow.Offset.Y),
			"blur", round2(p.Shadow.BlurRadius),
		)
	}
	return m
}

func serializeGradient(g *graphics.Gradient) map[string]any {
	stops := make([]any, 0, len(g.Stops()))
	for _, s := range g.Stops() {
		stops = append(stops, sortedMap("pos", round2(s.Position), "color", serializeColor(s.Color)))
	}
	m := sortedMap("type", g.Type.String(), "stops", stops)
	switch g.Type {
	case graphics.GradientTypeLinear:
		m["start"] = serializeOffset(g.Linear.Start)
		m["end"] = serializeOffset(g.Linear.End)
	case graphics.GradientTypeRadial:
		m["center"] = serializeOffset(g.Radial.Center)
		m["radius"] = round2(g.Radial.Radius)
	}
	return m
}

func serializePath(p *graphics.Path) map[string]any {
	if p == nil || p.IsEmpty() {
		return sortedMap("commands", 0)
	}
	return sortedMap(
		"bounds", serializeRect(p.Bounds()),
		"commands", len(p.Commands),
		"fillRule", p.FillRule.String(),
	)
}

func serializeOffset(o graphics.Offset) map[string]any {
	return sortedMap("x", round2(o.X), "y", round2(o.Y))
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// JSON marshaling emits the keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
