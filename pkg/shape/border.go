package shape

import (
	"github.com/go-drift/shapeview/pkg/graphics"
)

// drawBorder strokes the outline of the shape. Normal strokes the padded
// content rectangle; Circle and Round re-stroke clip, the path already used
// for clipping, so the border lies exactly on the clip boundary.
func drawBorder(canvas graphics.Canvas, paint *graphics.Paint, spec BorderSpec, kind Kind, clip *graphics.Path, content graphics.Rect) {
	if spec.Width <= 0 {
		return
	}
	paint.Reset()
	paint.AntiAlias = true
	paint.Color = spec.Color
	paint.StrokeWidth = spec.Width
	paint.Style = graphics.PaintStyleStroke
	if kind == Normal {
		canvas.DrawRect(content, *paint)
		return
	}
	canvas.DrawPath(clip, *paint)
}
