package shape

import (
	"github.com/go-drift/shapeview/pkg/graphics"
)

// drawBlurredShadow fills outline with a transparent body carrying a shadow
// layer, so only the blurred, offset silhouette shows. The canvas must be in
// software compositing mode for the layer to render.
func drawBlurredShadow(canvas graphics.Canvas, paint *graphics.Paint, layer *graphics.ShadowLayer, s BlurredShadow, outline *graphics.Path) {
	if !s.Enabled() {
		return
	}
	*layer = graphics.ShadowLayer{
		Color:      s.Color,
		Offset:     graphics.Offset{X: s.Dx, Y: s.Dy},
		BlurRadius: s.Radius,
	}
	paint.Reset()
	paint.AntiAlias = true
	paint.Color = graphics.ColorTransparent
	paint.Shadow = layer
	canvas.DrawPath(outline, *paint)
}
