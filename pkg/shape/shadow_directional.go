package shape

import (
	"github.com/go-drift/shapeview/pkg/graphics"
)

// drawDirectionalShadow paints the gradient strips and corners of s into
// the padding ring around content. Each strip is depth wide and sits right
// outside the content edge; its gradient is transparent at the outer side
// and s.Color against the content. A corner square is drawn only when both
// of its edges are flagged, with a radial gradient centered on the content
// corner.
func drawDirectionalShadow(canvas graphics.Canvas, paint *graphics.Paint, s DirectionalShadow, content graphics.Rect) {
	if !s.Enabled() {
		return
	}
	d := s.Depth
	l, t, r, b := content.Left, content.Top, content.Right, content.Bottom

	edges := []struct {
		edge     Edge
		rect     graphics.Rect
		from, to graphics.Offset
	}{
		{EdgeLeft, graphics.Rect{Left: l - d, Top: t, Right: l, Bottom: b}, graphics.Offset{X: l - d, Y: t}, graphics.Offset{X: l, Y: t}},
		{EdgeTop, graphics.Rect{Left: l, Top: t - d, Right: r, Bottom: t}, graphics.Offset{X: l, Y: t - d}, graphics.Offset{X: l, Y: t}},
		{EdgeRight, graphics.Rect{Left: r, Top: t, Right: r + d, Bottom: b}, graphics.Offset{X: r + d, Y: t}, graphics.Offset{X: r, Y: t}},
		{EdgeBottom, graphics.Rect{Left: l, Top: b, Right: r, Bottom: b + d}, graphics.Offset{X: l, Y: b + d}, graphics.Offset{X: l, Y: b}},
	}
	for _, e := range edges {
		if !s.Edges.Has(e.edge) {
			continue
		}
		paint.Reset()
		paint.AntiAlias = true
		paint.Gradient = graphics.NewLinearGradient(e.from, e.to, graphics.TwoStops(graphics.ColorTransparent, s.Color))
		canvas.DrawRect(e.rect, *paint)
	}

	corners := []struct {
		edges  Edge
		center graphics.Offset
		rect   graphics.Rect
	}{
		{EdgeLeft | EdgeTop, graphics.Offset{X: l, Y: t}, graphics.Rect{Left: l - d, Top: t - d, Right: l, Bottom: t}},
		{EdgeLeft | EdgeBottom, graphics.Offset{X: l, Y: b}, graphics.Rect{Left: l - d, Top: b, Right: l, Bottom: b + d}},
		{EdgeRight | EdgeTop, graphics.Offset{X: r, Y: t}, graphics.Rect{Left: r, Top: t - d, Right: r + d, Bottom: t}},
		{EdgeRight | EdgeBottom, graphics.Offset{X: r, Y: b}, graphics.Rect{Left: r, Top: b, Right: r + d, Bottom: b + d}},
	}
	for _, c := range corners {
		if !s.Edges.Has(c.edges) {
			continue
		}
		paint.Reset()
		paint.AntiAlias = true
		paint.Gradient = graphics.NewRadialGradient(c.center, d, graphics.TwoStops(s.Color, graphics.ColorTransparent))
		canvas.DrawRect(c.rect, *paint)
	}
}
