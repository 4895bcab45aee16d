package graphics

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// traceGG replays p into the current path of ctx.
func traceGG(ctx *gg.Context, p *Path) {
	for _, cmd := range p.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			ctx.MoveTo(a[0], a[1])
		case PathOpLineTo:
			ctx.LineTo(a[0], a[1])
		case PathOpQuadTo:
			ctx.QuadraticTo(a[0], a[1], a[2], a[3])
		case PathOpCubicTo:
			ctx.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case PathOpClose:
			ctx.ClosePath()
		}
	}
}

// pixelBounds returns the smallest integer rectangle covering r.
func pixelBounds(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)),
		int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)),
		int(math.Ceil(r.Bottom)),
	)
}

// fillCoverage rasterizes the interior of p, translated by (dx, dy), into an
// alpha mask whose bounds are area.
func fillCoverage(p *Path, area image.Rectangle, dx, dy float64) *image.Alpha {
	if p == nil || p.IsEmpty() {
		return image.NewAlpha(area)
	}
	work := area.Intersect(pixelBounds(p.Bounds().Translate(dx, dy)).Inset(-1))
	return rasterize(p, area, work, dx, dy, func(ctx *gg.Context) *gg.Mask {
		if p.FillRule == FillRuleEvenOdd {
			// AsMask fills with the default rule.
			ctx.SetFillRule(gg.FillRuleEvenOdd)
			_ = ctx.Fill()
			return gg.NewMaskFromAlpha(ctx.Image())
		}
		return ctx.AsMask()
	})
}

// strokeCoverage rasterizes a stroke of the given width centered on p,
// translated by (dx, dy). Joins are round and caps are butt.
func strokeCoverage(p *Path, width float64, area image.Rectangle, dx, dy float64) *image.Alpha {
	if p == nil || p.IsEmpty() {
		return image.NewAlpha(area)
	}
	if width <= 0 {
		// Hairline.
		width = 1
	}
	grow := int(math.Ceil(width/2)) + 1
	work := area.Intersect(pixelBounds(p.Bounds().Translate(dx, dy)).Inset(-grow))
	return rasterize(p, area, work, dx, dy, func(ctx *gg.Context) *gg.Mask {
		ctx.SetLineWidth(width)
		ctx.SetLineJoin(gg.LineJoinRound)
		ctx.SetLineCap(gg.LineCapButt)
		_ = ctx.Stroke()
		return gg.NewMaskFromAlpha(ctx.Image())
	})
}

// rasterize traces p onto a scratch gg context covering work, lets paint
// produce the coverage mask, and copies it into an alpha image of area.
func rasterize(p *Path, area, work image.Rectangle, dx, dy float64, paint func(*gg.Context) *gg.Mask) *image.Alpha {
	out := image.NewAlpha(area)
	if work.Empty() {
		return out
	}
	ctx := gg.NewContext(work.Dx(), work.Dy())
	defer ctx.Close()
	ctx.Translate(dx-float64(work.Min.X), dy-float64(work.Min.Y))
	ctx.SetRGBA(1, 1, 1, 1)
	traceGG(ctx, p)

	mask := paint(ctx)
	w := work.Dx()
	data := mask.Data()
	for y := 0; y < work.Dy(); y++ {
		row := out.PixOffset(work.Min.X, work.Min.Y+y)
		copy(out.Pix[row:row+w], data[y*w:(y+1)*w])
	}
	return out
}
