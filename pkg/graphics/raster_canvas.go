package graphics

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// RasterCanvas implements Canvas on the CPU into an *image.RGBA.
//
// It is a software surface: shadow layers are rendered unless the layer type
// is switched to LayerTypeHardware. Output is deterministic for identical
// drawing sequences.
type RasterCanvas struct {
	dst       *image.RGBA
	clip      *image.Alpha // nil means unclipped
	stack     []*image.Alpha
	layerType LayerType
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		dst:       image.NewRGBA(image.Rect(0, 0, width, height)),
		layerType: LayerTypeSoftware,
	}
}

// Image returns the backing image. It is live: later drawing changes it.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

// Clear fills the whole canvas with color, ignoring the clip.
func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

// ClipDepth reports how many saved states are on the stack.
func (c *RasterCanvas) ClipDepth() int {
	return len(c.stack)
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.clip)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.clip = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	p := NewPath()
	p.AddRect(rect, DirectionCW)
	c.ClipPath(p, ClipOpIntersect, false)
}

func (c *RasterCanvas) ClipPath(path *Path, op ClipOp, antialias bool) {
	bounds := c.dst.Bounds()
	cov := fillCoverage(path, bounds, 0, 0)
	next := image.NewAlpha(bounds)
	for i := range next.Pix {
		v := cov.Pix[i]
		if !antialias {
			if v >= 128 {
				v = 255
			} else {
				v = 0
			}
		}
		if op == ClipOpDifference {
			v = 255 - v
		}
		prev := uint8(255)
		if c.clip != nil {
			prev = c.clip.Pix[i]
		}
		next.Pix[i] = uint8((uint16(v)*uint16(prev) + 127) / 255)
	}
	c.clip = next
	Logger().Debug("raster clip", "op", op.String(), "depth", len(c.stack))
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	p := NewPath()
	p.AddRect(rect, DirectionCW)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	p := NewPath()
	p.AddRRect(rrect, DirectionCW)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	p := NewPath()
	p.AddCircle(center.X, center.Y, radius, DirectionCW)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	if paint.Shadow != nil {
		c.drawShadowLayer(path, paint)
	}
	bounds := c.dst.Bounds()
	shade := shaderFor(paint)
	if paint.Style == PaintStyleFill || paint.Style == PaintStyleFillAndStroke {
		c.composite(fillCoverage(path, bounds, 0, 0), shade)
	}
	if paint.Style == PaintStyleStroke || paint.Style == PaintStyleFillAndStroke {
		c.composite(strokeCoverage(path, paint.StrokeWidth, bounds, 0, 0), shade)
	}
}

func (c *RasterCanvas) drawShadowLayer(path *Path, paint Paint) {
	s := *paint.Shadow
	if s.Color.A8() == 0 {
		return
	}
	if c.layerType == LayerTypeHardware {
		Logger().Warn("shadow layer dropped on hardware layer")
		return
	}
	grow := int(math.Ceil(s.Extent())) + 1
	area := pixelBounds(path.Bounds().Translate(s.Offset.X, s.Offset.Y)).Inset(-grow)
	var cov *image.Alpha
	if paint.Style == PaintStyleStroke {
		cov = strokeCoverage(path, paint.StrokeWidth, area, s.Offset.X, s.Offset.Y)
	} else {
		cov = fillCoverage(path, area, s.Offset.X, s.Offset.Y)
	}
	r, g, b, a := s.Color.RGBAF()
	c.composite(blurAlpha(cov, s.Sigma()), func(float64, float64) (float64, float64, float64, float64) {
		return r, g, b, a
	})
}

func (c *RasterCanvas) DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality) {
	if img == nil {
		return
	}
	sr := img.Bounds()
	if !srcRect.IsEmpty() {
		sr = pixelBounds(srcRect).Intersect(sr)
	}
	dr := image.Rect(
		int(math.Round(dstRect.Left)),
		int(math.Round(dstRect.Top)),
		int(math.Round(dstRect.Right)),
		int(math.Round(dstRect.Bottom)),
	)
	if sr.Empty() || dr.Empty() {
		return
	}
	scaled := image.NewRGBA(dr)
	interpolator(quality).Scale(scaled, dr, img, sr, xdraw.Src, nil)

	area := dr.Intersect(c.dst.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			k := c.clipAt(x, y)
			if k == 0 {
				continue
			}
			si := scaled.PixOffset(x, y)
			di := c.dst.PixOffset(x, y)
			sa := float64(scaled.Pix[si+3]) / maxByte * k
			inv := 1 - sa
			for ch := 0; ch < 4; ch++ {
				v := float64(scaled.Pix[si+ch])*k + float64(c.dst.Pix[di+ch])*inv
				c.dst.Pix[di+ch] = clampByte(v)
			}
		}
	}
}

// SetLayerType switches the compositing mode and returns the previous one.
func (c *RasterCanvas) SetLayerType(t LayerType) LayerType {
	prev := c.layerType
	c.layerType = t
	return prev
}

func (c *RasterCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// clipAt returns the clip coverage at a pixel in [0, 1].
func (c *RasterCanvas) clipAt(x, y int) float64 {
	if c.clip == nil {
		return 1
	}
	return float64(c.clip.Pix[c.clip.PixOffset(x, y)]) / maxByte
}

type shader func(x, y float64) (r, g, b, a float64)

// composite blends shade through cov and the current clip with source-over.
func (c *RasterCanvas) composite(cov *image.Alpha, shade shader) {
	area := cov.Bounds().Intersect(c.dst.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			m := cov.Pix[cov.PixOffset(x, y)]
			if m == 0 {
				continue
			}
			k := c.clipAt(x, y)
			if k == 0 {
				continue
			}
			r, g, b, a := shade(float64(x)+0.5, float64(y)+0.5)
			a *= float64(m) / maxByte * k
			if a <= 0 {
				continue
			}
			i := c.dst.PixOffset(x, y)
			inv := 1 - a
			c.dst.Pix[i+0] = clampByte(r*a*maxByte + float64(c.dst.Pix[i+0])*inv)
			c.dst.Pix[i+1] = clampByte(g*a*maxByte + float64(c.dst.Pix[i+1])*inv)
			c.dst.Pix[i+2] = clampByte(b*a*maxByte + float64(c.dst.Pix[i+2])*inv)
			c.dst.Pix[i+3] = clampByte(a*maxByte + float64(c.dst.Pix[i+3])*inv)
		}
	}
}

// shaderFor returns the per-pixel color source of a paint. Gradients are
// evaluated with gg's gradient brushes.
func shaderFor(paint Paint) shader {
	if g := paint.Gradient; g.IsValid() {
		var brush gg.Brush
		switch g.Type {
		case GradientTypeLinear:
			lg := gg.NewLinearGradientBrush(g.Linear.Start.X, g.Linear.Start.Y, g.Linear.End.X, g.Linear.End.Y)
			for _, s := range g.Linear.Stops {
				lg.AddColorStop(s.Position, ggColor(s.Color))
			}
			brush = lg
		case GradientTypeRadial:
			rg := gg.NewRadialGradientBrush(g.Radial.Center.X, g.Radial.Center.Y, 0, g.Radial.Radius)
			for _, s := range g.Radial.Stops {
				rg.AddColorStop(s.Position, ggColor(s.Color))
			}
			brush = rg
		}
		if brush != nil {
			return func(x, y float64) (float64, float64, float64, float64) {
				col := brush.ColorAt(x, y)
				return col.R, col.G, col.B, col.A
			}
		}
	}
	r, g, b, a := paint.Color.RGBAF()
	return func(float64, float64) (float64, float64, float64, float64) {
		return r, g, b, a
	}
}

func ggColor(c Color) gg.RGBA {
	r, g, b, a := c.RGBAF()
	return gg.RGBA{R: r, G: g, B: b, A: a}
}

func interpolator(q FilterQuality) xdraw.Interpolator {
	switch q {
	case FilterQualityNone:
		return xdraw.NearestNeighbor
	case FilterQualityLow:
		return xdraw.ApproxBiLinear
	case FilterQualityMedium:
		return xdraw.BiLinear
	default:
		return xdraw.CatmullRom
	}
}

func clampByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
