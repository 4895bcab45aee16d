package shape

import (
	"fmt"
	"image"

	"github.com/go-drift/shapeview/pkg/errors"
	"github.com/go-drift/shapeview/pkg/graphics"
)

// BaseDrawer draws the unshaped content (usually an image) into content,
// the bounds minus padding. It runs inside the clip for Circle and Round.
type BaseDrawer func(canvas graphics.Canvas, content graphics.Rect) error

// ImageDrawer returns a BaseDrawer that scales img to fill the content box.
func ImageDrawer(img image.Image, quality graphics.FilterQuality) BaseDrawer {
	return func(canvas graphics.Canvas, content graphics.Rect) error {
		if img == nil {
			return fmt.Errorf("no image to draw")
		}
		canvas.DrawImageRect(img, graphics.Rect{}, content, quality)
		return nil
	}
}

// Painter renders a shaped image frame by frame.
//
// A Painter owns one scratch path and one scratch paint, reset before every
// use. It must not be shared between goroutines or used for two frames at
// once.
type Painter struct {
	style   Style
	padding graphics.EdgeInsets

	path   *graphics.Path
	paint  graphics.Paint
	shadow graphics.ShadowLayer
}

// NewPainter returns a Painter configured with style and base padding.
func NewPainter(style Style, basePadding graphics.EdgeInsets) *Painter {
	p := &Painter{path: graphics.NewPath()}
	p.Configure(style, basePadding)
	return p
}

// Configure sets the style and resolves the padding once. The shadow's
// padding adjustment is applied on top of basePadding.
func (p *Painter) Configure(style Style, basePadding graphics.EdgeInsets) {
	if p.path == nil {
		p.path = graphics.NewPath()
	}
	p.style = style
	p.padding = ResolvePadding(style, basePadding)
	graphics.Logger().Debug("shape configured",
		"kind", style.Kind.String(),
		"padding", fmt.Sprintf("%+v", p.padding),
	)
}

// Style returns the configured style.
func (p *Painter) Style() Style {
	return p.style
}

// Padding returns the resolved padding, shadow adjustment included.
func (p *Painter) Padding() graphics.EdgeInsets {
	return p.padding
}

// RenderFrame draws one frame of the shaped image onto canvas within bounds.
//
// The sequence depends on the shadow model:
//
//	directional, Normal:        base, border, shadow
//	directional, Circle/Round:  shadow, save, clip, base, restore, border
//	blurred or none:            shadow, [save, clip,] base, [restore,] border
//
// The clip state is restored even when drawBase fails or panics. An error
// from drawBase is returned wrapped with errors.KindRender; a panic is
// reported to the errors handler and returned as errors.KindPanic.
func (p *Painter) RenderFrame(canvas graphics.Canvas, bounds graphics.Rect, drawBase BaseDrawer) (err error) {
	defer errors.RecoverWithCallback("shape.RenderFrame", func(r any) {
		err = &errors.ShapeError{Op: "shape.RenderFrame", Kind: errors.KindPanic, Err: fmt.Errorf("%v", r)}
	})

	if p.path == nil {
		p.path = graphics.NewPath()
	}
	content := bounds.Deflate(p.padding)
	clipped := Clip(p.path, p.style.Kind, bounds, p.padding, p.style.Radii, p.style.extraInset())

	switch s := p.style.Shadow.(type) {
	case DirectionalShadow:
		if !clipped {
			if err := p.drawBase(canvas, content, false, drawBase); err != nil {
				return err
			}
			drawBorder(canvas, &p.paint, p.style.Border, p.style.Kind, p.path, content)
			drawDirectionalShadow(canvas, &p.paint, s, content)
			return nil
		}
		drawDirectionalShadow(canvas, &p.paint, s, content)
	case BlurredShadow:
		if s.Enabled() {
			restore := graphics.EnsureSoftwareLayer(canvas)
			defer restore()
			if !clipped {
				// Normal has no clip outline; the shadow follows the content box.
				p.path.AddRect(content, graphics.DirectionCCW)
			}
			drawBlurredShadow(canvas, &p.paint, &p.shadow, s, p.path)
		}
	}

	if err := p.drawBase(canvas, content, clipped, drawBase); err != nil {
		return err
	}
	drawBorder(canvas, &p.paint, p.style.Border, p.style.Kind, p.path, content)
	return nil
}

// drawBase runs drawBase, inside a save/clip/restore scope when clipped.
func (p *Painter) drawBase(canvas graphics.Canvas, content graphics.Rect, clipped bool, drawBase BaseDrawer) error {
	if drawBase == nil {
		return nil
	}
	if clipped {
		canvas.Save()
		defer canvas.Restore()
		canvas.ClipPath(p.path, graphics.ClipOpIntersect, true)
	}
	return errors.Wrap("shape.RenderFrame", errors.KindRender, drawBase(canvas, content))
}
