package shape_test

import (
	stderrors "errors"
	"image"
	"image/color"
	"image/draw"
	"io"
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-drift/shapeview/pkg/errors"
	"github.com/go-drift/shapeview/pkg/graphics"
	"github.com/go-drift/shapeview/pkg/shape"
	shapetest "github.com/go-drift/shapeview/pkg/testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

var red = color.RGBA{R: 255, A: 255}

func capture(t *testing.T, style shape.Style, bounds graphics.Rect, drawBase shape.BaseDrawer) *shapetest.Snapshot {
	t.Helper()
	p := shape.NewPainter(style, graphics.EdgeInsets{})
	var err error
	snap := shapetest.Capture(bounds.Size(), func(canvas graphics.Canvas) {
		err = p.RenderFrame(canvas, bounds, drawBase)
	})
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	return snap
}

func rasterize(t *testing.T, p *shape.Painter, w, h int, drawBase shape.BaseDrawer) *graphics.RasterCanvas {
	t.Helper()
	canvas := graphics.NewRasterCanvas(w, h)
	if err := p.RenderFrame(canvas, graphics.RectFromLTWH(0, 0, float64(w), float64(h)), drawBase); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	return canvas
}

func TestRenderFrame_DrawOrder(t *testing.T) {
	base := shape.ImageDrawer(solidImage(10, 10, red), graphics.FilterQualityNone)
	border := shape.BorderSpec{Width: 2, Color: graphics.ColorBlack}
	directional := shape.DirectionalShadow{Depth: 4, Color: shape.DefaultShadowColor, Edges: shape.EdgeLeft}
	blurred := shape.BlurredShadow{Radius: 4, Color: shape.DefaultShadowColor}

	tests := []struct {
		name  string
		style shape.Style
		want  []string
	}{
		{
			name:  "normal directional",
			style: shape.Style{Kind: shape.Normal, Border: border, Shadow: directional},
			want:  []string{"drawImageRect", "drawRect", "drawRect"},
		},
		{
			name:  "circle directional",
			style: shape.Style{Kind: shape.Circle, Border: border, Shadow: directional},
			want:  []string{"drawRect", "save", "clipPath", "drawImageRect", "restore", "drawPath"},
		},
		{
			name:  "round directional",
			style: shape.Style{Kind: shape.Round, Radii: shape.UniformRadii(5), Border: border, Shadow: directional},
			want:  []string{"drawRect", "save", "clipPath", "drawImageRect", "restore", "drawPath"},
		},
		{
			name:  "normal blurred",
			style: shape.Style{Kind: shape.Normal, Border: border, Shadow: blurred},
			want:  []string{"setLayerType", "drawPath", "drawImageRect", "drawRect", "setLayerType"},
		},
		{
			name:  "round blurred",
			style: shape.Style{Kind: shape.Round, Radii: shape.UniformRadii(5), Border: border, Shadow: blurred},
			want:  []string{"setLayerType", "drawPath", "save", "clipPath", "drawImageRect", "restore", "drawPath", "setLayerType"},
		},
		{
			name:  "circle no shadow",
			style: shape.Style{Kind: shape.Circle, Border: border},
			want:  []string{"save", "clipPath", "drawImageRect", "restore", "drawPath"},
		},
		{
			name:  "normal no shadow",
			style: shape.Style{Kind: shape.Normal, Border: border},
			want:  []string{"drawImageRect", "drawRect"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := capture(t, tt.style, graphics.RectFromLTWH(0, 0, 40, 40), base)
			if got := snap.Ops(); !slices.Equal(got, tt.want) {
				t.Errorf("ops = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderFrame_BlurredRestoresLayerType(t *testing.T) {
	style := shape.Style{Kind: shape.Round, Shadow: shape.BlurredShadow{Radius: 3, Color: graphics.ColorBlack}}
	snap := capture(t, style, graphics.RectFromLTWH(0, 0, 30, 30), nil)

	layers := snap.Find("setLayerType")
	if len(layers) != 2 {
		t.Fatalf("expected 2 layer switches, got %d", len(layers))
	}
	if got := layers[0].Params["type"]; got != "software" {
		t.Errorf("first switch = %v, want software", got)
	}
	if got := layers[1].Params["type"]; got != "none" {
		t.Errorf("restore switch = %v, want none", got)
	}

	shadow := snap.Find("drawPath")[0]
	if _, ok := shadow.Params["shadow"]; !ok {
		t.Errorf("expected shadow layer on first drawPath: %s", shadow)
	}
	if got := shadow.Params["color"]; got != "0x00000000" {
		t.Errorf("shadow body color = %v, want transparent", got)
	}
}

func TestRenderFrame_BorderDisabled(t *testing.T) {
	base := shape.ImageDrawer(solidImage(4, 4, red), graphics.FilterQualityNone)
	for _, width := range []float64{0, -3} {
		for _, kind := range []shape.Kind{shape.Normal, shape.Circle, shape.Round} {
			style := shape.Style{Kind: kind, Border: shape.BorderSpec{Width: width, Color: graphics.ColorBlack}}
			snap := capture(t, style, graphics.RectFromLTWH(0, 0, 20, 20), base)
			if n := len(snap.Find("drawRect")) + len(snap.Find("drawPath")); n != 0 {
				t.Errorf("%s width %v: expected no stroke, got ops %v", kind, width, snap.Ops())
			}
		}
	}
}

func TestRenderFrame_BorderFollowsClip(t *testing.T) {
	style := shape.Style{Kind: shape.Circle, Border: shape.BorderSpec{Width: 3, Color: graphics.ColorBlack}}
	snap := capture(t, style, graphics.RectFromLTWH(0, 0, 50, 100), nil)

	clip := snap.Find("clipPath")
	stroke := snap.Find("drawPath")
	if len(clip) != 0 {
		t.Fatalf("expected no clip without a base drawer, got %v", snap.Ops())
	}
	if len(stroke) != 1 {
		t.Fatalf("expected one border stroke, got %v", snap.Ops())
	}
	path := stroke[0].Params["path"].(map[string]any)
	bounds := path["bounds"].(map[string]any)
	if bounds["top"] != 25.0 || bounds["bottom"] != 75.0 {
		t.Errorf("border bounds = %v, want circle from 25 to 75", bounds)
	}
	if got := stroke[0].Params["style"]; got != "stroke" {
		t.Errorf("border style = %v, want stroke", got)
	}
	if got := stroke[0].Params["strokeWidth"]; got != 3.0 {
		t.Errorf("border width = %v, want 3", got)
	}
}

func TestRenderFrame_BorderPaintIsReset(t *testing.T) {
	style := shape.Style{
		Kind:   shape.Round,
		Radii:  shape.UniformRadii(4),
		Border: shape.BorderSpec{Width: 1, Color: graphics.ColorBlack},
		Shadow: shape.DirectionalShadow{Depth: 4, Color: graphics.ColorBlack, Edges: shape.EdgeAll},
	}
	snap := capture(t, style, graphics.RectFromLTWH(0, 0, 40, 40), nil)

	border := snap.Find("drawPath")
	if len(border) != 1 {
		t.Fatalf("expected one border stroke, got %v", snap.Ops())
	}
	if _, ok := border[0].Params["gradient"]; ok {
		t.Errorf("border inherited a shadow gradient: %s", border[0])
	}
}

func TestRenderFrame_DirectionalCorners(t *testing.T) {
	tests := []struct {
		edges   shape.Edge
		corners int
	}{
		{shape.EdgeLeft, 0},
		{shape.EdgeLeft | shape.EdgeRight, 0},
		{shape.EdgeLeft | shape.EdgeTop, 1},
		{shape.EdgeLeft | shape.EdgeBottom, 1},
		{shape.EdgeRight | shape.EdgeTop, 1},
		{shape.EdgeRight | shape.EdgeBottom, 1},
		{shape.EdgeLeft | shape.EdgeTop | shape.EdgeRight, 2},
		{shape.EdgeAll, 4},
	}
	for _, tt := range tests {
		style := shape.Style{Shadow: shape.DirectionalShadow{Depth: 6, Color: graphics.ColorBlack, Edges: tt.edges}}
		snap := capture(t, style, graphics.RectFromLTWH(0, 0, 60, 60), nil)

		var linear, radial int
		for _, op := range snap.Find("drawRect") {
			g, ok := op.Params["gradient"].(map[string]any)
			if !ok {
				continue
			}
			switch g["type"] {
			case "linear":
				linear++
			case "radial":
				radial++
			}
		}
		if radial != tt.corners {
			t.Errorf("edges %#x: expected %d corners, got %d", uint8(tt.edges), tt.corners, radial)
		}
		if want := popcount(tt.edges); linear != want {
			t.Errorf("edges %#x: expected %d edge strips, got %d", uint8(tt.edges), want, linear)
		}
	}
}

func popcount(e shape.Edge) int {
	n := 0
	for _, bit := range []shape.Edge{shape.EdgeLeft, shape.EdgeRight, shape.EdgeTop, shape.EdgeBottom} {
		if e.Has(bit) {
			n++
		}
	}
	return n
}

func TestRenderFrame_DirectionalStripGeometry(t *testing.T) {
	style := shape.Style{Shadow: shape.DirectionalShadow{Depth: 8, Color: graphics.ColorBlack, Edges: shape.EdgeTop}}
	snap := capture(t, style, graphics.RectFromLTWH(0, 0, 40, 40), nil)

	strips := snap.Find("drawRect")
	if len(strips) != 1 {
		t.Fatalf("expected one strip, got %v", snap.Ops())
	}
	rect := strips[0].Params["rect"].(map[string]any)
	if rect["top"] != 0.0 || rect["bottom"] != 8.0 || rect["left"] != 0.0 || rect["right"] != 40.0 {
		t.Errorf("strip rect = %v, want 0,0 to 40,8", rect)
	}
	g := strips[0].Params["gradient"].(map[string]any)
	stops := g["stops"].([]any)
	if first := stops[0].(map[string]any); first["color"] != "0x00000000" {
		t.Errorf("outer stop = %v, want transparent", first["color"])
	}
	if last := stops[1].(map[string]any); last["color"] != "0xFF000000" {
		t.Errorf("inner stop = %v, want shadow color", last["color"])
	}
}

func TestRenderFrame_DirectionalRaster(t *testing.T) {
	style := shape.Style{Shadow: shape.DirectionalShadow{Depth: 8, Color: graphics.ColorBlack, Edges: shape.EdgeLeft}}
	p := shape.NewPainter(style, graphics.EdgeInsets{})
	canvas := rasterize(t, p, 40, 40, shape.ImageDrawer(solidImage(8, 8, red), graphics.FilterQualityNone))
	img := canvas.Image()

	outer := img.RGBAAt(1, 20).A
	inner := img.RGBAAt(7, 20).A
	if outer >= inner {
		t.Errorf("expected shadow to darken toward the content, got outer=%d inner=%d", outer, inner)
	}
	if inner < 180 {
		t.Errorf("expected dense shadow next to content, got %d", inner)
	}
	if got := img.RGBAAt(20, 20); got != red {
		t.Errorf("content pixel = %v, want red", got)
	}
}

func TestRenderFrame_BlurredRaster(t *testing.T) {
	style := shape.Style{Kind: shape.Circle, Shadow: shape.BlurredShadow{Radius: 6, Color: graphics.ColorBlack}}
	p := shape.NewPainter(style, graphics.EdgeInsets{})

	canvas := graphics.NewRasterCanvas(60, 60)
	canvas.SetLayerType(graphics.LayerTypeHardware)
	if err := p.RenderFrame(canvas, graphics.RectFromLTWH(0, 0, 60, 60), shape.ImageDrawer(solidImage(8, 8, red), graphics.FilterQualityNone)); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	// Circle of radius 24 at (30,30); the halo lies just past its edge.
	if a := canvas.Image().RGBAAt(30, 56).A; a == 0 {
		t.Error("expected blurred shadow outside the circle")
	}
	if a := canvas.Image().RGBAAt(0, 0).A; a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}
	if got := canvas.SetLayerType(graphics.LayerTypeNone); got != graphics.LayerTypeHardware {
		t.Errorf("layer type after frame = %v, want hardware", got)
	}
}

func TestRenderFrame_Idempotent(t *testing.T) {
	style := shape.Style{
		Kind:   shape.Round,
		Radii:  shape.UniformRadii(8),
		Border: shape.BorderSpec{Width: 2, Color: graphics.ColorBlack},
		Shadow: shape.BlurredShadow{Radius: 4, Color: shape.DefaultShadowColor, Dx: 2, Dy: 2},
	}
	base := shape.ImageDrawer(solidImage(16, 16, red), graphics.FilterQualityLow)
	p := shape.NewPainter(style, graphics.EdgeInsets{})

	first := rasterize(t, p, 48, 48, base)
	second := rasterize(t, p, 48, 48, base)
	if !slices.Equal(first.Image().Pix, second.Image().Pix) {
		t.Error("expected identical pixels for repeated frames")
	}

	fresh := rasterize(t, shape.NewPainter(style, graphics.EdgeInsets{}), 48, 48, base)
	if !slices.Equal(first.Image().Pix, fresh.Image().Pix) {
		t.Error("expected identical pixels from a fresh painter")
	}
}

func TestRenderFrame_Golden(t *testing.T) {
	tests := []struct {
		name  string
		style shape.Style
		size  float64
		image *image.RGBA
	}{
		{
			name: "round_border",
			style: shape.Style{
				Kind:   shape.Round,
				Radii:  shape.UniformRadii(10),
				Border: shape.BorderSpec{Width: 2, Color: graphics.ColorBlack},
			},
			size:  100,
			image: solidImage(100, 100, red),
		},
		{
			name: "directional_all_edges",
			style: shape.Style{
				Shadow: shape.DirectionalShadow{Depth: 8, Color: graphics.ColorBlack, Edges: shape.EdgeAll},
			},
			size:  56,
			image: solidImage(10, 10, red),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := shape.ImageDrawer(tt.image, graphics.FilterQualityNone)
			snap := capture(t, tt.style, graphics.RectFromLTWH(0, 0, tt.size, tt.size), base)
			snap.MatchesFile(t, filepath.Join("testdata", tt.name+".json"))
		})
	}
}

// near reports whether a and b differ by at most 4 per channel.
func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -4 && diff <= 4
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRenderFrame_RoundEndToEnd(t *testing.T) {
	style := shape.Style{
		Kind:   shape.Round,
		Radii:  shape.UniformRadii(10),
		Border: shape.BorderSpec{Width: 2, Color: graphics.ColorBlack},
	}
	p := shape.NewPainter(style, graphics.EdgeInsets{})
	img := rasterize(t, p, 100, 100, shape.ImageDrawer(solidImage(100, 100, red), graphics.FilterQualityNone)).Image()

	black := color.RGBA{A: 255}
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"center", 50, 50, red},
		{"inside border", 50, 2, red},
		{"top border", 50, 0, black},
		{"left border", 0, 50, black},
		{"corner", 0, 0, color.RGBA{}},
		{"outside arc", 1, 1, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); !near(got, tt.want) {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	// On the 45 degree arc point the border dominates.
	arc := img.RGBAAt(2, 2)
	if arc.A < 200 || arc.R > 64 {
		t.Errorf("arc pixel = %v, expected mostly black", arc)
	}
}

func TestRenderFrame_CircleEndToEnd(t *testing.T) {
	p := shape.NewPainter(shape.Style{Kind: shape.Circle}, graphics.EdgeInsets{})
	img := rasterize(t, p, 50, 100, shape.ImageDrawer(solidImage(50, 100, red), graphics.FilterQualityNone)).Image()

	inside := [][2]int{{25, 50}, {25, 26}, {2, 50}, {47, 50}}
	for _, pt := range inside {
		if got := img.RGBAAt(pt[0], pt[1]); !near(got, red) {
			t.Errorf("(%d,%d) = %v, want red", pt[0], pt[1], got)
		}
	}
	outside := [][2]int{{25, 10}, {25, 80}, {0, 0}, {49, 99}}
	for _, pt := range outside {
		if got := img.RGBAAt(pt[0], pt[1]); got.A != 0 {
			t.Errorf("(%d,%d) = %v, want transparent", pt[0], pt[1], got)
		}
	}
}

func TestRenderFrame_BaseErrorRestoresClip(t *testing.T) {
	boom := stderrors.New("decode failed")
	style := shape.Style{Kind: shape.Round, Radii: shape.UniformRadii(4), Border: shape.BorderSpec{Width: 1, Color: graphics.ColorBlack}}
	p := shape.NewPainter(style, graphics.EdgeInsets{})

	canvas := graphics.NewRasterCanvas(20, 20)
	err := p.RenderFrame(canvas, graphics.RectFromLTWH(0, 0, 20, 20), func(graphics.Canvas, graphics.Rect) error {
		return boom
	})
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected base error, got %v", err)
	}
	if errors.KindOf(err) != errors.KindRender {
		t.Errorf("expected render kind, got %v", errors.KindOf(err))
	}
	if canvas.ClipDepth() != 0 {
		t.Errorf("expected clip restored, depth %d", canvas.ClipDepth())
	}
}

func TestRenderFrame_BasePanicRestoresClip(t *testing.T) {
	old := errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	defer errors.SetHandler(old)

	style := shape.Style{Kind: shape.Circle, Shadow: shape.BlurredShadow{Radius: 2, Color: graphics.ColorBlack}}
	p := shape.NewPainter(style, graphics.EdgeInsets{})

	var err error
	snap := shapetest.Capture(graphics.Size{Width: 20, Height: 20}, func(canvas graphics.Canvas) {
		err = p.RenderFrame(canvas, graphics.RectFromLTWH(0, 0, 20, 20), func(graphics.Canvas, graphics.Rect) error {
			panic("bad pixel")
		})
	})
	if errors.KindOf(err) != errors.KindPanic {
		t.Fatalf("expected panic kind, got %v", err)
	}
	want := []string{"setLayerType", "drawPath", "save", "clipPath", "restore", "setLayerType"}
	if got := snap.Ops(); !slices.Equal(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
}

func TestImageDrawer_NilImage(t *testing.T) {
	p := shape.NewPainter(shape.DefaultStyle(), graphics.EdgeInsets{})
	err := p.RenderFrame(graphics.NewRasterCanvas(4, 4), graphics.RectFromLTWH(0, 0, 4, 4), shape.ImageDrawer(nil, graphics.FilterQualityNone))
	if errors.KindOf(err) != errors.KindRender {
		t.Errorf("expected render error for nil image, got %v", err)
	}
}

func TestPainter_ConfigureResolvesPadding(t *testing.T) {
	p := shape.NewPainter(shape.DefaultStyle(), graphics.EdgeInsetsAll(2))
	if got := p.Padding(); got != graphics.EdgeInsetsAll(2) {
		t.Errorf("padding = %+v", got)
	}
	p.Configure(shape.Style{Shadow: shape.DirectionalShadow{Depth: 3, Edges: shape.EdgeBottom}}, graphics.EdgeInsetsAll(2))
	want := graphics.EdgeInsets{Left: 2, Top: 2, Right: 2, Bottom: 5}
	if got := p.Padding(); got != want {
		t.Errorf("padding = %+v, want %+v", got, want)
	}

	snap := shapetest.Capture(graphics.Size{Width: 20, Height: 20}, func(canvas graphics.Canvas) {
		_ = p.RenderFrame(canvas, graphics.RectFromLTWH(0, 0, 20, 20), shape.ImageDrawer(solidImage(2, 2, red), graphics.FilterQualityNone))
	})
	dst := snap.Find("drawImageRect")[0].Params["dst"].(map[string]any)
	if dst["bottom"] != 15.0 || dst["left"] != 2.0 {
		t.Errorf("content rect = %v, want padded by 2 and 5 below", dst)
	}
}
