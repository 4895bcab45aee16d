package graphics

import "testing"

func TestPictureRecorder_ReplayMatchesDirect(t *testing.T) {
	paint := DefaultPaint()
	paint.Color = ColorGreen
	draw := func(c Canvas) {
		c.Save()
		c.ClipRect(Rect{Left: 2, Top: 2, Right: 10, Bottom: 10})
		c.DrawCircle(Offset{X: 6, Y: 6}, 5, paint)
		c.Restore()
	}

	direct := NewRasterCanvas(12, 12)
	draw(direct)

	rec := &PictureRecorder{}
	draw(rec.BeginRecording(Size{Width: 12, Height: 12}))
	list := rec.EndRecording()
	if list.Len() != 4 {
		t.Fatalf("expected 4 ops, got %d", list.Len())
	}
	replayed := NewRasterCanvas(12, 12)
	list.Paint(replayed)

	a, b := direct.Image().Pix, replayed.Image().Pix
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected replay to match direct drawing, differs at byte %d", i)
		}
	}
}

func TestPictureRecorder_PaintIsDetached(t *testing.T) {
	paint := DefaultPaint()
	paint.Gradient = NewLinearGradient(Offset{}, Offset{X: 4}, TwoStops(ColorRed, ColorRed))
	paint.Shadow = &ShadowLayer{Color: ColorBlack}

	rec := &PictureRecorder{}
	c := rec.BeginRecording(Size{Width: 4, Height: 4})
	c.DrawRect(Rect{Right: 4, Bottom: 4}, paint)
	list := rec.EndRecording()

	paint.Gradient.Linear.Stops[0].Color = ColorBlue
	paint.Shadow.Color = ColorWhite

	got := list.ops[0].(opRect).paint
	if got.Gradient.Linear.Stops[0].Color != ColorRed {
		t.Errorf("expected recorded gradient to stay red, got %v", got.Gradient.Linear.Stops[0].Color)
	}
	if got.Shadow.Color != ColorBlack {
		t.Errorf("expected recorded shadow to stay black, got %v", got.Shadow.Color)
	}
}

func TestPictureRecorder_EndWithoutBegin(t *testing.T) {
	rec := &PictureRecorder{}
	list := rec.EndRecording()
	if list.Len() != 0 {
		t.Errorf("expected empty list, got %d ops", list.Len())
	}
}

func TestEnsureSoftwareLayer_RestoresPrevious(t *testing.T) {
	c := NewRasterCanvas(2, 2)
	c.SetLayerType(LayerTypeHardware)

	restore := EnsureSoftwareLayer(c)
	if c.layerType != LayerTypeSoftware {
		t.Errorf("expected software layer, got %v", c.layerType)
	}
	restore()
	if c.layerType != LayerTypeHardware {
		t.Errorf("expected hardware layer restored, got %v", c.layerType)
	}
}

func TestEnsureSoftwareLayer_RecordsSwitch(t *testing.T) {
	rec := &PictureRecorder{}
	c := rec.BeginRecording(Size{Width: 2, Height: 2})
	restore := EnsureSoftwareLayer(c)
	restore()
	list := rec.EndRecording()
	if list.Len() != 2 {
		t.Fatalf("expected switch and restore ops, got %d", list.Len())
	}
	if op := list.ops[0].(opSetLayerType); op.layerType != LayerTypeSoftware {
		t.Errorf("expected software switch first, got %v", op.layerType)
	}
	if op := list.ops[1].(opSetLayerType); op.layerType != LayerTypeNone {
		t.Errorf("expected restore to none, got %v", op.layerType)
	}
}

func TestColor_Conversions(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0.5)
	if got := c.String(); got != "#80123456" {
		t.Errorf("expected #80123456, got %s", got)
	}
	if got := c.WithAlpha8(0x44).A8(); got != 0x44 {
		t.Errorf("expected alpha 0x44, got %#x", got)
	}
	if got := FromStd(c.NRGBA()); got != c {
		t.Errorf("expected round trip through NRGBA, got %v", got)
	}
}
