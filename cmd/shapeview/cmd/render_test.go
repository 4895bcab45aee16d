package cmd

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/go-drift/shapeview/pkg/errors"
	"github.com/go-drift/shapeview/pkg/graphics"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeImage(t *testing.T, path string, w, h int, c color.RGBA, encode func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func pngEncode(f *os.File, img image.Image) error { return png.Encode(f, img) }
func bmpEncode(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func TestRender_Circle(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	style := writeFile(t, dir, "circle.yaml", "shape: circle\n")
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeImage(t, in, 20, 20, color.RGBA{R: 255, A: 255}, pngEncode)

	if err := run([]string{"render", "-style", style, "-in", in, "-out", out, "-quality", "none"}); err != nil {
		t.Fatalf("render: %v", err)
	}

	img := readPNG(t, out)
	if got := img.Bounds().Size(); got != image.Pt(20, 20) {
		t.Fatalf("size = %v, want 20x20", got)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}
	if r, _, _, a := img.At(10, 10).RGBA(); r != 0xFFFF || a != 0xFFFF {
		t.Errorf("expected opaque red center, got r=%d a=%d", r, a)
	}
}

func TestRender_SizeIncludesPadding(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	style := writeFile(t, dir, "s.yaml", "shadow: {depth: 5, mode: [left, top]}\npadding: {right: 2}\n")
	in := filepath.Join(dir, "in.bmp")
	out := filepath.Join(dir, "out.png")
	writeImage(t, in, 10, 8, color.RGBA{B: 255, A: 255}, bmpEncode)

	if err := run([]string{"render", "-style", style, "-in", in, "-out", out}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := readPNG(t, out).Bounds().Size(); got != image.Pt(17, 13) {
		t.Errorf("size = %v, want 17x13", got)
	}
}

func TestRender_ExplicitSize(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeImage(t, in, 4, 4, color.RGBA{G: 255, A: 255}, pngEncode)

	t.Chdir(dir)
	if err := run([]string{"render", "-in", in, "-out", out, "-width", "30", "-height", "12", "-quality", "high"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := readPNG(t, out).Bounds().Size(); got != image.Pt(30, 12) {
		t.Errorf("size = %v, want 30x12", got)
	}
}

func TestRender_Errors(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeImage(t, in, 2, 2, color.RGBA{A: 255}, pngEncode)
	garbage := writeFile(t, dir, "garbage.png", "not an image")
	badStyle := writeFile(t, dir, "bad.yaml", "shape: triangle\n")
	out := filepath.Join(dir, "out.png")

	tests := []struct {
		name string
		args []string
		kind errors.ErrorKind
	}{
		{"missing flags", []string{"-in", in}, errors.KindUnknown},
		{"missing input", []string{"-in", filepath.Join(dir, "nope.png"), "-out", out}, errors.KindDecode},
		{"undecodable input", []string{"-in", garbage, "-out", out}, errors.KindDecode},
		{"bad style", []string{"-style", badStyle, "-in", in, "-out", out}, errors.KindConfig},
		{"bad quality", []string{"-in", in, "-out", out, "-quality", "ultra"}, errors.KindUnknown},
		{"bad profile", []string{"-in", in, "-out", out, "-profile", "gpu"}, errors.KindUnknown},
		{"unwritable output", []string{"-in", in, "-out", filepath.Join(dir, "missing", "out.png")}, errors.KindOutput},
	}
	t.Chdir(dir)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runRender(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.KindOf(err); got != tt.kind {
				t.Errorf("kind = %v, want %v (%v)", got, tt.kind, err)
			}
		})
	}
}

func TestRender_DecoderPanicBecomesError(t *testing.T) {
	captureOutput(t)
	old := errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	defer errors.SetHandler(old)

	image.RegisterFormat("crash", "CRASH!", func(io.Reader) (image.Image, error) {
		panic("decoder crashed")
	}, func(io.Reader) (image.Config, error) {
		return image.Config{}, nil
	})
	dir := t.TempDir()
	in := writeFile(t, dir, "in.crash", "CRASH!")
	t.Chdir(dir)

	err := runRender([]string{"-in", in, "-out", filepath.Join(dir, "out.png")})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := errors.KindOf(err); got != errors.KindPanic {
		t.Errorf("kind = %v, want panic (%v)", got, err)
	}
	if !strings.Contains(err.Error(), "decoder crashed") {
		t.Errorf("expected panic value in error, got %v", err)
	}
}

func TestRender_CPUProfile(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeImage(t, in, 8, 8, color.RGBA{R: 255, A: 255}, pngEncode)
	t.Chdir(dir)

	if err := run([]string{"render", "-in", in, "-out", out, "-profile", "cpu", "-profile-dir", dir}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("expected cpu profile: %v", err)
	}
}

func TestPadding(t *testing.T) {
	out, _ := captureOutput(t)
	dir := t.TempDir()
	style := writeFile(t, dir, "s.yaml", "shadow: {model: blurred, radius: 10, dx: 4, dy: -15}\npadding: {left: 1}\n")

	if err := run([]string{"padding", "-style", style}); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"base:     left=1 top=0 right=0 bottom=0",
		"resolved: left=7 top=25 right=14 bottom=0",
	}
	for _, line := range want {
		if !strings.Contains(out.String(), line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestPadding_DirectionalEdges(t *testing.T) {
	out, _ := captureOutput(t)
	dir := t.TempDir()
	style := writeFile(t, dir, "s.yaml", "shape: round\nshadow: {depth: 3, mode: 12}\n")

	if err := run([]string{"padding", "-style", style}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "edges:    [top bottom]") {
		t.Errorf("expected edge list, got:\n%s", out)
	}
	if !strings.Contains(out.String(), "shape:    round") {
		t.Errorf("expected shape line, got:\n%s", out)
	}
}

func TestParseQuality(t *testing.T) {
	tests := map[string]graphics.FilterQuality{
		"none":    graphics.FilterQualityNone,
		"nearest": graphics.FilterQualityNone,
		"LOW":     graphics.FilterQualityLow,
		"":        graphics.FilterQualityMedium,
		"high":    graphics.FilterQualityHigh,
	}
	for in, want := range tests {
		got, err := parseQuality(in)
		if err != nil || got != want {
			t.Errorf("parseQuality(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
