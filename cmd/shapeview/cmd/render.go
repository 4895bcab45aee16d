package cmd

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/shapeview/pkg/errors"
	"github.com/go-drift/shapeview/pkg/graphics"
	"github.com/go-drift/shapeview/pkg/shape"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render an image through a style",
		Long: `Render an image file through a style document and write the result as PNG.

The input may be PNG, JPEG, GIF, BMP or WebP. By default the output is the
input size plus the resolved padding, so the image keeps its resolution
inside the shape. The background is transparent.

Flags:
  -style FILE      Style document (default: ./shapeview.yaml if present)
  -in FILE         Input image (required)
  -out FILE        Output PNG (required)
  -width N         Output width in pixels
  -height N        Output height in pixels
  -quality Q       Scaling filter: none, low, medium, high (default: medium)
  -profile KIND    Profile the render: cpu, mem or trace
  -profile-dir DIR Directory for profile output`,
		Usage: "shapeview render -in FILE -out FILE [-style FILE] [-width N -height N] [-quality Q] [-profile KIND]",
		Run:   runRender,
	})
}

type renderOptions struct {
	stylePath  string
	in, out    string
	width      int
	height     int
	quality    string
	profile    string
	profileDir string
}

func runRender(args []string) error {
	var opts renderOptions
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.stylePath, "style", "", "style document")
	fs.StringVar(&opts.in, "in", "", "input image")
	fs.StringVar(&opts.out, "out", "", "output PNG")
	fs.IntVar(&opts.width, "width", 0, "output width")
	fs.IntVar(&opts.height, "height", 0, "output height")
	fs.StringVar(&opts.quality, "quality", "medium", "scaling filter")
	fs.StringVar(&opts.profile, "profile", "", "profile kind")
	fs.StringVar(&opts.profileDir, "profile-dir", "", "profile output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.in == "" || opts.out == "" {
		return fmt.Errorf("-in and -out are required\n\nUsage: shapeview render -in FILE -out FILE")
	}

	stop, err := startProfile(opts.profile, opts.profileDir)
	if err != nil {
		return err
	}
	defer stop()

	return render(opts)
}

func render(opts renderOptions) (err error) {
	defer errors.RecoverWithCallback("cmd.render", func(r any) {
		err = &errors.ShapeError{Op: "cmd.render", Kind: errors.KindPanic, Path: opts.in, Err: fmt.Errorf("%v", r)}
	})

	quality, err := parseQuality(opts.quality)
	if err != nil {
		return err
	}
	resolved, err := loadStyle(opts.stylePath)
	if err != nil {
		return err
	}
	img, err := decodeImage(opts.in)
	if err != nil {
		return err
	}

	painter := resolved.NewPainter()
	padding := painter.Padding()
	width, height := opts.width, opts.height
	if width <= 0 {
		width = img.Bounds().Dx() + int(padding.Horizontal()+0.5)
	}
	if height <= 0 {
		height = img.Bounds().Dy() + int(padding.Vertical()+0.5)
	}

	canvas := graphics.NewRasterCanvas(width, height)
	bounds := graphics.RectFromLTWH(0, 0, float64(width), float64(height))
	if err := painter.RenderFrame(canvas, bounds, shape.ImageDrawer(img, quality)); err != nil {
		return err
	}
	graphics.Logger().Debug("rendered",
		"in", opts.in,
		"out", opts.out,
		"width", width,
		"height", height,
	)
	return encodePNG(opts.out, canvas.Image())
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.ShapeError{Op: "cmd.render", Kind: errors.KindDecode, Path: path, Err: err}
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &errors.ShapeError{Op: "cmd.render", Kind: errors.KindDecode, Path: path, Err: err}
	}
	graphics.Logger().Debug("decoded", "path", path, "format", format, "size", img.Bounds().Size().String())
	return img, nil
}

func encodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return &errors.ShapeError{Op: "cmd.render", Kind: errors.KindOutput, Path: path, Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &errors.ShapeError{Op: "cmd.render", Kind: errors.KindOutput, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &errors.ShapeError{Op: "cmd.render", Kind: errors.KindOutput, Path: path, Err: err}
	}
	return nil
}

func parseQuality(s string) (graphics.FilterQuality, error) {
	switch strings.ToLower(s) {
	case "none", "nearest":
		return graphics.FilterQualityNone, nil
	case "low":
		return graphics.FilterQualityLow, nil
	case "", "medium":
		return graphics.FilterQualityMedium, nil
	case "high":
		return graphics.FilterQualityHigh, nil
	}
	return 0, fmt.Errorf("unknown quality %q (want none, low, medium or high)", s)
}
