package graphics

import (
	"image"
	"math"
)

// blurAlpha approximates a Gaussian blur of the given sigma with three box
// blur passes per axis. Pixels outside the mask count as transparent.
func blurAlpha(src *image.Alpha, sigma float64) *image.Alpha {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewAlpha(b)
	if w == 0 || h == 0 {
		return out
	}
	plane := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			plane[y*w+x] = float64(src.Pix[y*src.Stride+x])
		}
	}
	if r := boxRadius(sigma); r > 0 {
		tmp := make([]float64, len(plane))
		for pass := 0; pass < 3; pass++ {
			boxBlurRows(plane, tmp, w, h, r)
			boxBlurCols(tmp, plane, w, h, r)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := math.Round(plane[y*w+x])
			out.Pix[y*out.Stride+x] = uint8(math.Max(0, math.Min(255, v)))
		}
	}
	return out
}

// boxRadius picks the box half-width whose three-pass variance matches sigma.
func boxRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	width := math.Sqrt(4*sigma*sigma + 1)
	return int(math.Round((width - 1) / 2))
}

func boxBlurRows(src, dst []float64, w, h, r int) {
	prefix := make([]float64, w+1)
	norm := float64(2*r + 1)
	for y := 0; y < h; y++ {
		row := src[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + row[x]
		}
		for x := 0; x < w; x++ {
			x0 := max(x-r, 0)
			x1 := min(x+r, w-1)
			dst[y*w+x] = (prefix[x1+1] - prefix[x0]) / norm
		}
	}
}

func boxBlurCols(src, dst []float64, w, h, r int) {
	prefix := make([]float64, h+1)
	norm := float64(2*r + 1)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + src[y*w+x]
		}
		for y := 0; y < h; y++ {
			y0 := max(y-r, 0)
			y1 := min(y+r, h-1)
			dst[y*w+x] = (prefix[y1+1] - prefix[y0]) / norm
		}
	}
}
