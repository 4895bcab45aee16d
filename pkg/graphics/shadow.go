package graphics

// ShadowLayer draws a blurred, offset, colored silhouette of a shape beneath
// the shape itself. Attach it to Paint.Shadow.
//
// BlurRadius controls softness; sigma is BlurRadius * 0.5.
type ShadowLayer struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
}

// Sigma returns the Gaussian sigma for the blur.
// Returns 0 if BlurRadius is zero or negative.
func (s ShadowLayer) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// Extent returns how far the shadow can reach beyond the shape bounds.
func (s ShadowLayer) Extent() float64 {
	// Three sigma covers all visible falloff.
	return s.Sigma() * 3
}
