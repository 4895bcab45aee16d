package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathDirection is the winding direction used by the Add* shape helpers.
// It changes tessellation only, never the covered area of a single shape.
type PathDirection int

const (
	// DirectionCW winds clockwise in screen coordinates (y down).
	DirectionCW PathDirection = iota
	// DirectionCCW winds counter-clockwise in screen coordinates.
	DirectionCCW
)

// String returns a human-readable representation of the direction.
func (d PathDirection) String() string {
	switch d {
	case DirectionCW:
		return "cw"
	case DirectionCCW:
		return "ccw"
	default:
		return fmt.Sprintf("PathDirection(%d)", int(d))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo and Close, or with the
// AddRect, AddCircle and AddRRect helpers. Use with Canvas.DrawPath to
// stroke/fill, or Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Reset clears all commands and restores the nonzero fill rule.
func (p *Path) Reset() {
	p.Clear()
	p.FillRule = FillRuleNonZero
}

// Clone returns a fully independent copy of the path, including all
// command arguments. Returns nil if p is nil.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	c := &Path{
		Commands: make([]PathCommand, len(p.Commands)),
		FillRule: p.FillRule,
	}
	for i, cmd := range p.Commands {
		c.Commands[i] = PathCommand{
			Op:   cmd.Op,
			Args: append([]float64(nil), cmd.Args...),
		}
	}
	return c
}

// Bounds returns the bounding box of all points in the path, control points
// included. An empty path returns an empty Rect.
func (p *Path) Bounds() Rect {
	first := true
	var b Rect
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				b = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			b.Left = math.Min(b.Left, x)
			b.Top = math.Min(b.Top, y)
			b.Right = math.Max(b.Right, x)
			b.Bottom = math.Max(b.Bottom, y)
		}
	}
	return b
}

// AddRect appends a closed rectangle subpath.
func (p *Path) AddRect(r Rect, dir PathDirection) {
	p.MoveTo(r.Left, r.Top)
	if dir == DirectionCCW {
		p.LineTo(r.Left, r.Bottom)
		p.LineTo(r.Right, r.Bottom)
		p.LineTo(r.Right, r.Top)
	} else {
		p.LineTo(r.Right, r.Top)
		p.LineTo(r.Right, r.Bottom)
		p.LineTo(r.Left, r.Bottom)
	}
	p.Close()
}

// kappa is the cubic bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

// AddCircle appends a closed circle subpath built from four cubic arcs.
// A non-positive radius adds nothing.
func (p *Path) AddCircle(cx, cy, radius float64, dir PathDirection) {
	if radius <= 0 {
		return
	}
	k := radius * kappa
	p.MoveTo(cx+radius, cy)
	if dir == DirectionCCW {
		p.CubicTo(cx+radius, cy-k, cx+k, cy-radius, cx, cy-radius)
		p.CubicTo(cx-k, cy-radius, cx-radius, cy-k, cx-radius, cy)
		p.CubicTo(cx-radius, cy+k, cx-k, cy+radius, cx, cy+radius)
		p.CubicTo(cx+k, cy+radius, cx+radius, cy+k, cx+radius, cy)
	} else {
		p.CubicTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
		p.CubicTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
		p.CubicTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
		p.CubicTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	}
	p.Close()
}

// AddRRect appends a closed rounded-rectangle subpath. Each corner is drawn
// as an elliptical quarter arc; a corner with a zero radius is square.
// Radii are scaled down uniformly when adjacent corners would overlap.
func (p *Path) AddRRect(rr RRect, dir PathDirection) {
	r := rr.Rect
	tl, tr, br, bl := scaledRadii(rr)
	if dir == DirectionCCW {
		p.MoveTo(r.Left+tl.X, r.Top)
		p.cornerTo(r.Left, r.Top, tl, -1, 0, 0, 1)
		p.LineTo(r.Left, r.Bottom-bl.Y)
		p.cornerTo(r.Left, r.Bottom, bl, 0, 1, 1, 0)
		p.LineTo(r.Right-br.X, r.Bottom)
		p.cornerTo(r.Right, r.Bottom, br, 1, 0, 0, -1)
		p.LineTo(r.Right, r.Top+tr.Y)
		p.cornerTo(r.Right, r.Top, tr, 0, -1, -1, 0)
		p.Close()
		return
	}
	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	p.cornerTo(r.Right, r.Top, tr, 1, 0, 0, 1)
	p.LineTo(r.Right, r.Bottom-br.Y)
	p.cornerTo(r.Right, r.Bottom, br, 0, 1, -1, 0)
	p.LineTo(r.Left+bl.X, r.Bottom)
	p.cornerTo(r.Left, r.Bottom, bl, -1, 0, 0, -1)
	p.LineTo(r.Left, r.Top+tl.Y)
	p.cornerTo(r.Left, r.Top, tl, 0, -1, 1, 0)
	p.Close()
}

// cornerTo draws the arc around corner (cx, cy). The pen arrives travelling
// along (inX, inY) and leaves along (outX, outY); both are unit axis vectors.
// A zero radius degenerates to a line to the corner point.
func (p *Path) cornerTo(cx, cy float64, rad Radius, inX, inY, outX, outY float64) {
	if rad.X <= 0 || rad.Y <= 0 {
		p.LineTo(cx, cy)
		return
	}
	// Start point sits back along the incoming direction, end point forward
	// along the outgoing direction.
	sx, sy := cx-inX*rad.X, cy-inY*rad.Y
	ex, ey := cx+outX*rad.X, cy+outY*rad.Y
	c1x, c1y := sx+inX*rad.X*kappa, sy+inY*rad.Y*kappa
	c2x, c2y := ex-outX*rad.X*kappa, ey-outY*rad.Y*kappa
	p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
}

// scaledRadii clamps negative radii to zero and scales all radii by the same
// factor when the sum along any side exceeds that side's length.
func scaledRadii(rr RRect) (tl, tr, br, bl Radius) {
	clamp := func(r Radius) Radius {
		return Radius{X: math.Max(r.X, 0), Y: math.Max(r.Y, 0)}
	}
	tl, tr, br, bl = clamp(rr.TopLeft), clamp(rr.TopRight), clamp(rr.BottomRight), clamp(rr.BottomLeft)
	w, h := rr.Rect.Width(), rr.Rect.Height()
	scale := 1.0
	fit := func(sum, length float64) {
		if sum > length && sum > 0 {
			scale = math.Min(scale, length/sum)
		}
	}
	fit(tl.X+tr.X, w)
	fit(bl.X+br.X, w)
	fit(tl.Y+bl.Y, h)
	fit(tr.Y+br.Y, h)
	if scale < 1 {
		s := func(r Radius) Radius { return Radius{X: r.X * scale, Y: r.Y * scale} }
		tl, tr, br, bl = s(tl), s(tr), s(br), s(bl)
	}
	return tl, tr, br, bl
}
