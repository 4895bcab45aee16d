// Package config reads shapeview style documents.
//
// A style document is a small YAML file naming the shape, border and shadow
// of one shaped image:
//
//	version: v1
//	shape: round
//	borderWidth: 2
//	borderColor: "#000"
//	leftTopCornerRadius: 12
//	rightTopCornerRadius: 12
//	shadow:
//	  model: blurred
//	  radius: 8
//	  dy: 3
//	padding: {left: 4, right: 4}
//
// Numeric values are clamped rather than rejected: a negative width, depth
// or radius disables that feature. Unknown names and unparseable colours
// are errors of kind errors.KindConfig.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/shapeview/pkg/errors"
	"github.com/go-drift/shapeview/pkg/graphics"
	"github.com/go-drift/shapeview/pkg/shape"
)

// FileName is the style document LoadOptional looks for.
const FileName = "shapeview.yaml"

// DefaultVersion is assumed when a document has no version.
const DefaultVersion = "v1.0.0"

// Shadow models accepted by ShadowConfig.Model.
const (
	ModelNone        = "none"
	ModelDirectional = "directional"
	ModelBlurred     = "blurred"
)

// Document is the on-disk form of a style.
type Document struct {
	Version     string  `yaml:"version,omitempty"`
	Shape       string  `yaml:"shape,omitempty"`
	BorderWidth float64 `yaml:"borderWidth,omitempty"`
	BorderColor string  `yaml:"borderColor,omitempty"`

	LeftTopCornerRadius     float64 `yaml:"leftTopCornerRadius,omitempty"`
	RightTopCornerRadius    float64 `yaml:"rightTopCornerRadius,omitempty"`
	LeftBottomCornerRadius  float64 `yaml:"leftBottomCornerRadius,omitempty"`
	RightBottomCornerRadius float64 `yaml:"rightBottomCornerRadius,omitempty"`

	Shadow  ShadowConfig  `yaml:"shadow,omitempty"`
	Padding PaddingConfig `yaml:"padding,omitempty"`

	SupportZoomGesture bool `yaml:"supportZoomGesture,omitempty"`
}

// ShadowConfig holds the fields of both shadow models. Depth and Mode apply
// to the directional model; Radius, Dx and Dy to the blurred one.
type ShadowConfig struct {
	// Model is "none", "directional" or "blurred". When empty it is inferred:
	// a positive Radius selects blurred, a positive Depth directional.
	Model string `yaml:"model,omitempty"`
	Color string `yaml:"color,omitempty"`

	Depth float64 `yaml:"depth,omitempty"`
	Mode  Edges   `yaml:"mode,omitempty"`

	Radius float64 `yaml:"radius,omitempty"`
	Dx     float64 `yaml:"dx,omitempty"`
	Dy     float64 `yaml:"dy,omitempty"`
}

// PaddingConfig is the base padding before any shadow adjustment.
type PaddingConfig struct {
	Left   float64 `yaml:"left,omitempty"`
	Top    float64 `yaml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
}

// Resolved is a validated document with defaults applied.
type Resolved struct {
	Version string
	Style   shape.Style
	// Padding is the base padding; the shadow adjustment is applied by
	// shape.ResolvePadding.
	Padding graphics.EdgeInsets
}

// NewPainter returns a painter configured with the resolved style.
func (r Resolved) NewPainter() *shape.Painter {
	return shape.NewPainter(r.Style, r.Padding)
}

// Load reads and parses the style document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ShapeError{Op: "config.Load", Kind: errors.KindConfig, Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		var se *errors.ShapeError
		if stderrors.As(err, &se) {
			se.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// LoadOptional reads shapeview.yaml from dir if present. A missing file
// yields an empty document, which resolves to the default style.
func LoadOptional(dir string) (*Document, error) {
	path := filepath.Join(dir, FileName)
	doc, err := Load(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Document{}, nil
		}
		return nil, err
	}
	return doc, nil
}

// Parse decodes a style document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, &errors.ShapeError{Op: "config.Parse", Kind: errors.KindConfig, Err: err}
	}
	return &doc, nil
}

// Resolve validates the document and builds the style it describes.
func (d *Document) Resolve() (Resolved, error) {
	fail := func(err error) (Resolved, error) {
		return Resolved{}, &errors.ShapeError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
	}

	version, err := resolveVersion(d.Version)
	if err != nil {
		return fail(err)
	}

	kind, err := shape.ParseKind(d.Shape)
	if err != nil {
		return fail(&errors.FieldError{Field: "shape", Value: d.Shape, Reason: "want normal, circle or round"})
	}

	borderColor, err := colorOr(d.BorderColor, shape.DefaultBorderColor)
	if err != nil {
		return fail(&errors.FieldError{Field: "borderColor", Value: d.BorderColor, Reason: err.Error()})
	}

	shadow, err := d.Shadow.resolve()
	if err != nil {
		return fail(err)
	}

	style := shape.Style{
		Kind: kind,
		Radii: shape.CornerRadii{
			TopLeft:     d.LeftTopCornerRadius,
			TopRight:    d.RightTopCornerRadius,
			BottomRight: d.RightBottomCornerRadius,
			BottomLeft:  d.LeftBottomCornerRadius,
		},
		Border:             shape.BorderSpec{Width: max(d.BorderWidth, 0), Color: borderColor},
		Shadow:             shadow,
		SupportZoomGesture: d.SupportZoomGesture,
	}

	return Resolved{
		Version: version,
		Style:   style,
		Padding: graphics.EdgeInsets{
			Left:   max(d.Padding.Left, 0),
			Top:    max(d.Padding.Top, 0),
			Right:  max(d.Padding.Right, 0),
			Bottom: max(d.Padding.Bottom, 0),
		},
	}, nil
}

func (s ShadowConfig) resolve() (shape.ShadowSpec, error) {
	model := strings.ToLower(strings.TrimSpace(s.Model))
	if model == "" {
		switch {
		case s.Radius > 0:
			model = ModelBlurred
		case s.Depth > 0:
			model = ModelDirectional
		default:
			model = ModelNone
		}
	}

	color, err := colorOr(s.Color, shape.DefaultShadowColor)
	if err != nil {
		return nil, &errors.FieldError{Field: "shadow.color", Value: s.Color, Reason: err.Error()}
	}

	switch model {
	case ModelNone:
		return nil, nil
	case ModelDirectional:
		return shape.DirectionalShadow{Depth: max(s.Depth, 0), Color: color, Edges: shape.Edge(s.Mode)}, nil
	case ModelBlurred:
		return shape.BlurredShadow{Radius: max(s.Radius, 0), Color: color, Dx: s.Dx, Dy: s.Dy}, nil
	}
	return nil, &errors.FieldError{Field: "shadow.model", Value: s.Model, Reason: "want none, directional or blurred"}
}

func resolveVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return DefaultVersion, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", &errors.FieldError{Field: "version", Value: v, Reason: "not a semantic version"}
	}
	if semver.Major(v) != "v1" {
		return "", &errors.FieldError{Field: "version", Value: v, Reason: fmt.Sprintf("unsupported major version %s", semver.Major(v))}
	}
	return semver.Canonical(v), nil
}
