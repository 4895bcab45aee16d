package cmd

import (
	"flag"
	"fmt"

	"github.com/go-drift/shapeview/pkg/config"
	"github.com/go-drift/shapeview/pkg/shape"
)

func init() {
	RegisterCommand(&Command{
		Name:  "padding",
		Short: "Print the padding a style resolves to",
		Long: `Print the base padding of a style document and the padding after the
shadow adjustment. The image is drawn inside the adjusted padding.

Flags:
  -style FILE   Style document (default: ./shapeview.yaml if present)`,
		Usage: "shapeview padding [-style FILE]",
		Run:   runPadding,
	})
}

func runPadding(args []string) error {
	fs := flag.NewFlagSet("padding", flag.ContinueOnError)
	fs.SetOutput(stderr)
	stylePath := fs.String("style", "", "style document")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolved, err := loadStyle(*stylePath)
	if err != nil {
		return err
	}
	padding := resolved.NewPainter().Padding()

	fmt.Fprintf(stdout, "shape:    %s\n", resolved.Style.Kind)
	fmt.Fprintf(stdout, "base:     left=%g top=%g right=%g bottom=%g\n",
		resolved.Padding.Left, resolved.Padding.Top, resolved.Padding.Right, resolved.Padding.Bottom)
	fmt.Fprintf(stdout, "resolved: left=%g top=%g right=%g bottom=%g\n",
		padding.Left, padding.Top, padding.Right, padding.Bottom)
	if s, ok := resolved.Style.Shadow.(shape.DirectionalShadow); ok && s.Enabled() {
		fmt.Fprintf(stdout, "edges:    %v\n", config.Edges(s.Edges).Names())
	}
	return nil
}
