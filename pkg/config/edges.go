package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/shapeview/pkg/shape"
)

// Edges is the directional shadow mode. In YAML it is either the attribute
// bitmask (left=1, right=2, top=4, bottom=8), a name list such as
// "left|top", or a sequence of names. "all" and "none" are accepted.
type Edges shape.Edge

var edgeNames = []struct {
	name string
	edge shape.Edge
}{
	{"left", shape.EdgeLeft},
	{"right", shape.EdgeRight},
	{"top", shape.EdgeTop},
	{"bottom", shape.EdgeBottom},
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Edges) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!int" {
			var n int
			if err := node.Decode(&n); err != nil {
				return err
			}
			if n < 0 || n > int(shape.EdgeAll) {
				return fmt.Errorf("line %d: shadow mode %d out of range 0-%d", node.Line, n, shape.EdgeAll)
			}
			*e = Edges(n)
			return nil
		}
		return e.parseNames(node.Line, strings.FieldsFunc(node.Value, func(r rune) bool {
			return r == '|' || r == ',' || r == ' '
		}))
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		return e.parseNames(node.Line, names)
	}
	return fmt.Errorf("line %d: shadow mode must be a number or a list of edges", node.Line)
}

func (e *Edges) parseNames(line int, names []string) error {
	var mask shape.Edge
	for _, name := range names {
		switch n := strings.ToLower(strings.TrimSpace(name)); n {
		case "", "none":
		case "all":
			mask |= shape.EdgeAll
		default:
			found := false
			for _, en := range edgeNames {
				if en.name == n {
					mask |= en.edge
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("line %d: unknown shadow edge %q", line, name)
			}
		}
	}
	*e = Edges(mask)
	return nil
}

// MarshalYAML writes the mode as a sequence of edge names.
func (e Edges) MarshalYAML() (any, error) {
	return e.Names(), nil
}

// Names lists the set edges in left, right, top, bottom order.
func (e Edges) Names() []string {
	var names []string
	for _, en := range edgeNames {
		if shape.Edge(e).Has(en.edge) {
			names = append(names, en.name)
		}
	}
	return names
}
