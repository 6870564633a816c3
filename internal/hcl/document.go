package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/modfuncs/internal/exprscan"
	"github.com/zclconf/go-cty/cty"
)

// Document is a parsed, and possibly evaluated, attribute file.
type Document struct {
	Path string
	// Names holds the attribute names in sorted order.
	Names       []string
	Expressions map[string]hcl.Expression
	// Values is nil until the document has been evaluated.
	Values map[string]cty.Value
	Scan   *exprscan.Container
}

// Evaluated reports whether the document's values are available.
func (d *Document) Evaluated() bool {
	return d.Values != nil
}

// Native returns the evaluated attributes as plain Go values.
func (d *Document) Native() (map[string]any, error) {
	out := make(map[string]any, len(d.Names))
	for _, name := range d.Names {
		v, err := ToNative(d.Values[name])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}
