package hcl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Jeffail/gabs/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON renders evaluated documents as indented JSON. A single
// document renders as an object of its attributes; several documents are
// keyed by path.
func MarshalJSON(docs []*Document) ([]byte, error) {
	root := gabs.New()
	if len(docs) == 1 {
		if err := setAttributes(root, docs[0], nil); err != nil {
			return nil, err
		}
	} else {
		for _, doc := range docs {
			if err := setAttributes(root, doc, []string{doc.Path}); err != nil {
				return nil, err
			}
		}
	}
	return []byte(root.StringIndent("", "  ") + "\n"), nil
}

func setAttributes(root *gabs.Container, doc *Document, prefix []string) error {
	if len(doc.Names) == 0 {
		if len(prefix) > 0 {
			if _, err := root.Object(prefix...); err != nil {
				return err
			}
		}
		return nil
	}
	for _, name := range doc.Names {
		data, err := ValueJSON(doc.Values[name])
		if err != nil {
			return fmt.Errorf("failed to render %q in %s: %w", name, doc.Path, err)
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		parsed, err := gabs.ParseJSONDecoder(dec)
		if err != nil {
			return fmt.Errorf("failed to render %q in %s: %w", name, doc.Path, err)
		}

		path := append(append([]string{}, prefix...), name)
		if _, err := root.Set(parsed.Data(), path...); err != nil {
			return fmt.Errorf("failed to render %q in %s: %w", name, doc.Path, err)
		}
	}
	return nil
}

// ValueJSON renders a single value as compact JSON.
func ValueJSON(v cty.Value) ([]byte, error) {
	v, _ = v.UnmarkDeep()
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	return ctyjson.Marshal(v, v.Type())
}

// MarshalYAML renders evaluated documents as YAML, shaped the same way as
// MarshalJSON.
func MarshalYAML(docs []*Document) ([]byte, error) {
	var out any
	if len(docs) == 1 {
		attrs, err := docs[0].Native()
		if err != nil {
			return nil, err
		}
		out = attrs
	} else {
		byPath := make(map[string]any, len(docs))
		for _, doc := range docs {
			attrs, err := doc.Native()
			if err != nil {
				return nil, err
			}
			byPath[doc.Path] = attrs
		}
		out = byPath
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatValue renders a value for display: primitives print as their plain
// string form, null as "null", and collections as compact JSON.
func FormatValue(v cty.Value) (string, error) {
	v, _ = v.UnmarkDeep()
	if v.IsNull() {
		return "null", nil
	}
	if v.Type().IsPrimitiveType() && v.IsKnown() {
		str, err := convert.Convert(v, cty.String)
		if err != nil {
			return "", err
		}
		return str.AsString(), nil
	}
	data, err := ValueJSON(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
