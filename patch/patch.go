// Package patch applies RFC 6902 JSON patches to plist trees.
//
// Documents cross into JSON through the ir JSON bridge, which keeps
// Integer and Float apart, so a patch that does not touch a value leaves
// its type alone.
package patch

import (
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	json "github.com/goccy/go-json"

	"github.com/signadot/plist/debug"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/libdiff"
)

// Apply applies the JSON patch patchJSON to doc. doc is not modified.
func Apply(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	return apply(doc, ops)
}

// ApplyIR applies a patch written as a plist: an array of dictionaries
// with op, path and value keys.
func ApplyIR(doc, p *ir.Node) (*ir.Node, error) {
	d, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return Apply(doc, d)
}

func apply(doc *ir.Node, ops jsonpatch.Patch) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json patch: %d ops\n", len(ops))
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(out)
}

// Operation is one RFC 6902 operation.
type Operation struct {
	Op    string   `json:"op"`
	Path  string   `json:"path"`
	Value *ir.Node `json:"value,omitempty"`
}

// FromChanges returns the operations performing cs, in order.
func FromChanges(cs []libdiff.Change) ([]Operation, error) {
	res := make([]Operation, 0, len(cs))
	for _, c := range cs {
		ptr, err := Pointer(c.Path)
		if err != nil {
			return nil, err
		}
		switch c.Op {
		case libdiff.Insert:
			res = append(res, Operation{Op: "add", Path: ptr, Value: c.To})
		case libdiff.Delete:
			res = append(res, Operation{Op: "remove", Path: ptr})
		case libdiff.Replace:
			res = append(res, Operation{Op: "replace", Path: ptr, Value: c.To})
		default:
			return nil, fmt.Errorf("unknown change op %v", c.Op)
		}
	}
	return res, nil
}

// Marshal writes ops as a JSON patch document.
func Marshal(ops []Operation) ([]byte, error) {
	return json.Marshal(ops)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer converts a path such as $.glyphs[0].name into the JSON pointer
// /glyphs/0/name. Paths with wildcards have no pointer.
func Pointer(path string) (string, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return "", err
	}
	buf := &strings.Builder{}
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree, x.IndexAll:
			return "", fmt.Errorf("path %q has no json pointer", path)
		case x.Field != nil:
			buf.WriteByte('/')
			buf.WriteString(pointerEscaper.Replace(*x.Field))
		case x.Index != nil:
			buf.WriteByte('/')
			buf.WriteString(strconv.Itoa(*x.Index))
		}
	}
	return buf.String(), nil
}
