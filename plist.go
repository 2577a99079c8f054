// Package plist reads and writes the NeXT/OpenStep property list text used
// by Glyphs font sources, and maps it to Go records.
//
// The value tree lives in package ir. Text goes through parse and encode,
// records through gomap, whose struct tags describe wire keys, defaults and
// rest capture. Package font defines the Glyphs 3 record set.
package plist

import (
	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/gomap"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/parse"
)

// Parse reads one value from text.
func Parse(text []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(text, opts...)
}

// ToText returns the canonical text of node.
func ToText(node *ir.Node) string {
	return encode.MustString(node)
}

// Decode converts node into a T.
func Decode[T any](node *ir.Node) (T, error) {
	return gomap.Decode[T](node)
}

// Encode converts v into a tree.
func Encode[T any](v T) (*ir.Node, error) {
	return gomap.Encode(v)
}

// Unmarshal parses text and decodes it into a T.
func Unmarshal[T any](text []byte, opts ...parse.ParseOption) (T, error) {
	var zero T
	node, err := parse.Parse(text, opts...)
	if err != nil {
		return zero, err
	}
	return gomap.Decode[T](node)
}

// Marshal encodes v and returns its canonical text.
func Marshal(v any) ([]byte, error) {
	node, err := gomap.ToIR(v)
	if err != nil {
		return nil, err
	}
	s, err := encode.String(node)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
