// Package libdiff computes structural differences between plist trees.
package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return "?"
	}
}

// Change is one difference at Path. From is nil for an Insert and To is
// nil for a Delete.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func MakeChange(path string, from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Op: Insert, Path: path, To: to}
	case to == nil:
		return Change{Op: Delete, Path: path, From: from}
	default:
		return Change{Op: Replace, Path: path, From: from, To: to}
	}
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, brief(c.To))
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, brief(c.From))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, brief(c.From), brief(c.To))
	}
}

// brief renders n on one line.
func brief(n *ir.Node) string {
	s, err := encode.String(n)
	if err != nil {
		return "<" + n.Type.String() + ">"
	}
	return strings.ReplaceAll(s, "\n", " ")
}

// Reverse returns the changes that undo cs, in reverse order. Array
// indices are not adjusted, so the result describes the undo but, when cs
// changes the length of an array, does not apply cleanly.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		res[len(cs)-1-i] = MakeChange(c.Path, c.To, c.From)
	}
	return res
}
