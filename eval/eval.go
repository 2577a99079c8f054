// Package eval evaluates expr-lang expressions against plist documents.
//
// The document is bound as doc, in the plain form ir.ToAny gives:
// dictionaries are map[string]any, arrays []any, integers int64. The
// expr builtins apply (len, keys, sort, filter, map, ...) along with
//
//	getpath(path)   the value at an ir path, such as "$.glyphs[0]"
//	listpath(path)  every value matching a path, such as "$..ref"
//	plist(v)        the canonical text of v
//	getenv(name)    an environment variable
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/plist/debug"
	"github.com/signadot/plist/ir"
)

// Env holds the variables an expression sees. It must stay an alias: expr
// resolves members only on map[string]any itself.
type Env = map[string]any

// Query evaluates expression with doc bound.
func Query(doc *ir.Node, expression string) (any, error) {
	env := Env{"doc": ir.ToAny(doc)}
	opts := append(exprOpts(doc), expr.Env(env))
	prg, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q\n", expression)
	}
	return expr.Run(prg, env)
}

// Match evaluates expression and reports whether the result is true: a
// bool, or a value ir.Truth accepts.
func Match(doc *ir.Node, expression string) (bool, error) {
	v, err := Query(doc, expression)
	if err != nil {
		return false, err
	}
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	}
	n, err := ToNode(v)
	if err != nil {
		return false, err
	}
	return ir.Truth(n), nil
}

// ToNode converts a query result to a tree.
func ToNode(v any) (*ir.Node, error) {
	return ir.FromAny(v)
}
