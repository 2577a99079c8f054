package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			nodes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, item := range nodes {
				res[i] = ir.ToAny(item)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("plist", func(params ...any) (any, error) {
			n, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return encode.String(n)
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
