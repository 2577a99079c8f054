package main

import (
	"fmt"

	"github.com/signadot/plist/eval"
	"github.com/signadot/plist/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	expression := args[0]
	return eachObj(cc, args[1:], cfg.parseOpts(), func(_ int, file string, doc *ir.Node) error {
		if cfg.Match {
			ok, err := eval.Match(doc, expression)
			if err != nil {
				return err
			}
			if ok {
				_, err = fmt.Fprintln(cc.Out, file)
			}
			return err
		}
		res, err := queryDoc(doc, expression)
		if err != nil || res == nil {
			return err
		}
		return writeNode(cfg.MainConfig, cc.Out, res)
	})
}

// queryDoc evaluates expression against doc. A nil result gives a nil
// node.
func queryDoc(doc *ir.Node, expression string) (*ir.Node, error) {
	v, err := eval.Query(doc, expression)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	res, err := eval.ToNode(v)
	if err != nil {
		return nil, fmt.Errorf("expression result: %w", err)
	}
	return res, nil
}
