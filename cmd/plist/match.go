package main

import (
	"fmt"

	"github.com/signadot/plist"
	"github.com/signadot/plist/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	pattern, err := getPattern(cfg.String, cfg.File, cc, args[0], cfg.parseOpts())
	if err != nil {
		return err
	}
	opts := []plist.MatchOpt{plist.MatchExactArrays(cfg.Exact)}
	return eachObj(cc, args[1:], cfg.parseOpts(), func(_ int, _ string, doc *ir.Node) error {
		if !plist.Match(doc, pattern, opts...) {
			return nil
		}
		if cfg.Trim {
			doc = plist.Trim(pattern, doc, opts...)
		}
		return writeNode(cfg.MainConfig, cc.Out, doc)
	})
}
