package main

import (
	"fmt"

	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/libdiff"
	"github.com/signadot/plist/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) (bool, error) {
	if cfg.Reverse {
		a, b = b, a
	}
	d := libdiff.Diff(a, b)
	if len(d) == 0 {
		return false, nil
	}
	w := cc.Out
	if cfg.Patch {
		ops, err := patch.FromChanges(d)
		if err != nil {
			return false, err
		}
		j, err := patch.Marshal(ops)
		if err != nil {
			return false, err
		}
		if _, err := w.Write(append(j, '\n')); err != nil {
			return false, err
		}
		return true, nil
	}
	for _, c := range d {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return false, err
		}
	}
	return true, nil
}
