package main

import (
	"fmt"

	"github.com/signadot/plist/font"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	failed := 0
	for _, file := range args {
		f, err := checkFile(cfg, cc, file)
		if err != nil {
			theLog.Error("invalid", "file", file, "err", err)
			failed++
			continue
		}
		if cfg.Quiet {
			continue
		}
		unknown := f.Unknown()
		theLog.Info("ok",
			"file", file,
			"glyphs", len(f.Glyphs),
			"masters", len(f.Masters),
			"instances", len(f.Instances),
			"unknown", len(unknown))
		if !cfg.Verbose {
			continue
		}
		for _, p := range unknown {
			theLog.Info("unknown key", "file", file, "path", p)
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string) (*font.Font, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	return font.Parse(d, cfg.parseOpts()...)
}
