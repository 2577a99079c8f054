package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/libdiff"
	"github.com/signadot/plist/parse"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	in, err := readFile(cc, file)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeFinalNewline(true)); err != nil {
		return err
	}
	out := buf.Bytes()
	if cfg.Diff {
		d := libdiff.Text(string(in), string(out))
		if d == "" {
			return nil
		}
		_, err := fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n%s", file, file, d)
		return err
	}
	if cfg.Write {
		if bytes.Equal(in, out) {
			return nil
		}
		fi, err := os.Stat(file)
		if err != nil {
			return err
		}
		theLog.Info("formatted", "file", file)
		return os.WriteFile(file, out, fi.Mode().Perm())
	}
	_, err = cc.Out.Write(out)
	return err
}
