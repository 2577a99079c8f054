package main

import (
	"fmt"
	"io"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("get", args)
	if err != nil {
		return err
	}
	return eachObj(cc, args, cfg.parseOpts(), func(_ int, _ string, doc *ir.Node) error {
		res, err := doc.GetPath(path)
		if err != nil {
			return err
		}
		if res == nil {
			return nil
		}
		return writeNode(cfg.MainConfig, cc.Out, res)
	})
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("list", args)
	if err != nil {
		return err
	}
	return eachObj(cc, args, cfg.parseOpts(), func(_ int, _ string, doc *ir.Node) error {
		res, err := doc.ListPath(nil, path)
		if err != nil {
			return err
		}
		for _, n := range res {
			if err := writeNode(cfg.MainConfig, cc.Out, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func pathArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return path, args[1:], nil
}

func writeNode(cfg *MainConfig, w io.Writer, n *ir.Node) error {
	if err := encode.Encode(n, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return nil
}
