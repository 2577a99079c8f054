package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/plist/ir"

	json "github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
)

func convertCmd(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	var conv func(*ir.Node) ([]byte, error)
	switch cfg.To {
	case "json", "j":
		conv = func(n *ir.Node) ([]byte, error) { return toJSON(n, cfg.Indent) }
	case "yaml", "y":
		conv = ir.ToYAML
	default:
		return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, cfg.To)
	}
	return eachObj(cc, args, cfg.parseOpts(), func(i int, _ string, doc *ir.Node) error {
		d, err := conv(doc)
		if err != nil {
			return err
		}
		if i > 0 && cfg.To[0] == 'y' {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if !bytes.HasSuffix(d, []byte("\n")) {
			d = append(d, '\n')
		}
		_, err = cc.Out.Write(d)
		return err
	})
}

func toJSON(n *ir.Node, indent bool) ([]byte, error) {
	d, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if !indent {
		return d, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
