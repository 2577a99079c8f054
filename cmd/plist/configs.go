package main

import (
	"io"
	"os"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	MaxDepth int  `cli:"name=maxdepth desc='maximum nesting depth (default 512)'"`
	Trailing bool `cli:"name=trailing desc='allow content after the top-level value'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	if cfg.Trailing {
		res = append(res, parse.AllowTrailing())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFinalNewline(true),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d desc='print a diff instead of the formatted text'"`
	Write bool `cli:"name=w desc='rewrite files in place'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet   bool `cli:"name=q desc='only report failures'"`
	Verbose bool `cli:"name=v desc='list the paths of unknown keys'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	Exact  bool `cli:"name=exact desc='array patterns match element for element'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=patch desc='print the diff as a json patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Match bool `cli:"name=m desc='print the names of files for which the expression is true'"`

	Query *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To     string `cli:"name=to desc='output format: json or yaml'"`
	Indent bool   `cli:"name=i desc='indent json output'"`

	Convert *cli.Command
}
