package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/parse"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// eachObj calls f with the document in each of files, or stdin if there
// are none.
func eachObj(cc *cli.Context, files []string, opts []parse.ParseOption, f func(i int, file string, doc *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		doc, err := getObjFile(cc, file, opts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(i, file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

// getish reads a plist argument given inline (-s), as a file (-f), or
// inline by default.
func getish(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if !f {
		return []byte(arg), nil
	}
	d, err := readFile(cc, arg)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func getPattern(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (*ir.Node, error) {
	d, err := getish(s, f, cc, arg)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse([]byte(strings.TrimSpace(string(d))), opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", arg, err)
	}
	return res, nil
}
