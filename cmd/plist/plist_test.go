package main

import (
	"errors"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/eval"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/parse"
)

func TestPathArg(t *testing.T) {
	path, rest, err := pathArg("get", []string{".glyphs[0]", "a.glyphs"})
	if err != nil {
		t.Fatal(err)
	}
	if path != "$.glyphs[0]" || len(rest) != 1 || rest[0] != "a.glyphs" {
		t.Errorf("got %q %v", path, rest)
	}
	if _, _, err := pathArg("get", nil); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
	if _, _, err := pathArg("get", []string{""}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestToJSON(t *testing.T) {
	n := ir.Dict("a", ir.Array(ir.FromInt(1), ir.FromFloat(2)))
	d, err := toJSON(n, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(d); got != `{"a":[1,2.0]}` {
		t.Errorf("got %s", got)
	}
	d, err = toJSON(n, true)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1,\n    2.0\n  ]\n}"
	if got := string(d); got != want {
		t.Errorf("got %q", got)
	}
}

func TestParseOpts(t *testing.T) {
	cfg := &MainConfig{}
	if n := len(cfg.parseOpts()); n != 0 {
		t.Errorf("got %d options", n)
	}
	cfg.MaxDepth = 3
	cfg.Trailing = true
	if n := len(cfg.parseOpts()); n != 2 {
		t.Errorf("got %d options", n)
	}
}

func TestQueryDoc(t *testing.T) {
	doc, err := parse.Parse([]byte(`{glyphs = ({glyphname = a; export = 0;}, {glyphname = b;}); unitsPerEm = 1000;}`))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		expr string
		want string
	}{
		{`doc.unitsPerEm * 2`, "2000"},
		{`len(doc.glyphs)`, "2"},
		{`map(filter(doc.glyphs, .export == 0), .glyphname)`, "(\na\n)"},
		{`doc.glyphs[1].glyphname`, "b"},
	}
	for _, c := range cases {
		res, err := queryDoc(doc, c.expr)
		if err != nil {
			t.Errorf("%s: %v", c.expr, err)
			continue
		}
		if got := encode.MustString(res); got != c.want {
			t.Errorf("%s: got %q want %q", c.expr, got, c.want)
		}
	}
	res, err := queryDoc(doc, `getpath("$.missing")`)
	if err != nil || res != nil {
		t.Errorf("missing: got %v, %v", res, err)
	}
	ok, err := eval.Match(doc, `doc.unitsPerEm == 1000`)
	if err != nil || !ok {
		t.Errorf("match: got %v, %v", ok, err)
	}
}
