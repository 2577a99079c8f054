package patch

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/libdiff"
	"github.com/signadot/plist/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{glyphs = ({glyphname = a; width = 500;}); unitsPerEm = 1000;}`)
	orig := doc.Clone()
	p := `[
		{"op": "replace", "path": "/glyphs/0/width", "value": 600.5},
		{"op": "add", "path": "/glyphs/1", "value": {"glyphname": "b", "width": 10}},
		{"op": "remove", "path": "/unitsPerEm"}
	]`
	got, err := Apply(doc, []byte(p))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{glyphs = ({glyphname = a; width = 600.5;}, {glyphname = b; width = 10;});}`)
	if !ir.Equal(want, got) {
		t.Errorf("got\n%s", encode.MustString(got))
	}
	if !ir.Equal(orig, doc) {
		t.Error("input modified")
	}
}

func TestApplyIR(t *testing.T) {
	doc := mustParse(t, `{a = 1;}`)
	p := mustParse(t, `({op = add; path = "/b"; value = (1, 2.5);})`)
	got, err := ApplyIR(doc, p)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{a = 1; b = (1, 2.5);}`)
	if !ir.Equal(want, got) {
		t.Errorf("got\n%s", encode.MustString(got))
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `{a = 1;}`)
	if _, err := Apply(doc, []byte(`{`)); err == nil {
		t.Error("expected decode error")
	}
	if _, err := Apply(doc, []byte(`[{"op": "remove", "path": "/missing"}]`)); err == nil {
		t.Error("expected apply error")
	}
}

func TestFromChanges(t *testing.T) {
	cases := []struct{ from, to string }{
		{`{a = 1; b = (1, 2, 3); c = {x = y;}; d = old;}`, `{a = 2; b = (1, 4, 2, 3); c = {x = z;}; e = new;}`},
		{`{l = (x, y, a);}`, `{l = (p, a);}`},
		{`{l = (x, y, z, a, b);}`, `{l = (a, q, b);}`},
		{`{l = ({n = 1;}, {n = 2;}, 3);}`, `{l = ({n = 1;}, 3, {n = 5;});}`},
		{`{"a/b" = 1; "t~" = 2;}`, `{"a/b" = 3; "t~" = 4;}`},
	}
	for _, c := range cases {
		from, to := mustParse(t, c.from), mustParse(t, c.to)
		ops, err := FromChanges(libdiff.Diff(from, to))
		if err != nil {
			t.Fatal(err)
		}
		d, err := Marshal(ops)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Apply(from, d)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if !ir.Equal(to, got) {
			t.Errorf("%s -> %s via %s: got\n%s", c.from, c.to, d, encode.MustString(got))
		}
	}
}

func TestPointer(t *testing.T) {
	cases := map[string]string{
		"$":                "",
		"$.glyphs[0].name": "/glyphs/0/name",
		"$.'a/b'.c":        "/a~1b/c",
		"$.'t~'":           "/t~0",
	}
	got := map[string]string{}
	for in := range cases {
		p, err := Pointer(in)
		if err != nil {
			t.Fatal(err)
		}
		got[in] = p
	}
	if diff := cmp.Diff(cases, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if _, err := Pointer("$.a[*]"); err == nil {
		t.Error("expected wildcard error")
	}
}
