package plist

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/plist/ir"
)

type glyph struct {
	Name  string              `plist:"field=glyphname"`
	Width float64             `plist:"default=600"`
	Rest  map[string]*ir.Node `plist:"rest"`
}

func TestUnmarshalMarshal(t *testing.T) {
	in := "{\nglyphname = a;\nlib = x;\n}"
	g, err := Unmarshal[glyph]([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "a" || g.Width != 600 {
		t.Errorf("got %+v", g)
	}
	if !ir.Equal(g.Rest["lib"], ir.FromString("x")) {
		t.Errorf("rest %v", g.Rest)
	}
	out, err := Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, string(out)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestParseToText(t *testing.T) {
	n, err := Parse([]byte(`{b = (1, 2.5); a = "x y";}`))
	if err != nil {
		t.Fatal(err)
	}
	want := "{\na = \"x y\";\nb = (\n1,\n2.5\n);\n}"
	if diff := cmp.Diff(want, ToText(n)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	g, err := Decode[glyph](ir.Dict("glyphname", ir.FromString("b"), "width", ir.FromInt(500)))
	if err != nil {
		t.Fatal(err)
	}
	back, err := Encode(g)
	if err != nil {
		t.Fatal(err)
	}
	if got := ToText(back); got != "{\nglyphname = b;\nwidth = 500;\n}" {
		t.Errorf("got %q", got)
	}
}
