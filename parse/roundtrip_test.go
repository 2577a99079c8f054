package parse

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/ir"
)

// awkward strings read as numbers, keywords or nothing unless written quoted.
var awkward = []string{
	"", "0", "1.", ".5", "12", "-7", "+3", "1e5", "1E5", "e5", "inf", "-inf", "Infinity",
	"NaN", "nan", "AB", "1AB", "0123", "00.5", ".", "a b", `a"b`, `a\b`, "x;y", "line\nbreak",
	"tab\there", "caf\xe9", "\xff\xfe", "\x00", "{}", "()", "=",
}

type treeGen struct {
	r *rand.Rand
}

func (g *treeGen) str() string {
	if g.r.IntN(3) == 0 {
		return awkward[g.r.IntN(len(awkward))]
	}
	b := make([]byte, g.r.IntN(12))
	for i := range b {
		if g.r.IntN(2) == 0 {
			b[i] = byte(g.r.IntN(256))
		} else {
			b[i] = "abcXYZ019._$/:-"[g.r.IntN(15)]
		}
	}
	return string(b)
}

func (g *treeGen) float() float64 {
	switch g.r.IntN(10) {
	case 0:
		return math.Inf(1)
	case 1:
		return math.Inf(-1)
	case 2:
		return math.Copysign(0, -1)
	case 3:
		return math.NaN()
	case 4:
		return float64(g.r.IntN(2000) - 1000)
	}
	return g.r.NormFloat64() * math.Pow10(g.r.IntN(61)-30)
}

func (g *treeGen) node(depth int) *ir.Node {
	k := g.r.IntN(5)
	if depth == 0 {
		k = g.r.IntN(3)
	}
	switch k {
	case 0:
		return ir.FromString(g.str())
	case 1:
		i := int64(g.r.Uint64())
		if g.r.IntN(2) == 0 {
			i %= 1000
		}
		return ir.FromInt(i)
	case 2:
		return ir.FromFloat(g.float())
	case 3:
		vs := make([]*ir.Node, g.r.IntN(5))
		for i := range vs {
			vs[i] = g.node(depth - 1)
		}
		return ir.FromSlice(vs)
	default:
		m := map[string]*ir.Node{}
		for range g.r.IntN(5) {
			m[g.str()] = g.node(depth - 1)
		}
		return ir.FromMap(m)
	}
}

func TestRandomRoundTrip(t *testing.T) {
	g := &treeGen{r: rand.New(rand.NewPCG(7, 31))}
	for i := range 2000 {
		n := g.node(4)
		text, err := encode.String(n)
		if err != nil {
			t.Fatalf("#%d: encode: %v", i, err)
		}
		back, err := Parse([]byte(text))
		if err != nil {
			t.Fatalf("#%d: reparse of\n%s\n: %v", i, text, err)
		}
		if !ir.Equal(n, back) {
			t.Fatalf("#%d: round trip differs:\n%s\n%s", i, text, encode.MustString(back))
		}
	}
}

func TestAwkwardStringsStayStrings(t *testing.T) {
	for _, s := range awkward {
		text := encode.MustString(ir.FromString(s))
		back, err := Parse([]byte(text))
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if back.Type != ir.StringType || back.String != s {
			t.Errorf("%q: read back as %s %q", s, back.Type, encode.MustString(back))
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		`abc`,
		`""`,
		`"1."`,
		`1.`,
		`0123`,
		`1AB`,
		`-0.0`,
		`nan`,
		`"inf"`,
		`99999999999999999999`,
		`1e999`,
		`(a,b,)`,
		`{a = 1; "a b" = (x, "y\nz");}`,
		`{k = "\351\\\"";}`,
		"(\"\xff\", {\"\" = ();})",
		strings.Repeat("(", 20) + strings.Repeat(")", 20),
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		n, err := Parse(d)
		if err != nil {
			return
		}
		text, err := encode.String(n)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		back, err := Parse([]byte(text))
		if err != nil {
			t.Fatalf("reparse of\n%s\n: %v", text, err)
		}
		if !ir.Equal(n, back) {
			t.Fatalf("round trip differs:\n%s\n%s", text, encode.MustString(back))
		}
	})
}
