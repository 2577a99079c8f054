package font_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/plist/affine"
	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/font"
	"github.com/signadot/plist/gomap"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/parse"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	d, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return d
}

func TestNewFont(t *testing.T) {
	t.Parallel()

	want := strings.TrimSuffix(string(readFixture(t, "NewFont.glyphs")), "\n")
	got, err := font.New().Text()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	parsed, err := font.Parse([]byte(want))
	require.NoError(t, err)
	assert.Equal(t, font.New(), parsed)
}

func TestGlyphs2(t *testing.T) {
	t.Parallel()

	_, err := font.Parse(readFixture(t, "Glyphs2.glyphs"))
	require.ErrorIs(t, err, font.ErrGlyphs2)

	_, err = font.Load(filepath.Join("testdata", "Glyphs2.glyphs"))
	require.ErrorIs(t, err, font.ErrGlyphs2)
	assert.Contains(t, err.Error(), "Glyphs2.glyphs")
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	node, err := parse.Parse(readFixture(t, "TestSans.glyphs"))
	require.NoError(t, err)
	f, err := font.FromIR(node)
	require.NoError(t, err)
	out, err := f.ToIR()
	require.NoError(t, err)
	if !ir.Equal(node, out) {
		t.Fatalf("round trip differs:\n%s\n---\n%s", encode.MustString(node), encode.MustString(out))
	}
	// decoding does not touch the parsed tree
	again, err := font.FromIR(node)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestLookups(t *testing.T) {
	t.Parallel()

	f, err := font.Parse(readFixture(t, "TestSans.glyphs"))
	require.NoError(t, err)

	assert.Equal(t, "Test Sans", f.FamilyName)
	assert.Contains(t, f.Rest, "customParameters")
	assert.Nil(t, f.Glyph("missing"))

	a := f.Glyph("A")
	require.NotNil(t, a)
	assert.Equal(t, font.Codepoints{'A'}, a.Unicode)
	assert.True(t, a.Export)
	assert.Contains(t, a.Rest, "lastChange")

	m01 := a.Layer("m01")
	require.NotNil(t, m01)
	assert.True(t, m01.IsMasterLayer())
	require.Len(t, m01.Shapes, 2)
	assert.True(t, m01.Shapes[0].Path.Closed)
	assert.False(t, m01.Shapes[1].Path.Closed)
	assert.Equal(t, font.CurveSmooth, m01.Shapes[1].Path.Nodes[3].Type)
	assert.Equal(t, "apex", *m01.Shapes[0].Path.Nodes[2].Attr.Name)
	assert.Equal(t, font.Point{X: 250, Y: -10}, m01.Anchors[1].Pos)
	assert.Equal(t, font.Center, *m01.Anchors[1].Orientation)

	brace := a.Layer("5F3A-11")
	require.NotNil(t, brace)
	assert.False(t, brace.IsMasterLayer())
	assert.True(t, brace.IsIntermediate())
	assert.Equal(t, []float64{400}, brace.Coordinates())
	assert.True(t, a.Layer("B1").IsAlternate())
	assert.False(t, a.Layer("B1").IsColor())

	m02 := a.Layer("m02")
	assert.NotNil(t, m02.Shapes)
	assert.Empty(t, m02.Shapes)
	assert.Equal(t, font.IndexColor(3), *m02.Color)

	adieresis := f.Glyph("Adieresis")
	require.NotNil(t, adieresis)
	assert.False(t, adieresis.Export)
	assert.Equal(t, font.RGBA(255, 0, 0, 255), *adieresis.Color)
	assert.Equal(t, font.Codepoints{196, 228}, adieresis.Unicode)
	assert.Equal(t, []string{"accent", "composite"}, adieresis.Tags)
	comp := adieresis.Layers[0].Shapes[1].Component
	require.NotNil(t, comp)
	assert.Equal(t, "dieresiscomb", comp.Ref)
	assert.Equal(t, 12.5, *comp.Rotation)

	black := f.Master("m02")
	require.NotNil(t, black)
	assert.False(t, black.Visible)
	assert.True(t, f.Master("m01").Visible)
	xh, ok := black.Metric(f, font.XHeight)
	require.True(t, ok)
	assert.Equal(t, 520.0, xh.Pos)
	_, ok = black.Metric(f, font.CapHeight)
	assert.False(t, ok)

	v, ok := f.KerningLTR.Value("m01", "@MMK_L_A", "T")
	require.True(t, ok)
	assert.Equal(t, -60.5, v)
	_, ok = f.KerningLTR.Value("m02", "@MMK_L_A", "T")
	assert.False(t, ok)

	require.Len(t, f.Instances, 2)
	assert.Equal(t, int64(700), f.Instances[0].WeightClass)
	assert.Equal(t, int64(400), f.Instances[1].WeightClass)
	assert.Equal(t, int64(5), f.Instances[1].WidthClass)
	assert.Equal(t, font.Variable, *f.Instances[1].Type)
	assert.True(t, f.Settings.DisablesAutomaticAlignment)
	assert.Contains(t, f.Settings.Rest, "previewRemoveOverlap")
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.glyphs")
	require.NoError(t, font.New().Save(path))
	d, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, readFixture(t, "NewFont.glyphs"), d)

	f, err := font.Load(path)
	require.NoError(t, err)
	assert.Equal(t, font.New(), f)

	_, err = font.Load(filepath.Join(t.TempDir(), "missing.glyphs"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func decode[T any](t *testing.T, text string) (T, error) {
	t.Helper()
	node, err := parse.Parse([]byte(text))
	require.NoError(t, err)
	return gomap.Decode[T](node)
}

func TestName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"infinity", "nan"} {
		g, err := decode[font.Glyph](t, "{glyphname = "+name+"; layers = ();}")
		require.NoError(t, err)
		assert.Equal(t, font.Name(name), g.Name)
	}
	_, err := decode[font.Glyph](t, "{glyphname = 12; layers = ();}")
	assert.ErrorIs(t, err, convert.ErrWrongVariant)
}

func TestColor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want font.Color
		err  error
	}{
		{text: "7", want: font.IndexColor(7)},
		{text: "(10, 20)", want: font.GreyAlpha(10, 20)},
		{text: "(1, 2, 3, 4)", want: font.RGBA(1, 2, 3, 4)},
		{text: "(1, 2, 3, 4, 5)", want: font.CMYKA(1, 2, 3, 4, 5)},
		{text: "(1, 2, 3)", err: convert.ErrUnsupportedArray},
		{text: "(256, 0)", err: convert.ErrOutOfBounds},
		{text: "(1, 2, 3, 256)", err: convert.ErrOutOfBounds},
		{text: "(1.5, 2)", err: convert.ErrWrongVariant},
		{text: "red", err: convert.ErrWrongVariant},
	}
	for _, c := range cases {
		got, err := decode[font.Color](t, c.text)
		if c.err != nil {
			assert.ErrorIs(t, err, c.err, c.text)
			continue
		}
		require.NoError(t, err, c.text)
		assert.Equal(t, c.want, got, c.text)
		n, err := got.ToPlist()
		require.NoError(t, err)
		want, err := parse.Parse([]byte(c.text))
		require.NoError(t, err)
		assert.True(t, ir.Equal(want, n), c.text)
	}
}

func TestNode(t *testing.T) {
	t.Parallel()

	n, err := decode[font.Node](t, "(1, 2.5, qs)")
	require.NoError(t, err)
	assert.Equal(t, font.Node{Pt: font.Point{X: 1, Y: 2.5}, Type: font.QCurveSmooth}, n)
	assert.True(t, n.Type.Smooth())

	cases := map[string]error{
		"(1)":                 convert.ErrMissingElement,
		"(1, 2)":              convert.ErrMissingElement,
		"(1, x, l)":           convert.ErrWrongVariant,
		"(1, 2, zz)":          convert.ErrUnknownValue,
		"(1, 2, l, {}, 5)":    convert.ErrTooManyElements,
		"(1, 2, l, {a = 1;})": nil,
		"{}":                  convert.ErrWrongVariant,
	}
	for text, want := range cases {
		_, err := decode[font.Node](t, text)
		if want == nil {
			assert.NoError(t, err, text)
			continue
		}
		assert.ErrorIs(t, err, want, text)
	}

	var ee *convert.ElementError
	_, err = decode[font.Node](t, "(1, 2)")
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "type", ee.Element)
}

func TestShape(t *testing.T) {
	t.Parallel()

	s, err := decode[font.Shape](t, "{ref = a; angle = 90;}")
	require.NoError(t, err)
	require.NotNil(t, s.Component)
	assert.Nil(t, s.Path)

	s, err = decode[font.Shape](t, "{nodes = ((0, 0, l));}")
	require.NoError(t, err)
	require.NotNil(t, s.Path)
	assert.True(t, s.Path.Closed)

	_, err = decode[font.Shape](t, "(1, 2)")
	assert.ErrorIs(t, err, convert.ErrWrongVariant)
	_, err = decode[font.Shape](t, "{closed = 1;}")
	assert.ErrorIs(t, err, convert.ErrMissingField)
	assert.Contains(t, err.Error(), "bad path")

	_, err = font.Shape{}.ToPlist()
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Parallel()

	p := font.NewPath(false)
	p.Add(font.Point{X: 0, Y: 0}, font.Line)
	p.Add(font.Point{X: 1, Y: 0}, font.OffCurve)
	p.Add(font.Point{X: 2, Y: 0}, font.Curve)
	p.RotateLeft(1)
	assert.Equal(t, font.OffCurve, p.Nodes[0].Type)
	assert.Equal(t, font.Line, p.Nodes[2].Type)
	p.Reverse()
	assert.Equal(t, font.Line, p.Nodes[0].Type)
	assert.Equal(t, font.OffCurve, p.Nodes[2].Type)
	p.RotateLeft(-1)
	assert.Equal(t, font.OffCurve, p.Nodes[0].Type)

	n, err := gomap.ToIR(p)
	require.NoError(t, err)
	assert.Equal(t, "{\nclosed = 0;\nnodes = (\n(\n1,\n0,\no\n),\n(\n0,\n0,\nl\n),\n(\n2,\n0,\nc\n)\n);\n}", encode.MustString(n))
}

func TestComponentTransform(t *testing.T) {
	t.Parallel()

	bare := &font.Component{Ref: "a"}
	assert.Equal(t, affine.Identity(), bare.Transform())
	assert.Equal(t, bare, font.ComponentFromTransform("a", affine.Identity()))

	angle := 90.0
	c := &font.Component{
		Ref:      "acute",
		Rotation: &angle,
		Pos:      &font.Point{X: 100, Y: 50},
		Scale:    &font.Scale{Horizontal: 2, Vertical: 2},
	}
	a := c.Transform()
	assert.Equal(t, affine.Affine{XScale: 0, XYScale: 2, YXScale: -2, YScale: 0, XOffset: 100, YOffset: 50}, a)

	back := font.ComponentFromTransform("acute", a)
	require.NotNil(t, back.Rotation)
	assert.InDelta(t, 90, *back.Rotation, 1e-9)
	assert.InDelta(t, 2, back.Scale.Horizontal, 1e-9)
	assert.InDelta(t, 2, back.Scale.Vertical, 1e-9)
	assert.Equal(t, font.Point{X: 100, Y: 50}, *back.Pos)
	assert.True(t, back.Transform().Near(a, 1e-9))
}

func TestCodepoints(t *testing.T) {
	t.Parallel()

	_, err := decode[font.Codepoints](t, "55296")
	assert.ErrorIs(t, err, convert.ErrInvalidCodepoint)
	_, err = decode[font.Codepoints](t, "(65, 1114112)")
	assert.ErrorIs(t, err, convert.ErrInvalidCodepoint)
	_, err = decode[font.Codepoints](t, "A0")
	assert.ErrorIs(t, err, convert.ErrWrongVariant)

	_, err = gomap.ToIR(font.Codepoints{})
	assert.ErrorIs(t, err, convert.ErrUnsupportedArray)
}

func TestKerning(t *testing.T) {
	t.Parallel()

	_, err := decode[font.KerningTable](t, "{m01 = {A = {V = x;};};}")
	var ke *convert.KerningError
	require.True(t, errors.As(err, &ke))
	assert.Equal(t, "m01", ke.Master)
	assert.Equal(t, "A", ke.Left)
	assert.Equal(t, "V", ke.Right)
	assert.ErrorIs(t, err, convert.ErrWrongVariant)

	_, err = decode[font.KerningTable](t, "{m01 = (1);}")
	require.True(t, errors.As(err, &ke))
	assert.Equal(t, "m01", ke.Master)
	assert.Empty(t, ke.Left)
}

func TestEnums(t *testing.T) {
	t.Parallel()

	d, err := decode[font.Direction](t, "RTL")
	require.NoError(t, err)
	assert.Equal(t, font.RTL, d)
	assert.Equal(t, "RTL", d.String())

	_, err = decode[font.Case](t, "title")
	assert.ErrorIs(t, err, convert.ErrUnknownValue)

	m, err := decode[font.MetricType](t, `"cap height"`)
	require.NoError(t, err)
	assert.Equal(t, font.CapHeight, m)

	_, err = font.Direction(42).ToPlist()
	assert.ErrorIs(t, err, convert.ErrUnknownValue)
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	assert.Empty(t, font.New().Unknown())

	f, err := font.Parse(readFixture(t, "TestSans.glyphs"))
	require.NoError(t, err)
	unknown := f.Unknown()
	assert.Contains(t, unknown, "$.customParameters")
	assert.Contains(t, unknown, "$.glyphs[0].lastChange")
	assert.Contains(t, unknown, "$.fontMaster[1].iconName")
	assert.Contains(t, unknown, "$.settings.previewRemoveOverlap")

	node, err := f.ToIR()
	require.NoError(t, err)
	for _, p := range unknown {
		v, err := node.GetPath(p)
		require.NoError(t, err)
		assert.NotNil(t, v, p)
	}
}
