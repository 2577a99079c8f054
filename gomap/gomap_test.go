package gomap

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/parse"
)

type withRest struct {
	Name string
	Rest map[string]*ir.Node `plist:"rest"`
}

type withoutRest struct {
	Name string
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func TestRestPreserved(t *testing.T) {
	in := mustParse(t, `{name = a; extra = (1, 2); other = {x = y;};}`)
	v, err := Decode[withRest](in)
	if err != nil {
		t.Fatal(err)
	}
	if v.Name != "a" {
		t.Errorf("name %q", v.Name)
	}
	if diff := cmp.Diff([]string{"extra", "other"}, ir.FromMap(v.Rest).Keys()); diff != "" {
		t.Errorf("rest keys (-want +got)\n%s", diff)
	}
	out, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(in, out) {
		t.Errorf("got\n%s", encode.MustString(out))
	}
	if in.Get("name") == nil {
		t.Error("decode mutated its input")
	}
}

func TestUnrecognisedFields(t *testing.T) {
	in := mustParse(t, `{name = a; zz = 1; extra = 2;}`)
	_, err := Decode[withoutRest](in)
	var ue *convert.UnrecognisedFieldsError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v", err)
	}
	if diff := cmp.Diff([]string{"extra", "zz"}, ue.Keys); diff != "" {
		t.Errorf("keys (-want +got)\n%s", diff)
	}
	if ue.Record != "withoutRest" {
		t.Errorf("record %q", ue.Record)
	}
}

type defaults struct {
	Width   float64  `plist:"default"`
	Export  bool     `plist:"default=true"`
	Weight  uint16   `plist:"default=400"`
	Kind    string   `plist:"default=master"`
	Closed  bool     `plist:"always,default=true"`
	Tags    []string `plist:"default"`
	Nums    []int64  `plist:"default='(1, 2)'"`
	Comment *string
}

func TestDefaultSuppression(t *testing.T) {
	v, err := Decode[defaults](ir.Dict())
	if err != nil {
		t.Fatal(err)
	}
	want := defaults{Export: true, Weight: 400, Kind: "master", Closed: true, Nums: []int64{1, 2}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	out, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(out, ir.Dict("closed", ir.FromInt(1))) {
		t.Errorf("defaults: got\n%s", encode.MustString(out))
	}

	v.Width = 600
	v.Export = false
	v.Nums = append(v.Nums, 3)
	s := "hi"
	v.Comment = &s
	out, err = Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	want2 := ir.Dict(
		"closed", ir.FromInt(1),
		"width", ir.FromInt(600),
		"export", ir.FromInt(0),
		"nums", ir.Array(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)),
		"comment", ir.FromString("hi"),
	)
	if !ir.Equal(out, want2) {
		t.Errorf("changed: got\n%s", encode.MustString(out))
	}
}

func TestDefaultNotShared(t *testing.T) {
	a, err := Decode[defaults](ir.Dict())
	if err != nil {
		t.Fatal(err)
	}
	a.Nums[0] = 99
	b, err := Decode[defaults](ir.Dict())
	if err != nil {
		t.Fatal(err)
	}
	if b.Nums[0] != 1 {
		t.Errorf("default slice shared between decodes: %v", b.Nums)
	}
}

type treeNode struct {
	Name     string
	Children []treeNode `plist:"default='({name = leaf; children = ();})'"`
}

func TestRecursiveDefault(t *testing.T) {
	type result struct {
		v   treeNode
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := Decode[treeNode](ir.Dict("name", ir.FromString("root")))
		done <- result{v, err}
	}()
	var r result
	select {
	case r = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("decode of self-referencing default did not return")
	}
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := treeNode{Name: "root", Children: []treeNode{{Name: "leaf", Children: []treeNode{}}}}
	if diff := cmp.Diff(want, r.v); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	out, err := Encode(r.v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(out, ir.Dict("name", ir.FromString("root"))) {
		t.Errorf("default children emitted:\n%s", encode.MustString(out))
	}
}

type onlyArray struct {
	Items []int64
}

func TestEmptyArrayRoundTrip(t *testing.T) {
	in := mustParse(t, `{items = ();}`)
	v, err := Decode[onlyArray](in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(out); got != "{\nitems = (\n);\n}" {
		t.Errorf("got %q", got)
	}
}

type bounded struct {
	Weight uint16
}

func TestBoundedErrors(t *testing.T) {
	_, err := Decode[bounded](ir.Dict("weight", ir.FromInt(70000)))
	var oob *convert.OutOfBoundsError
	if !errors.As(err, &oob) || oob.Value != 70000 {
		t.Fatalf("70000: got %v", err)
	}
	var fe *convert.FieldError
	if !errors.As(err, &fe) || fe.Field != "weight" || fe.Record != "bounded" {
		t.Errorf("field context: %v", err)
	}
	_, err = Decode[bounded](ir.Dict("weight", ir.FromString("abc")))
	if !errors.Is(err, convert.ErrWrongVariant) {
		t.Errorf("abc: got %v", err)
	}
	v, err := Decode[bounded](ir.Dict("weight", ir.FromString("700")))
	if err != nil || v.Weight != 700 {
		t.Errorf("\"700\": %v %v", v, err)
	}
}

func TestMissingField(t *testing.T) {
	_, err := Decode[withoutRest](ir.Dict())
	var mf *convert.MissingFieldError
	if !errors.As(err, &mf) || mf.Field != "name" {
		t.Fatalf("got %v", err)
	}
	if _, err := Decode[withoutRest](ir.Array()); !errors.Is(err, convert.ErrWrongVariant) {
		t.Errorf("array: got %v", err)
	}
}

type inner struct {
	Width float64
}

type outer struct {
	Layers []inner
	ByName map[string]inner `plist:"optional"`
	Raw    *ir.Node
}

func TestNestedErrors(t *testing.T) {
	in := mustParse(t, `{layers = ({width = 1;}, {width = 2;}, {width = x;});}`)
	_, err := Decode[outer](in)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "outer.layers: [2]: inner.width: f64: expected Integer or Float, got String"
	if err.Error() != want {
		t.Errorf("got  %s\nwant %s", err, want)
	}
	var ie *convert.IndexError
	if !errors.As(err, &ie) || ie.Index != 2 {
		t.Errorf("index: %v", err)
	}
}

func TestNestedRoundTrip(t *testing.T) {
	in := mustParse(t, `{layers = ({width = 1.5;}); byName = {a = {width = 2;};}; raw = (x, {y = z;});}`)
	v, err := Decode[outer](in)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Layers) != 1 || v.Layers[0].Width != 1.5 || v.ByName["a"].Width != 2 {
		t.Errorf("got %+v", v)
	}
	out, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(in, out) {
		t.Errorf("got\n%s", encode.MustString(out))
	}
}

type renamed struct {
	AppVersion string `plist:"field=.appVersion"`
	LayerID    string
	Skip       int `plist:"-"`
	hidden     int
}

func TestRename(t *testing.T) {
	s, err := SchemaOf(reflect.TypeFor[renamed]())
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for _, fd := range s.Fields {
		keys = append(keys, fd.Key)
	}
	if diff := cmp.Diff([]string{".appVersion", "layerId"}, keys); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	v, err := Decode[renamed](ir.Dict(".appVersion", ir.FromString("3259"), "layerId", ir.FromString("m01")))
	if err != nil {
		t.Fatal(err)
	}
	if v.AppVersion != "3259" || v.LayerID != "m01" {
		t.Errorf("got %+v", v)
	}
}

type base struct {
	ID string `plist:"field=id"`
}

type embedding struct {
	base
	Name string
}

func TestEmbedded(t *testing.T) {
	v, err := Decode[embedding](ir.Dict("id", ir.FromString("x"), "name", ir.FromString("y")))
	if err != nil {
		t.Fatal(err)
	}
	if v.ID != "x" || v.Name != "y" {
		t.Errorf("got %+v", v)
	}
}

func TestSchemaErrors(t *testing.T) {
	type twoRests struct {
		A map[string]*ir.Node `plist:"rest"`
		B map[string]*ir.Node `plist:"rest"`
	}
	type badRest struct {
		A map[string]string `plist:"rest"`
	}
	type badDefault struct {
		N int `plist:"default=abc"`
	}
	type badOptional struct {
		N int `plist:"optional"`
	}
	type dupKey struct {
		A int `plist:"field=x"`
		B int `plist:"field=x"`
	}
	for _, typ := range []reflect.Type{
		reflect.TypeFor[twoRests](),
		reflect.TypeFor[badRest](),
		reflect.TypeFor[badDefault](),
		reflect.TypeFor[badOptional](),
		reflect.TypeFor[dupKey](),
		reflect.TypeFor[int](),
	} {
		_, err := SchemaOf(typ)
		var se *SchemaError
		if !errors.As(err, &se) {
			t.Errorf("%s: got %v", typ, err)
		}
	}
}

type celsius float64

type reading struct {
	Temp celsius
}

func TestRegistered(t *testing.T) {
	convert.Register(
		func(n *ir.Node) (celsius, error) {
			s, err := convert.String(n)
			if err != nil {
				return 0, err
			}
			var c float64
			for _, r := range strings.TrimSuffix(s, "C") {
				c = c*10 + float64(r-'0')
			}
			return celsius(c), nil
		},
		func(c celsius) (*ir.Node, error) {
			return ir.FromString(encode.FormatFloat(float64(c)) + "C"), nil
		},
	)
	defer convert.Unregister[celsius]()
	v, err := Decode[reading](ir.Dict("temp", ir.FromString("21C")))
	if err != nil {
		t.Fatal(err)
	}
	if v.Temp != 21 {
		t.Errorf("got %v", v.Temp)
	}
	out, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(out, ir.Dict("temp", ir.FromString("21.0C"))) {
		t.Errorf("got %s", encode.MustString(out))
	}
}

type tag string

func (t *tag) FromPlist(n *ir.Node) error {
	s, err := convert.String(n)
	if err != nil {
		return err
	}
	*t = tag(strings.ToUpper(s))
	return nil
}

func (t tag) ToPlist() (*ir.Node, error) {
	return ir.FromString(strings.ToLower(string(t))), nil
}

type tagged struct {
	Tag  tag `plist:"default=none"`
	Tags []tag
}

func TestMethods(t *testing.T) {
	v, err := Decode[tagged](ir.Dict("tags", ir.Array(ir.FromString("a"), ir.FromString("b"))))
	if err != nil {
		t.Fatal(err)
	}
	if v.Tag != "NONE" {
		t.Errorf("default through FromPlist: %q", v.Tag)
	}
	if diff := cmp.Diff([]tag{"A", "B"}, v.Tags); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	out, err := ToIR(v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(out, ir.Dict("tags", ir.Array(ir.FromString("a"), ir.FromString("b")))) {
		t.Errorf("got %s", encode.MustString(out))
	}
}

func TestFromIRDestinations(t *testing.T) {
	var u UnmarshalError
	if err := FromIR(ir.Dict(), nil); !errors.As(err, new(*UnmarshalError)) {
		t.Errorf("nil: %v", err)
	}
	if err := FromIR(ir.Dict(), u); !errors.As(err, new(*UnmarshalError)) {
		t.Errorf("non-pointer: %v", err)
	}
	if _, err := ToIR(nil); !errors.As(err, new(*MarshalError)) {
		t.Errorf("ToIR(nil): %v", err)
	}
	var p *withRest
	if _, err := ToIR(p); !errors.As(err, new(*MarshalError)) {
		t.Errorf("nil pointer: %v", err)
	}
}

func TestWireKey(t *testing.T) {
	cases := map[string]string{
		"Name":         "name",
		"LayerID":      "layerId",
		"AppVersion":   "appVersion",
		"XHeight":      "xHeight",
		"ID":           "id",
		"UnitsPerEm":   "unitsPerEm",
		"Kerning2Side": "kerning2Side",
		"A":            "a",
	}
	for in, want := range cases {
		if got := WireKey(in); got != want {
			t.Errorf("%s: got %s want %s", in, got, want)
		}
	}
}

func TestParseStructTag(t *testing.T) {
	got, err := ParseStructTag(`field=.appVersion, always default='a b'`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"field": ".appVersion", "always": "", "default": "a b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if _, err := ParseStructTag(`default='open`); err == nil {
		t.Error("expected unterminated quote error")
	}
	if _, err := ParseStructTag(`=x`); err == nil {
		t.Error("expected empty key error")
	}
}
