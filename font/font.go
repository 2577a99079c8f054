package font

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/signadot/plist/encode"
	"github.com/signadot/plist/gomap"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/parse"
)

// ErrGlyphs2 is returned for documents without a .formatVersion key,
// which only Glyphs 3 writes.
var ErrGlyphs2 = errors.New("Glyphs 2 files are not supported")

type Font struct {
	AppVersion      string `plist:"field=.appVersion"`
	FormatVersion   *int64 `plist:"field=.formatVersion,always"`
	Date            string
	FamilyName      string
	VersionMajor    int64
	VersionMinor    int64
	UnitsPerEm      uint16
	Glyphs          []Glyph
	Masters         []FontMaster `plist:"field=fontMaster"`
	Metrics         []Metric
	Axes            []Axis       `plist:"optional"`
	Numbers         []FontNumber `plist:"optional"`
	Stems           []FontStem   `plist:"optional"`
	Settings        *Settings
	Instances       []Instance          `plist:"optional"`
	KerningLTR      KerningTable        `plist:"field=kerningLTR,optional"`
	KerningRTL      KerningTable        `plist:"field=kerningRTL,optional"`
	KerningVertical KerningTable        `plist:"optional"`
	UserData        map[string]*ir.Node `plist:"optional"`
	Rest            map[string]*ir.Node `plist:"rest"`
}

// New returns the font Glyphs creates for File > New.
func New() *Font {
	version := int64(3)
	space := NewGlyph("space", ' ')
	layer := NewLayer("m01", "")
	layer.Width = 200
	space.Layers = []Layer{*layer}

	master := NewFontMaster("m01", "Regular")
	master.MetricValues = []MasterMetric{
		{Pos: 800, Over: 16},
		{Over: -16},
		{Pos: -200, Over: -16},
	}
	metric := func(t MetricType) Metric { return Metric{Type: &t} }

	return &Font{
		AppVersion:    "3259",
		FormatVersion: &version,
		Date:          "2024-04-25 08:35:58 +0000",
		FamilyName:    "New Font",
		VersionMajor:  1,
		UnitsPerEm:    1000,
		Glyphs:        []Glyph{*space},
		Masters:       []FontMaster{*master},
		Metrics:       []Metric{metric(Ascender), metric(Baseline), metric(Descender)},
	}
}

// Parse decodes a Glyphs 3 document.
func Parse(data []byte, opts ...parse.ParseOption) (*Font, error) {
	node, err := parse.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return FromIR(node)
}

// FromIR decodes a parsed Glyphs 3 document.
func FromIR(node *ir.Node) (*Font, error) {
	if node.Type == ir.DictionaryType && node.Get(".formatVersion") == nil {
		return nil, ErrGlyphs2
	}
	f := &Font{}
	if err := gomap.FromIR(node, f); err != nil {
		return nil, err
	}
	return f, nil
}

func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f *Font) ToIR() (*ir.Node, error) {
	return gomap.ToIR(f)
}

// Text returns the canonical document text, without a final newline.
func (f *Font) Text() (string, error) {
	node, err := f.ToIR()
	if err != nil {
		return "", err
	}
	return encode.String(node)
}

func (f *Font) Save(path string) error {
	node, err := f.ToIR()
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFinalNewline(true)); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Glyph returns the glyph with the given name, or nil.
func (f *Font) Glyph(name Name) *Glyph {
	for i := range f.Glyphs {
		if f.Glyphs[i].Name == name {
			return &f.Glyphs[i]
		}
	}
	return nil
}

// Master returns the master with the given id, or nil.
func (f *Font) Master(id string) *FontMaster {
	for i := range f.Masters {
		if f.Masters[i].ID == id {
			return &f.Masters[i]
		}
	}
	return nil
}
