package font

import "github.com/signadot/plist/ir"

// Glyph is one glyph with its layers. KernRight names the glyph's
// public.kern1 group and KernLeft its public.kern2 group.
type Glyph struct {
	Name         Name       `plist:"field=glyphname"`
	Unicode      Codepoints `plist:"optional"`
	Layers       []Layer
	Production   *string
	Script       *string
	Direction    *Direction
	Case         *Case
	Category     *string
	SubCategory  *string
	Tags         []string `plist:"default"`
	KernRight    *Name
	KernLeft     *Name
	KernTop      *Name
	KernBottom   *Name
	MetricTop    *string
	MetricBottom *string
	MetricLeft   *string
	MetricRight  *string
	MetricWidth  *string
	UserData     map[string]*ir.Node `plist:"default"`
	Export       bool                `plist:"default=true"`
	Color        *Color
	Note         *string
	Locked       bool                `plist:"default"`
	Rest         map[string]*ir.Node `plist:"rest"`
}

// NewGlyph returns an exported glyph with no layers.
func NewGlyph(name Name, unicode ...rune) *Glyph {
	g := &Glyph{Name: name, Export: true}
	if len(unicode) != 0 {
		g.Unicode = Codepoints(unicode)
	}
	return g
}

// Layer returns the layer with the given id, or nil.
func (g *Glyph) Layer(id string) *Layer {
	for i := range g.Layers {
		if g.Layers[i].LayerID == id {
			return &g.Layers[i]
		}
	}
	return nil
}

type Layer struct {
	Attr               *LayerAttr
	Name               *string
	Background         *BackgroundLayer
	AssociatedMasterID *string
	LayerID            string
	Width              float64
	VertWidth          *float64
	VertOrigin         *float64
	Shapes             []Shape     `plist:"default"`
	Anchors            []Anchor    `plist:"optional"`
	Guides             []GuideLine `plist:"optional"`
	MetricTop          *string
	MetricBottom       *string
	MetricLeft         *string
	MetricRight        *string
	MetricWidth        *string
	MetricVertWidth    *string
	UserData           map[string]*ir.Node `plist:"default"`
	Color              *Color
	Rest               map[string]*ir.Node `plist:"rest"`
}

// NewLayer returns a layer 600 units wide. A master layer has an empty
// associated master id.
func NewLayer(id, associatedMasterID string) *Layer {
	l := &Layer{LayerID: id, Width: 600}
	if associatedMasterID != "" {
		l.AssociatedMasterID = &associatedMasterID
	}
	return l
}

func (l *Layer) IsMasterLayer() bool {
	return l.AssociatedMasterID == nil
}

// IsIntermediate reports whether l is a brace layer with its own
// coordinates.
func (l *Layer) IsIntermediate() bool {
	return l.Attr != nil && l.Attr.Coordinates != nil
}

// IsAlternate reports whether l is a bracket layer.
func (l *Layer) IsAlternate() bool {
	return l.Attr != nil && l.Attr.AxisRules != nil
}

func (l *Layer) hasAttr(key string) bool {
	if l.Attr == nil {
		return false
	}
	_, ok := l.Attr.Rest[key]
	return ok
}

func (l *Layer) IsColor() bool        { return l.hasAttr("color") }
func (l *Layer) IsColorPalette() bool { return l.hasAttr("colorPalette") }
func (l *Layer) IsSVG() bool          { return l.hasAttr("svg") }
func (l *Layer) IsIColor() bool       { return l.hasAttr("sbixSize") }

// Coordinates returns the axis coordinates of an intermediate layer.
func (l *Layer) Coordinates() []float64 {
	if l.Attr == nil {
		return nil
	}
	return l.Attr.Coordinates
}

type LayerAttr struct {
	AxisRules   []AxisRule          `plist:"optional"`
	Coordinates []float64           `plist:"optional"`
	Rest        map[string]*ir.Node `plist:"rest"`
}

type AxisRule struct {
	Min *float64
	Max *float64
}

type BackgroundLayer struct {
	Anchors []Anchor            `plist:"optional"`
	Shapes  []Shape             `plist:"default"`
	Rest    map[string]*ir.Node `plist:"rest"`
}
