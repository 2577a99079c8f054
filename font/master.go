package font

import (
	"iter"

	"github.com/signadot/plist/ir"
)

type FontMaster struct {
	ID           string `plist:"field=id"`
	Name         string
	MetricValues []MasterMetric
	NumberValues []float64           `plist:"optional"`
	StemValues   []float64           `plist:"optional"`
	AxesValues   []float64           `plist:"optional"`
	Visible      bool                `plist:"default=true"`
	UserData     map[string]*ir.Node `plist:"default"`
	Rest         map[string]*ir.Node `plist:"rest"`
}

func NewFontMaster(id, name string) *FontMaster {
	return &FontMaster{ID: id, Name: name, Visible: true}
}

// Metrics yields the font's metrics paired with m's values for them.
// It stops at the shorter of the two lists.
func (m *FontMaster) Metrics(f *Font) iter.Seq2[*Metric, *MasterMetric] {
	return func(yield func(*Metric, *MasterMetric) bool) {
		for i := range min(len(f.Metrics), len(m.MetricValues)) {
			if !yield(&f.Metrics[i], &m.MetricValues[i]) {
				return
			}
		}
	}
}

// Metric returns m's value for the first unfiltered font metric of type
// t.
func (m *FontMaster) Metric(f *Font, t MetricType) (*MasterMetric, bool) {
	for metric, v := range m.Metrics(f) {
		if metric.Type != nil && *metric.Type == t && metric.Filter == nil {
			return v, true
		}
	}
	return nil, false
}

type MasterMetric struct {
	Pos  float64 `plist:"default"`
	Over float64 `plist:"default"`
}

type Metric struct {
	Filter *string
	Name   *string
	Type   *MetricType
}

type Instance struct {
	Name        string
	AxesValues  []float64 `plist:"optional"`
	Exports     bool      `plist:"default=true"`
	IsBold      bool      `plist:"default"`
	IsItalic    bool      `plist:"default"`
	LinkStyle   *string
	Type        *InstanceType
	UserData    map[string]*ir.Node `plist:"default"`
	Visible     bool                `plist:"default=true"`
	WeightClass int64               `plist:"default=400"`
	WidthClass  int64               `plist:"default=5"`
	Rest        map[string]*ir.Node `plist:"rest"`
}

func NewInstance(name string) *Instance {
	return &Instance{Name: name, Exports: true, Visible: true, WeightClass: 400, WidthClass: 5}
}

type Axis struct {
	Name   string
	Tag    string
	Hidden bool `plist:"default"`
}

type FontNumber struct {
	Name string
}

type FontStem struct {
	Name       string
	Filter     *string
	Horizontal bool `plist:"default"`
}

type Settings struct {
	DisablesAutomaticAlignment bool                `plist:"default"`
	DisablesNiceNames          bool                `plist:"default"`
	Rest                       map[string]*ir.Node `plist:"rest"`
}
