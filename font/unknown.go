package font

import (
	"maps"
	"slices"

	"github.com/signadot/plist/ir"
)

// Unknown returns the paths of the keys the record types do not name,
// which decoding kept in rest fields. Paths follow document order, keys
// within one record sorted.
func (f *Font) Unknown() []string {
	var res []string
	add := func(prefix string, rest map[string]*ir.Node) {
		for _, k := range slices.Sorted(maps.Keys(rest)) {
			res = append(res, ir.FieldPath(prefix, k))
		}
	}
	add("$", f.Rest)
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		gp := ir.IndexPath("$.glyphs", i)
		add(gp, g.Rest)
		for j := range g.Layers {
			l := &g.Layers[j]
			lp := ir.IndexPath(ir.FieldPath(gp, "layers"), j)
			add(lp, l.Rest)
			if l.Attr != nil {
				add(ir.FieldPath(lp, "attr"), l.Attr.Rest)
			}
		}
	}
	for i := range f.Masters {
		add(ir.IndexPath("$.fontMaster", i), f.Masters[i].Rest)
	}
	for i := range f.Instances {
		add(ir.IndexPath("$.instances", i), f.Instances[i].Rest)
	}
	if f.Settings != nil {
		add("$.settings", f.Settings.Rest)
	}
	return res
}
