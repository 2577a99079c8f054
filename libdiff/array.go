package libdiff

import (
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/plist/ir"
)

// diffArray aligns the elements of from and to:
//
//  1. summarise each element: containers by type, leaves by type and
//     value
//  2. diff the sequences of summaries
//  3. recurse into aligned elements, which differ only when they are
//     containers
//  4. report the rest as deletes and inserts, pairing a run of deletes
//     with the run of inserts that follows it as replaces
//
// Indices in paths are positions in the document with the preceding
// changes applied, so the changes can be applied in order.
func diffArray(dst []Change, path string, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var dels []int // indices into dst of a run of deletes at ti
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			dels = dels[:0]
			for range n {
				dels = append(dels, len(dst))
				dst = append(dst, MakeChange(ir.IndexPath(path, ti), from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffInsert:
			k := min(n, len(dels))
			for j, di := range dels {
				if j < k {
					dst[di] = MakeChange(ir.IndexPath(path, ti+j), dst[di].From, to.Values[ti+j])
				} else {
					dst[di].Path = ir.IndexPath(path, ti+k)
				}
			}
			ti += k
			for range n - k {
				dst = append(dst, MakeChange(ir.IndexPath(path, ti), nil, to.Values[ti]))
				ti++
			}
			dels = nil
		case diffpatch.DiffEqual:
			dels = nil
			for range n {
				dst = diff(dst, ir.IndexPath(path, ti), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		}
	}
	return dst
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.DictionaryType, ir.ArrayType:
		return node.Type.String()
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	case ir.IntegerType:
		return node.Type.String() + "-" + strconv.FormatInt(node.Int64, 10)
	case ir.FloatType:
		return node.Type.String() + "-" + strconv.FormatFloat(node.Float64, 'g', -1, 64)
	default:
		return node.Type.String()
	}
}
