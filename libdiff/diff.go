package libdiff

import (
	"slices"

	"github.com/signadot/plist/ir"
)

// Diff returns the changes turning from into to. Paths are in the form
// ir.ParsePath reads, rooted at "$". Dictionary changes come in key
// order; array elements are aligned so that an insertion in the middle of
// an array is reported as one Insert.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, "$", from, to)
}

func diff(dst []Change, path string, from, to *ir.Node) []Change {
	if from.Type != to.Type {
		return append(dst, MakeChange(path, from, to))
	}
	switch from.Type {
	case ir.DictionaryType:
		return diffDict(dst, path, from, to)
	case ir.ArrayType:
		return diffArray(dst, path, from, to)
	}
	if !ir.Equal(from, to) {
		dst = append(dst, MakeChange(path, from, to))
	}
	return dst
}

func diffDict(dst []Change, path string, from, to *ir.Node) []Change {
	for _, k := range unionKeys(from, to) {
		kp := ir.FieldPath(path, k)
		f, t := from.Fields[k], to.Fields[k]
		switch {
		case t == nil:
			dst = append(dst, MakeChange(kp, f, nil))
		case f == nil:
			dst = append(dst, MakeChange(kp, nil, t))
		default:
			dst = diff(dst, kp, f, t)
		}
	}
	return dst
}

func unionKeys(a, b *ir.Node) []string {
	keys := a.Keys()
	for _, k := range b.Keys() {
		if _, ok := a.Fields[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
