package plist

import (
	"github.com/signadot/plist/debug"
	"github.com/signadot/plist/ir"
)

type MatchConfig struct {
	// Wildcard is a string pattern that matches any value.
	Wildcard string
	// ExactArrays requires array patterns to have the length of the
	// array they match, element for element.
	ExactArrays bool
}

type MatchOpt func(*MatchConfig)

func MatchWildcard(w string) MatchOpt {
	return func(c *MatchConfig) { c.Wildcard = w }
}
func MatchExactArrays(v bool) MatchOpt {
	return func(c *MatchConfig) { c.ExactArrays = v }
}

func matchConfig(opts []MatchOpt) *MatchConfig {
	cfg := &MatchConfig{Wildcard: "*"}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// Match reports whether doc has the shape of pattern. A dictionary pattern
// matches a dictionary holding each of its keys with a matching value. An
// array pattern matches when each element matches a distinct element of
// the array, in order. Leaves match equal leaves.
func Match(doc, pattern *ir.Node, opts ...MatchOpt) bool {
	return match(doc, pattern, matchConfig(opts))
}

func match(doc, pattern *ir.Node, cfg *MatchConfig) bool {
	if debug.Match() {
		debug.Logf("match type %s against %s\n", pattern.Type, doc.Type)
	}
	if pattern.Type == ir.StringType && cfg.Wildcard != "" && pattern.String == cfg.Wildcard {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.DictionaryType:
		return matchDict(doc, pattern, cfg)
	case ir.ArrayType:
		_, ok := matchArray(doc, pattern, cfg)
		return ok
	default:
		return ir.Equal(doc, pattern)
	}
}

func matchDict(doc, pattern *ir.Node, cfg *MatchConfig) bool {
	for k, p := range pattern.Fields {
		v, ok := doc.Fields[k]
		if !ok || !match(v, p, cfg) {
			return false
		}
	}
	return true
}

// matchArray returns the index of the doc element each pattern element
// matched.
func matchArray(doc, pattern *ir.Node, cfg *MatchConfig) ([]int, bool) {
	if cfg.ExactArrays {
		if len(doc.Values) != len(pattern.Values) {
			return nil, false
		}
		res := make([]int, len(pattern.Values))
		for i := range pattern.Values {
			if !match(doc.Values[i], pattern.Values[i], cfg) {
				return nil, false
			}
			res[i] = i
		}
		return res, true
	}
	res := make([]int, 0, len(pattern.Values))
	j := 0
	for _, p := range pattern.Values {
		for j < len(doc.Values) && !match(doc.Values[j], p, cfg) {
			j++
		}
		if j == len(doc.Values) {
			return nil, false
		}
		res = append(res, j)
		j++
	}
	return res, true
}

// Trim returns the part of doc that pattern describes: dictionaries keep
// only the pattern's keys and arrays only the matched elements. doc must
// match pattern.
func Trim(pattern, doc *ir.Node, opts ...MatchOpt) *ir.Node {
	return trim(pattern, doc, matchConfig(opts))
}

func trim(pattern, doc *ir.Node, cfg *MatchConfig) *ir.Node {
	if doc.Type != pattern.Type {
		return doc.Clone()
	}
	switch pattern.Type {
	case ir.DictionaryType:
		res := make(map[string]*ir.Node, len(pattern.Fields))
		for k, p := range pattern.Fields {
			v, ok := doc.Fields[k]
			if !ok {
				continue
			}
			res[k] = trim(p, v, cfg)
		}
		return ir.FromMap(res)
	case ir.ArrayType:
		idx, ok := matchArray(doc, pattern, cfg)
		if !ok {
			return doc.Clone()
		}
		res := make([]*ir.Node, len(idx))
		for i, j := range idx {
			res[i] = trim(pattern.Values[i], doc.Values[j], cfg)
		}
		return ir.FromSlice(res)
	default:
		return doc.Clone()
	}
}
