package ir

import (
	"github.com/goccy/go-yaml"
)

// ToYAML renders y as a YAML document with dictionary keys in sorted
// order.
func ToYAML(y *Node) ([]byte, error) {
	return yaml.Marshal(yamlValue(y))
}

func yamlValue(y *Node) any {
	switch y.Type {
	case DictionaryType:
		ms := make(yaml.MapSlice, 0, len(y.Fields))
		for _, k := range y.Keys() {
			ms = append(ms, yaml.MapItem{Key: k, Value: yamlValue(y.Fields[k])})
		}
		return ms
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = yamlValue(v)
		}
		return res
	default:
		return ToAny(y)
	}
}
