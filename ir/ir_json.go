package ir

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrNoJSON is returned for values with no JSON counterpart in either
// direction: non finite floats, and JSON null.
var ErrNoJSON = errors.New("no json representation")

// MarshalJSON writes y as JSON with sorted keys. Floats always carry a
// fraction or exponent so that FromJSON restores Integer and Float
// faithfully.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) UnmarshalJSON(d []byte) error {
	node, err := FromJSON(d)
	if err != nil {
		return err
	}
	*y = *node
	return nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case DictionaryType:
		buf.WriteByte('{')
		for i, k := range y.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			kd, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kd)
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Fields[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case IntegerType:
		buf.WriteString(strconv.FormatInt(y.Int64, 10))
	case FloatType:
		if math.IsInf(y.Float64, 0) || math.IsNaN(y.Float64) {
			return fmt.Errorf("%w: float %v", ErrNoJSON, y.Float64)
		}
		s := strconv.FormatFloat(y.Float64, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		buf.WriteString(s)
	default:
		return fmt.Errorf("unknown node type %d", y.Type)
	}
	return nil
}

// FromJSON builds a tree from JSON text. Booleans become Integer 0 or 1,
// numbers written with a fraction or exponent become Float.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return fromJSONValue(v)
}

func fromJSONValue(v any) (*Node, error) {
	switch x := v.(type) {
	case json.Number:
		s := x.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return FromInt(i), nil
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return FromFloat(f), nil
	default:
		return fromAny(v, fromJSONValue)
	}
}
