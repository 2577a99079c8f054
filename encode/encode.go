package encode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/token"
)

type EncState struct {
	finalNL bool
	Color   func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if err := encode(node, bw, es); err != nil {
		return err
	}
	if es.finalNL {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// MustString returns the canonical text of node, panicking on a malformed
// tree.
func MustString(node *ir.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return s
}

func String(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func encode(node *ir.Node, w *bufio.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("cannot encode nil node")
	}
	switch node.Type {
	case ir.DictionaryType:
		return encodeDict(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		w.WriteString(applyColor(es, ir.StringType, ValueColor, token.QuoteIfNeeded(node.String)))
	case ir.IntegerType:
		w.WriteString(applyColor(es, ir.IntegerType, ValueColor, strconv.FormatInt(node.Int64, 10)))
	case ir.FloatType:
		w.WriteString(applyColor(es, ir.FloatType, ValueColor, FormatFloat(node.Float64)))
	default:
		return fmt.Errorf("unknown node type %d", node.Type)
	}
	return nil
}

func encodeDict(node *ir.Node, w *bufio.Writer, es *EncState) error {
	w.WriteString(applyColor(es, ir.DictionaryType, SepColor, "{"))
	w.WriteByte('\n')
	for _, k := range node.Keys() {
		w.WriteString(applyColor(es, ir.DictionaryType, FieldColor, token.QuoteIfNeeded(k)))
		w.WriteString(applyColor(es, ir.DictionaryType, SepColor, " = "))
		if err := encode(node.Fields[k], w, es); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		w.WriteString(applyColor(es, ir.DictionaryType, SepColor, ";"))
		w.WriteByte('\n')
	}
	w.WriteString(applyColor(es, ir.DictionaryType, SepColor, "}"))
	return nil
}

func encodeArray(node *ir.Node, w *bufio.Writer, es *EncState) error {
	w.WriteString(applyColor(es, ir.ArrayType, SepColor, "("))
	for i, v := range node.Values {
		if i > 0 {
			w.WriteString(applyColor(es, ir.ArrayType, SepColor, ","))
		}
		w.WriteByte('\n')
		if err := encode(v, w, es); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	w.WriteByte('\n')
	w.WriteString(applyColor(es, ir.ArrayType, SepColor, ")"))
	return nil
}

// FormatFloat writes f without an exponent and with at least one
// fractional digit, so that reading it back yields a Float. Non finite
// values are written inf, -inf and nan.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
