package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FieldPath appends a dictionary key to a path, quoting the key when it
// contains path syntax.
func FieldPath(prefix, f string) string {
	return prefix + "." + pathString(f)
}

// IndexPath appends an array index to a path.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// Path is a parsed path expression such as
//
//	$.glyphs[*].layers[0].width
//	$..ref
//
// '$' names the root, '.key' a dictionary entry, '[n]' an array element,
// '[*]' every array element and '..' any descendant.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			next := &Path{}
			if err := parseFrag(frag[1:], next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(strings.ReplaceAll(f, `\`, `\\`), "'", `\'`) + "'"
}

// GetPath returns the node at yPath, or nil if a dictionary key along the
// way is absent. Wildcards and '..' are rejected; use ListPath for those.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for x := yp; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return nil, fmt.Errorf("[*] in get")
		case x.Subtree:
			return nil, fmt.Errorf(".. in get")
		case x.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("expected Array, got %s", res.Type)
			}
			index := *x.Index
			if index >= len(res.Values) {
				return nil, fmt.Errorf("index out of bounds %d (len %d)", index, len(res.Values))
			}
			res = res.Values[index]
		case x.Field != nil:
			if res.Type != DictionaryType {
				return nil, fmt.Errorf("expected Dictionary, got %s", res.Type)
			}
			v, ok := res.Fields[*x.Field]
			if !ok {
				return nil, nil
			}
			res = v
		}
	}
	return res, nil
}

// ListPath appends every node matching yPath to dst.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y)
	}
	if yp.Subtree {
		_ = y.Visit(func(_ string, node *Node) (bool, error) {
			if !node.Type.IsLeaf() || yp.Next == nil {
				dst = node.listPath(dst, yp.Next)
			}
			return true, nil
		})
		return dst
	}
	switch {
	case yp.Field != nil:
		if y.Type != DictionaryType {
			return dst
		}
		if v, ok := y.Fields[*yp.Field]; ok {
			dst = v.listPath(dst, yp.Next)
		}
		return dst
	case yp.Index != nil:
		if y.Type != ArrayType {
			return dst
		}
		if idx := *yp.Index; idx < len(y.Values) {
			dst = y.Values[idx].listPath(dst, yp.Next)
		}
		return dst
	case yp.IndexAll:
		if y.Type != ArrayType {
			return dst
		}
		for _, v := range y.Values {
			dst = v.listPath(dst, yp.Next)
		}
		return dst
	default:
		return y.listPath(dst, yp.Next)
	}
}
