package gomap

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/parse"
)

// Requiredness says what decoding does with an absent key and when
// encoding writes a field.
type Requiredness int

const (
	// Required fields must be present and are always written.
	Required Requiredness = iota
	// DefaultExpression fields fall back to a value given in the tag.
	DefaultExpression
	// DefaultFromType fields fall back to the zero value.
	DefaultFromType
	// Optional fields are nil when absent and written when non-nil.
	Optional
)

func (r Requiredness) String() string {
	switch r {
	case Required:
		return "required"
	case DefaultExpression:
		return "default expression"
	case DefaultFromType:
		return "default from type"
	case Optional:
		return "optional"
	default:
		return "<unknown requiredness>"
	}
}

// FieldDescriptor describes one field of a record.
type FieldDescriptor struct {
	// Name is the Go field name.
	Name string
	// Key is the dictionary key.
	Key          string
	Requiredness Requiredness
	// Default is the text of a DefaultExpression.
	Default    string
	Rest       bool
	AlwaysEmit bool
	Type       reflect.Type

	index []int
	// defaultNode is set when Default is plist text rather than a
	// scalar literal.
	defaultNode  *ir.Node
	defaultValue reflect.Value
}

// DefaultValue returns a fresh copy of the value an absent key decodes to.
func (fd *FieldDescriptor) DefaultValue() (reflect.Value, error) {
	switch fd.Requiredness {
	case DefaultExpression:
		if fd.defaultNode == nil {
			return fd.defaultValue, nil
		}
		v := reflect.New(fd.Type).Elem()
		if err := decodeValue(fd.defaultNode, v); err != nil {
			return reflect.Value{}, err
		}
		return v, nil
	default:
		return reflect.Zero(fd.Type), nil
	}
}

// Schema is the descriptor list of a record type.
type Schema struct {
	Name   string
	Type   reflect.Type
	Fields []*FieldDescriptor
	// Rest is the rest field, if any.
	Rest *FieldDescriptor
}

// Field returns the descriptor with the given key.
func (s *Schema) Field(key string) *FieldDescriptor {
	for _, fd := range s.Fields {
		if fd.Key == key {
			return fd
		}
	}
	return nil
}

type schemaEntry struct {
	once   sync.Once
	schema *Schema
	err    error
}

var schemas sync.Map // reflect.Type -> *schemaEntry

var restType = reflect.TypeFor[map[string]*ir.Node]()

// SchemaOf returns the schema of struct type t.
func SchemaOf(t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, &SchemaError{SchemaName: t.String(), Message: "not a struct"}
	}
	e, _ := schemas.LoadOrStore(t, &schemaEntry{})
	entry := e.(*schemaEntry)
	entry.once.Do(func() {
		entry.schema, entry.err = buildSchema(t)
	})
	return entry.schema, entry.err
}

func buildSchema(t reflect.Type) (*Schema, error) {
	s := &Schema{Name: t.Name(), Type: t}
	if s.Name == "" {
		s.Name = t.String()
	}
	keys := map[string]string{}
	if err := addFields(s, t, nil, keys); err != nil {
		return nil, err
	}
	return s, nil
}

func addFields(s *Schema, t reflect.Type, index []int, keys map[string]string) error {
	for i := range t.NumField() {
		f := t.Field(i)
		idx := append(append([]int(nil), index...), i)
		tag, hasTag := f.Tag.Lookup("plist")
		if tag == "-" {
			continue
		}
		if f.Anonymous && !hasTag && f.Type.Kind() == reflect.Struct {
			if err := addFields(s, f.Type, idx, keys); err != nil {
				return err
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		fd, err := fieldDescriptor(s.Name, f, tag)
		if err != nil {
			return err
		}
		if fd == nil {
			continue
		}
		fd.index = idx
		if fd.Rest {
			if s.Rest != nil {
				return &SchemaError{SchemaName: s.Name, Message: fmt.Sprintf("rest fields %s and %s", s.Rest.Name, fd.Name)}
			}
			s.Rest = fd
			continue
		}
		if other, ok := keys[fd.Key]; ok {
			return &SchemaError{SchemaName: s.Name, Message: fmt.Sprintf("fields %s and %s share key %q", other, fd.Name, fd.Key)}
		}
		keys[fd.Key] = fd.Name
		s.Fields = append(s.Fields, fd)
	}
	return nil
}

func fieldDescriptor(record string, f reflect.StructField, tag string) (*FieldDescriptor, error) {
	parsed, err := ParseStructTag(tag)
	if err != nil {
		return nil, &SchemaError{SchemaName: record, Message: "field " + f.Name, Err: err}
	}
	if _, ok := parsed["-"]; ok {
		return nil, nil
	}
	fd := &FieldDescriptor{
		Name: f.Name,
		Key:  WireKey(f.Name),
		Type: f.Type,
	}
	bad := func(msg string) error {
		return &SchemaError{SchemaName: record, Message: fmt.Sprintf("field %s: %s", f.Name, msg)}
	}
	if key, ok := parsed["field"]; ok {
		if key == "" {
			return nil, bad("empty field key")
		}
		fd.Key = key
	}
	if _, ok := parsed["rest"]; ok {
		if f.Type != restType {
			return nil, bad(fmt.Sprintf("rest field must be %s, not %s", restType, f.Type))
		}
		fd.Rest = true
		fd.Requiredness = Optional
		return fd, nil
	}
	_, fd.AlwaysEmit = parsed["always"]
	_, required := parsed["required"]
	_, optional := parsed["optional"]
	def, hasDefault := parsed["default"]
	n := 0
	for _, b := range []bool{required, optional, hasDefault} {
		if b {
			n++
		}
	}
	if n > 1 {
		return nil, bad("at most one of required, optional and default")
	}
	switch {
	case hasDefault && def == "":
		fd.Requiredness = DefaultFromType
	case hasDefault:
		fd.Requiredness = DefaultExpression
		fd.Default = def
		if err := fd.parseDefault(); err != nil {
			return nil, &SchemaError{SchemaName: record, Message: fmt.Sprintf("field %s: default %q", f.Name, def), Err: err}
		}
	case required:
		fd.Requiredness = Required
	case optional:
		switch f.Type.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice:
		default:
			return nil, bad("optional needs a pointer, map or slice")
		}
		fd.Requiredness = Optional
	case f.Type.Kind() == reflect.Pointer:
		fd.Requiredness = Optional
	default:
		fd.Requiredness = Required
	}
	return fd, nil
}

// parseDefault reads a default expression as a literal of the field's
// kind, or as plist text for everything else. Plist text is only parsed
// here; DefaultValue decodes it.
func (fd *FieldDescriptor) parseDefault() error {
	t := fd.Type
	v := reflect.New(t).Elem()
	if _, ok := convert.Lookup(t); !ok && !hasUnmarshaler(t) {
		switch t.Kind() {
		case reflect.Bool:
			b, err := strconv.ParseBool(fd.Default)
			if err != nil {
				return err
			}
			v.SetBool(b)
			fd.defaultValue = v
			return nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i, err := strconv.ParseInt(fd.Default, 10, t.Bits())
			if err != nil {
				return err
			}
			v.SetInt(i)
			fd.defaultValue = v
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u, err := strconv.ParseUint(fd.Default, 10, t.Bits())
			if err != nil {
				return err
			}
			v.SetUint(u)
			fd.defaultValue = v
			return nil
		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(fd.Default, t.Bits())
			if err != nil {
				return err
			}
			v.SetFloat(f)
			fd.defaultValue = v
			return nil
		case reflect.String:
			v.SetString(fd.Default)
			fd.defaultValue = v
			return nil
		}
	}
	// decoded on use: the field type may be the record being built
	node, err := parse.Parse([]byte(fd.Default))
	if err != nil {
		return err
	}
	fd.defaultNode = node
	return nil
}
