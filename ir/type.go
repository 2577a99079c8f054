package ir

import "fmt"

type Type int

const (
	DictionaryType Type = iota
	ArrayType
	StringType
	IntegerType
	FloatType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		DictionaryType: "Dictionary",
		ArrayType:      "Array",
		StringType:     "String",
		IntegerType:    "Integer",
		FloatType:      "Float",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Dictionary": DictionaryType,
		"Array":      ArrayType,
		"String":     StringType,
		"Integer":    IntegerType,
		"Float":      FloatType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		DictionaryType,
		ArrayType,
		StringType,
		IntegerType,
		FloatType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case DictionaryType, ArrayType:
		return false
	default:
		return true
	}
}

// IsNumber reports whether t is Integer or Float.
func (t Type) IsNumber() bool {
	return t == IntegerType || t == FloatType
}
