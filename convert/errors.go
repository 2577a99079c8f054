package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/signadot/plist/ir"
)

var (
	ErrConversion         = errors.New("conversion error")
	ErrMissingField       = fmt.Errorf("%w: missing field", ErrConversion)
	ErrUnrecognisedFields = fmt.Errorf("%w: unrecognised fields", ErrConversion)
	ErrWrongVariant       = fmt.Errorf("%w: wrong variant", ErrConversion)
	ErrOutOfBounds        = fmt.Errorf("%w: out of bounds", ErrConversion)
	ErrBadNumber          = fmt.Errorf("%w: bad number", ErrConversion)
	ErrUnsupportedArray   = fmt.Errorf("%w: unsupported array", ErrConversion)
	ErrInvalidCodepoint   = fmt.Errorf("%w: invalid codepoint", ErrConversion)
	ErrUnknownValue       = fmt.Errorf("%w: unknown value", ErrConversion)
	ErrMissingElement     = fmt.Errorf("%w: missing element", ErrConversion)
	ErrTooManyElements    = fmt.Errorf("%w: too many elements", ErrConversion)
	ErrUnsupportedType    = fmt.Errorf("%w: unsupported type", ErrConversion)
)

type MissingFieldError struct {
	Record string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", e.Record, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// UnrecognisedFieldsError lists, sorted, every key a record without a rest
// field did not declare.
type UnrecognisedFieldsError struct {
	Record string
	Keys   []string
}

func (e *UnrecognisedFieldsError) Error() string {
	return fmt.Sprintf("%s: unrecognised fields %s", e.Record, strings.Join(e.Keys, ", "))
}

func (e *UnrecognisedFieldsError) Unwrap() error { return ErrUnrecognisedFields }

// VariantError is a value of the wrong type for its target.
type VariantError struct {
	Kind string
	Want string
	Got  ir.Type
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Kind, e.Want, e.Got)
}

func (e *VariantError) Unwrap() error { return ErrWrongVariant }

func variant(kind, want string, n *ir.Node) error {
	return &VariantError{Kind: kind, Want: want, Got: n.Type}
}

type OutOfBoundsError struct {
	Kind     string
	Value    int64
	Min, Max int64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %d out of bounds [%d, %d]", e.Kind, e.Value, e.Min, e.Max)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

type BadNumberError struct {
	Kind string
	Text string
	Err  error
}

func (e *BadNumberError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: bad number %q: %v", e.Kind, e.Text, e.Err)
	}
	return fmt.Sprintf("%s: bad number %q", e.Kind, e.Text)
}

func (e *BadNumberError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrBadNumber}
	}
	return []error{ErrBadNumber, e.Err}
}

type UnsupportedArrayError struct {
	Kind string
	Len  int
}

func (e *UnsupportedArrayError) Error() string {
	return fmt.Sprintf("%s: unsupported array of length %d", e.Kind, e.Len)
}

func (e *UnsupportedArrayError) Unwrap() error { return ErrUnsupportedArray }

type CodepointError struct {
	Value int64
}

func (e *CodepointError) Error() string {
	return fmt.Sprintf("unicode code point must be in the range U+0000–U+10FFFF, got U+%04X", e.Value)
}

func (e *CodepointError) Unwrap() error { return ErrInvalidCodepoint }

type UnknownValueError struct {
	Kind    string
	Value   string
	Allowed []string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%s: unknown value %q, want one of %s", e.Kind, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *UnknownValueError) Unwrap() error { return ErrUnknownValue }

// ElementError is a failure at a named position of a tuple, such as the x
// coordinate of a point. Missing is set when the array was too short.
type ElementError struct {
	Kind    string
	Element string
	Missing bool
	Err     error
}

func (e *ElementError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: missing %s", e.Kind, e.Element)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Element, e.Err)
}

func (e *ElementError) Unwrap() error {
	if e.Missing {
		return ErrMissingElement
	}
	return e.Err
}

type ArityError struct {
	Kind string
	Len  int
	Max  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %d elements, want at most %d", e.Kind, e.Len, e.Max)
}

func (e *ArityError) Unwrap() error { return ErrTooManyElements }

// FieldError wraps the failure of a record field.
type FieldError struct {
	Record string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// IndexError wraps the failure of an array element.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("[%d]: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }

// KeyError wraps the failure of a dictionary value.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("[%q]: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// KerningError locates a failure in a kerning table. Left and Right are
// empty when the failure is above that level.
type KerningError struct {
	Master, Left, Right string
	Err                 error
}

func (e *KerningError) Error() string {
	parts := []string{e.Master}
	if e.Left != "" {
		parts = append(parts, e.Left)
	}
	if e.Right != "" {
		parts = append(parts, e.Right)
	}
	return fmt.Sprintf("kerning %s: %v", strings.Join(parts, "/"), e.Err)
}

func (e *KerningError) Unwrap() error { return e.Err }

type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnsupportedType, e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }
