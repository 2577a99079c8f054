package gomap

import "fmt"

// MarshalError is a value that cannot be encoded at all, such as nil.
type MarshalError struct {
	Message string
	Err     error
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError is a destination that cannot be decoded into.
type UnmarshalError struct {
	Message string
	Err     error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// SchemaError is a struct whose tags do not describe a valid record.
type SchemaError struct {
	SchemaName string
	Message    string
	Err        error
}

func (e *SchemaError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.SchemaName != "" {
		return fmt.Sprintf("schema error for %q: %s", e.SchemaName, msg)
	}
	return fmt.Sprintf("schema error: %s", msg)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
