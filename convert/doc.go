// Package convert holds conversions between plist values and Go scalars,
// and the errors they report.
//
// Every conversion failure wraps [ErrConversion] and one of the more
// specific sentinels, so callers can test with [errors.Is] and extract
// context with [errors.As]. Composite errors ([FieldError], [IndexError],
// [KeyError], [ElementError]) wrap the failure of a nested value and
// render as a path to it.
//
// New scalar types are added either by implementing FromPlist/ToPlist
// methods (see package gomap) or with [Register].
package convert
