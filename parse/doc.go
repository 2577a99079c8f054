// Package parse provides property list parsing.
//
// [Parse] reads one document into an [*ir.Node] tree. Quoted strings are
// always strings; barewords become Integer or Float only when
// [token.Numeric] says so, and dictionary keys are always strings.
package parse
