// Package encode writes property list trees in canonical text form.
//
// Dictionary keys are written in sorted order, one `key = value;` per
// line; array elements are written one per line. Strings are written bare
// only when reading them back cannot yield a number.
package encode
