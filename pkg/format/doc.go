/*
Package format parses configuration source files of differing formats into
a common tree shape: nil, bool, float64, string, []any, or map[string]any.

Each format is registered under the file extensions it claims. Callers
normally go through Lookup or ParseFile rather than importing an adapter
directly.
*/
package format
