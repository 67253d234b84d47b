// Package conv provides a type-keyed registry of text converters.
// Registered converters take precedence, otherwise a built-in path handles
// primitives, time.Time, pointers (optional values), encoding.TextUnmarshaler
// and sql.Scanner implementations.
package conv
