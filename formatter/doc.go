// Package formatter turns template keys into final console lines.
//
// A Formatter resolves the key through a translate.Lookup, substitutes
// positional {0}-style arguments with locale-invariant stringification,
// and, for severity-tagged calls, prefixes the translated uppercase
// severity label. Formatting never fails: unknown keys degrade to the
// key text, missing arguments keep their placeholder literally, and
// extra arguments are ignored.
package formatter
