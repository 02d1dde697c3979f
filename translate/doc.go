// Package translate provides the translation lookup consumed by the
// formatter and the console.
//
// The Lookup interface is deliberately narrow: one key in, one string
// out, no error. Lookups never fail; a key that cannot be resolved
// degrades to the key itself, which callers render as literal text.
// Implementations must be safe for concurrent Get calls from any
// goroutine.
//
// Two implementations are provided: Map, a plain in-memory table used
// by tests and by hosts that assemble their strings programmatically,
// and Translator, backed by go-i18n with TOML message files embedded
// in the binary.
package translate
