// Package core defines the shared types used across the consoleview
// framework.
//
// It provides the Severity type that classifies console output, the
// Color type for per-run text attribution, and the Line type that
// carries one formatted append from the formatter to the sink.
//
// Severity is a closed set: Plain, Error, Warning and Success. Each
// severity maps to a fixed translation label key and a fixed color at
// compile time; there is no runtime metadata lookup.
package core
