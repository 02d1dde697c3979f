package console

import (
	"sync"

	"github.com/fatih/color"

	"github.com/consoleview/consoleview/config"
	"github.com/consoleview/consoleview/core"
	"github.com/consoleview/consoleview/sink"
	"github.com/consoleview/consoleview/translate"
)

var (
	defaultConsole *Console
	defaultMu      sync.RWMutex
)

func init() {
	// Initialize the default console with the embedded English
	// translations. Hosts that load configuration call Configure.
	defaultConsole = New(Config{
		Lookup: translate.NewTranslator("en"),
	})
}

// Default returns the default console
func Default() *Console {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultConsole
}

// SetDefault sets the default console. Tests substitute an isolated
// console here and restore the old one when done.
func SetDefault(c *Console) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConsole = c
}

// Configure rebuilds the default console from cfg and returns it. The
// previous default keeps running for callers that still hold it; its
// sink stays with it.
func Configure(cfg config.Config) *Console {
	color.NoColor = color.NoColor || cfg.NoColor
	c := New(Config{
		Lookup:    translate.NewTranslator(cfg.Locale),
		QueueSize: cfg.QueueSize,
	})
	SetDefault(c)
	return c
}

// Package-level convenience functions using the default console

// Bind registers s as the default console's sink
func Bind(s sink.Sink) {
	Default().Bind(s)
}

// Unbind clears the default console's sink registry
func Unbind() {
	Default().Unbind()
}

// Clear truncates the default console's sink
func Clear() {
	Default().Clear()
}

// Write appends text in col using the default console
func Write(text string, col core.Color) {
	Default().Write(text, col)
}

// WriteLine writes a terminated plain line using the default console
func WriteLine(key string, col core.Color, args ...any) {
	Default().WriteLine(key, col, args...)
}

// Error writes a red ERROR line using the default console
func Error(key string, args ...any) {
	Default().Error(key, args...)
}

// Warning writes a yellow WARNING line using the default console
func Warning(key string, args ...any) {
	Default().Warning(key, args...)
}

// Success writes a light-green SUCCESS line using the default console
func Success(key string, args ...any) {
	Default().Success(key, args...)
}
