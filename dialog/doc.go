// Package dialog wraps modal prompts around the console's message
// formatting.
//
// A Service builds dialog text the same way the console builds lines
// (translated template, positional arguments, severity label) and
// hands presentation to a Prompter. Dialogs are synchronous and are
// invoked from the owner goroutine in practice; no dispatching is
// involved.
package dialog
