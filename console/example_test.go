package console_test

import (
	"github.com/consoleview/consoleview/console"
	"github.com/consoleview/consoleview/core"
	"github.com/consoleview/consoleview/sink"
	"github.com/consoleview/consoleview/translate"
)

// Bind a terminal sink to the default console and log from anywhere.
func ExampleBind() {
	console.Bind(sink.NewTerm(nil))
	defer console.Unbind()

	console.WriteLine("_STARTING", core.ColorDefault)
	console.Success("_DONE")
}

// Create an isolated console with its own translations, e.g. for a
// component that must not share the process-wide sink.
func ExampleNew() {
	c := console.New(console.Config{
		Lookup: translate.Map{
			"_SUCCESSUC": "SUCCESS",
			"_DONE":      "Finished",
		},
	})
	defer c.Close()

	c.Bind(sink.NewBuffer())
	c.Success("_DONE")
}
