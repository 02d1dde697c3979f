package dialog

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/consoleview/consoleview/core"
)

// severityAttrs maps dialog severities to fatih/color renderers.
var severityAttrs = map[core.Severity]*color.Color{
	core.Error:   color.New(color.FgRed, color.Bold),
	core.Warning: color.New(color.FgYellow, color.Bold),
	core.Success: color.New(color.FgHiGreen, color.Bold),
}

// TermPrompter renders dialogs on a terminal: messages go to the
// writer, confirmations read one line from the reader.
type TermPrompter struct {
	w  io.Writer
	in *bufio.Reader
}

// Ensure TermPrompter satisfies Prompter.
var _ Prompter = (*TermPrompter)(nil)

// NewTermPrompter creates a TermPrompter over w and r. A nil writer
// defaults to os.Stderr, a nil reader to os.Stdin.
func NewTermPrompter(w io.Writer, r io.Reader) *TermPrompter {
	if w == nil {
		w = os.Stderr
	}
	if r == nil {
		r = os.Stdin
	}
	return &TermPrompter{w: w, in: bufio.NewReader(r)}
}

// Show writes the message on its own line, colored by severity.
func (t *TermPrompter) Show(text string, sev core.Severity) {
	if attr, ok := severityAttrs[sev]; ok {
		attr.Fprintln(t.w, text)
		return
	}
	io.WriteString(t.w, text+"\n")
}

// Confirm writes the question and reads one line; "y" or "yes"
// (case-insensitive) confirms, anything else declines. A read failure
// declines: the safe answer to an unanswerable question is no.
func (t *TermPrompter) Confirm(text string) bool {
	io.WriteString(t.w, text+" ")
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "j", "ja":
		return true
	}
	return false
}
