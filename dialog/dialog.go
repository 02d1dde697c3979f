package dialog

import (
	"strings"

	"github.com/consoleview/consoleview/core"
	"github.com/consoleview/consoleview/formatter"
)

// Prompter presents a formatted dialog to the user. Implementations
// block until the dialog is dismissed.
type Prompter interface {
	// Show presents text modally; sev drives the presentation style.
	Show(text string, sev core.Severity)

	// Confirm presents text as a yes/no question and returns the answer.
	Confirm(text string) bool
}

// Service formats and presents modal dialogs.
type Service struct {
	fmt *formatter.Formatter
	p   Prompter
}

// NewService creates a dialog service over f and p. A nil prompter
// defaults to the terminal prompter on stderr/stdin.
func NewService(f *formatter.Formatter, p Prompter) *Service {
	if p == nil {
		p = NewTermPrompter(nil, nil)
	}
	return &Service{fmt: f, p: p}
}

// ShowError presents a red, ERROR-labeled modal message.
func (s *Service) ShowError(key string, args ...any) {
	s.show(core.Error, key, args)
}

// ShowWarning presents a yellow, WARNING-labeled modal message.
func (s *Service) ShowWarning(key string, args ...any) {
	s.show(core.Warning, key, args)
}

// ShowNotice presents an unlabeled modal message.
func (s *Service) ShowNotice(key string, args ...any) {
	s.show(core.Plain, key, args)
}

// ShowConfirm presents a yes/no question built from key and args and
// returns the user's answer.
func (s *Service) ShowConfirm(key string, args ...any) bool {
	body := s.fmt.FormatPlain(key, args...)
	suffix := s.fmt.FormatPlain("_CONFIRM_SUFFIX")
	if suffix != "" {
		body = body + " " + suffix
	}
	return s.p.Confirm(body)
}

// show reuses the console's severity formatting and strips the line
// terminator; dialogs carry no trailing newline of their own.
func (s *Service) show(sev core.Severity, key string, args []any) {
	line := s.fmt.Format(key, sev, args...)
	s.p.Show(strings.TrimSuffix(line.Text, core.Terminator), sev)
}
