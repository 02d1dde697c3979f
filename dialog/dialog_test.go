package dialog

import (
	"testing"

	"github.com/consoleview/consoleview/core"
	"github.com/consoleview/consoleview/formatter"
	"github.com/consoleview/consoleview/translate"
)

var testLookup = translate.Map{
	"_ERRORUC":        "ERROR",
	"_WARNINGUC":      "WARNING",
	"_CONFIRM_SUFFIX": "[y/N]",
	"_BAD":            "Bad {0}",
	"_SURE":           "Delete {0}?",
	"_NOTE":           "Note",
}

// fakePrompter records what it was asked to present.
type fakePrompter struct {
	shown   []string
	sevs    []core.Severity
	asked   []string
	confirm bool
}

func (p *fakePrompter) Show(text string, sev core.Severity) {
	p.shown = append(p.shown, text)
	p.sevs = append(p.sevs, sev)
}

func (p *fakePrompter) Confirm(text string) bool {
	p.asked = append(p.asked, text)
	return p.confirm
}

func newTestService(confirm bool) (*Service, *fakePrompter) {
	p := &fakePrompter{confirm: confirm}
	return NewService(formatter.New(testLookup), p), p
}

func TestShowError(t *testing.T) {
	s, p := newTestService(false)

	s.ShowError("_BAD", "X")

	if len(p.shown) != 1 || p.shown[0] != "ERROR: Bad X" {
		t.Errorf("shown = %q, want [ERROR: Bad X]", p.shown)
	}
	if p.sevs[0] != core.Error {
		t.Errorf("severity = %v, want Error", p.sevs[0])
	}
}

func TestShowWarning(t *testing.T) {
	s, p := newTestService(false)

	s.ShowWarning("_BAD", 2)

	if len(p.shown) != 1 || p.shown[0] != "WARNING: Bad 2" {
		t.Errorf("shown = %q, want [WARNING: Bad 2]", p.shown)
	}
}

func TestShowNoticeHasNoLabel(t *testing.T) {
	s, p := newTestService(false)

	s.ShowNotice("_NOTE")

	if len(p.shown) != 1 || p.shown[0] != "Note" {
		t.Errorf("shown = %q, want [Note]", p.shown)
	}
	if p.sevs[0] != core.Plain {
		t.Errorf("severity = %v, want Plain", p.sevs[0])
	}
}

func TestShowConfirm(t *testing.T) {
	s, p := newTestService(true)

	if !s.ShowConfirm("_SURE", "backup.bin") {
		t.Error("ShowConfirm = false, want the prompter's answer")
	}
	if len(p.asked) != 1 || p.asked[0] != "Delete backup.bin? [y/N]" {
		t.Errorf("asked = %q, want the suffixed question", p.asked)
	}

	s, _ = newTestService(false)
	if s.ShowConfirm("_SURE", "x") {
		t.Error("ShowConfirm = true, want false")
	}
}
