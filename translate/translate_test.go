package translate

import (
	"sync"
	"testing"
)

func TestMapGet(t *testing.T) {
	m := Map{"_DONE": "Finished"}

	if got := m.Get("_DONE"); got != "Finished" {
		t.Errorf("Get(_DONE) = %q, want %q", got, "Finished")
	}
	// Unresolvable keys fall back to the key itself.
	if got := m.Get("_MISSING"); got != "_MISSING" {
		t.Errorf("Get(_MISSING) = %q, want %q", got, "_MISSING")
	}
	if got := Map(nil).Get("anything"); got != "anything" {
		t.Errorf("nil Map Get = %q, want %q", got, "anything")
	}
}

func TestTranslatorGet(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		key      string
		expected string
	}{
		{"english label", "en", "_ERRORUC", "ERROR"},
		{"english warning", "en", "_WARNINGUC", "WARNING"},
		{"english success", "en", "_SUCCESSUC", "SUCCESS"},
		{"german label", "de", "_ERRORUC", "FEHLER"},
		{"german success", "de", "_SUCCESSUC", "ERFOLG"},
		{"unknown key falls back to key", "en", "_NOPE", "_NOPE"},
		{"empty key", "en", "", ""},
		{"unknown locale falls back to english", "zu", "_ERRORUC", "ERROR"},
		{"unparsable locale falls back to english", "!!", "_ERRORUC", "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranslator(tt.locale)
			if got := tr.Get(tt.key); got != tt.expected {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestTranslatorConcurrentGet(t *testing.T) {
	tr := NewTranslator("en")

	const goroutines = 8
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if got := tr.Get("_ERRORUC"); got != "ERROR" {
					t.Errorf("Get(_ERRORUC) = %q, want ERROR", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
