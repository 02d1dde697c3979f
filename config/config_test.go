package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONSOLE_LOCALE", "")
	t.Setenv("CONSOLE_NO_COLOR", "")
	t.Setenv("CONSOLE_QUEUE_SIZE", "")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want en", cfg.Locale)
	}
	if cfg.QueueSize != 64 {
		t.Errorf("QueueSize = %d, want 64", cfg.QueueSize)
	}
	if cfg.NoColor {
		t.Error("NoColor = true, want false")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "locale = \"de\"\nno_color = true\nqueue_size = 128\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Locale != "de" || !cfg.NoColor || cfg.QueueSize != 128 {
		t.Errorf("cfg = %+v, want {de true 128}", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "locale = \"de\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Locale != "de" {
		t.Errorf("Locale = %q, want de", cfg.Locale)
	}
	if cfg.QueueSize != 64 {
		t.Errorf("QueueSize = %d, want default 64", cfg.QueueSize)
	}
}

func TestLoadEmptyPathSkipsFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if *cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeFile(t, "locale = [broken\n")
	if _, err := Load(path); err == nil {
		t.Error("Load(invalid) error = nil, want error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "locale = \"de\"\nqueue_size = 128\n")
	t.Setenv("CONSOLE_LOCALE", "en")
	t.Setenv("CONSOLE_NO_COLOR", "1")
	t.Setenv("CONSOLE_QUEUE_SIZE", "256")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Locale != "en" || !cfg.NoColor || cfg.QueueSize != 256 {
		t.Errorf("cfg = %+v, want {en true 256}", cfg)
	}
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONSOLE_NO_COLOR", "maybe")
	t.Setenv("CONSOLE_QUEUE_SIZE", "lots")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NoColor || cfg.QueueSize != 64 {
		t.Errorf("cfg = %+v, want defaults for unparsable env", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty locale", "locale = \" \"\n"},
		{"zero queue size", "queue_size = 0\nlocale = \"en\"\n"},
		{"negative queue size", "queue_size = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() error = nil, want validation error")
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONSOLE_LOCALE", "de")
	cfg := FromEnv()
	if cfg.Locale != "de" {
		t.Errorf("Locale = %q, want de", cfg.Locale)
	}

	// Invalid environments degrade to defaults instead of failing.
	t.Setenv("CONSOLE_QUEUE_SIZE", "-3")
	cfg = FromEnv()
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
