package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"color above palette", func(c *Config) { c.Colors.BoardDark = 256 }},
		{"negative color", func(c *Config) { c.Colors.CursorBG = -1 }},
		{"empty server address", func(c *Config) { c.ServerAddr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	saved := DefaultConfig
	saved.ServerAddr = "example.com:4000"
	saved.Colors.HintBG = 120
	if err := saveCfgFile(path, &saved, 0664); err != nil {
		t.Fatalf("save: %v", err)
	}

	var loaded Config
	if err := readCfgFile(path, &loaded); err != nil {
		t.Fatalf("read: %v", err)
	}
	if loaded != saved {
		t.Fatalf("round trip mismatch: got %+v, want %+v", loaded, saved)
	}
}
