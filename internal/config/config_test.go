package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.SymbolTable != "symbTable.txt" {
		t.Errorf("expected SymbolTable=symbTable.txt, got %s", cfg.Output.SymbolTable)
	}
	if cfg.Output.ObjectProgram != "HTME.txt" {
		t.Errorf("expected ObjectProgram=HTME.txt, got %s", cfg.Output.ObjectProgram)
	}
	if cfg.Listing.AddressDigits != 4 {
		t.Errorf("expected AddressDigits=4, got %d", cfg.Listing.AddressDigits)
	}
	if cfg.Listing.RecordDigits != 6 {
		t.Errorf("expected RecordDigits=6, got %d", cfg.Listing.RecordDigits)
	}
	if !cfg.Display.ColorOutput {
		t.Error("expected ColorOutput=true")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected path to end with config.toml, got %s", path)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadFrom of a missing file should not error: %v", err)
	}
	if cfg.Output.Pass1 != "out_pass1.txt" {
		t.Errorf("expected defaults when file is missing, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Listing.AddressDigits = 8
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Listing.AddressDigits != 8 {
		t.Errorf("expected AddressDigits=8 after round trip, got %d", loaded.Listing.AddressDigits)
	}
}
