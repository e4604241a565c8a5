package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFallsBackToDefaultWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "script.oo"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IndentWidth.OrDefault() != DefaultIndentWidth {
		t.Errorf("IndentWidth = %d, want default %d", cfg.IndentWidth.OrDefault(), DefaultIndentWidth)
	}
}

func TestLoadDecodesIntegerIndentWidth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "oolang.yml", "indent_width: 4\ncapture_output: true\n")
	cfg, err := Load(filepath.Join(dir, "script.oo"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IndentWidth.OrDefault() != 4 {
		t.Errorf("IndentWidth = %d, want 4", cfg.IndentWidth.OrDefault())
	}
	if !cfg.CaptureOutput {
		t.Error("CaptureOutput should be true")
	}
}

func TestLoadDecodesNumericStringIndentWidth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "oolang.yml", `indent_width: "3"`+"\n")
	cfg, err := Load(filepath.Join(dir, "script.oo"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IndentWidth.OrDefault() != 3 {
		t.Errorf("IndentWidth = %d, want 3", cfg.IndentWidth.OrDefault())
	}
}

func TestLoadRejectsNonNumericIndentWidth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "oolang.yml", "indent_width: banana\n")
	if _, err := Load(filepath.Join(dir, "script.oo")); err == nil {
		t.Fatal("expected a decode error for a non-numeric indent_width")
	}
}

func TestDefaultHasIndentWidthSet(t *testing.T) {
	cfg := Default()
	if cfg.IndentWidth.OrDefault() != DefaultIndentWidth {
		t.Errorf("Default().IndentWidth = %d, want %d", cfg.IndentWidth.OrDefault(), DefaultIndentWidth)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
