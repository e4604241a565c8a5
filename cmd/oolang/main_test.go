package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunNoCaptureWritesDirectlyToStdout(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "main.ool", "print 1 + 2\n")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	code := run([]string{script})
	w.Close()
	os.Stdout = orig

	if code != 0 {
		t.Fatalf("run returned %d, want 0", code)
	}
	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	if got := string(buf[:n]); got != "3\n" {
		t.Fatalf("stdout = %q, want %q", got, "3\n")
	}
}

func TestRunCaptureOutputSuppressesPartialOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "oolang.yml", "capture_output: true\n")
	// A script that prints, then hits a runtime error: with capture_output
	// set, the printed line must never reach stdout since the run fails.
	script := writeScript(t, dir, "main.ool", "print \"before\"\nundefined_name\n")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	code := run([]string{script})
	w.Close()
	os.Stdout = orig

	if code == 0 {
		t.Fatal("expected a non-zero exit referencing an undefined name")
	}
	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	if got := string(buf[:n]); got != "" {
		t.Fatalf("stdout = %q, want empty: capture_output must suppress output on a failing run", got)
	}
}

func TestRunCaptureOutputFlushesOnSuccess(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "oolang.yml", "capture_output: true\n")
	script := writeScript(t, dir, "main.ool", "print \"ok\"\n")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	code := run([]string{script})
	w.Close()
	os.Stdout = orig

	if code != 0 {
		t.Fatalf("run returned %d, want 0", code)
	}
	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	if got := string(buf[:n]); got != "ok\n" {
		t.Fatalf("stdout = %q, want %q", got, "ok\n")
	}
}
