package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAILYFLO_DATA_DIR", dir)

	if got := dataDir(); got != dir {
		t.Fatalf("dataDir() = %q, want %q", got, dir)
	}
}

func TestDataDirDefaultEmpty(t *testing.T) {
	t.Setenv("DAILYFLO_DATA_DIR", "")

	if got := dataDir(); got != "" {
		t.Fatalf("dataDir() = %q, want empty", got)
	}
}

func TestRunVersion(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAILYFLO_DATA_DIR", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	originalArgs := os.Args
	t.Cleanup(func() { os.Args = originalArgs })
	os.Args = []string{"dailyflo", "--version"}

	if err := run(); err != nil {
		t.Fatalf("run() returned error: %v", err)
	}
}
