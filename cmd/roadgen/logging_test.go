package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inLogSandbox runs setupLogging relative to a fresh working directory
func inLogSandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return dir
}

func TestSetupLogging_DiscardWithoutDebug(t *testing.T) {
	dir := inLogSandbox(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(filepath.Join(dir, logDir)); !os.IsNotExist(err) {
		t.Error("log directory created without debug")
	}
}

func TestSetupLogging_DebugWritesFile(t *testing.T) {
	inLogSandbox(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file with debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Fatal("debug logs must not go to stdout or stderr")
	}

	log.Printf("scenario batch done")
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "scenario batch done") {
		t.Errorf("log file missing message:\n%s", data)
	}
}

func TestSetupLogging_RotatesLargeFile(t *testing.T) {
	inLogSandbox(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file with debug")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "roadgen_") && filepath.Ext(e.Name()) == ".log" {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 {
		t.Fatalf("expected one rotated file, got %v", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log is %d bytes, expected rotation", info.Size())
	}
}
