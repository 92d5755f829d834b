package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/boardstate-go/internal/config"
)

func TestSetupOutputFile(t *testing.T) {
	t.Run("no file named", func(t *testing.T) {
		cfg := config.NewConfig()
		file, err := setupOutputFile(cfg)
		if err != nil || file != nil {
			t.Fatalf("setupOutputFile() = %v, %v; want nil, nil", file, err)
		}
		if cfg.OutputFile != os.Stdout {
			t.Error("OutputFile changed without -o")
		}
	})

	t.Run("append keeps earlier output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "games.txt")
		if err := os.WriteFile(path, []byte("first\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer saveRestoreBool(appendOutput, true)()

		cfg := config.NewConfig()
		cfg.OutputFilename = path
		file, err := setupOutputFile(cfg)
		if err != nil {
			t.Fatalf("setupOutputFile() error = %v", err)
		}
		if _, err := cfg.OutputFile.Write([]byte("second\n")); err != nil {
			t.Fatal(err)
		}
		closeFile(file)

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "first\nsecond\n" {
			t.Errorf("file = %q, want %q", data, "first\nsecond\n")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.OutputFilename = filepath.Join(t.TempDir(), "missing", "games.txt")
		if _, err := setupOutputFile(cfg); err == nil {
			t.Error("setupOutputFile() error = nil for a missing directory")
		}
	})
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.log")
	defer saveRestoreString(logFile, path)()
	defer saveRestoreString(appendLog, "")()

	cfg := config.NewConfig()
	file, err := setupLogFile(cfg)
	if err != nil {
		t.Fatalf("setupLogFile() error = %v", err)
	}
	if file == nil {
		t.Fatal("setupLogFile() returned no file for -l")
	}
	cfg.Logf(1, "game %d: done\n", 1)
	closeFile(file)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "game 1: done\n" {
		t.Errorf("log = %q", data)
	}
}

func TestCloseFile_Nil(t *testing.T) {
	closeFile(nil)
}
