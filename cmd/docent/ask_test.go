package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestAskCmdFlagValidation tests flag and argument validation paths that
// never reach the network.
func TestAskCmdFlagValidation(t *testing.T) {
	t.Run("missing question", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"ask"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing question")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"ask", "--format", "xml", "휴관일"})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for unknown format")
		}
		if !strings.Contains(err.Error(), "unknown format") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("explicit missing config file", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"ask", "--config", "/nonexistent/docent.yml", "휴관일"})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for missing config file")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"ask", "휴관일"})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error without API key")
		}
		if !strings.Contains(err.Error(), "API key") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestAskCmdConfigOverride tests that a config file's settings are honored.
func TestAskCmdConfigOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "docent.yml")
	// An invalid fuzzy cutoff should surface as a validation error,
	// proving the file was loaded before the key check.
	if err := os.WriteFile(configPath, []byte("fuzzyCutoff: 2.5\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"ask", "--config", configPath, "휴관일"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "configuration error") {
		t.Errorf("unexpected error: %v", err)
	}
}
