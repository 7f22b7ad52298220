package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeHistoryConfig writes a config file pointing history at a temp dir.
func writeHistoryConfig(t *testing.T) (configPath, historyDir string) {
	t.Helper()

	dir := t.TempDir()
	historyDir = filepath.Join(dir, "data")
	configPath = filepath.Join(dir, "docent.yml")
	content := fmt.Sprintf("historyDir: %s\n", historyDir)
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, historyDir
}

// TestHistoryCmdEmpty tests the empty-history path.
func TestHistoryCmdEmpty(t *testing.T) {
	t.Parallel()

	configPath, _ := writeHistoryConfig(t)

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"history", "--config", configPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(buf.String(), "저장된 대화가 없습니다") {
		t.Errorf("missing empty notice:\n%s", buf.String())
	}
}

// TestHistoryClearCmdEmpty tests clearing when nothing was ever stored.
func TestHistoryClearCmdEmpty(t *testing.T) {
	t.Parallel()

	configPath, _ := writeHistoryConfig(t)

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"history", "clear", "--config", configPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
}
