package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestPagesCmd tests the directory listing (no network involved).
func TestPagesCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"pages"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("pages failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"안내 가능한 페이지",
		"이용안내",
		"https://www.sciencecenter.go.kr/scipia/guide/totalGuide",
		"천문우주시설",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q", want)
		}
	}
}

// TestPagesVerifyCmdFlags tests flag registration.
func TestPagesVerifyCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := NewPagesVerifyCmd()
	flag := cmd.Flags().Lookup("concurrency")
	if flag == nil {
		t.Fatal("missing concurrency flag")
	}
	if flag.Shorthand != "n" {
		t.Errorf("concurrency shorthand = %q, want n", flag.Shorthand)
	}
}
