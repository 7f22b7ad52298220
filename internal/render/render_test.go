package render

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gnsm/docent/internal/config"
	"github.com/gnsm/docent/internal/fetch"
	"github.com/gnsm/docent/internal/model"
)

// TestNewWriter tests format selection.
func TestNewWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"markdown", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{"unknown", Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := NewWriter(tt.format, &strings.Builder{})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown format")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w == nil {
				t.Fatal("expected a writer")
			}
		})
	}
}

// TestMarkdownWriteAnswer tests answer rendering.
func TestMarkdownWriteAnswer(t *testing.T) {
	t.Parallel()

	t.Run("response and links", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		answer := &model.Answer{
			Response: "### 이용안내\n- 매주 월요일 휴관",
			Links: []model.Link{
				{Title: "이용안내", URL: "https://www.sciencecenter.go.kr/scipia/guide/totalGuide"},
			},
		}
		if _, err := NewMarkdownWriter(&buf).WriteAnswer(answer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "매주 월요일 휴관") {
			t.Errorf("missing response body:\n%s", out)
		}
		if !strings.Contains(out, "홈페이지 확인하기") {
			t.Errorf("missing links heading:\n%s", out)
		}
		if !strings.Contains(out, "[이용안내](https://www.sciencecenter.go.kr/scipia/guide/totalGuide)") {
			t.Errorf("missing source link:\n%s", out)
		}
	})

	t.Run("guess notice", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		answer := &model.Answer{
			Match: model.MatchResult{
				Guess: &model.GuessedMatch{Label: "곤충생태관", Score: 0.99},
			},
			Response: "### 곤충생태관",
		}
		if _, err := NewMarkdownWriter(&buf).WriteAnswer(answer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "곤충생태관' 페이지의 내용으로") {
			t.Errorf("missing guess notice:\n%s", buf.String())
		}
	})

	t.Run("no links section without links", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		answer := &model.Answer{Response: "안내", NoMatch: true}
		if _, err := NewMarkdownWriter(&buf).WriteAnswer(answer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "홈페이지 확인하기") {
			t.Errorf("unexpected links heading:\n%s", buf.String())
		}
	})
}

// TestMarkdownWriteDirectory tests the directory listing.
func TestMarkdownWriteDirectory(t *testing.T) {
	t.Parallel()

	dir, err := config.NewDirectory(config.DefaultBaseURL)
	if err != nil {
		t.Fatalf("load embedded directory: %v", err)
	}

	var buf strings.Builder
	if _, err := NewMarkdownWriter(&buf).WriteDirectory(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"## 핵심 운영·예약",
		"이용안내",
		"https://www.sciencecenter.go.kr/scipia/guide/totalGuide",
		"## 상설전시관",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("directory listing missing %q", want)
		}
	}
}

// TestMarkdownWriteVerifyResults tests the verification report.
func TestMarkdownWriteVerifyResults(t *testing.T) {
	t.Parallel()

	t.Run("failures flagged", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		results := []fetch.VerifyResult{
			{Label: "이용안내", URL: "https://example.com/guide", StatusCode: 200},
			{Label: "주차안내", URL: "https://example.com/parking", Err: errors.New("connection refused")},
		}
		if _, err := NewMarkdownWriter(&buf).WriteVerifyResults(results); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "connection refused") {
			t.Errorf("missing failure detail:\n%s", out)
		}
		if !strings.Contains(out, "1개 페이지에 접근하지 못했습니다") {
			t.Errorf("missing failure count:\n%s", out)
		}
	})

	t.Run("all ok", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		results := []fetch.VerifyResult{
			{Label: "이용안내", URL: "https://example.com/guide", StatusCode: 200},
		}
		if _, err := NewMarkdownWriter(&buf).WriteVerifyResults(results); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "모든 페이지가 정상 응답했습니다") {
			t.Errorf("missing all-ok notice:\n%s", buf.String())
		}
	})
}

// TestJSONWriteAnswer tests JSON output round-trips the answer.
func TestJSONWriteAnswer(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	answer := &model.Answer{
		Query:    "휴관일",
		Response: "### 이용안내",
		Match:    model.MatchResult{SynonymLabel: config.UsageGuideLabel},
	}
	if _, err := NewJSONWriter(&buf).WriteAnswer(answer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded model.Answer
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Query != answer.Query || decoded.Response != answer.Response {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
	if decoded.Match.SynonymLabel != config.UsageGuideLabel {
		t.Errorf("match result not preserved: %+v", decoded.Match)
	}
}
