package extract

import (
	"strings"
	"testing"
)

const testOrigin = "https://www.sciencecenter.go.kr"

// TestFactsText tests block-text extraction and layering.
func TestFactsText(t *testing.T) {
	t.Parallel()

	t.Run("headings paragraphs and list items in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h1>이용안내</h1>
			<p>관람 시간 안내입니다.</p>
			<h2>관람시간</h2>
			<ul><li>평일 9:3017:30</li><li>주말 9:30~18:00</li></ul>
		</body></html>`

		facts, rich := New(testOrigin).Facts(html)
		if rich {
			t.Error("text-only page should not be rich")
		}

		want := strings.Join([]string{
			"### 텍스트",
			"# 이용안내",
			"관람 시간 안내입니다.",
			"## 관람시간",
			"- 평일 9:30~17:30",
			"- 주말 9:30~18:00",
		}, "\n")
		if facts != want {
			t.Errorf("unexpected facts:\n%s\nwant:\n%s", facts, want)
		}
	})

	t.Run("heading depth clamped to four", func(t *testing.T) {
		t.Parallel()

		html := `<h4>소제목</h4>`
		facts, _ := New(testOrigin).Facts(html)
		if !strings.Contains(facts, "#### 소제목") {
			t.Errorf("expected level-4 heading marker, got:\n%s", facts)
		}
	})

	t.Run("strips scripts styles and site chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav><p>메뉴</p></nav>
			<header><h1>사이트 헤더</h1></header>
			<script>var x = 1;</script>
			<style>p { color: red }</style>
			<noscript><p>자바스크립트를 켜 주세요</p></noscript>
			<p>본문입니다.</p>
			<footer><p>푸터</p></footer>
		</body></html>`

		facts, _ := New(testOrigin).Facts(html)
		for _, gone := range []string{"메뉴", "사이트 헤더", "var x", "자바스크립트", "푸터"} {
			if strings.Contains(facts, gone) {
				t.Errorf("non-content text %q leaked into facts:\n%s", gone, facts)
			}
		}
		if !strings.Contains(facts, "본문입니다.") {
			t.Errorf("body text missing from facts:\n%s", facts)
		}
	})

	t.Run("empty page yields fixed placeholder", func(t *testing.T) {
		t.Parallel()

		facts, rich := New(testOrigin).Facts(`<html><body><div>   </div></body></html>`)
		if facts != PlaceholderNoContent {
			t.Errorf("expected placeholder, got %q", facts)
		}
		if rich {
			t.Error("placeholder result must not be rich")
		}
	})
}

// TestFactsTables tests markdown grid conversion.
func TestFactsTables(t *testing.T) {
	t.Parallel()

	t.Run("uneven rows padded to max width", func(t *testing.T) {
		t.Parallel()

		html := `<table>
			<tr><th>회차</th><th>시간</th><th>대상</th></tr>
			<tr><td>1회</td><td>10:0010:40</td></tr>
			<tr><td>2회</td><td>13:00~13:40</td><td>전체</td></tr>
		</table>`

		facts, rich := New(testOrigin).Facts(html)
		if !rich {
			t.Error("page with a table should be rich")
		}

		lines := gridLines(t, facts)
		// header + separator + 2 body rows
		if len(lines) != 4 {
			t.Fatalf("expected 4 grid lines, got %d:\n%s", len(lines), facts)
		}
		if lines[0] != "| 회차 | 시간 | 대상 |" {
			t.Errorf("unexpected header row %q", lines[0])
		}
		if lines[1] != "| --- | --- | --- |" {
			t.Errorf("unexpected separator row %q", lines[1])
		}
		if lines[2] != "| 1회 | 10:00~10:40 |  |" {
			t.Errorf("short row not padded: %q", lines[2])
		}

		// Every emitted row has uniform width.
		width := strings.Count(lines[0], "|")
		for _, line := range lines {
			if strings.Count(line, "|") != width {
				t.Errorf("row width mismatch: %q", line)
			}
		}
	})

	t.Run("cell links rendered as markdown fragments", func(t *testing.T) {
		t.Parallel()

		html := `<table>
			<tr><th>프로그램</th></tr>
			<tr><td><a href="/scipia/introduce/notice/24281">천체투영관 안내</a></td></tr>
			<tr><td><a href="/scipia/introduce/notice/25098"></a></td></tr>
			<tr><td><a>링크 없음</a></td></tr>
		</table>`

		facts, _ := New(testOrigin).Facts(html)
		if !strings.Contains(facts, "[천체투영관 안내]("+testOrigin+"/scipia/introduce/notice/24281)") {
			t.Errorf("root-relative link not resolved:\n%s", facts)
		}
		if !strings.Contains(facts, "[자세히 보기]("+testOrigin+"/scipia/introduce/notice/25098)") {
			t.Errorf("empty link text should use fallback label:\n%s", facts)
		}
		if !strings.Contains(facts, "| 링크 없음 |") {
			t.Errorf("href-less link should degrade to bare text:\n%s", facts)
		}
	})

	t.Run("empty table skipped entirely", func(t *testing.T) {
		t.Parallel()

		html := `<p>본문</p><table><tr></tr></table>`
		facts, rich := New(testOrigin).Facts(html)
		if strings.Contains(facts, "### 표") {
			t.Errorf("empty table should contribute nothing:\n%s", facts)
		}
		if rich {
			t.Error("page with only an empty table should not be rich")
		}
	})

	t.Run("table count capped", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for range 5 {
			b.WriteString(`<table><tr><th>a</th></tr><tr><td>b</td></tr></table>`)
		}
		facts, _ := New(testOrigin, WithMaxTables(2)).Facts(b.String())

		blocks := strings.Count(facts, "| --- |")
		if blocks != 2 {
			t.Errorf("expected 2 tables with cap 2, got %d:\n%s", blocks, facts)
		}
	})
}

// TestFactsImages tests image URL resolution and deduplication.
func TestFactsImages(t *testing.T) {
	t.Parallel()

	html := `<body>
		<img src="/upload/map.png">
		<img src="https://cdn.example.org/banner.jpg">
		<img src="/upload/map.png">
		<img src="">
		<img>
	</body>`

	facts, rich := New(testOrigin).Facts(html)
	if !rich {
		t.Error("page with images should be rich")
	}

	idx := strings.Index(facts, "### 이미지 URL\n")
	if idx < 0 {
		t.Fatalf("missing image section:\n%s", facts)
	}
	got := strings.Split(strings.TrimSpace(facts[idx+len("### 이미지 URL\n"):]), "\n")
	want := []string{
		testOrigin + "/upload/map.png",
		"https://cdn.example.org/banner.jpg",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d image URLs, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("image %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestTitle tests title inference preference order.
func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "prefers h1",
			html: `<title>사이트</title><h1>공지 제목</h1><h2>부제</h2>`,
			want: "공지 제목",
		},
		{
			name: "falls back to h2 when first h1 empty",
			html: `<h1>  </h1><h2>부제목</h2>`,
			want: "부제목",
		},
		{
			name: "falls back to h3",
			html: `<h3>소제목</h3><title>사이트</title>`,
			want: "소제목",
		},
		{
			name: "falls back to title element",
			html: `<html><head><title> 국립과천과학관 </title></head><body><p>본문</p></body></html>`,
			want: "국립과천과학관",
		},
		{
			name: "empty when nothing available",
			html: `<p>본문</p>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(testOrigin).Title(tt.html); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

// gridLines returns the pipe-delimited lines of the tables section.
func gridLines(t *testing.T, facts string) []string {
	t.Helper()

	var lines []string
	for line := range strings.Lines(facts) {
		line = strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(line, "|") {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		t.Fatalf("no table grid found in facts:\n%s", facts)
	}
	return lines
}
