package render

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"

	"github.com/gnsm/docent/internal/config"
	"github.com/gnsm/docent/internal/fetch"
	"github.com/gnsm/docent/internal/model"
)

// MarkdownWriter outputs answers in Markdown format for terminal reading.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteAnswer outputs the answer, a guess notice when the page was picked
// by similarity rather than by name, and the source page links.
func (w *MarkdownWriter) WriteAnswer(answer *model.Answer) (int, error) {
	md := markdown.NewMarkdown(w.output)

	if g := answer.Match.Guess; g != nil {
		md.Notef("'%s' 페이지의 내용으로 답변을 준비했어요.", g.Label)
		md.PlainText("")
	}

	md.PlainText(answer.Response)

	if len(answer.Links) > 0 {
		md.PlainText("")
		md.H3("🔎 홈페이지 확인하기")
		items := make([]string, 0, len(answer.Links))
		for _, l := range answer.Links {
			items = append(items, fmt.Sprintf("[%s](%s)", l.Title, l.URL))
		}
		md.BulletList(items...)
	}

	return len(md.String()), md.Build()
}

// WriteDirectory outputs the page directory grouped by section.
func (w *MarkdownWriter) WriteDirectory(dir *config.Directory) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("안내 가능한 페이지")
	md.PlainText("")

	for _, section := range dir.Sections() {
		md.H2(section.Name)
		md.PlainText("")

		rows := make([][]string, 0, len(section.Pages))
		for _, page := range section.Pages {
			rows = append(rows, []string{page.Label, dir.Resolve(page.Path)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"페이지", "URL"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteTopics outputs the topic shortcut tree shown by the chat REPL.
func (w *MarkdownWriter) WriteTopics(tree *config.TopicTree) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2("🔍 무엇을 도와드릴까요?")
	md.PlainText("")

	for _, group := range tree.Groups() {
		md.H3(group.Label)
		items := make([]string, 0, len(group.Children))
		for _, child := range group.Children {
			items = append(items, fmt.Sprintf("%s: `%s`", child.Label, child.Query))
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteVerifyResults outputs a directory verification report.
func (w *MarkdownWriter) WriteVerifyResults(results []fetch.VerifyResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("페이지 점검 결과")
	md.PlainText("")

	var failed int
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "✅"
		detail := fmt.Sprintf("%d", r.StatusCode)
		if !r.OK() {
			failed++
			status = "❌"
			if r.Err != nil {
				detail = r.Err.Error()
			}
		}
		rows = append(rows, []string{status, r.Label, r.URL, detail})
	}
	md.Table(markdown.TableSet{
		Header: []string{"상태", "페이지", "URL", "응답"},
		Rows:   rows,
	})
	md.PlainText("")

	if failed > 0 {
		md.Warningf("%d개 페이지에 접근하지 못했습니다.", failed)
	} else {
		md.Tip("모든 페이지가 정상 응답했습니다.")
	}
	md.PlainText("")

	return len(md.String()), md.Build()
}
