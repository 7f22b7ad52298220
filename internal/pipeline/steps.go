package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnsm/docent/internal/config"
	"github.com/gnsm/docent/internal/llm"
	"github.com/gnsm/docent/internal/model"
	"github.com/gnsm/docent/internal/normalize"
)

// QueryMatcher resolves a query to directory labels.
type QueryMatcher interface {
	Match(query string) model.MatchResult
}

// PageFetcher retrieves one page as a PageResult.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) model.PageResult
}

// MatchStep resolves the question against the page directory.
type MatchStep struct {
	matcher QueryMatcher
}

// NewMatchStep creates a MatchStep.
func NewMatchStep(matcher QueryMatcher) *MatchStep {
	return &MatchStep{matcher: matcher}
}

// Name implements Step.
func (s *MatchStep) Name() string {
	return "match"
}

// Do implements Step.
func (s *MatchStep) Do(_ context.Context, answer *model.Answer) error {
	answer.Match = s.matcher.Match(answer.Query)
	return nil
}

// FetchStep retrieves every matched page and assembles the facts sections.
// Pages are fetched sequentially in match order so the bundle order is
// stable; a typical question matches only one or two pages.
type FetchStep struct {
	dir     *config.Directory
	fetcher PageFetcher
}

// NewFetchStep creates a FetchStep over the given directory.
func NewFetchStep(dir *config.Directory, fetcher PageFetcher) *FetchStep {
	return &FetchStep{dir: dir, fetcher: fetcher}
}

// Name implements Step.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do implements Step.
//
// A failed page still contributes a section, with a templated notice that
// points the user at the page itself. Failures never abort the step.
func (s *FetchStep) Do(ctx context.Context, answer *model.Answer) error {
	for _, label := range answer.Match.Labels() {
		url, ok := s.dir.URL(label)
		if !ok {
			continue
		}

		page := s.fetcher.Fetch(ctx, url)
		answer.Pages = append(answer.Pages, page)

		title := page.Title
		if title == "" {
			title = label
		}
		answer.AddLink(title, page.Source)

		if page.HasRichContent {
			answer.HasRichContent = true
		}

		body := page.Facts
		if page.Failed() {
			body = fmt.Sprintf(
				"이 페이지는 자동으로 내용을 불러오지 못했습니다. "+
					"아래 링크를 눌러 홈페이지에서 직접 확인해 주세요. (%s)",
				page.Source,
			)
		}
		answer.Sections = append(answer.Sections, model.FactsSection{
			Title: title,
			Body:  body,
		})
	}
	return nil
}

// GenerateStep produces the answer text from the facts bundle.
type GenerateStep struct {
	completer llm.Completer
	dir       *config.Directory
}

// NewGenerateStep creates a GenerateStep.
func NewGenerateStep(completer llm.Completer, dir *config.Directory) *GenerateStep {
	return &GenerateStep{completer: completer, dir: dir}
}

// Name implements Step.
func (s *GenerateStep) Name() string {
	return "generate"
}

// Do implements Step.
//
// With no facts at all the model is never called; the user gets a guidance
// message with entry-point links instead. A model error becomes an inline
// notice so the chat loop keeps running.
func (s *GenerateStep) Do(ctx context.Context, answer *model.Answer) error {
	facts := llm.BundleFacts(answer.Sections)
	if facts == "" {
		answer.NoMatch = true
		answer.Response = s.noMatchGuidance()
		return nil
	}

	response, err := s.completer.Complete(ctx, answer.Query, facts)
	if err != nil {
		answer.Response = fmt.Sprintf("⚠️ 응답 생성 중 오류 발생: %v", err)
		return nil
	}
	answer.Response = response
	return nil
}

// noMatchGuidance builds the fallback message shown when no directory entry
// produced facts. It always offers the usage guide and the full site map as
// starting points.
func (s *GenerateStep) noMatchGuidance() string {
	guideURL, _ := s.dir.URL(config.UsageGuideLabel)

	lines := []string{
		"### 홈페이지에서 직접 확인이 필요한 내용입니다.",
		"",
		"- 질문과 정확히 연결되는 정보를 자동으로 찾기 어렵습니다.",
		"- 질문을 조금 더 구체적으로, 또는 다른 표현으로 다시 입력해 주세요 😊",
		"",
		fmt.Sprintf("- [이용안내 메인](%s)", guideURL),
		fmt.Sprintf("- [전체 메뉴 한눈에 보기](%s)", s.dir.Resolve(config.SiteMapPath)),
	}
	return strings.Join(lines, "\n")
}

// PolishStep cleans up the generated markdown.
type PolishStep struct{}

// NewPolishStep creates a PolishStep.
func NewPolishStep() *PolishStep {
	return &PolishStep{}
}

// Name implements Step.
func (s *PolishStep) Name() string {
	return "polish"
}

// Do implements Step. Strikethrough artifacts are removed and, when any
// source page carried a table or image, a notice steers the user to the
// homepage for the full layout.
func (s *PolishStep) Do(_ context.Context, answer *model.Answer) error {
	answer.Response = normalize.AnswerMarkdown(answer.Response)

	if answer.HasRichContent && !answer.NoMatch {
		answer.Response += "\n\n> ℹ️ **더욱 자세한 안내를 원하신다면?**  \n" +
			"> 홈페이지를 함께 확인해주세요!\n"
	}
	return nil
}
