package llm

import (
	"fmt"
	"strings"

	"github.com/gnsm/docent/internal/model"
)

// SectionSeparator divides per-page sections inside the facts bundle.
const SectionSeparator = "\n\n----------------\n\n"

// systemPrompt pins the model to the facts bundle. Rule 7 matters most:
// error wording belongs to this program, never to the model.
const systemPrompt = `
당신은 국립과천과학관 전용 AI 가이드입니다.

[역할]
- 사용자가 묻는 내용을, 아래 FACTS에 포함된 정보만 사용해서 이해하기 쉽게 설명합니다.
- FACTS는 국립과천과학관 공식 홈페이지에서 가져온 실제 내용입니다.

[엄격한 규칙]
1. FACTS 블록 안의 문장을 그대로 길게 복사·붙여넣기 하지 마세요.
2. FACTS 블록(예: '### 텍스트', '### 표', '[섹션:' 등)의 구조나 문구를
   답변에 그대로 보여주지 마세요.
3. FACTS에서 필요한 정보만 뽑아서 **짧은 불릿/표 형태로 정리만** 해주세요.
4. 답변은 최대 15줄 이내로, 각 줄은 한두 문장으로만 작성하세요.
5. FACTS에 없는 정보(숫자, 날짜, 요금, 시간, 프로그램명 등)는 절대로 추가하지 마세요.
6. FACTS에 없는 부분이 있더라도 해당 부분은 생략하고,
   FACTS에서 확인 가능한 정보만 정리해서 보여주세요.
7. 사용자에게 "FACTS 없음", "홈페이지에서 찾을 수 없습니다" 같은
   오류 안내 문구를 출력하지 마세요. (그 문구는 코드에서만 사용합니다.)

[출력 형식]
- 항상 마크다운(Markdown) 형식으로 작성하세요.
- 첫 줄에는 간단한 제목을 ` + "`### 제목`" + ` 형식으로 작성하세요.
- 그 아래는 줄글이 아니라 핵심 항목을 불릿(` + "`- 항목`" + `)이나 간단한 표로 정리하세요.
- 운영시간/요금/대상/참가인원/예약방법/프로그램 내용을 각각 항목별로 분리해서 써 주세요.
`

// BundleFacts joins per-page sections into the facts bundle handed to the
// model. Each section is tagged with its page title so the model can keep
// sources apart.
func BundleFacts(sections []model.FactsSection) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, fmt.Sprintf("[섹션: %s]\n%s", s.Title, s.Body))
	}
	return strings.TrimSpace(strings.Join(parts, SectionSeparator))
}

// instructionsPrompt frames operator-supplied instructions so they can only
// refine tone and layout, never override the grounding rules.
func instructionsPrompt(s string) string {
	return "추가 지시(STRICT 규칙과 모순되지 않는 범위에서만 따르세요):\n" + s
}

// userPrompt frames the question and the facts bundle for a single turn.
func userPrompt(question, facts string) string {
	var b strings.Builder
	b.WriteString("사용자 질문:\n")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString("아래는 국립과천과학관 홈페이지에서 가져온 FACTS(원문 데이터)입니다.\n")
	b.WriteString("- 이 FACTS는 내부 참고용이며, 사용자에게 그대로 보여주면 안 됩니다.\n")
	b.WriteString("- FACTS 블록 속 문장과 제목(예: '### 텍스트', '### 표', '[섹션:' 등)을 복사하지 말고,\n")
	b.WriteString("  필요한 정보만 뽑아서 불릿/표로 짧게 정리해서 보여 주세요.\n\n")
	b.WriteString("FACTS 시작\n")
	b.WriteString("----------------\n")
	b.WriteString(facts)
	b.WriteString("\n----------------\n")
	b.WriteString("FACTS 끝\n")
	return b.String()
}
