package match

import (
	"testing"

	"github.com/gnsm/docent/internal/config"
)

func testDirectory(t *testing.T) *config.Directory {
	t.Helper()
	dir, err := config.NewDirectory(config.DefaultBaseURL)
	if err != nil {
		t.Fatalf("load embedded directory: %v", err)
	}
	return dir
}

// TestNormalize tests whitespace stripping and NFC folding.
func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"inner spaces removed", "천체투영관 예약", "천체투영관예약"},
		{"tabs and newlines removed", "이용\t안내\n", "이용안내"},
		{"decomposed jamo composed", "한글", "한글"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestMatchPrimary tests label containment against the embedded directory.
func TestMatchPrimary(t *testing.T) {
	t.Parallel()

	m := New(testDirectory(t))

	t.Run("exact label in query", func(t *testing.T) {
		t.Parallel()

		result := m.Match("공룡공원은 어디에 있나요?")
		if len(result.Primary) != 1 || result.Primary[0] != "공룡공원" {
			t.Fatalf("expected single primary 공룡공원, got %v", result.Primary)
		}
		if result.Guess != nil {
			t.Error("primary match should suppress the guess")
		}
	})

	t.Run("label with inner space still matches", func(t *testing.T) {
		t.Parallel()

		result := m.Match("천체투영관소개 보여줘")
		if len(result.Primary) == 0 || result.Primary[0] != "천체투영관 소개" {
			t.Fatalf("expected 천체투영관 소개 as primary, got %v", result.Primary)
		}
	})

	t.Run("multiple labels kept in directory order", func(t *testing.T) {
		t.Parallel()

		result := m.Match("주차안내랑 교통안내 둘 다 알려줘")
		want := []string{"주차안내", "교통안내"}
		if len(result.Primary) != len(want) {
			t.Fatalf("expected %v, got %v", want, result.Primary)
		}
		for i, label := range want {
			if result.Primary[i] != label {
				t.Errorf("primary[%d] = %q, want %q", i, result.Primary[i], label)
			}
		}
	})
}

// TestMatchGuess tests the fuzzy fallback.
func TestMatchGuess(t *testing.T) {
	t.Parallel()

	m := New(testDirectory(t))

	t.Run("near miss yields a guess", func(t *testing.T) {
		t.Parallel()

		result := m.Match("곤충생태")
		if len(result.Primary) != 0 {
			t.Fatalf("no label is contained in the query, got %v", result.Primary)
		}
		if result.Guess == nil {
			t.Fatal("expected a fuzzy guess")
		}
		if result.Guess.Label != "곤충생태관" {
			t.Errorf("guess = %q, want 곤충생태관", result.Guess.Label)
		}
		if result.Guess.Score < containmentScore {
			t.Errorf("query contained in label should score %v, got %v",
				containmentScore, result.Guess.Score)
		}
	})

	t.Run("unrelated query yields nothing", func(t *testing.T) {
		t.Parallel()

		result := m.Match("오늘 날씨 어때")
		if !result.Empty() {
			t.Errorf("expected empty result, got %+v", result)
		}
	})

	t.Run("cutoff of one disables guessing", func(t *testing.T) {
		t.Parallel()

		strict := New(testDirectory(t), WithCutoff(1.0))
		if result := strict.Match("곤충생태"); result.Guess != nil {
			t.Errorf("cutoff 1.0 should reject near misses, got %+v", result.Guess)
		}
	})
}

// TestMatchSynonyms tests the schedule and fee vocabulary route.
func TestMatchSynonyms(t *testing.T) {
	t.Parallel()

	m := New(testDirectory(t))

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"admission fee", "관람요금 알려줘", true},
		{"closed days", "휴관일이 언제인가요", true},
		{"opening hours", "운영 시간 알려줘", true},
		{"no schedule term", "공룡공원 보고 싶어", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := m.Match(tt.query)
			got := result.SynonymLabel == config.UsageGuideLabel
			if got != tt.want {
				t.Errorf("Match(%q).SynonymLabel = %q, want usage guide: %v",
					tt.query, result.SynonymLabel, tt.want)
			}
		})
	}
}

// TestMatchLabels tests merged label ordering on the result.
func TestMatchLabels(t *testing.T) {
	t.Parallel()

	m := New(testDirectory(t))

	t.Run("synonym label appended after primary", func(t *testing.T) {
		t.Parallel()

		result := m.Match("천체투영관 예약 요금 알려줘")
		labels := result.Labels()
		if len(labels) == 0 {
			t.Fatal("expected at least one label")
		}
		var hasGuide bool
		for _, l := range labels {
			if l == config.UsageGuideLabel {
				hasGuide = true
			}
		}
		if !hasGuide {
			t.Errorf("fee vocabulary should pull in %s, got %v",
				config.UsageGuideLabel, labels)
		}
	})

	t.Run("synonym not duplicated when already primary", func(t *testing.T) {
		t.Parallel()

		result := m.Match("이용안내에서 입장료 확인해줘")
		labels := result.Labels()
		var n int
		for _, l := range labels {
			if l == config.UsageGuideLabel {
				n++
			}
		}
		if n != 1 {
			t.Errorf("usage guide should appear exactly once, got %v", labels)
		}
	})
}
