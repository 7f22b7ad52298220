package match

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/unicode/norm"

	"github.com/gnsm/docent/internal/config"
	"github.com/gnsm/docent/internal/model"
)

// containmentScore is assigned when one side contains the other outright.
// It outranks any ratio a similarity pass can produce for distinct strings.
const containmentScore = 0.99

// Matcher resolves queries against a fixed page directory.
type Matcher struct {
	dir    *config.Directory
	cutoff float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithCutoff sets the minimum similarity ratio for a fuzzy guess.
func WithCutoff(cutoff float64) Option {
	return func(m *Matcher) {
		m.cutoff = cutoff
	}
}

// New creates a Matcher over the given directory.
func New(dir *config.Directory, opts ...Option) *Matcher {
	m := &Matcher{
		dir:    dir,
		cutoff: config.DefaultFuzzyCutoff,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match resolves query to directory labels.
//
// Labels literally contained in the query are primary matches, kept in
// directory order. When none contain, the closest label above the cutoff
// becomes a single guess. Schedule and fee vocabulary additionally pulls in
// the usage guide page regardless of the other outcomes.
func (m *Matcher) Match(query string) model.MatchResult {
	var result model.MatchResult

	q := Normalize(query)
	if q == "" {
		return result
	}

	for _, label := range m.dir.Labels() {
		if strings.Contains(q, Normalize(label)) {
			result.Primary = append(result.Primary, label)
		}
	}

	if len(result.Primary) == 0 {
		if guess, score := m.closest(q); guess != "" {
			result.Guess = &model.GuessedMatch{Label: guess, Score: score}
		}
	}

	if hasScheduleTerm(q) {
		result.SynonymLabel = config.UsageGuideLabel
	}

	return result
}

// closest returns the label most similar to q, or "" when every label falls
// below the cutoff.
func (m *Matcher) closest(q string) (string, float64) {
	var (
		best      string
		bestScore float64
	)
	qRunes := splitRunes(q)

	for _, label := range m.dir.Labels() {
		l := Normalize(label)
		score := difflib.NewMatcher(qRunes, splitRunes(l)).Ratio()
		if strings.Contains(q, l) || strings.Contains(l, q) {
			if score < containmentScore {
				score = containmentScore
			}
		}
		if score > bestScore {
			best, bestScore = label, score
		}
	}

	if bestScore < m.cutoff {
		return "", 0
	}
	return best, bestScore
}

// Normalize strips all whitespace and applies Unicode NFC so that visually
// identical Korean strings compare equal.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(s), "")
	return norm.NFC.String(s)
}

// splitRunes breaks s into one-rune strings for character-level comparison.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
