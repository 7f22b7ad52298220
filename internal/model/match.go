package model

// GuessedMatch is a directory label selected by similarity scoring rather
// than substring containment. The score is kept so the presentation layer
// can decide whether and how to tell the user about the guess.
type GuessedMatch struct {
	// Label is the guessed directory label.
	Label string `json:"label"`

	// Score is the similarity ratio in [0,1] that produced the guess.
	Score float64 `json:"score"`
}

// MatchResult is the structured outcome of matching a user query against
// the page directory. Matching logic stays free of presentation concerns:
// the result records what matched and why, and the caller renders notices.
type MatchResult struct {
	// Primary contains every label whose whitespace-stripped form is a
	// literal substring of the normalized query, in directory order.
	Primary []string `json:"primary,omitempty"`

	// Guess is the single best fuzzy match, present only when Primary is
	// empty and the best score met the acceptance cutoff.
	Guess *GuessedMatch `json:"guess,omitempty"`

	// SynonymLabel is the general usage-guide label, set when the query
	// mentioned hours/fees/closing-day synonyms. Appended last.
	SynonymLabel string `json:"synonym_label,omitempty"`
}

// Labels returns the matched directory labels in priority order: primary
// substring matches first, then the fuzzy guess, then the synonym fallback.
// Duplicates are dropped, first occurrence wins.
func (r MatchResult) Labels() []string {
	labels := make([]string, 0, len(r.Primary)+2)
	seen := make(map[string]bool, len(r.Primary)+2)

	add := func(label string) {
		if label == "" || seen[label] {
			return
		}
		seen[label] = true
		labels = append(labels, label)
	}

	for _, l := range r.Primary {
		add(l)
	}
	if r.Guess != nil {
		add(r.Guess.Label)
	}
	add(r.SynonymLabel)
	return labels
}

// Empty reports whether nothing matched at all.
func (r MatchResult) Empty() bool {
	return len(r.Primary) == 0 && r.Guess == nil && r.SynonymLabel == ""
}
