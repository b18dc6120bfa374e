package bank

import "sort"

// Question is one prompt with its reference answer. Closed-form questions
// carry a fixed option list; open-form questions leave Options empty and are
// graded by text similarity instead of exact match.
type Question struct {
	Text    string   `json:"q"`
	Answer  string   `json:"a"`
	Options []string `json:"options,omitempty"`
}

// ClosedForm reports whether the question has a fixed choice set.
func (q Question) ClosedForm() bool { return len(q.Options) > 0 }

// Difficulty labels recognized in bank files.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

func isDifficulty(s string) bool {
	return s == DifficultyEasy || s == DifficultyMedium || s == DifficultyHard
}

// Shape says how a section organizes its question pools. It is resolved once
// when the bank is loaded, never re-sniffed afterwards.
type Shape int

const (
	// FlatByDifficulty: section keys directly to difficulty pools.
	FlatByDifficulty Shape = iota
	// ByTopic: section keys to topics, each topic to difficulty pools.
	ByTopic
)

// Pool maps a difficulty label to its question list.
type Pool map[string][]Question

// Section is one top-level category of the bank.
type Section struct {
	Shape  Shape
	Flat   Pool            // set when Shape == FlatByDifficulty
	Topics map[string]Pool // set when Shape == ByTopic
}

// TopicNames lists the section's topics in sorted order. Empty for flat
// sections.
func (s Section) TopicNames() []string {
	out := make([]string, 0, len(s.Topics))
	for t := range s.Topics {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Bank is the full question catalog keyed by section name.
type Bank map[string]Section

// Sections lists section names in sorted order.
func (b Bank) Sections() []string {
	out := make([]string, 0, len(b))
	for name := range b {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Pool resolves the question list for a selection. Unknown sections or
// topics resolve to nil; a known selection with no questions resolves to an
// empty list, which callers must treat as "cannot start here".
func (b Bank) Pool(section, topic, difficulty string) []Question {
	sec, ok := b[section]
	if !ok {
		return nil
	}
	switch sec.Shape {
	case FlatByDifficulty:
		return sec.Flat[difficulty]
	case ByTopic:
		tp, ok := sec.Topics[topic]
		if !ok {
			return nil
		}
		return tp[difficulty]
	}
	return nil
}
