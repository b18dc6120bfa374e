package session

import (
	"time"

	"github.com/prepdeck/prepdeck/internal/bank"
)

// Session is one in-progress attempt. It exists only while the attempt is
// running: the Manager creates it on Start and discards it on submit or
// expiry. Questions are fixed once sampled; Answers stays index-aligned with
// Questions for the whole lifetime.
type Session struct {
	Section    string
	Topic      string
	Difficulty string
	Questions  []bank.Question
	Answers    []string
	Current    int
	StartedAt  time.Time
	Duration   time.Duration
}

func newSession(section, topic, difficulty string, qs []bank.Question, startedAt time.Time, d time.Duration) *Session {
	return &Session{
		Section:    section,
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  qs,
		Answers:    make([]string, len(qs)),
		StartedAt:  startedAt,
		Duration:   d,
	}
}

// SetAnswer overwrites the answer at index. Any index is fair game, not just
// the current one; out-of-order review is allowed. The index must be valid.
func (s *Session) SetAnswer(index int, value string) {
	s.Answers[index] = value
}

// Prev moves back one question, staying at 0. No wrap-around.
func (s *Session) Prev() {
	if s.Current > 0 {
		s.Current--
	}
}

// Next moves forward one question, staying at the last index. No wrap-around.
func (s *Session) Next() {
	if s.Current < len(s.Questions)-1 {
		s.Current++
	}
}

// Remaining is the whole seconds left on the clock at now, clamped at 0.
// Poll-based: nothing schedules the expiry, callers recompute on demand.
func (s *Session) Remaining(now time.Time) int {
	left := s.Duration - now.Sub(s.StartedAt)
	if left <= 0 {
		return 0
	}
	return int(left / time.Second)
}

// Expired reports whether the clock has run out at now.
func (s *Session) Expired(now time.Time) bool {
	return now.Sub(s.StartedAt) >= s.Duration
}

// Answered counts non-empty answers.
func (s *Session) Answered() int {
	n := 0
	for _, a := range s.Answers {
		if a != "" {
			n++
		}
	}
	return n
}

// ClosedForm reports whether every sampled question carries a choice set.
// Such sessions aggregate by summing matches; open-form sessions average.
func (s *Session) ClosedForm() bool {
	for _, q := range s.Questions {
		if !q.ClosedForm() {
			return false
		}
	}
	return true
}
