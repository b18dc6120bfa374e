package session

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/history"
	"github.com/prepdeck/prepdeck/internal/scoring"
)

var (
	// ErrNoQuestions means the selection resolved to an empty pool. A
	// user-visible refusal, not a fault: the attempt simply does not start.
	ErrNoQuestions = errors.New("no questions found for this selection")
	// ErrNoSession means no attempt is in progress for the user.
	ErrNoSession = errors.New("no attempt in progress")
	// ErrActiveSession means an attempt is already in progress; it must be
	// submitted (or allowed to expire) before a new one starts.
	ErrActiveSession = errors.New("an attempt is already in progress")
	// ErrBadIndex means the answer index is outside the question list.
	ErrBadIndex = errors.New("question index out of range")
)

// Snapshot is a read-only copy of an in-progress attempt handed out by the
// Manager, so callers never touch the live Session outside the lock.
type Snapshot struct {
	Section    string
	Topic      string
	Difficulty string
	Questions  []bank.Question
	Answers    []string
	Current    int
	Remaining  int
	Answered   int
}

// Manager owns the per-user attempt slots. Exactly one attempt per user can
// be in progress; that invariant lives here, not in any global. Every entry
// point first settles an expired clock by auto-submitting, so expiry is
// detected on the next touch rather than by a background timer.
type Manager struct {
	mu       sync.Mutex
	slots    map[string]*Session
	bank     bank.Bank
	store    history.Store
	duration time.Duration
	rng      *rand.Rand
	now      func() time.Time
}

type Option func(*Manager)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }

// WithRand overrides the sampling source, for tests.
func WithRand(rng *rand.Rand) Option { return func(m *Manager) { m.rng = rng } }

func NewManager(b bank.Bank, store history.Store, duration time.Duration, opts ...Option) *Manager {
	m := &Manager{
		slots:    map[string]*Session{},
		bank:     b,
		store:    store,
		duration: duration,
		now:      time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Start samples questions and opens an attempt for the user. Refused with
// ErrNoQuestions when the pool is empty and with ErrActiveSession when an
// unexpired attempt already occupies the slot.
func (m *Manager) Start(userID, section, topic, difficulty string, count int) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, _, err := m.settle(userID); err != nil {
		return Snapshot{}, err
	}
	if _, ok := m.slots[userID]; ok {
		return Snapshot{}, ErrActiveSession
	}
	qs := bank.Sample(m.bank, section, topic, difficulty, count, m.rng)
	if len(qs) == 0 {
		return Snapshot{}, ErrNoQuestions
	}
	s := newSession(section, topic, difficulty, qs, m.now(), m.duration)
	m.slots[userID] = s
	return m.snapshot(s), nil
}

// State reports the user's attempt, auto-submitting first when the clock has
// run out. Exactly one of the returns is set: an in-progress snapshot, or
// the record the expiry produced.
func (m *Manager) State(userID string) (*Snapshot, *history.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, rec, err := m.settle(userID)
	if err != nil {
		return nil, nil, err
	}
	if rec != nil {
		return nil, rec, nil
	}
	if s == nil {
		return nil, nil, ErrNoSession
	}
	snap := m.snapshot(s)
	return &snap, nil, nil
}

// SetAnswer records the answer at index. The attempt may have expired since
// the last touch; in that case it is finalized and the produced record comes
// back instead of a snapshot.
func (m *Manager) SetAnswer(userID string, index int, value string) (*Snapshot, *history.Record, error) {
	return m.mutate(userID, func(s *Session) error {
		if index < 0 || index >= len(s.Questions) {
			return ErrBadIndex
		}
		s.SetAnswer(index, value)
		return nil
	})
}

// Navigate moves the cursor one step back or forward, clamped at the ends.
func (m *Manager) Navigate(userID string, forward bool) (*Snapshot, *history.Record, error) {
	return m.mutate(userID, func(s *Session) error {
		if forward {
			s.Next()
		} else {
			s.Prev()
		}
		return nil
	})
}

// Submit finalizes the attempt, scores every question, appends one history
// record and frees the slot.
func (m *Manager) Submit(userID string) (history.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, rec, err := m.settle(userID)
	if err != nil {
		return history.Record{}, err
	}
	if rec != nil {
		// The clock beat the user to it; the expiry record is the result.
		return *rec, nil
	}
	if s == nil {
		return history.Record{}, ErrNoSession
	}
	return m.finalize(userID, s)
}

func (m *Manager) mutate(userID string, fn func(*Session) error) (*Snapshot, *history.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, rec, err := m.settle(userID)
	if err != nil {
		return nil, nil, err
	}
	if rec != nil {
		return nil, rec, nil
	}
	if s == nil {
		return nil, nil, ErrNoSession
	}
	if err := fn(s); err != nil {
		return nil, nil, err
	}
	snap := m.snapshot(s)
	return &snap, nil, nil
}

// settle auto-submits the user's attempt when expired. Caller holds mu.
// Returns the live session (if any, still running) or the expiry record.
func (m *Manager) settle(userID string) (*Session, *history.Record, error) {
	s, ok := m.slots[userID]
	if !ok {
		return nil, nil, nil
	}
	if !s.Expired(m.now()) {
		return s, nil, nil
	}
	rec, err := m.finalize(userID, s)
	if err != nil {
		return nil, nil, err
	}
	return nil, &rec, nil
}

// finalize scores the attempt, appends the record and frees the slot.
// Caller holds mu. The slot is freed even when the append fails; the attempt
// is over either way.
func (m *Manager) finalize(userID string, s *Session) (history.Record, error) {
	delete(m.slots, userID)

	scores := make([]float64, len(s.Questions))
	details := make([]history.Detail, len(s.Questions))
	for i, q := range s.Questions {
		sc := scoring.Grade(scoring.Q{Expected: q.Answer, Closed: q.ClosedForm()}, s.Answers[i])
		scores[i] = sc
		details[i] = history.Detail{
			Question: q.Text,
			Answer:   s.Answers[i],
			Expected: q.Answer,
			Score:    sc,
		}
	}
	rec := history.Record{
		ID:        uuid.NewString(),
		Section:   s.Section,
		Topic:     s.Topic,
		Timestamp: m.now().UTC().Format(time.RFC3339),
		Score:     scoring.Aggregate(s.ClosedForm(), scores),
		Details:   details,
	}
	if err := m.store.Append(rec); err != nil {
		return rec, fmt.Errorf("append history: %w", err)
	}
	return rec, nil
}

func (m *Manager) snapshot(s *Session) Snapshot {
	return Snapshot{
		Section:    s.Section,
		Topic:      s.Topic,
		Difficulty: s.Difficulty,
		Questions:  append([]bank.Question(nil), s.Questions...),
		Answers:    append([]string(nil), s.Answers...),
		Current:    s.Current,
		Remaining:  s.Remaining(m.now()),
		Answered:   s.Answered(),
	}
}
