package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prepdeck/prepdeck/internal/auth"
	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/history"
	"github.com/prepdeck/prepdeck/internal/session"
)

// questionView is what clients see while the attempt runs: prompts and
// options only, never the reference answer.
type questionView struct {
	Text    string   `json:"q"`
	Options []string `json:"options,omitempty"`
}

type attemptView struct {
	Status     string          `json:"status"` // in_progress|completed
	Section    string          `json:"section,omitempty"`
	Topic      string          `json:"topic,omitempty"`
	Difficulty string          `json:"difficulty,omitempty"`
	Questions  []questionView  `json:"questions,omitempty"`
	Answers    []string        `json:"answers,omitempty"`
	Current    int             `json:"current"`
	Remaining  int             `json:"remaining_seconds"`
	Answered   int             `json:"answered"`
	Result     *history.Record `json:"result,omitempty"`
}

func viewOf(snap *session.Snapshot, rec *history.Record) attemptView {
	if rec != nil {
		return attemptView{Status: "completed", Result: rec}
	}
	qs := make([]questionView, len(snap.Questions))
	for i, q := range snap.Questions {
		qs[i] = questionView{Text: q.Text, Options: append([]string(nil), q.Options...)}
	}
	return attemptView{
		Status:     "in_progress",
		Section:    snap.Section,
		Topic:      snap.Topic,
		Difficulty: snap.Difficulty,
		Questions:  qs,
		Answers:    snap.Answers,
		Current:    snap.Current,
		Remaining:  snap.Remaining,
		Answered:   snap.Answered,
	}
}

func writeManagerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoQuestions):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, session.ErrActiveSession):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, session.ErrNoSession):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, session.ErrBadIndex):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// POST /attempt  {"section":..,"topic":..,"difficulty":..,"count":N}
func StartAttemptHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Section    string `json:"section"`
			Topic      string `json:"topic"`
			Difficulty string `json:"difficulty"`
			Count      int    `json:"count"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Section == "" || req.Difficulty == "" || req.Count <= 0 {
			http.Error(w, "section, difficulty and count required", http.StatusBadRequest)
			return
		}
		snap, err := m.Start(auth.SubjectFromContext(r.Context()), req.Section, req.Topic, req.Difficulty, req.Count)
		if err != nil {
			writeManagerError(w, err)
			return
		}
		writeJSON(w, viewOf(&snap, nil))
	}
}

// GET /attempt — current state; auto-submits first when time ran out, in
// which case the completed view carries the result.
func GetAttemptHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, rec, err := m.State(auth.SubjectFromContext(r.Context()))
		if err != nil {
			writeManagerError(w, err)
			return
		}
		writeJSON(w, viewOf(snap, rec))
	}
}

// POST /attempt/answer  {"index":N,"value":".."}
func AnswerHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Index int    `json:"index"`
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		snap, rec, err := m.SetAnswer(auth.SubjectFromContext(r.Context()), req.Index, req.Value)
		if err != nil {
			writeManagerError(w, err)
			return
		}
		writeJSON(w, viewOf(snap, rec))
	}
}

// POST /attempt/navigate  {"direction":"prev"|"next"}
func NavigateHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Direction string `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Direction != "prev" && req.Direction != "next" {
			http.Error(w, "direction must be prev or next", http.StatusBadRequest)
			return
		}
		snap, rec, err := m.Navigate(auth.SubjectFromContext(r.Context()), req.Direction == "next")
		if err != nil {
			writeManagerError(w, err)
			return
		}
		writeJSON(w, viewOf(snap, rec))
	}
}

// POST /attempt/submit
func SubmitAttemptHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := m.Submit(auth.SubjectFromContext(r.Context()))
		if err != nil {
			writeManagerError(w, err)
			return
		}
		writeJSON(w, viewOf(nil, &rec))
	}
}

// sectionView describes one section of the catalog for the selection screen.
type sectionView struct {
	Name         string   `json:"name"`
	Topics       []string `json:"topics,omitempty"`
	Difficulties []string `json:"difficulties"`
}

// GET /bank/sections
func ListSectionsHandler(b bank.Bank) http.HandlerFunc {
	diffs := []string{bank.DifficultyEasy, bank.DifficultyMedium, bank.DifficultyHard}
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]sectionView, 0, len(b))
		for _, name := range b.Sections() {
			out = append(out, sectionView{
				Name:         name,
				Topics:       b[name].TopicNames(),
				Difficulties: diffs,
			})
		}
		writeJSON(w, out)
	}
}
