package http

import (
	"net/http"

	"github.com/prepdeck/prepdeck/internal/history"
)

// GET /history — all completed attempts, oldest first.
func ListHistoryHandler(store history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := store.LoadAll()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, recs)
	}
}

// GET /history/latest — most recent result, 404 when none exists yet.
func LatestResultHandler(store history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := store.LoadAll()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		rec, ok := history.Latest(recs)
		if !ok {
			http.Error(w, "no results yet", http.StatusNotFound)
			return
		}
		writeJSON(w, rec)
	}
}

// GET /history/stats?section=... — per-section aggregates, plus the score
// series for one section when requested.
func HistoryStatsHandler(store history.Store) http.HandlerFunc {
	type out struct {
		Sections []history.SectionStats `json:"sections"`
		Series   []history.ScorePoint   `json:"series,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := store.LoadAll()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp := out{Sections: history.BySection(recs)}
		if sec := r.URL.Query().Get("section"); sec != "" {
			resp.Series = history.Series(recs, sec)
		}
		writeJSON(w, resp)
	}
}
