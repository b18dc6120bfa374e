package history

import (
	"math"
	"sort"
)

// SectionStats is the aggregate view for one section.
type SectionStats struct {
	Section   string  `json:"section"`
	Attempts  int     `json:"attempts"`
	MeanScore float64 `json:"mean_score"`
}

// BySection groups records by section and computes attempt counts and mean
// scores, sorted by section name. Pure function over the loaded list.
func BySection(recs []Record) []SectionStats {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range recs {
		sums[r.Section] += r.Score
		counts[r.Section]++
	}
	out := make([]SectionStats, 0, len(counts))
	for sec, n := range counts {
		out = append(out, SectionStats{
			Section:   sec,
			Attempts:  n,
			MeanScore: math.Round(sums[sec]/float64(n)*100) / 100,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out
}

// ScorePoint is one attempt on a section's score timeline.
type ScorePoint struct {
	Timestamp string  `json:"timestamp"`
	Score     float64 `json:"score"`
}

// Series returns a section's scores in record order, the raw data behind an
// accuracy-over-time chart.
func Series(recs []Record, section string) []ScorePoint {
	var out []ScorePoint
	for _, r := range recs {
		if r.Section == section {
			out = append(out, ScorePoint{Timestamp: r.Timestamp, Score: r.Score})
		}
	}
	return out
}

// Latest returns the most recently appended record.
func Latest(recs []Record) (Record, bool) {
	if len(recs) == 0 {
		return Record{}, false
	}
	return recs[len(recs)-1], true
}
