// Package scoring grades submitted answers. Closed-form questions score by
// exact normalized match (0 or 1); open-form questions score by lexical
// TF-IDF cosine similarity on a 0-100 scale. Similarity rewards shared
// vocabulary only: paraphrases under-score and copied fragments over-score.
// That is the documented behavior, not something to correct here.
package scoring

import (
	"math"
	"strings"
	"unicode"
)

// Q is the minimal view of a question needed for grading.
type Q struct {
	Expected string
	Closed   bool
}

// Grade scores one response with the strategy matching the question's form.
func Grade(q Q, submitted string) float64 {
	if q.Closed {
		return Exact(submitted, q.Expected)
	}
	return Similarity(submitted, q.Expected)
}

// Exact returns 1 when the two strings match after trimming whitespace and
// case-folding, else 0.
func Exact(submitted, expected string) float64 {
	if strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(expected)) {
		return 1
	}
	return 0
}

// Similarity returns the TF-IDF cosine similarity of the two texts over the
// two-document corpus {submitted, expected}, scaled to [0,100] and rounded
// to 2 decimals. Empty or token-free inputs score 0.
func Similarity(submitted, expected string) float64 {
	a := termFreq(tokenize(submitted))
	b := termFreq(tokenize(expected))
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, na, nb float64
	for t, fa := range a {
		wa := fa * idf(t, a, b)
		na += wa * wa
		if fb, ok := b[t]; ok {
			dot += wa * fb * idf(t, a, b)
		}
	}
	for t, fb := range b {
		wb := fb * idf(t, a, b)
		nb += wb * wb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	score := dot / (math.Sqrt(na) * math.Sqrt(nb)) * 100
	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}

// idf uses the smoothed form ln((1+N)/(1+df))+1 with N fixed at 2 documents.
func idf(term string, a, b map[string]float64) float64 {
	df := 0
	if _, ok := a[term]; ok {
		df++
	}
	if _, ok := b[term]; ok {
		df++
	}
	return math.Log(3.0/float64(1+df)) + 1
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func termFreq(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	n := float64(len(tokens))
	for t := range tf {
		tf[t] /= n
	}
	return tf
}

// Aggregate folds per-question scores into a session score: the raw sum of
// matches for closed-form sessions, the arithmetic mean (2 decimals) for
// open-form ones.
func Aggregate(closed bool, scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	if closed {
		return sum
	}
	return math.Round(sum/float64(len(scores))*100) / 100
}
