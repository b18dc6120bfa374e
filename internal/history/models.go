package history

// Detail is the per-question outcome inside a record.
type Detail struct {
	Question string  `json:"q"`
	Answer   string  `json:"answer"`
	Expected string  `json:"expected,omitempty"`
	Score    float64 `json:"score"`
}

// Record is the persisted summary of one completed attempt. Records are
// append-only: never mutated or deleted once written.
type Record struct {
	ID        string   `json:"id"`
	Section   string   `json:"section"`
	Topic     string   `json:"topic,omitempty"`
	Timestamp string   `json:"timestamp"` // RFC 3339, UTC
	Score     float64  `json:"score"`
	Details   []Detail `json:"details"`
}

// Store persists completed attempts.
type Store interface {
	Append(r Record) error
	LoadAll() ([]Record, error)
}
