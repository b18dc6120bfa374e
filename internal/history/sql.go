package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLStore persists records in a history table (sqlite or postgres, opened
// via internal/db). Same append-only contract as FileStore.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Append(r Record) error {
	dj, err := json.Marshal(r.Details)
	if err != nil {
		return fmt.Errorf("encode details: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO history (id,section,topic,recorded_at,score,details_json)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		r.ID, r.Section, r.Topic, r.Timestamp, r.Score, string(dj))
	return err
}

func (s *SQLStore) LoadAll() ([]Record, error) {
	rows, err := s.db.Query(`SELECT id,section,topic,recorded_at,score,details_json FROM history ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []Record{}
	for rows.Next() {
		var r Record
		var dj string
		if err := rows.Scan(&r.ID, &r.Section, &r.Topic, &r.Timestamp, &r.Score, &dj); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(dj), &r.Details); err != nil {
			r.Details = nil
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}
