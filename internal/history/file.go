package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps records as a single JSON array on disk. Appends are
// read-modify-write with no locking; the deployment is single-process,
// single-user.
type FileStore struct{ path string }

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = "./data/history.json"
	}
	return &FileStore{path: path}
}

// LoadAll returns every record in append order. A missing or unparseable
// file reads as empty, never as an error.
func (s *FileStore) LoadAll() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Record{}, nil
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return []Record{}, nil
	}
	return recs, nil
}

func (s *FileStore) Append(r Record) error {
	recs, _ := s.LoadAll()
	recs = append(recs, r)
	buf, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("history dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, buf, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
