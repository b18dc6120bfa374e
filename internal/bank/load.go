package bank

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a bank file and resolves each section's shape. Callers decide
// what to do on error; cmd/gateway falls back to Default().
func Load(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	return Parse(data)
}

// Parse decodes a bank document. Two shapes are accepted per section:
//
//	{Section: {Difficulty: [Question]}}
//	{Section: {Topic: {Difficulty: [Question]}}}
//
// A section is flat when every first-level key is a difficulty label.
func Parse(data []byte) (Bank, error) {
	var doc map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	b := make(Bank, len(doc))
	for name, raw := range doc {
		sec, err := parseSection(raw)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", name, err)
		}
		b[name] = sec
	}
	return b, nil
}

func parseSection(raw map[string]json.RawMessage) (Section, error) {
	if flatKeys(raw) {
		pool, err := parsePool(raw)
		if err != nil {
			return Section{}, err
		}
		return Section{Shape: FlatByDifficulty, Flat: pool}, nil
	}
	topics := make(map[string]Pool, len(raw))
	for topic, tr := range raw {
		var tm map[string]json.RawMessage
		if err := json.Unmarshal(tr, &tm); err != nil {
			return Section{}, fmt.Errorf("topic %q: %w", topic, err)
		}
		pool, err := parsePool(tm)
		if err != nil {
			return Section{}, fmt.Errorf("topic %q: %w", topic, err)
		}
		topics[topic] = pool
	}
	return Section{Shape: ByTopic, Topics: topics}, nil
}

func flatKeys(raw map[string]json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	for k := range raw {
		if !isDifficulty(k) {
			return false
		}
	}
	return true
}

func parsePool(raw map[string]json.RawMessage) (Pool, error) {
	pool := make(Pool, len(raw))
	for diff, qr := range raw {
		var qs []Question
		if err := json.Unmarshal(qr, &qs); err != nil {
			return nil, fmt.Errorf("difficulty %q: %w", diff, err)
		}
		pool[diff] = qs
	}
	return pool, nil
}
