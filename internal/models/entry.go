package models

import (
	"encoding/json"
	"fmt"
)

// Entry represents a record persisted in the entries table, keyed by ID
type Entry struct {
	ID string `json:"id" dynamodbav:"id"`
}

// NewEntry creates an entry for the given identifier
func NewEntry(id string) *Entry {
	return &Entry{ID: id}
}

// JSON renders the entry as the JSON document returned to callers
func (e *Entry) JSON() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to marshal entry: %w", err)
	}
	return string(data), nil
}
