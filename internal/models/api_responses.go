package models

import "wordpage/internal/dictionary"

// DefinitionResponse is the JSON API payload for a successful lookup.
type DefinitionResponse struct {
	Word       string                      `json:"word"`
	Definition dictionary.DefinitionRecord `json:"definition"`
}

// RandomWordResponse is the JSON API payload for /api/v1/random.
type RandomWordResponse struct {
	Word       string                       `json:"word"`
	Definition *dictionary.DefinitionRecord `json:"definition,omitempty"`
	Error      string                       `json:"error,omitempty"`
}
