// Package dictionary holds the definition object model and the mapper that
// builds it from dictionaryapi.dev payloads.
package dictionary

// DefinitionRecord is one looked-up word, normalized for rendering.
type DefinitionRecord struct {
	Word      string            `json:"word"`
	Phonetic  string            `json:"phonetic"`
	Origin    string            `json:"origin"`
	Phonetics []PhoneticVariant `json:"phonetics"`
	Meanings  []MeaningGroup    `json:"meanings"`
}

// PhoneticVariant is a single pronunciation. Audio is kept for API
// consumers but is not rendered.
type PhoneticVariant struct {
	Text  string `json:"text"`
	Audio string `json:"audio,omitempty"`
}

// MeaningGroup clusters the definitions that share a part of speech.
type MeaningGroup struct {
	PartOfSpeech string            `json:"partOfSpeech"`
	Definitions  []DefinitionEntry `json:"definitions"`
	Synonyms     []string          `json:"synonyms"`
	Antonyms     []string          `json:"antonyms"`
}

// DefinitionEntry is one sense inside a MeaningGroup.
type DefinitionEntry struct {
	Text     string   `json:"definition"`
	Example  string   `json:"example,omitempty"`
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
}

// HasExample reports whether the entry carries a usage example.
func (e DefinitionEntry) HasExample() bool {
	return e.Example != ""
}
