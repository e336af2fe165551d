package dictionary

import (
	"encoding/json"
	"fmt"
)

// RawEntry mirrors one element of the dictionaryapi.dev response array.
// Meanings is a pointer so an absent field can be told apart from an empty one.
type RawEntry struct {
	Word      string        `json:"word"`
	Phonetic  string        `json:"phonetic"`
	Origin    string        `json:"origin"`
	Phonetics []RawPhonetic `json:"phonetics"`
	Meanings  *[]RawMeaning `json:"meanings"`
}

// RawPhonetic mirrors a phonetics element.
type RawPhonetic struct {
	Text      string `json:"text"`
	Audio     string `json:"audio"`
	SourceURL string `json:"sourceUrl"`
}

// RawMeaning mirrors a meanings element.
type RawMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []RawDefinition `json:"definitions"`
	Synonyms     []string        `json:"synonyms"`
	Antonyms     []string        `json:"antonyms"`
}

// RawDefinition mirrors a definitions element.
type RawDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// Decode parses a Definition Source body. The body must be a JSON array.
func Decode(data []byte) ([]RawEntry, error) {
	var entries []RawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrMapping, err)
	}
	return entries, nil
}
