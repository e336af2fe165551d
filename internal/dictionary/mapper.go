package dictionary

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// MapResponse maps the first entry of a Definition Source response.
// An empty response means the source knows no definition for the word.
func MapResponse(entries []RawEntry) (DefinitionRecord, error) {
	if len(entries) == 0 {
		return DefinitionRecord{}, ErrNotFound
	}
	return Map(entries[0])
}

// Map converts a raw entry into a DefinitionRecord. Optional fields default
// to empty values; a missing word or meanings list is a mapping error.
func Map(raw RawEntry) (DefinitionRecord, error) {
	if raw.Word == "" {
		return DefinitionRecord{}, fmt.Errorf("%w: missing word", ErrMapping)
	}
	if raw.Meanings == nil {
		return DefinitionRecord{}, fmt.Errorf("%w: %q has no meanings", ErrMapping, raw.Word)
	}

	record := DefinitionRecord{
		Word:      raw.Word,
		Phonetic:  raw.Phonetic,
		Origin:    raw.Origin,
		Phonetics: make([]PhoneticVariant, 0, len(raw.Phonetics)),
		Meanings:  make([]MeaningGroup, 0, len(*raw.Meanings)),
	}

	for _, p := range raw.Phonetics {
		record.Phonetics = append(record.Phonetics, PhoneticVariant{
			Text:  p.Text,
			Audio: p.Audio,
		})
	}

	for _, m := range *raw.Meanings {
		record.Meanings = append(record.Meanings, mapMeaning(m))
	}

	return record, nil
}

func mapMeaning(m RawMeaning) MeaningGroup {
	group := MeaningGroup{
		PartOfSpeech: m.PartOfSpeech,
		Definitions:  make([]DefinitionEntry, 0, len(m.Definitions)),
		Synonyms:     uniqueOrdered(m.Synonyms),
		Antonyms:     orEmpty(m.Antonyms),
	}
	for _, d := range m.Definitions {
		group.Definitions = append(group.Definitions, DefinitionEntry{
			Text:     d.Definition,
			Example:  d.Example,
			Synonyms: orEmpty(d.Synonyms),
			Antonyms: orEmpty(d.Antonyms),
		})
	}
	return group
}

// uniqueOrdered drops repeated words, keeping first occurrences in order.
func uniqueOrdered(words []string) []string {
	set := linkedhashset.New()
	for _, w := range words {
		set.Add(w)
	}
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
