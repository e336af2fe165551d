// Package view projects definition records onto a Surface.
package view

import (
	"fmt"
	"strings"

	"wordpage/internal/dictionary"
)

const (
	msgGenericFailure = "An error has occurred."
	msgNotFound       = "No definition found for %s."
)

// Renderer writes records and error states into the Surface it was built
// with. It owns the record currently on display.
type Renderer struct {
	surface *Surface
	current *dictionary.DefinitionRecord
}

// NewRenderer creates a Renderer bound to surface.
func NewRenderer(surface *Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Surface returns the surface the renderer writes to.
func (r *Renderer) Surface() *Surface {
	return r.surface
}

// Current returns the displayed record, or nil while an error is shown.
func (r *Renderer) Current() *dictionary.DefinitionRecord {
	return r.current
}

// Render replaces the definition panel content with record and shows it.
func (r *Renderer) Render(record dictionary.DefinitionRecord) {
	s := r.surface

	s.Word.Value = record.Word
	s.Phonetic.Value = record.Phonetic
	s.Origin.Value = record.Origin

	phonetics := make([]*Node, 0, len(record.Phonetics))
	for _, p := range record.Phonetics {
		phonetics = append(phonetics, TextEl("div", p.Text))
	}
	s.Phonetics.Replace(phonetics...)

	meanings := make([]*Node, 0, len(record.Meanings))
	for _, m := range record.Meanings {
		meanings = append(meanings, renderMeaning(m))
	}
	s.Meanings.Replace(meanings...)

	s.ErrorMessage.Value = ""
	s.showDefinition(true)
	r.current = &record
}

// RenderError shows the not-found panel with the message for kind.
func (r *Renderer) RenderError(kind dictionary.ErrorKind, word string) {
	r.surface.ErrorMessage.Value = ErrorMessage(kind, word)
	r.surface.showDefinition(false)
	r.current = nil
}

// ErrorMessage is the user-visible text for a failed lookup.
func ErrorMessage(kind dictionary.ErrorKind, word string) string {
	if kind == dictionary.NotFoundError {
		return fmt.Sprintf(msgNotFound, word)
	}
	return msgGenericFailure
}

func renderMeaning(m dictionary.MeaningGroup) *Node {
	block := El("div").WithClass("meaning")
	speech := TextEl("h3", m.PartOfSpeech)

	// Entry-level synonyms and antonyms land in these group containers too.
	synonyms := relatedBlock("Synonyms", "synonyms", m.Synonyms)
	antonyms := relatedBlock("Antonyms", "antonyms", m.Antonyms)

	definitions := El("ul")
	for _, d := range m.Definitions {
		item := El("li", TextEl("div", d.Text))
		if d.HasExample() {
			item.Append(TextEl("code", d.Example))
		}
		if len(d.Synonyms) > 0 {
			synonyms.Append(TextEl("div", "synonyms: "+strings.Join(d.Synonyms, ", ")))
		}
		if len(d.Antonyms) > 0 {
			antonyms.Append(TextEl("div", "antonyms: "+strings.Join(d.Antonyms, ", ")))
		}
		definitions.Append(item)
	}

	block.Append(speech, definitions, synonyms, antonyms)
	return block
}

// relatedBlock always returns a container; the title and joined words are
// only added when words is non-empty.
func relatedBlock(title, class string, words []string) *Node {
	container := El("div")
	if len(words) == 0 {
		return container
	}
	container.Append(
		TextEl("h4", title).WithClass(class),
		TextEl("p", strings.Join(words, ", ")).WithClass("margin-left"),
	)
	return container
}
