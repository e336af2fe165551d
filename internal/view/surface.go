package view

import (
	"html/template"
	"strings"
)

// Stable slot identities. Templates use them as element ids.
const (
	SlotWord            = "define-word"
	SlotPhonetic        = "phonetic"
	SlotOrigin          = "origin"
	SlotPhonetics       = "phonetics"
	SlotMeanings        = "meanings"
	SlotErrorMessage    = "error-message"
	SlotDefinitionPanel = "definition"
	SlotNotFoundPanel   = "not-found"
)

// TextSlot is a singleton element holding plain text.
type TextSlot struct {
	ID    string
	Value string
}

// ListSlot is a container whose children are replaced as a whole.
type ListSlot struct {
	ID       string
	Children []*Node
}

// Replace swaps in a new child list. The previous slice is never mutated,
// so copies taken earlier stay valid.
func (l *ListSlot) Replace(children ...*Node) {
	l.Children = append([]*Node(nil), children...)
}

// HTML renders every child in order.
func (l ListSlot) HTML() template.HTML {
	var b strings.Builder
	for _, c := range l.Children {
		b.WriteString(string(c.HTML()))
	}
	return template.HTML(b.String())
}

// Panel is a top-level region toggled by a visibility and display pair.
type Panel struct {
	ID         string
	Visibility string
	Display    string
}

// Visible reports whether both halves of the pair say the panel is shown.
func (p Panel) Visible() bool {
	return p.Visibility == "visible" && p.Display == "block"
}

// Style is the inline style attribute value for the panel.
func (p Panel) Style() template.CSS {
	return template.CSS("visibility: " + p.Visibility + "; display: " + p.Display + ";")
}

func (p *Panel) show() {
	p.Visibility = "visible"
	p.Display = "block"
}

func (p *Panel) hide() {
	p.Display = "none"
	p.Visibility = "hidden"
}

// Surface is the presentation context the Renderer writes into. It is a
// plain value: copying it yields a consistent snapshot.
type Surface struct {
	Word         TextSlot
	Phonetic     TextSlot
	Origin       TextSlot
	ErrorMessage TextSlot
	Phonetics    ListSlot
	Meanings     ListSlot

	DefinitionPanel Panel
	NotFoundPanel   Panel
}

// NewSurface returns an empty surface with both panels hidden.
func NewSurface() *Surface {
	s := &Surface{
		Word:            TextSlot{ID: SlotWord},
		Phonetic:        TextSlot{ID: SlotPhonetic},
		Origin:          TextSlot{ID: SlotOrigin},
		ErrorMessage:    TextSlot{ID: SlotErrorMessage},
		Phonetics:       ListSlot{ID: SlotPhonetics},
		Meanings:        ListSlot{ID: SlotMeanings},
		DefinitionPanel: Panel{ID: SlotDefinitionPanel},
		NotFoundPanel:   Panel{ID: SlotNotFoundPanel},
	}
	s.DefinitionPanel.hide()
	s.NotFoundPanel.hide()
	return s
}

// showDefinition makes exactly one of the two panels visible.
func (s *Surface) showDefinition(definition bool) {
	if definition {
		s.NotFoundPanel.hide()
		s.DefinitionPanel.show()
		return
	}
	s.DefinitionPanel.hide()
	s.NotFoundPanel.show()
}
