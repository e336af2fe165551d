package view

import "testing"

func TestNodeHTML(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"text only", &Node{Text: "a < b"}, "a &lt; b"},
		{"element", TextEl("div", "hi"), "<div>hi</div>"},
		{"class", TextEl("h4", "Synonyms").WithClass("synonyms"), `<h4 class="synonyms">Synonyms</h4>`},
		{
			"nested",
			El("li", TextEl("div", "def"), TextEl("code", `"quoted" & <b>`)),
			"<li><div>def</div><code>&#34;quoted&#34; &amp; &lt;b&gt;</code></li>",
		},
		{"empty element", El("div"), "<div></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.node.HTML()); got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListSlotHTML(t *testing.T) {
	var l ListSlot
	l.Replace(TextEl("div", "a"), TextEl("div", ""))
	if got := string(l.HTML()); got != "<div>a</div><div></div>" {
		t.Errorf("HTML() = %q", got)
	}
}

func TestPanelStyle(t *testing.T) {
	s := NewSurface()
	if got := string(s.DefinitionPanel.Style()); got != "visibility: hidden; display: none;" {
		t.Errorf("Style() = %q", got)
	}
	s.showDefinition(true)
	if got := string(s.DefinitionPanel.Style()); got != "visibility: visible; display: block;" {
		t.Errorf("Style() = %q", got)
	}
}
