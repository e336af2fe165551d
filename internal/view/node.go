package view

import (
	"html"
	"html/template"
	"strings"
)

// Node is a minimal element tree. A Node with an empty Tag is a bare text node.
type Node struct {
	Tag      string
	Class    string
	Text     string
	Children []*Node
}

// El creates an element node.
func El(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// TextEl creates an element whose only content is text.
func TextEl(tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

// WithClass sets the class attribute and returns n.
func (n *Node) WithClass(class string) *Node {
	n.Class = class
	return n
}

// Append adds children after any existing content.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// HTML renders the node with all text escaped.
func (n *Node) HTML() template.HTML {
	var b strings.Builder
	n.write(&b)
	return template.HTML(b.String())
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.text(&b)
	return b.String()
}

// Find returns every descendant (including n) with the given tag, in document order.
func (n *Node) Find(tag string) []*Node {
	var out []*Node
	if n.Tag == tag {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.Find(tag)...)
	}
	return out
}

func (n *Node) write(b *strings.Builder) {
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}
	b.WriteString("<" + n.Tag)
	if n.Class != "" {
		b.WriteString(` class="` + html.EscapeString(n.Class) + `"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(n.Text))
	for _, c := range n.Children {
		c.write(b)
	}
	b.WriteString("</" + n.Tag + ">")
}

func (n *Node) text(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.text(b)
	}
}
