package source

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown flattens a markdown transcription to plain text, one block
// per line. Formatting (emphasis, links) is dropped; only the text
// matters downstream. Code blocks are skipped — transcriptions sometimes
// fence scanner artifacts that would otherwise look like records.
func FromMarkdown(data []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(data))

	var buf strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Heading, *ast.Paragraph:
			if _, inItem := n.Parent().(*ast.ListItem); inItem {
				return ast.WalkSkipChildren, nil // emitted with the item
			}
			writeBlock(&buf, "", n, data)
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			// A record line like "1. JOÃO" parses as an ordered list and
			// loses its marker; put the number back so the ID survives.
			// Nested lists are left for the walk to emit as their own lines.
			writeBlock(&buf, listMarker(node), n, data)
			return ast.WalkContinue, nil
		}
		return ast.WalkContinue, nil
	})

	return collapseBlankLines(buf.String())
}

func writeBlock(buf *strings.Builder, prefix string, n ast.Node, data []byte) {
	block := collectText(n, data)
	if block == "" {
		return
	}
	buf.WriteString(prefix)
	buf.WriteString(block)
	buf.WriteString("\n")
}

// listMarker rebuilds the ordinal prefix of an item in an ordered list.
func listMarker(item *ast.ListItem) string {
	list, ok := item.Parent().(*ast.List)
	if !ok || !list.IsOrdered() {
		return ""
	}
	num := list.Start
	for sib := list.FirstChild(); sib != nil && sib != item; sib = sib.NextSibling() {
		num++
	}
	return fmt.Sprintf("%d. ", num)
}

// collectText concatenates the text nodes under a block. Goldmark splits
// text at inline syntax characters, so a single sentence can span many
// nodes.
func collectText(node ast.Node, data []byte) string {
	var b strings.Builder
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if _, ok := n.(*ast.List); ok {
			return
		}
		if t, ok := n.(*ast.Text); ok {
			b.Write(t.Segment.Value(data))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(node)
	return strings.TrimSpace(b.String())
}
