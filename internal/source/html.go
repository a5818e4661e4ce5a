package source

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// blockTags are elements that imply a line break around their text. The
// printed export puts each record in its own paragraph or table row, so
// breaking on these keeps record headers at line starts.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "ul": true, "ol": true, "section": true, "article": true,
}

// skipTags are elements whose text content is never prose.
var skipTags = map[string]bool{
	"script": true, "style": true, "head": true, "noscript": true,
}

// FromHTML extracts the visible text of an HTML document, one block
// element per line. The reader is charset-aware: the older exports are
// latin-1, not UTF-8.
func FromHTML(data []byte) (string, error) {
	reader, err := charset.NewReader(bytes.NewReader(data), "text/html")
	if err != nil {
		return "", err
	}

	doc, err := html.Parse(reader)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	walkHTML(doc, &buf)
	return collapseBlankLines(buf.String()), nil
}

func walkHTML(n *html.Node, buf *strings.Builder) {
	if n.Type == html.ElementNode && skipTags[n.Data] {
		return
	}

	if n.Type == html.TextNode {
		text := strings.Join(strings.Fields(n.Data), " ")
		if text != "" {
			if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
				buf.WriteString(" ")
			}
			buf.WriteString(text)
		}
		return
	}

	isBlock := n.Type == html.ElementNode && blockTags[n.Data]
	if isBlock {
		buf.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, buf)
	}
	if isBlock {
		buf.WriteString("\n")
	}
}

// collapseBlankLines trims trailing spaces and squeezes runs of blank
// lines down to one.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n")) + "\n"
}
