package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Markup is dropped and
// every block becomes one or more plain lines, so "## 1.2 Titre" reaches the
// outline classifier as "1.2 Titre".
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*Extracted, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var lines []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		lines = appendBlockLines(lines, n, src)
	}

	return &Extracted{
		Title: titleFor(filename),
		Pages: []string{strings.Join(lines, "\n")},
	}, nil
}

// appendBlockLines renders one block node. Container blocks (lists,
// quotes) recurse so each item lands on its own line.
func appendBlockLines(lines []string, n ast.Node, src []byte) []string {
	switch node := n.(type) {
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		segs := node.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			if s := strings.TrimSpace(string(seg.Value(src))); s != "" {
				lines = append(lines, s)
			}
		}
		return lines
	case *ast.ThematicBreak:
		return lines
	case *ast.List:
		num := node.Start
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			first := len(lines)
			lines = appendBlockLines(lines, c, src)
			// Ordered markers carry outline numbering ("1. Verbes").
			if node.IsOrdered() && first < len(lines) {
				lines[first] = fmt.Sprintf("%d. %s", num, lines[first])
			}
			num++
		}
		return lines
	case *ast.ListItem, *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			lines = appendBlockLines(lines, c, src)
		}
		return lines
	}

	for _, s := range strings.Split(inlineText(n, src), "\n") {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// inlineText concatenates the text of n's inline descendants, keeping soft
// and hard breaks as newlines.
func inlineText(n ast.Node, src []byte) string {
	var buf strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.String:
				buf.Write(t.Value)
			default:
				if c.Type() == ast.TypeBlock {
					buf.WriteByte('\n')
				}
				walk(c)
			}
		}
	}
	walk(n)
	return buf.String()
}
