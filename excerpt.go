package longboard

import (
	"strconv"
	"strings"

	"github.com/sethierophant/longboard/internal/ast"
)

// PlainText returns the body with all markup stripped: block contents
// joined by newlines, code kept verbatim, post references printed back
// as >>id. Meant for thread previews, page titles and search indexing,
// where HTML is not wanted.
func (b *PostBody) PlainText() string {
	var sb strings.Builder
	for i, blk := range b.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch blk := blk.(type) {
		case *ast.Header:
			plainSpans(&sb, blk.Content)
		case *ast.Quote:
			plainSpans(&sb, blk.Content)
		case *ast.CodeBlock:
			sb.WriteString(blk.Text)
		case *ast.Paragraph:
			plainSpans(&sb, blk.Content)
		}
	}
	return sb.String()
}

// Excerpt returns PlainText shortened to at most max runes. A single
// ellipsis rune marks the cut and counts against the limit.
func (b *PostBody) Excerpt(max int) string {
	if max <= 0 {
		return ""
	}
	text := b.PlainText()
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

func plainSpans(sb *strings.Builder, spans []ast.Inline) {
	for _, s := range spans {
		switch s := s.(type) {
		case ast.Text:
			sb.WriteString(string(s))
		case *ast.Bold:
			plainSpans(sb, s.Children)
		case *ast.Italic:
			plainSpans(sb, s.Children)
		case *ast.Spoiler:
			plainSpans(sb, s.Children)
		case ast.CodeSpan:
			sb.WriteString(string(s))
		case *ast.PostRef:
			sb.WriteString(">>")
			sb.WriteString(strconv.FormatUint(s.ID, 10))
		case ast.Link:
			sb.WriteString(string(s))
		}
	}
}
