// Package markdown parses the constrained markdown subset used by blog
// posts into typed block nodes: headings, paragraphs, and fenced code
// blocks, with inline code and bold spans resolved. It is not a CommonMark
// parser and does not try to be one.
package markdown

import (
	"fmt"
	"strings"
)

type BlockKind string

const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindCode      BlockKind = "code"
)

type SpanKind string

const (
	SpanText SpanKind = "text"
	SpanCode SpanKind = "code"
	SpanBold SpanKind = "bold"
)

// Block is one rendered unit of a post body. Level is set for headings,
// Spans for headings and paragraphs, Lang and Code for code blocks.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Spans []Span    `json:"spans,omitempty"`
	Lang  string    `json:"lang,omitempty"`
	Code  string    `json:"code,omitempty"`
}

// Span is a run of inline text. Code span content is literal: formatting
// markers inside it are never reinterpreted.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
}

const fenceMarker = "```"

// Parse splits content into physical lines and evaluates them top to
// bottom. It is a pure function of its input; parsing the same content
// twice yields equal results.
func Parse(content string) []Block {
	var blocks []Block
	lines := strings.Split(content, "\n")

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceMarker) {
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker))
			if lang == "" {
				lang = "text"
			}
			i++

			var code []string
			for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), fenceMarker) {
				code = append(code, lines[i])
				i++
			}
			// Consume the closing fence; an unterminated fence simply
			// runs to end of input.
			if i < len(lines) {
				i++
			}

			blocks = append(blocks, Block{
				Kind: KindCode,
				Lang: lang,
				Code: strings.TrimSpace(strings.Join(code, "\n")),
			})
			continue
		}

		if level, text, ok := heading(line); ok {
			blocks = append(blocks, Block{
				Kind:  KindHeading,
				Level: level,
				Spans: ParseInline(text),
			})
			i++
			continue
		}

		if trimmed != "" {
			blocks = append(blocks, Block{
				Kind:  KindParagraph,
				Spans: ParseInline(line),
			})
		}
		i++
	}

	return blocks
}

// heading matches the three supported heading prefixes, most specific
// first.
func heading(line string) (int, string, bool) {
	for _, h := range []struct {
		prefix string
		level  int
	}{
		{"### ", 3},
		{"## ", 2},
		{"# ", 1},
	} {
		if strings.HasPrefix(line, h.prefix) {
			return h.level, strings.TrimPrefix(line, h.prefix), true
		}
	}
	return 0, "", false
}

// Highlighter colorizes a code block body for a given language. The
// returned string is trusted HTML.
type Highlighter func(code, lang string) string

// RenderHTML renders parsed blocks to HTML for embedding in a page.
// Code blocks go through the highlighter; everything else is escaped.
func RenderHTML(blocks []Block, highlighter Highlighter) string {
	var b strings.Builder

	for _, block := range blocks {
		switch block.Kind {
		case KindCode:
			b.WriteString(`<pre><code class="language-`)
			b.WriteString(htmlEscape(block.Lang))
			b.WriteString(`">`)
			if highlighter != nil {
				b.WriteString(highlighter(block.Code, block.Lang))
			} else {
				b.WriteString(htmlEscape(block.Code))
			}
			b.WriteString("</code></pre>\n")
		case KindHeading:
			tag := fmt.Sprintf("h%d", block.Level)
			b.WriteString("<" + tag + ">")
			renderSpans(&b, block.Spans)
			b.WriteString("</" + tag + ">\n")
		case KindParagraph:
			b.WriteString("<p>")
			renderSpans(&b, block.Spans)
			b.WriteString("</p>\n")
		}
	}

	return b.String()
}

func renderSpans(b *strings.Builder, spans []Span) {
	for _, span := range spans {
		switch span.Kind {
		case SpanCode:
			b.WriteString("<code>")
			b.WriteString(htmlEscape(span.Text))
			b.WriteString("</code>")
		case SpanBold:
			b.WriteString("<strong>")
			b.WriteString(htmlEscape(span.Text))
			b.WriteString("</strong>")
		default:
			b.WriteString(htmlEscape(span.Text))
		}
	}
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func htmlEscape(s string) string {
	return htmlEscaper.Replace(s)
}

// ParseInline scans text into spans in a single forward pass. Inline code
// takes precedence over bold: once a backtick opens a code span, its
// content is taken literally until the closing backtick, so bold markers
// inside code are never misread.
func ParseInline(text string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		switch {
		case text[i] == '`':
			end := strings.IndexByte(text[i+1:], '`')
			if end < 0 {
				plain.WriteByte(text[i])
				i++
				continue
			}
			flush()
			spans = append(spans, Span{Kind: SpanCode, Text: text[i+1 : i+1+end]})
			i += end + 2

		case strings.HasPrefix(text[i:], "**"):
			end := strings.Index(text[i+2:], "**")
			if end < 0 {
				plain.WriteString("**")
				i += 2
				continue
			}
			flush()
			spans = append(spans, Span{Kind: SpanBold, Text: text[i+2 : i+2+end]})
			i += end + 4

		default:
			plain.WriteByte(text[i])
			i++
		}
	}
	flush()

	return spans
}
