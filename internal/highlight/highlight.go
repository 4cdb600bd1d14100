// Package highlight performs best-effort colorization of code snippets.
// It is a heuristic scanner, not a real lexer: malformed input degrades to
// cosmetically wrong spans, never an error.
package highlight

import (
	"strings"
)

const (
	classComment = "text-muted-foreground"
	classString  = "text-green-400"
	classKeyword = "text-primary font-medium"
	classNumber  = "text-orange-400"
	classCall    = "text-yellow-300"

	defaultLanguageClass = "text-muted-foreground"
)

// languageClasses maps a fence language tag to the color class used for the
// language label. Unknown tags fall back to the default class.
var languageClasses = map[string]string{
	"php":        "text-purple-400",
	"go":         "text-cyan-400",
	"sql":        "text-yellow-400",
	"bash":       "text-green-400",
	"javascript": "text-yellow-300",
	"typescript": "text-blue-400",
	"ini":        "text-orange-400",
}

// keywords holds the per-language keyword lists, lowercase. Matching is
// whole-word and case-insensitive; unknown languages get no keywords.
var keywords = map[string][]string{
	"php": {
		"namespace", "use", "class", "function", "public", "private", "protected",
		"return", "if", "else", "foreach", "for", "while", "new", "extends",
		"implements", "static", "const", "array",
	},
	"go": {
		"package", "import", "func", "type", "struct", "interface", "return",
		"if", "else", "for", "range", "go", "defer", "chan", "make", "var",
		"const", "select", "case", "default",
	},
	"sql": {
		"select", "from", "where", "join", "left", "right", "inner", "on",
		"create", "index", "table", "insert", "update", "delete", "group", "by",
		"order", "having", "count", "and", "or", "as", "using", "gin", "desc",
		"asc", "explain", "analyze",
	},
	"bash":       {"cd", "composer", "php", "artisan", "npm", "yarn", "git"},
	"javascript": {"const", "let", "var", "function", "return", "if", "else", "for", "while", "async", "await", "import", "export", "from", "class", "new"},
	"typescript": {"const", "let", "var", "function", "return", "if", "else", "for", "while", "async", "await", "import", "export", "from", "class", "new", "interface", "type"},
}

type commentGrammar struct {
	line  []string // markers running to end of line
	block bool     // supports /* ... */
}

var commentGrammars = map[string]commentGrammar{
	"php":        {line: []string{"//", "#"}, block: true},
	"go":         {line: []string{"//"}, block: true},
	"javascript": {line: []string{"//"}, block: true},
	"typescript": {line: []string{"//"}, block: true},
	"sql":        {line: []string{"--"}, block: true},
	"bash":       {line: []string{"#"}},
}

// Unknown languages accept every comment style the recognized ones use.
var defaultCommentGrammar = commentGrammar{line: []string{"//", "#", "--"}, block: true}

// LanguageClass returns the color class for a fence language tag.
func LanguageClass(language string) string {
	if class, ok := languageClasses[language]; ok {
		return class
	}
	return defaultLanguageClass
}

// Highlight wraps comments, strings, keywords, numbers, and call targets in
// styled spans, escaping HTML along the way. A single forward scan keeps
// protected regions (comments, strings) out of reach of the word passes, so
// no placeholder substitution is needed.
func Highlight(code, language string) string {
	kw := keywordSet(language)
	grammar, ok := commentGrammars[language]
	if !ok {
		grammar = defaultCommentGrammar
	}

	var b strings.Builder
	b.Grow(len(code) + len(code)/4)

	for i := 0; i < len(code); {
		if marker := matchLineComment(code, i, grammar); marker != "" {
			end := strings.IndexByte(code[i:], '\n')
			if end < 0 {
				end = len(code)
			} else {
				end += i
			}
			span(&b, classComment, code[i:end])
			i = end
			continue
		}

		if grammar.block && strings.HasPrefix(code[i:], "/*") {
			end := strings.Index(code[i+2:], "*/")
			if end < 0 {
				end = len(code)
			} else {
				end += i + 2 + 2
			}
			span(&b, classComment, code[i:end])
			i = end
			continue
		}

		c := code[i]

		if c == '\'' || c == '"' || c == '`' {
			end := scanString(code, i)
			span(&b, classString, code[i:end])
			i = end
			continue
		}

		if isWordStart(c) {
			end := i + 1
			for end < len(code) && isWordChar(code[end]) {
				end++
			}
			word := code[i:end]
			switch {
			case kw[strings.ToLower(word)]:
				span(&b, classKeyword, word)
			case nextNonSpaceIs(code, end, '('):
				span(&b, classCall, word)
			default:
				escapeTo(&b, word)
			}
			i = end
			continue
		}

		if isDigit(c) && (i == 0 || !isWordChar(code[i-1])) {
			end := i + 1
			for end < len(code) && isDigit(code[end]) {
				end++
			}
			if end == len(code) || !isWordChar(code[end]) {
				span(&b, classNumber, code[i:end])
			} else {
				escapeTo(&b, code[i:end])
			}
			i = end
			continue
		}

		escapeByte(&b, c)
		i++
	}

	return b.String()
}

func keywordSet(language string) map[string]bool {
	list := keywords[language]
	set := make(map[string]bool, len(list))
	for _, k := range list {
		set[k] = true
	}
	return set
}

func matchLineComment(code string, i int, grammar commentGrammar) string {
	for _, marker := range grammar.line {
		if strings.HasPrefix(code[i:], marker) {
			return marker
		}
	}
	return ""
}

// scanString consumes a quote-delimited literal starting at i, honoring
// backslash escapes. An unterminated literal runs to end of input.
func scanString(code string, i int) int {
	quote := code[i]
	j := i + 1
	for j < len(code) {
		switch code[j] {
		case '\\':
			j += 2
			continue
		case quote:
			return j + 1
		}
		j++
	}
	return len(code)
}

func nextNonSpaceIs(code string, i int, want byte) bool {
	for i < len(code) && (code[i] == ' ' || code[i] == '\t') {
		i++
	}
	return i < len(code) && code[i] == want
}

func span(b *strings.Builder, class, text string) {
	b.WriteString(`<span class="`)
	b.WriteString(class)
	b.WriteString(`">`)
	escapeTo(b, text)
	b.WriteString(`</span>`)
}

func escapeTo(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		escapeByte(b, s[i])
	}
}

func escapeByte(b *strings.Builder, c byte) {
	switch c {
	case '&':
		b.WriteString("&amp;")
	case '<':
		b.WriteString("&lt;")
	case '>':
		b.WriteString("&gt;")
	default:
		b.WriteByte(c)
	}
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isWordStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
