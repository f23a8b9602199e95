package ai

import (
	"encoding/json"
	"strings"

	"github.com/thomas-vilte/mischief/internal/regex"
)

// ExtractJSON pulls the most likely JSON document out of a model reply. It
// prefers the largest valid fenced block, then the largest valid balanced
// {...} or [...] span, and otherwise returns the sanitized text.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	var bestMarkdown string
	for _, m := range regex.MarkdownJSONBlock.FindAllStringSubmatch(text, -1) {
		sanitized := SanitizeJSON(strings.TrimSpace(m[1]))
		if json.Valid([]byte(sanitized)) && len(sanitized) > len(bestMarkdown) {
			bestMarkdown = sanitized
		}
	}
	if bestMarkdown != "" {
		return bestMarkdown
	}

	var bestBlock string
	for i := 0; i < len(text); {
		start := strings.IndexAny(text[i:], "{[")
		if start == -1 {
			break
		}
		start += i

		end := matchingClose(text, start)
		if end == -1 {
			i = start + 1
			continue
		}

		sanitized := SanitizeJSON(text[start : end+1])
		if json.Valid([]byte(sanitized)) && len(sanitized) > len(bestBlock) {
			bestBlock = sanitized
		}
		i = end + 1
	}
	if bestBlock != "" {
		return bestBlock
	}

	return SanitizeJSON(text)
}

// matchingClose returns the index closing the bracket at start, skipping
// brackets inside string literals, or -1.
func matchingClose(text string, start int) int {
	opener := text[start]
	closer := byte('}')
	if opener == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for j := start; j < len(text); j++ {
		c := text[j]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == opener:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// SanitizeJSON escapes raw newlines inside string literals, a common flaw in
// model output.
func SanitizeJSON(s string) string {
	return regex.JSONString.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, "\n", "\\n")
	})
}
