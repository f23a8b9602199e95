package roast

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/thomas-vilte/mischief/internal/ai"
)

const (
	fallbackChars      = 500
	FallbackVerdict    = "The AI struggled to parse this. That might be a roast in itself."
	FallbackSuggestion = "Consider a code review."
	missingVerdict     = "No verdict. The code speaks for itself."
)

// LineRef is the "line" field of a roast. Models send it as a string or as
// a bare number.
type LineRef string

func (l *LineRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = LineRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = LineRef(n.String())
	return nil
}

type Roast struct {
	Line       LineRef `json:"line"`
	Target     string  `json:"target"`
	Roast      string  `json:"roast"`
	Suggestion string  `json:"suggestion"`
}

type Result struct {
	Roasts  []Roast `json:"roasts"`
	Verdict string  `json:"verdict"`
}

// ParseResult decodes a model reply. It never fails: anything it cannot use
// becomes Fallback(text).
func ParseResult(text string) Result {
	var result Result
	if err := json.Unmarshal([]byte(ai.ExtractJSON(text)), &result); err != nil {
		return Fallback(text)
	}

	roasts := result.Roasts[:0]
	for _, r := range result.Roasts {
		if strings.TrimSpace(r.Roast) == "" {
			continue
		}
		if r.Line == "" {
			r.Line = "?"
		}
		roasts = append(roasts, r)
	}
	if len(roasts) == 0 {
		return Fallback(text)
	}
	result.Roasts = roasts

	if strings.TrimSpace(result.Verdict) == "" {
		result.Verdict = missingVerdict
	}
	return result
}

// Fallback wraps an unparseable reply in a single roast.
func Fallback(text string) Result {
	runes := []rune(text)
	if len(runes) > fallbackChars {
		runes = runes[:fallbackChars]
	}
	return Result{
		Roasts: []Roast{{
			Line:       "?",
			Target:     "your code",
			Roast:      string(runes),
			Suggestion: FallbackSuggestion,
		}},
		Verdict: FallbackVerdict,
	}
}

// LineLabel is the line reference without a leading "Line " some models add.
func (r Roast) LineLabel() string {
	label := strings.TrimSpace(string(r.Line))
	for _, prefix := range []string{"Line ", "line ", "Lines ", "lines "} {
		label = strings.TrimPrefix(label, prefix)
	}
	return label
}
