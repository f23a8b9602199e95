package ui

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// WordWrap breaks text on spaces into lines of at most width runes where
// possible. Continuation lines start with a single space.
func WordWrap(text string, width int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Split(text, " ") {
		if current != "" && utf8.RuneCountInString(current)+utf8.RuneCountInString(word)+1 > width {
			lines = append(lines, current)
			current = " " + word
			continue
		}
		if current == "" {
			current = word
		} else {
			current += " " + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// Pick returns a uniformly chosen element. list must not be empty.
func Pick[T any](rng *rand.Rand, list []T) T {
	return list[rng.IntN(len(list))]
}
