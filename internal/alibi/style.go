package alibi

import (
	"math/rand/v2"
	"strings"
)

// Style sets how many commits a fake day gets.
type Style struct {
	Name  string
	Min   int
	Max   int
	Label string
}

const DefaultStyle = "normal"

var styles = []Style{
	{Name: "slacker", Min: 3, Max: 4, Label: "SLACKER"},
	{Name: "normal", Min: 6, Max: 8, Label: "NORMAL"},
	{Name: "overachiever", Min: 12, Max: 17, Label: "MANIAC"},
}

// ParseStyle looks name up case-insensitively. Unknown names return the
// normal style and false.
func ParseStyle(name string) (Style, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range styles {
		if s.Name == name {
			return s, true
		}
	}
	def, _ := ParseStyle(DefaultStyle)
	return def, false
}

func StyleNames() []string {
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	return names
}

// PickCount returns a commit count in [Min, Max].
func (s Style) PickCount(rng *rand.Rand) int {
	return s.Min + rng.IntN(s.Max-s.Min+1)
}
