package roast

import "github.com/thomas-vilte/mischief/internal/ui"

// Severity is how hard the reviewer is told to go.
type Severity struct {
	Name    string
	Label   string
	Persona string
	Tone    string
	Hex     string
}

var (
	Gentle = Severity{
		Name:    "gentle",
		Label:   "GENTLE",
		Persona: "You are a kind, constructive code reviewer. Point out issues gently with encouragement. Be a helpful mentor. Still be specific about line numbers and real problems.",
		Tone:    "Be encouraging but honest",
		Hex:     ui.HexGentle,
	}
	Honest = Severity{
		Name:    "honest",
		Label:   "HONEST",
		Persona: "You are a direct, honest code reviewer with dry wit. Mix humor with real, actionable feedback. Be specific and technically accurate. Think sharp friend who tells it like it is.",
		Tone:    "Be direct and witty",
		Hex:     ui.HexHonest,
	}
	Savage = Severity{
		Name:    "savage",
		Label:   "SAVAGE",
		Persona: "You are an unhinged, brutally funny code reviewer. Roast the code MERCILESSLY but stay technically accurate. Every criticism should be hilarious AND true. No mercy. Pure comedic destruction with real technical insight.",
		Tone:    "Be absolutely ruthless and hilarious",
		Hex:     ui.HexSavage,
	}
)

// ParseSeverity maps the two flags to a level; savage wins when both are set.
func ParseSeverity(gentle, savage bool) Severity {
	switch {
	case savage:
		return Savage
	case gentle:
		return Gentle
	default:
		return Honest
	}
}

func (s Severity) Theme() ui.Theme {
	return ui.NewTheme(s.Name, s.Hex)
}
