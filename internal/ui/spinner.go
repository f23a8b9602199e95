package ui

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/briandowns/spinner"
)

// Frame sets used by the tools.
var (
	ClockFrames = []string{"◴", "◷", "◶", "◵"}
	HeatFrames  = []string{"░", "░", "▒", "▒", "▓", "▓", "█", "▓", "▓", "▒", "▒", "░"}
	ArcFrames   = []string{"◠", "◡"}
)

// SuffixFunc renders the text after the frame glyph. frame counts ticks
// from zero.
type SuffixFunc func(frame int) string

// Spinner animates a frame set on w while work runs. It redraws nothing when
// w is not a terminal.
type Spinner struct {
	s     *spinner.Spinner
	frame int
}

func NewSpinner(w io.Writer, theme Theme, frames []string, interval time.Duration, suffix SuffixFunc) *Spinner {
	colored := make([]string, len(frames))
	for i, f := range frames {
		colored[i] = theme.A(f)
	}

	sp := &Spinner{}
	sp.s = spinner.New(colored, interval, spinner.WithWriter(w), spinner.WithHiddenCursor(true))
	sp.s.Prefix = "  "
	sp.s.Suffix = " " + suffix(0)
	sp.s.PreUpdate = func(s *spinner.Spinner) {
		s.Suffix = " " + suffix(sp.frame)
		sp.frame++
	}
	return sp
}

// PhraseSuffix cycles through phrases, starting at a random one and moving on
// every rotateEvery frames.
func PhraseSuffix(theme Theme, rng *rand.Rand, phrases []string, rotateEvery int) SuffixFunc {
	start := 0
	if len(phrases) > 0 {
		start = rng.IntN(len(phrases))
	}
	return func(frame int) string {
		if len(phrases) == 0 {
			return ""
		}
		idx := start
		if rotateEvery > 0 {
			idx = (start + frame/rotateEvery) % len(phrases)
		}
		return theme.AD(phrases[idx] + "...")
	}
}

func (s *Spinner) Start() { s.s.Start() }

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() { s.s.Stop() }

// Run animates while fn runs and always stops before returning.
func (s *Spinner) Run(fn func() error) error {
	s.Start()
	defer s.Stop()
	return fn()
}
