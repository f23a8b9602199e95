package yeet

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	"github.com/thomas-vilte/mischief/internal/ui"
)

const (
	BarWidth     = 24
	TickInterval = 80 * time.Millisecond
	phraseEvery  = 12
)

var dotFrames = []string{"∙", "∘", "·", "∘"}

var Phrases = []string{
	"into the void",
	"into oblivion",
	"into nothingness",
	"into the abyss",
	"into the shadow realm",
	"beyond the event horizon",
	"into another dimension",
	"off the face of the earth",
	"into the great unknown",
	"past the point of no return",
	"into digital dust",
	"straight to /dev/null",
}

var DonePhrases = []string{
	"gone. reduced to atoms.",
	"it never existed.",
	"the void is pleased.",
	"disk space reclaimed from the abyss.",
	"nothing remains.",
	"scattered to the digital winds.",
	"returned to the ether.",
}

// Progress draws the fake deletion meter. The meter fills over MinDuration
// whatever the real work takes, and the run never ends sooner than that.
type Progress struct {
	W           io.Writer
	Theme       ui.Theme
	Rng         *rand.Rand
	Counts      CountFormatter
	MinDuration time.Duration
	Total       int
	FilesLabel  string
	DoneLabel   string

	now func() time.Time
}

// Bar renders a BarWidth meter filled to progress in [0,1].
func Bar(theme ui.Theme, progress float64) string {
	filled := int(float64(BarWidth) * clamp01(progress))
	return theme.A(strings.Repeat("━", filled)) + theme.AD(strings.Repeat("━", BarWidth-filled))
}

// SimulatedCount is the file counter shown while work runs: it creeps up to
// 90% of total with progress and jumps to total once done.
func SimulatedCount(total int, progress float64, done bool) int {
	if done {
		return total
	}
	return int(float64(total) * clamp01(progress) * 0.9)
}

func clamp01(v float64) float64 {
	return min(1, max(0, v))
}

// Run animates while work runs, then keeps animating until MinDuration has
// passed. It returns the total time spent and work's error.
func (p *Progress) Run(ctx context.Context, work func() error) (time.Duration, error) {
	now := p.now
	if now == nil {
		now = time.Now
	}
	start := now()
	var done atomic.Bool

	phraseStart := p.Rng.IntN(len(Phrases))
	progress := func() float64 {
		if p.MinDuration <= 0 {
			return 1
		}
		return float64(now().Sub(start)) / float64(p.MinDuration)
	}

	sp := ui.NewSpinner(p.W, p.Theme, ui.ArcFrames, TickInterval, func(frame int) string {
		prog := progress()
		dots := strings.Join(dotFrames[:frame%len(dotFrames)+1], " ")
		phrase := Phrases[(phraseStart+frame/phraseEvery)%len(Phrases)]
		count := SimulatedCount(p.Total, prog, done.Load())
		return fmt.Sprintf("%s %s %s %s %s",
			Bar(p.Theme, prog),
			p.Theme.A(p.Counts.Format(count)),
			p.FilesLabel,
			p.Theme.AD(phrase),
			p.Theme.AD(dots))
	})

	sp.Start()
	err := work()
	done.Store(true)

	if err == nil {
		if remaining := p.MinDuration - now().Sub(start); remaining > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(remaining):
			}
		}
	}
	sp.Stop()

	if err != nil {
		return now().Sub(start), err
	}

	_, _ = fmt.Fprintf(p.W, "  %s %s %s %s %s\n",
		p.Theme.A("●"),
		Bar(p.Theme, 1),
		p.Theme.A(p.Counts.Format(p.Total)),
		p.DoneLabel,
		p.Theme.AD(ui.Pick(p.Rng, Phrases)))

	return now().Sub(start), nil
}
