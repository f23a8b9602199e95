package alibi

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/regex"
)

const (
	workdayStartHour = 9
	lunchStartHour   = 12
	lunchEndHour     = 13

	MinHours = 1
	MaxHours = 16

	firstCommitMin = 10
	firstCommitMax = 30
	jitterFraction = 0.3
)

// PlanEntry is one fabricated commit.
type PlanEntry struct {
	Timestamp time.Time
	Message   string
}

// MessageSource yields commit messages.
type MessageSource interface {
	Message() string
}

// Planner lays commits out over a workday.
type Planner struct {
	rng      *rand.Rand
	messages MessageSource
	now      func() time.Time
}

func NewPlanner(rng *rand.Rand, messages MessageSource) *Planner {
	return &Planner{
		rng:      rng,
		messages: messages,
		now:      time.Now,
	}
}

// HasLunch reports whether a workday of hours overlaps the lunch hour.
func HasLunch(hours int) bool {
	end := workdayStartHour + hours
	return workdayStartHour < lunchEndHour && end > lunchStartHour
}

// Generate returns count entries on date, ascending, starting from 09:00
// local time. A zero date means today. The time of day of date is ignored.
//
// Commits start 10 to 30 minutes in and are spaced by the average gap of the
// available minutes with up to 30% jitter either way. The offset keeps the
// fractional gap and is floored per commit; increments never drop below one
// minute. When the day spans lunch every commit at or past 12:00
// is pushed back one hour, so none lands in [12:00, 13:00).
func (p *Planner) Generate(date time.Time, hours, count int) []PlanEntry {
	if date.IsZero() {
		date = p.now()
	}
	year, month, day := date.Date()
	loc := date.Location()

	lunch := HasLunch(hours)
	available := hours * 60
	if lunch {
		available -= 60
	}

	gap := float64(available) / float64(count+1)
	spread := int(math.Floor(gap * jitterFraction))

	entries := make([]PlanEntry, 0, count)
	offset := float64(p.randInt(firstCommitMin, firstCommitMax))

	for i := 0; i < count; i++ {
		minutes := workdayStartHour*60 + int(math.Floor(offset))
		if lunch && minutes >= lunchStartHour*60 {
			minutes += 60
		}

		entries = append(entries, PlanEntry{
			Timestamp: time.Date(year, month, day, 0, minutes, p.rng.IntN(60), 0, loc),
			Message:   p.messages.Message(),
		})

		step := gap + float64(p.randInt(-spread, spread))
		if step < 1 {
			step = 1
		}
		offset += step
	}

	return entries
}

func (p *Planner) randInt(lo, hi int) int {
	return lo + p.rng.IntN(hi-lo+1)
}

// ClampHours forces h into [MinHours, MaxHours].
func ClampHours(h int) int {
	return min(MaxHours, max(MinHours, h))
}

// ParseDate reads a YYYY-MM-DD day in local time. An empty string is the
// zero time, meaning today.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if !regex.ISODate.MatchString(s) {
		return time.Time{}, errors.ErrInvalidDate.WithContext("date", s)
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, errors.ErrInvalidDate.WithError(err).WithContext("date", s)
	}
	return d, nil
}
