package alibi

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/regex"
)

type fixedMessages string

func (f fixedMessages) Message() string { return string(f) }

func newTestPlanner(seed uint64) *Planner {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return NewPlanner(rng, NewSynthesizer(rng, DefaultPack()))
}

func inLunch(ts time.Time) bool {
	return ts.Hour() == lunchStartHour
}

func TestPlanner_Generate_Example(t *testing.T) {
	// Arrange
	date := time.Date(2026, 1, 24, 0, 0, 0, 0, time.Local)

	for seed := uint64(0); seed < 200; seed++ {
		planner := newTestPlanner(seed)

		// Act
		plan := planner.Generate(date, 8, 6)

		// Assert
		require.Len(t, plan, 6)
		first := plan[0].Timestamp
		assert.Equal(t, 9, first.Hour(), "seed %d", seed)
		assert.GreaterOrEqual(t, first.Minute(), 10, "seed %d", seed)
		assert.LessOrEqual(t, first.Minute(), 30, "seed %d", seed)

		last := plan[len(plan)-1].Timestamp
		assert.True(t, last.Before(time.Date(2026, 1, 24, 18, 0, 0, 0, time.Local)), "seed %d: last %s", seed, last)

		for _, e := range plan {
			assert.False(t, inLunch(e.Timestamp), "seed %d: %s is in lunch", seed, e.Timestamp)
			assert.Equal(t, 24, e.Timestamp.Day())
		}
	}
}

func TestPlanner_Generate_Properties(t *testing.T) {
	date := time.Date(2026, 3, 2, 15, 45, 0, 0, time.Local)

	for hours := MinHours; hours <= MaxHours; hours++ {
		for _, count := range []int{1, 3, 7, 17} {
			planner := newTestPlanner(uint64(hours*100 + count))

			plan := planner.Generate(date, hours, count)

			require.Len(t, plan, count, "hours=%d count=%d", hours, count)
			for i, e := range plan {
				assert.GreaterOrEqual(t, e.Timestamp.Second(), 0)
				assert.LessOrEqual(t, e.Timestamp.Second(), 59)
				if HasLunch(hours) {
					assert.False(t, inLunch(e.Timestamp), "hours=%d count=%d: %s", hours, count, e.Timestamp)
				}
				if i > 0 {
					assert.True(t, e.Timestamp.After(plan[i-1].Timestamp),
						"hours=%d count=%d: %s not after %s", hours, count, e.Timestamp, plan[i-1].Timestamp)
				}
				assert.Regexp(t, regex.ConventionalCommit, e.Message)
			}
		}
	}
}

func TestPlanner_Generate_IgnoresTimeOfDay(t *testing.T) {
	planner := newTestPlanner(1)

	plan := planner.Generate(time.Date(2026, 1, 24, 23, 59, 0, 0, time.Local), 8, 1)

	require.Len(t, plan, 1)
	assert.Equal(t, 9, plan[0].Timestamp.Hour())
	assert.Equal(t, 24, plan[0].Timestamp.Day())
}

func TestPlanner_Generate_ZeroDateIsToday(t *testing.T) {
	// Arrange
	planner := NewPlanner(rand.New(rand.NewPCG(3, 4)), fixedMessages("chore: update dependencies"))
	planner.now = func() time.Time { return time.Date(2026, 10, 14, 20, 0, 0, 0, time.Local) }

	// Act
	plan := planner.Generate(time.Time{}, 4, 3)

	// Assert
	require.Len(t, plan, 3)
	for _, e := range plan {
		assert.Equal(t, 14, e.Timestamp.Day())
		assert.Equal(t, time.October, e.Timestamp.Month())
		assert.Equal(t, "chore: update dependencies", e.Message)
	}
}

func TestPlanner_Generate_NoLunchForShortDays(t *testing.T) {
	planner := NewPlanner(rand.New(rand.NewPCG(5, 6)), fixedMessages("fix: x"))
	date := time.Date(2026, 1, 24, 0, 0, 0, 0, time.Local)

	plan := planner.Generate(date, 3, 4)

	assert.False(t, HasLunch(3))
	for _, e := range plan {
		assert.Less(t, e.Timestamp.Hour(), 12)
	}
}

func TestPlanner_Generate_KeepsFractionalGap(t *testing.T) {
	// 60 minutes over 24 slots is a 2.5 minute gap with no room for jitter.
	date := time.Date(2026, 1, 24, 0, 0, 0, 0, time.Local)
	plan := newTestPlanner(3).Generate(date, 1, 23)

	require.Len(t, plan, 23)
	start := plan[0].Timestamp.Truncate(time.Minute)
	for i, e := range plan {
		want := start.Add(time.Duration(math.Floor(2.5*float64(i))) * time.Minute)
		assert.Equal(t, want, e.Timestamp.Truncate(time.Minute), "entry %d", i)
	}
	assert.True(t, plan[22].Timestamp.Before(time.Date(2026, 1, 24, 10, 26, 0, 0, time.Local)))
}

func TestHasLunch(t *testing.T) {
	assert.False(t, HasLunch(1))
	assert.False(t, HasLunch(3))
	assert.True(t, HasLunch(4))
	assert.True(t, HasLunch(16))
}

func TestClampHours(t *testing.T) {
	tests := map[int]int{-5: 1, 0: 1, 1: 1, 8: 8, 16: 16, 17: 16, 100: 16}
	for in, want := range tests {
		assert.Equal(t, want, ClampHours(in), "ClampHours(%d)", in)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := ParseDate("2026-01-24")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 24, 0, 0, 0, 0, time.Local), d)
	})

	t.Run("empty means today", func(t *testing.T) {
		d, err := ParseDate("  ")

		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	for _, bad := range []string{"24/01/2026", "2026-13-01", "2026-02-30", "tomorrow", "2026-1-2"} {
		t.Run(bad, func(t *testing.T) {
			_, err := ParseDate(bad)

			assert.ErrorIs(t, err, errors.ErrInvalidDate)
		})
	}
}
