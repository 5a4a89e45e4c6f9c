// Package plan computes study-plan forecasts: given a backlog of unmastered
// items and a target date, how many new cards per day does the deadline
// require, and what does the daily load look like. This is a planning aid;
// the review scheduler remains the sole source of truth for due dates.
package plan

import (
	"math"
	"time"

	"github.com/lexora/srs/internal/review"
)

// Strategy controls how item sets are labeled across the plan days. It
// affects only the human-readable "which sets today" labels, never the
// numeric quotas.
type Strategy string

const (
	// StrategyBalanced touches every unfinished set each day.
	StrategyBalanced Strategy = "balanced"
	// StrategySequential exhausts one set before starting the next.
	StrategySequential Strategy = "sequential"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyBalanced || s == StrategySequential
}

// reviewLoadFactor approximates daily review load as a share of the pool of
// introduced-but-unmastered cards. Display-only heuristic, tunable, not a
// correctness claim.
const reviewLoadFactor = 0.3

// SetSummary is one item set's contribution to the plan input.
type SetSummary struct {
	SetID    string
	Total    int
	Mastered int
}

// Remaining returns the set's unmastered item count, floored at zero.
func (s SetSummary) Remaining() int {
	if s.Mastered >= s.Total {
		return 0
	}
	return s.Total - s.Mastered
}

// Input is everything Build needs. Now is injected so forecasts are
// reproducible in tests.
type Input struct {
	Sets       []SetSummary
	TargetDate time.Time
	Strategy   Strategy
	Now        time.Time
}

// DayLoad is the simulated load for one plan day.
type DayLoad struct {
	Day        int
	NewCards   int
	EstReviews int
	TotalLoad  int
	// Sets labels which item sets the day draws from, per the strategy.
	Sets []string
}

// Plan is the computed study forecast.
type Plan struct {
	DailyNewTarget int
	DaysRemaining  int
	RemainingItems int
	Schedule       []DayLoad
}

// Achievable reports whether the backlog fits before the deadline at all:
// false when items remain but no days do.
func (p *Plan) Achievable() bool {
	return p.RemainingItems == 0 || p.DaysRemaining > 0
}

// Build computes the study plan. RemainingItems and DailyNewTarget are never
// negative, and DailyNewTarget is zero whenever no days remain.
func Build(in Input) (*Plan, error) {
	if !in.Strategy.Valid() {
		return nil, &review.ValidationError{Field: "strategy", Reason: "must be balanced or sequential"}
	}

	remaining := 0
	for _, set := range in.Sets {
		remaining += set.Remaining()
	}

	daysRemaining := wholeDaysUntil(in.Now, in.TargetDate)

	p := &Plan{
		DaysRemaining:  daysRemaining,
		RemainingItems: remaining,
	}
	if daysRemaining == 0 {
		return p, nil
	}
	p.DailyNewTarget = int(math.Ceil(float64(remaining) / float64(daysRemaining)))

	p.Schedule = simulate(in, p.DailyNewTarget, daysRemaining, remaining)
	return p, nil
}

// simulate walks the plan day by day, distributing the backlog and
// estimating review load from the cumulative introduced-but-unmastered pool.
func simulate(in Input, dailyTarget, days, remaining int) []DayLoad {
	schedule := make([]DayLoad, 0, days)
	undistributed := remaining
	introduced := 0

	for day := 0; day < days; day++ {
		newCards := dailyTarget
		if newCards > undistributed {
			newCards = undistributed
		}

		estReviews := 0
		if day > 0 {
			estReviews = int(math.Round(float64(introduced) * reviewLoadFactor))
		}

		schedule = append(schedule, DayLoad{
			Day:        day,
			NewCards:   newCards,
			EstReviews: estReviews,
			TotalLoad:  newCards + estReviews,
			Sets:       setsForDay(in, day, days),
		})

		undistributed -= newCards
		introduced += newCards
	}
	return schedule
}

// setsForDay labels which sets a day draws from. Balanced lists every
// unfinished set; sequential picks a single set by plan progress.
func setsForDay(in Input, day, days int) []string {
	var unfinished []string
	for _, set := range in.Sets {
		if set.Remaining() > 0 {
			unfinished = append(unfinished, set.SetID)
		}
	}
	if len(unfinished) == 0 {
		return nil
	}

	if in.Strategy == StrategySequential {
		idx := day * len(unfinished) / days
		if idx >= len(unfinished) {
			idx = len(unfinished) - 1
		}
		return []string{unfinished[idx]}
	}
	return unfinished
}

// wholeDaysUntil returns the number of calendar days from today to the
// target date, floored at zero. Counted midnight to midnight, so a target
// late on day N still leaves N whole days; rounding absorbs DST-shortened
// days.
func wholeDaysUntil(now, target time.Time) int {
	days := int(math.Round(startOfDay(target).Sub(startOfDay(now)).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// startOfDay returns local midnight of the day containing t.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
