package plan

import (
	"testing"
	"time"

	"github.com/lexora/srs/internal/review"
)

var planNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func input(days int, strategy Strategy, sets ...SetSummary) Input {
	return Input{
		Sets:       sets,
		TargetDate: planNow.AddDate(0, 0, days),
		Strategy:   strategy,
		Now:        planNow,
	}
}

func TestBuildBasicQuota(t *testing.T) {
	p, err := Build(input(10, StrategyBalanced, SetSummary{SetID: "s1", Total: 50, Mastered: 10}))
	if err != nil {
		t.Fatal(err)
	}
	if p.RemainingItems != 40 {
		t.Errorf("remaining = %d, want 40", p.RemainingItems)
	}
	if p.DaysRemaining != 10 {
		t.Errorf("days = %d, want 10", p.DaysRemaining)
	}
	if p.DailyNewTarget != 4 {
		t.Errorf("daily target = %d, want 4", p.DailyNewTarget)
	}
	if !p.Achievable() {
		t.Error("achievable = false, want true")
	}
}

func TestBuildCeilsDailyTarget(t *testing.T) {
	p, err := Build(input(3, StrategyBalanced, SetSummary{SetID: "s1", Total: 10, Mastered: 0}))
	if err != nil {
		t.Fatal(err)
	}
	if p.DailyNewTarget != 4 { // ceil(10/3)
		t.Errorf("daily target = %d, want 4", p.DailyNewTarget)
	}
}

func TestBuildZeroDaysRemaining(t *testing.T) {
	for _, past := range []int{0, -5} {
		p, err := Build(input(past, StrategyBalanced, SetSummary{SetID: "s1", Total: 20, Mastered: 0}))
		if err != nil {
			t.Fatal(err)
		}
		if p.DaysRemaining != 0 {
			t.Errorf("target %d days out: days remaining = %d, want 0", past, p.DaysRemaining)
		}
		if p.DailyNewTarget != 0 {
			t.Errorf("target %d days out: daily target = %d, want 0 when no days remain", past, p.DailyNewTarget)
		}
		if p.Achievable() {
			t.Errorf("target %d days out: achievable = true, want false", past)
		}
	}
}

func TestBuildNeverNegative(t *testing.T) {
	// More mastered than total (stale counts from the platform) must floor
	// at zero, not go negative.
	p, err := Build(input(5, StrategyBalanced, SetSummary{SetID: "s1", Total: 10, Mastered: 25}))
	if err != nil {
		t.Fatal(err)
	}
	if p.RemainingItems != 0 {
		t.Errorf("remaining = %d, want 0", p.RemainingItems)
	}
	if p.DailyNewTarget < 0 {
		t.Errorf("daily target = %d, want non-negative", p.DailyNewTarget)
	}
}

func TestSimulationDistributesBacklog(t *testing.T) {
	p, err := Build(input(4, StrategyBalanced, SetSummary{SetID: "s1", Total: 10, Mastered: 0}))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Schedule) != 4 {
		t.Fatalf("schedule length = %d, want 4", len(p.Schedule))
	}

	totalNew := 0
	for i, day := range p.Schedule {
		if day.Day != i {
			t.Errorf("day index = %d, want %d", day.Day, i)
		}
		if day.NewCards < 0 || day.EstReviews < 0 {
			t.Errorf("day %d: negative load %d/%d", i, day.NewCards, day.EstReviews)
		}
		if day.NewCards > p.DailyNewTarget {
			t.Errorf("day %d: new cards %d exceed target %d", i, day.NewCards, p.DailyNewTarget)
		}
		if day.TotalLoad != day.NewCards+day.EstReviews {
			t.Errorf("day %d: total %d != new %d + est %d", i, day.TotalLoad, day.NewCards, day.EstReviews)
		}
		totalNew += day.NewCards
	}
	if totalNew != 10 {
		t.Errorf("distributed %d cards, want the whole backlog of 10", totalNew)
	}
}

func TestSimulationNoReviewsOnDayZero(t *testing.T) {
	p, err := Build(input(5, StrategyBalanced, SetSummary{SetID: "s1", Total: 20, Mastered: 0}))
	if err != nil {
		t.Fatal(err)
	}
	if p.Schedule[0].EstReviews != 0 {
		t.Errorf("day 0 est reviews = %d, want 0", p.Schedule[0].EstReviews)
	}
	if p.Schedule[1].EstReviews == 0 {
		t.Error("day 1 est reviews = 0, want the introduced pool to generate load")
	}
}

func TestBalancedLabelsAllUnfinishedSets(t *testing.T) {
	p, err := Build(input(4, StrategyBalanced,
		SetSummary{SetID: "s1", Total: 5, Mastered: 0},
		SetSummary{SetID: "s2", Total: 5, Mastered: 0},
		SetSummary{SetID: "done", Total: 5, Mastered: 5},
	))
	if err != nil {
		t.Fatal(err)
	}
	for i, day := range p.Schedule {
		if len(day.Sets) != 2 {
			t.Errorf("day %d sets = %v, want the two unfinished sets", i, day.Sets)
		}
	}
}

func TestSequentialLabelsOneSetPerDay(t *testing.T) {
	p, err := Build(input(4, StrategySequential,
		SetSummary{SetID: "s1", Total: 5, Mastered: 0},
		SetSummary{SetID: "s2", Total: 5, Mastered: 0},
	))
	if err != nil {
		t.Fatal(err)
	}
	// floor(day * 2 / 4): days 0-1 -> s1, days 2-3 -> s2.
	wantSets := []string{"s1", "s1", "s2", "s2"}
	for i, day := range p.Schedule {
		if len(day.Sets) != 1 || day.Sets[0] != wantSets[i] {
			t.Errorf("day %d sets = %v, want [%s]", i, day.Sets, wantSets[i])
		}
	}
}

func TestStrategyDoesNotChangeQuotas(t *testing.T) {
	sets := []SetSummary{
		{SetID: "s1", Total: 12, Mastered: 2},
		{SetID: "s2", Total: 8, Mastered: 0},
	}
	balanced, err := Build(Input{Sets: sets, TargetDate: planNow.AddDate(0, 0, 6), Strategy: StrategyBalanced, Now: planNow})
	if err != nil {
		t.Fatal(err)
	}
	sequential, err := Build(Input{Sets: sets, TargetDate: planNow.AddDate(0, 0, 6), Strategy: StrategySequential, Now: planNow})
	if err != nil {
		t.Fatal(err)
	}

	if balanced.DailyNewTarget != sequential.DailyNewTarget {
		t.Errorf("daily targets differ by strategy: %d vs %d", balanced.DailyNewTarget, sequential.DailyNewTarget)
	}
	for i := range balanced.Schedule {
		b, s := balanced.Schedule[i], sequential.Schedule[i]
		if b.NewCards != s.NewCards || b.EstReviews != s.EstReviews {
			t.Errorf("day %d loads differ by strategy: %+v vs %+v", i, b, s)
		}
	}
}

func TestUnknownStrategyRejected(t *testing.T) {
	_, err := Build(input(5, Strategy("spiral"), SetSummary{SetID: "s1", Total: 5, Mastered: 0}))
	if !review.IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestDaysCountedMidnightToMidnight(t *testing.T) {
	// Late on Mar 7 with a target early on Mar 10: three calendar days
	// remain even though only ~50 hours separate the instants.
	p, err := Build(Input{
		Sets:       []SetSummary{{SetID: "s1", Total: 6, Mastered: 0}},
		TargetDate: time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC),
		Strategy:   StrategyBalanced,
		Now:        time.Date(2026, 3, 7, 23, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.DaysRemaining != 3 {
		t.Errorf("days remaining = %d, want 3", p.DaysRemaining)
	}
	if p.DailyNewTarget != 2 {
		t.Errorf("daily target = %d, want 2", p.DailyNewTarget)
	}
}
