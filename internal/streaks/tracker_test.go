package streaks

import (
	"context"
	"testing"
	"time"

	"github.com/lexora/srs/internal/sm2"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type memStreakStore struct {
	streaks map[string]Streak
	upserts int
}

func (m *memStreakStore) Get(_ context.Context, learnerID string) (*Streak, error) {
	s, ok := m.streaks[learnerID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStreakStore) Upsert(_ context.Context, s Streak) error {
	m.upserts++
	m.streaks[s.LearnerID] = s
	return nil
}

type memAchievementStore struct {
	granted map[string]int // learner/id -> grant count
}

func achKey(learnerID, id string) string { return learnerID + "/" + id }

func (m *memAchievementStore) Has(_ context.Context, learnerID, id string) (bool, error) {
	return m.granted[achKey(learnerID, id)] > 0, nil
}

func (m *memAchievementStore) Grant(_ context.Context, learnerID, id string, _ time.Time) error {
	m.granted[achKey(learnerID, id)]++
	return nil
}

type memScheduleSource struct {
	schedules map[string]sm2.State
}

func (m *memScheduleSource) ListByLearner(_ context.Context, _ string) (map[string]sm2.State, error) {
	return m.schedules, nil
}

type memAttemptCounter struct {
	count int
}

func (m *memAttemptCounter) CountByLearner(_ context.Context, _ string) (int, error) {
	return m.count, nil
}

type trackerFixture struct {
	tracker      *Tracker
	streaks      *memStreakStore
	achievements *memAchievementStore
	schedules    *memScheduleSource
	attempts     *memAttemptCounter
}

func newFixture() *trackerFixture {
	f := &trackerFixture{
		streaks:      &memStreakStore{streaks: make(map[string]Streak)},
		achievements: &memAchievementStore{granted: make(map[string]int)},
		schedules:    &memScheduleSource{schedules: make(map[string]sm2.State)},
		attempts:     &memAttemptCounter{},
	}
	f.tracker = NewTracker(f.streaks, f.achievements, f.schedules, f.attempts)
	return f
}

func masteredState() sm2.State {
	return sm2.State{EaseFactor: 3.2, IntervalDays: 30, Repetitions: 6}
}

func TestFirstPracticeStartsStreak(t *testing.T) {
	f := newFixture()

	if _, err := f.tracker.RecordPractice(context.Background(), "lea", testNow); err != nil {
		t.Fatal(err)
	}
	s := f.streaks.streaks["lea"]
	if s.CurrentDays != 1 || s.LongestDays != 1 {
		t.Errorf("streak = %d/%d, want 1/1", s.CurrentDays, s.LongestDays)
	}
}

func TestSameDayPracticeIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.tracker.RecordPractice(ctx, "lea", testNow); err != nil {
		t.Fatal(err)
	}
	upsertsAfterFirst := f.streaks.upserts
	if _, err := f.tracker.RecordPractice(ctx, "lea", testNow.Add(4*time.Hour)); err != nil {
		t.Fatal(err)
	}

	s := f.streaks.streaks["lea"]
	if s.CurrentDays != 1 {
		t.Errorf("streak after same-day repeat = %d, want 1", s.CurrentDays)
	}
	if f.streaks.upserts != upsertsAfterFirst {
		t.Errorf("second same-day practice wrote the streak again (%d upserts)", f.streaks.upserts)
	}
}

func TestConsecutiveDaysExtendStreak(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for day := 0; day < 5; day++ {
		if _, err := f.tracker.RecordPractice(ctx, "lea", testNow.AddDate(0, 0, day)); err != nil {
			t.Fatal(err)
		}
	}
	s := f.streaks.streaks["lea"]
	if s.CurrentDays != 5 || s.LongestDays != 5 {
		t.Errorf("streak = %d/%d, want 5/5", s.CurrentDays, s.LongestDays)
	}
}

func TestGapResetsStreakKeepsLongest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for day := 0; day < 3; day++ {
		if _, err := f.tracker.RecordPractice(ctx, "lea", testNow.AddDate(0, 0, day)); err != nil {
			t.Fatal(err)
		}
	}
	// Two-day gap.
	if _, err := f.tracker.RecordPractice(ctx, "lea", testNow.AddDate(0, 0, 5)); err != nil {
		t.Fatal(err)
	}

	s := f.streaks.streaks["lea"]
	if s.CurrentDays != 1 {
		t.Errorf("streak after gap = %d, want 1", s.CurrentDays)
	}
	if s.LongestDays != 3 {
		t.Errorf("longest after gap = %d, want 3", s.LongestDays)
	}
}

func TestTotalsRecomputedFromScan(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.schedules.schedules = map[string]sm2.State{
		"a": masteredState(),
		"b": {EaseFactor: 2.5, IntervalDays: 7, Repetitions: 2},  // learning
		"c": {EaseFactor: 2.5, IntervalDays: 1, Repetitions: 0},  // struggling
		"d": masteredState(),
	}

	if _, err := f.tracker.RecordPractice(ctx, "lea", testNow); err != nil {
		t.Fatal(err)
	}
	s := f.streaks.streaks["lea"]
	if s.TotalMastered != 2 {
		t.Errorf("total mastered = %d, want 2", s.TotalMastered)
	}
	if s.TotalLearned != 3 {
		t.Errorf("total learned = %d, want 3 (mastered + learning)", s.TotalLearned)
	}

	// Shrinking the scan shrinks the totals: recompute, never accumulate.
	f.schedules.schedules = map[string]sm2.State{"a": masteredState()}
	if _, err := f.tracker.RecordPractice(ctx, "lea", testNow.AddDate(0, 0, 1)); err != nil {
		t.Fatal(err)
	}
	s = f.streaks.streaks["lea"]
	if s.TotalMastered != 1 || s.TotalLearned != 1 {
		t.Errorf("totals = %d/%d after shrink, want 1/1", s.TotalMastered, s.TotalLearned)
	}
}

func TestMasteredThresholdUnlocks(t *testing.T) {
	f := newFixture()

	for i := 0; i < 10; i++ {
		f.schedules.schedules[string(rune('a'+i))] = masteredState()
	}

	granted, err := f.tracker.RecordPractice(context.Background(), "lea", testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(granted) != 1 || granted[0] != "mastered_10" {
		t.Errorf("granted = %v, want [mastered_10]", granted)
	}
}

func TestAchievementIdempotence(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		f.schedules.schedules[string(rune('a'+i))] = masteredState()
	}

	// Two consecutive practices both cross the mastered=10 boundary.
	if _, err := f.tracker.RecordPractice(ctx, "lea", testNow); err != nil {
		t.Fatal(err)
	}
	granted, err := f.tracker.RecordPractice(ctx, "lea", testNow.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if len(granted) != 0 {
		t.Errorf("second crossing granted %v, want nothing", granted)
	}
	if n := f.achievements.granted[achKey("lea", "mastered_10")]; n != 1 {
		t.Errorf("mastered_10 granted %d times, want exactly 1", n)
	}
}

func TestStreakThresholdUnlocks(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var last []string
	for day := 0; day < 7; day++ {
		var err error
		last, err = f.tracker.RecordPractice(ctx, "lea", testNow.AddDate(0, 0, day))
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(last) != 1 || last[0] != "streak_7" {
		t.Errorf("day 7 granted = %v, want [streak_7]", last)
	}
}

func TestAttemptThresholdUnlocks(t *testing.T) {
	f := newFixture()
	f.attempts.count = 1000

	granted, err := f.tracker.RecordPractice(context.Background(), "lea", testNow)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, id := range granted {
		if id == "attempts_1000" {
			found = true
		}
	}
	if !found {
		t.Errorf("granted = %v, want attempts_1000 included", granted)
	}
}

func TestGetSynthesizesEmptyStreak(t *testing.T) {
	f := newFixture()
	f.schedules.schedules["a"] = masteredState()

	s, err := f.tracker.Get(context.Background(), "lea")
	if err != nil {
		t.Fatal(err)
	}
	if s.CurrentDays != 0 || s.LastPracticeDate != nil {
		t.Errorf("fresh streak = %+v, want zero streak", s)
	}
	if s.TotalMastered != 1 {
		t.Errorf("fresh totals not recomputed: mastered = %d, want 1", s.TotalMastered)
	}
}
