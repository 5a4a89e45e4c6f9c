package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lexora/srs/internal/plan"
	"github.com/lexora/srs/internal/review"
	"github.com/lexora/srs/internal/session"
	"github.com/lexora/srs/internal/sm2"
	"github.com/lexora/srs/internal/streaks"
)

var storeNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Schedules()
	ctx := context.Background()

	_, err := repo.Get(ctx, "lea", "item-1")
	if !errors.Is(err, review.ErrScheduleNotFound) {
		t.Fatalf("get missing schedule: error = %v, want ErrScheduleNotFound", err)
	}

	state := sm2.State{
		EaseFactor:    2.65,
		IntervalDays:  3,
		Repetitions:   2,
		NextReview:    storeNow.AddDate(0, 0, 3),
		LastReviewed:  storeNow,
		LastQuality:   sm2.QualityEasy,
		LastAttemptID: "attempt-abc",
	}
	if err := repo.Upsert(ctx, "lea", "item-1", state); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	got, err := repo.Get(ctx, "lea", "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EaseFactor != 2.65 || got.IntervalDays != 3 || got.Repetitions != 2 {
		t.Errorf("got %+v, want %+v", got, state)
	}
	if !got.NextReview.Equal(state.NextReview) {
		t.Errorf("next review = %v, want %v", got.NextReview, state.NextReview)
	}
	if got.LastAttemptID != "attempt-abc" {
		t.Errorf("last attempt id = %q, want attempt-abc", got.LastAttemptID)
	}

	// Upsert again on the same pair must update in place, not duplicate.
	state.IntervalDays = 8
	if err := repo.Upsert(ctx, "lea", "item-1", state); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}
	all, err := repo.ListByLearner(ctx, "lea")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("schedule count = %d, want 1", len(all))
	}
	if all["item-1"].IntervalDays != 8 {
		t.Errorf("interval after update = %d, want 8", all["item-1"].IntervalDays)
	}
}

func TestListByLearnerIsolation(t *testing.T) {
	s := openTestStore(t)
	repo := s.Schedules()
	ctx := context.Background()

	fresh := sm2.NewState(storeNow)
	if err := repo.Upsert(ctx, "lea", "a", fresh); err != nil {
		t.Fatal(err)
	}
	if err := repo.Upsert(ctx, "other", "b", fresh); err != nil {
		t.Fatal(err)
	}

	mine, err := repo.ListByLearner(ctx, "lea")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 {
		t.Errorf("schedules for lea = %d, want 1", len(mine))
	}
	if _, ok := mine["a"]; !ok {
		t.Error("missing own schedule")
	}
}

func TestAttemptAppendIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	a := review.Attempt{
		AttemptID: "attempt-xyz",
		LearnerID: "lea",
		ItemID:    "item-1",
		Correct:   true,
		TimeMs:    4200,
		Quality:   sm2.QualityEasy,
		Timestamp: storeNow,
	}
	if err := repo.Append(ctx, a); err != nil {
		t.Fatalf("append: %v", err)
	}
	// A retried append with the same idempotency key is a no-op.
	if err := repo.Append(ctx, a); err != nil {
		t.Fatalf("retry append: %v", err)
	}

	n, err := repo.CountByLearner(ctx, "lea")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("attempt count = %d, want 1", n)
	}

	found, err := repo.Find(ctx, "attempt-xyz")
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.ItemID != "item-1" || !found.Correct {
		t.Errorf("find = %+v, want the stored attempt", found)
	}
	missing, err := repo.Find(ctx, "never-appended")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("find unknown key = %+v, want nil", missing)
	}
}

func TestAttemptSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i, id := range []string{"a1", "a2", "a3"} {
		err := repo.Append(ctx, review.Attempt{
			AttemptID: id,
			LearnerID: "lea",
			ItemID:    "item-1",
			Correct:   i%2 == 0,
			Quality:   sm2.QualityGood,
			Timestamp: storeNow.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	recent, err := repo.Recent(ctx, "lea", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent length = %d, want 2", len(recent))
	}
	if recent[0].AttemptID != "a3" || recent[1].AttemptID != "a2" {
		t.Errorf("recent order = %s, %s; want a3, a2", recent[0].AttemptID, recent[1].AttemptID)
	}

	accuracy, total, err := repo.Accuracy(ctx, "lea")
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if accuracy < 0.66 || accuracy > 0.67 {
		t.Errorf("accuracy = %v, want 2/3", accuracy)
	}
}

func TestStreakRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Streaks()
	ctx := context.Background()

	got, err := repo.Get(ctx, "lea")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("expected nil streak before first upsert")
	}

	day := storeNow.Truncate(24 * time.Hour)
	want := streaks.Streak{
		LearnerID:        "lea",
		CurrentDays:      3,
		LongestDays:      5,
		LastPracticeDate: &day,
		TotalLearned:     12,
		TotalMastered:    4,
	}
	if err := repo.Upsert(ctx, want); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	got, err = repo.Get(ctx, "lea")
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentDays != 3 || got.LongestDays != 5 || got.TotalMastered != 4 {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.LastPracticeDate == nil || !got.LastPracticeDate.Equal(day) {
		t.Errorf("last practice = %v, want %v", got.LastPracticeDate, day)
	}

	want.CurrentDays = 4
	if err := repo.Upsert(ctx, want); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}
	got, err = repo.Get(ctx, "lea")
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentDays != 4 {
		t.Errorf("current days after update = %d, want 4", got.CurrentDays)
	}
}

func TestAchievementGrantOnce(t *testing.T) {
	s := openTestStore(t)
	repo := s.Achievements()
	ctx := context.Background()

	has, err := repo.Has(ctx, "lea", "mastered_10")
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Fatal("achievement present before grant")
	}

	if err := repo.Grant(ctx, "lea", "mastered_10", storeNow); err != nil {
		t.Fatalf("grant: %v", err)
	}
	// Racing duplicate grant resolves via the unique index, not an error.
	if err := repo.Grant(ctx, "lea", "mastered_10", storeNow.Add(time.Second)); err != nil {
		t.Fatalf("duplicate grant: %v", err)
	}

	awards, err := repo.List(ctx, "lea")
	if err != nil {
		t.Fatal(err)
	}
	if len(awards) != 1 {
		t.Fatalf("award count = %d, want exactly 1", len(awards))
	}
	if awards[0].AchievementID != "mastered_10" {
		t.Errorf("award = %q, want mastered_10", awards[0].AchievementID)
	}
}

func TestCatalog(t *testing.T) {
	s := openTestStore(t)
	repo := s.Catalog()
	ctx := context.Background()

	if err := repo.RegisterLearner(ctx, "lea", "Lea"); err != nil {
		t.Fatal(err)
	}
	// Idempotent.
	if err := repo.RegisterLearner(ctx, "lea", "Lea"); err != nil {
		t.Fatal(err)
	}

	ok, err := repo.LearnerExists(ctx, "lea")
	if err != nil || !ok {
		t.Fatalf("learner exists = %v, %v; want true", ok, err)
	}
	ok, err = repo.LearnerExists(ctx, "ghost")
	if err != nil || ok {
		t.Fatalf("ghost exists = %v, %v; want false", ok, err)
	}

	if err := repo.RegisterItem(ctx, "item-1", "set-1", "2+2?", []string{"3", "4"}, 1); err != nil {
		t.Fatal(err)
	}
	if err := repo.RegisterItem(ctx, "item-2", "set-1", "3+3?", []string{"6", "7"}, 0); err != nil {
		t.Fatal(err)
	}

	idx, err := repo.CorrectIndex(ctx, "item-1")
	if err != nil {
		t.Fatal(err)
	}
	if idx != 1 {
		t.Errorf("correct index = %d, want 1", idx)
	}
	if _, err := repo.CorrectIndex(ctx, "missing"); !errors.Is(err, review.ErrItemNotFound) {
		t.Errorf("missing item error = %v, want ErrItemNotFound", err)
	}

	items, err := repo.ItemsInSet(ctx, "set-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("set items = %d, want 2", len(items))
	}

	count, err := repo.ChoiceCount(ctx, "item-1")
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("choice count = %d, want 2", count)
	}
	if _, err := repo.ChoiceCount(ctx, "missing"); !errors.Is(err, review.ErrItemNotFound) {
		t.Errorf("missing item error = %v, want ErrItemNotFound", err)
	}

	if err := repo.RegisterItem(ctx, "bad", "set-1", "?", []string{"a"}, 5); err == nil {
		t.Error("out-of-range correct index accepted")
	}
}

func TestSessionSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	state := session.State{
		SessionID:    "sess-1",
		LearnerID:    "lea",
		SetID:        "set-1",
		CurrentIndex: 2,
		Completed: []session.ItemResult{
			{ItemID: "item-1", Correct: true, TimeMs: 3000},
		},
		StartedAt: storeNow,
		UpdatedAt: storeNow,
	}
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	state.CurrentIndex = 3
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("second save: %v", err)
	}

	count, err := s.Client().SessionState.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("session rows = %d, want 1 (save must upsert)", count)
	}

	got, err := repo.Load(ctx, "lea", "set-1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("load returned nil for saved session")
	}
	if got.CurrentIndex != 3 {
		t.Errorf("current index = %d, want 3", got.CurrentIndex)
	}
	if len(got.Completed) != 1 || got.Completed[0].ItemID != "item-1" {
		t.Errorf("completed = %+v, want the one recorded result", got.Completed)
	}
}

func TestSessionLoadMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Sessions().Load(context.Background(), "lea", "none")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("load missing session = %+v, want nil", got)
	}
}

func TestSessionCorruptBlobDiscarded(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Write a blob that bypasses the repo and violates the schema.
	_, err := s.Client().SessionState.Create().
		SetLearnerID("lea").
		SetSetID("set-1").
		SetData(map[string]any{"current_index": -4}).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Sessions().Load(ctx, "lea", "set-1")
	if err != nil {
		t.Fatalf("load corrupt session: %v (must discard, not fail)", err)
	}
	if got != nil {
		t.Errorf("corrupt session resumed as %+v, want nil", got)
	}
}

func TestSessionClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	state := session.State{SessionID: "sess-1", LearnerID: "lea", SetID: "set-1"}
	if err := repo.Save(ctx, state); err != nil {
		t.Fatal(err)
	}
	if err := repo.Clear(ctx, "lea", "set-1"); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Load(ctx, "lea", "set-1")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("session survived clear")
	}
	// Clearing again is a no-op.
	if err := repo.Clear(ctx, "lea", "set-1"); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestStudyPlanRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Plans()
	ctx := context.Background()

	id, err := repo.Create(ctx, PlanTemplate{
		Name:       "Unit 4 vocabulary",
		SetIDs:     []string{"set-1", "set-2"},
		TargetDate: storeNow.AddDate(0, 0, 14),
		Strategy:   plan.StrategySequential,
		CreatedBy:  "teacher-9",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("empty plan ID")
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("plan not found after create")
	}
	if got.Strategy != plan.StrategySequential || len(got.SetIDs) != 2 {
		t.Errorf("got %+v, want stored template", got)
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("missing plan returned non-nil")
	}

	if _, err := repo.Create(ctx, PlanTemplate{Strategy: plan.Strategy("bogus")}); !review.IsValidation(err) {
		t.Errorf("bogus strategy error = %v, want ValidationError", err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("sequence not monotonic: %v", seqs)
		}
	}
}
