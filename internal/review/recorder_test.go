package review

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lexora/srs/internal/sm2"
)

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

// memScheduleStore is an in-memory ScheduleStore for tests.
type memScheduleStore struct {
	states    map[string]sm2.State
	upserts   int
	failGet   error
	failWrite error
}

func newMemScheduleStore() *memScheduleStore {
	return &memScheduleStore{states: make(map[string]sm2.State)}
}

func pairKey(learnerID, itemID string) string { return learnerID + "/" + itemID }

func (m *memScheduleStore) Get(_ context.Context, learnerID, itemID string) (sm2.State, error) {
	if m.failGet != nil {
		return sm2.State{}, m.failGet
	}
	s, ok := m.states[pairKey(learnerID, itemID)]
	if !ok {
		return sm2.State{}, ErrScheduleNotFound
	}
	return s, nil
}

func (m *memScheduleStore) Upsert(_ context.Context, learnerID, itemID string, s sm2.State) error {
	if m.failWrite != nil {
		return m.failWrite
	}
	m.upserts++
	m.states[pairKey(learnerID, itemID)] = s
	return nil
}

func (m *memScheduleStore) ListByLearner(_ context.Context, learnerID string) (map[string]sm2.State, error) {
	out := make(map[string]sm2.State)
	prefix := learnerID + "/"
	for k, s := range m.states {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out[k[len(prefix):]] = s
		}
	}
	return out, nil
}

// memAttemptLog records appended attempts. fail rejects the next appends
// until cleared, simulating a transient store outage.
type memAttemptLog struct {
	attempts []Attempt
	fail     error
}

func (m *memAttemptLog) Append(_ context.Context, a Attempt) error {
	if m.fail != nil {
		return m.fail
	}
	m.attempts = append(m.attempts, a)
	return nil
}

func (m *memAttemptLog) Find(_ context.Context, attemptID string) (*Attempt, error) {
	for i := range m.attempts {
		if m.attempts[i].AttemptID == attemptID {
			return &m.attempts[i], nil
		}
	}
	return nil, nil
}

// memCatalog maps item IDs to correct indexes and choice counts over a
// fixed learner set.
type memCatalog struct {
	items    map[string]int
	choices  map[string]int
	learners map[string]bool
}

func (m *memCatalog) CorrectIndex(_ context.Context, itemID string) (int, error) {
	idx, ok := m.items[itemID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	return idx, nil
}

func (m *memCatalog) ChoiceCount(_ context.Context, itemID string) (int, error) {
	if _, ok := m.items[itemID]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	return m.choices[itemID], nil
}

func (m *memCatalog) LearnerExists(_ context.Context, learnerID string) (bool, error) {
	return m.learners[learnerID], nil
}

// memTracker records practice notifications.
type memTracker struct {
	calls    int
	unlocked []string
	fail     error
}

func (m *memTracker) RecordPractice(_ context.Context, _ string, _ time.Time) ([]string, error) {
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	return m.unlocked, nil
}

func newTestRecorder() (*Recorder, *memScheduleStore, *memAttemptLog, *memTracker) {
	schedules := newMemScheduleStore()
	attempts := &memAttemptLog{}
	catalog := &memCatalog{
		items:    map[string]int{"item-1": 2, "item-2": 0},
		choices:  map[string]int{"item-1": 4, "item-2": 2},
		learners: map[string]bool{"lea": true},
	}
	tracker := &memTracker{}
	r := NewRecorder(schedules, attempts, catalog, tracker).
		WithClock(func() time.Time { return testNow })
	return r, schedules, attempts, tracker
}

func TestRecordAttemptCorrect(t *testing.T) {
	r, schedules, attempts, tracker := newTestRecorder()
	ctx := context.Background()

	res, err := r.RecordAttempt(ctx, AttemptRequest{
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 2,
		ResponseTimeMs: 3000, HasTiming: true,
	})
	if err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if !res.Correct {
		t.Error("correct = false, want true")
	}
	if res.Quality != sm2.QualityEasy {
		t.Errorf("quality = %d, want %d", res.Quality, sm2.QualityEasy)
	}
	if res.Schedule.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", res.Schedule.Repetitions)
	}
	if len(attempts.attempts) != 1 {
		t.Fatalf("attempt log length = %d, want 1", len(attempts.attempts))
	}
	if attempts.attempts[0].AttemptID == "" {
		t.Error("attempt missing idempotency ID")
	}
	if tracker.calls != 1 {
		t.Errorf("tracker calls = %d, want 1", tracker.calls)
	}
	// Lazily initialized, then reviewed: two upserts.
	if schedules.upserts != 2 {
		t.Errorf("schedule upserts = %d, want 2", schedules.upserts)
	}
}

func TestRecordAttemptWrongAnswer(t *testing.T) {
	r, _, _, _ := newTestRecorder()

	res, err := r.RecordAttempt(context.Background(), AttemptRequest{
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 0,
		ResponseTimeMs: 1500, HasTiming: true,
	})
	if err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if res.Correct {
		t.Error("correct = true, want false")
	}
	if res.Quality != sm2.QualityAgain {
		t.Errorf("quality = %d, want %d", res.Quality, sm2.QualityAgain)
	}
	if res.Schedule.Repetitions != 0 || res.Schedule.IntervalDays != 0 {
		t.Errorf("lapse state = reps %d / interval %d, want 0/0",
			res.Schedule.Repetitions, res.Schedule.IntervalDays)
	}
}

func TestRecordAttemptUnknownItem(t *testing.T) {
	r, _, attempts, _ := newTestRecorder()

	_, err := r.RecordAttempt(context.Background(), AttemptRequest{
		LearnerID: "lea", ItemID: "no-such-item", SelectedIndex: 0,
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("error = %v, want ErrItemNotFound", err)
	}
	if len(attempts.attempts) != 0 {
		t.Error("attempt recorded despite unknown item")
	}
}

func TestRecordAttemptUnknownLearner(t *testing.T) {
	r, _, _, _ := newTestRecorder()

	_, err := r.RecordAttempt(context.Background(), AttemptRequest{
		LearnerID: "ghost", ItemID: "item-1", SelectedIndex: 0,
	})
	if !errors.Is(err, ErrLearnerNotFound) {
		t.Errorf("error = %v, want ErrLearnerNotFound", err)
	}
}

func TestRecordAttemptNegativeIndex(t *testing.T) {
	r, _, _, _ := newTestRecorder()

	_, err := r.RecordAttempt(context.Background(), AttemptRequest{
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: -1,
	})
	if !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestRecordAttemptIndexPastChoices(t *testing.T) {
	r, _, attempts, _ := newTestRecorder()

	// item-1 carries four choices; index 4 is one past the end.
	_, err := r.RecordAttempt(context.Background(), AttemptRequest{
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 4,
	})
	if !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
	if len(attempts.attempts) != 0 {
		t.Error("attempt recorded despite out-of-range index")
	}
}

func TestRecordAttemptRetryCompletesInterruptedWrite(t *testing.T) {
	r, schedules, attempts, tracker := newTestRecorder()
	ctx := context.Background()

	req := AttemptRequest{
		AttemptID: "key-1",
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 2,
		ResponseTimeMs: 3000, HasTiming: true,
	}

	// First delivery advances the schedule, then dies at the append.
	attempts.fail = errors.New("store unavailable")
	if _, err := r.RecordAttempt(ctx, req); err == nil {
		t.Fatal("expected append failure")
	}
	interrupted, err := schedules.Get(ctx, "lea", "item-1")
	if err != nil {
		t.Fatal(err)
	}
	if interrupted.Repetitions != 1 {
		t.Fatalf("repetitions after interrupted write = %d, want 1", interrupted.Repetitions)
	}

	// The retry must finish the append without reviewing a second time:
	// one answer is one review, no matter how many deliveries it takes.
	attempts.fail = nil
	res, err := r.RecordAttempt(ctx, req)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if res.Schedule.Repetitions != 1 {
		t.Errorf("repetitions after retry = %d, want 1", res.Schedule.Repetitions)
	}
	if got, want := res.Schedule.EaseFactor, 2.65; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("ease after retry = %v, want %v (applied once)", got, want)
	}
	if len(attempts.attempts) != 1 {
		t.Errorf("attempt log length = %d, want 1", len(attempts.attempts))
	}
	if tracker.calls != 1 {
		t.Errorf("tracker calls = %d, want 1 (first delivery died before tracking)", tracker.calls)
	}
}

func TestRecordAttemptSameKeyReplaysOutcome(t *testing.T) {
	r, _, attempts, tracker := newTestRecorder()
	ctx := context.Background()

	req := AttemptRequest{
		AttemptID: "key-2",
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 2,
		ResponseTimeMs: 3000, HasTiming: true,
	}
	first, err := r.RecordAttempt(ctx, req)
	if err != nil {
		t.Fatal(err)
	}

	// A fully delivered attempt resent with the same key is a pure read.
	second, err := r.RecordAttempt(ctx, req)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if second.Schedule != first.Schedule {
		t.Errorf("replay schedule = %+v, want unchanged %+v", second.Schedule, first.Schedule)
	}
	if !second.Correct || second.Quality != first.Quality {
		t.Errorf("replay outcome = %v/%d, want %v/%d", second.Correct, second.Quality, first.Correct, first.Quality)
	}
	if len(attempts.attempts) != 1 {
		t.Errorf("attempt log length = %d, want 1", len(attempts.attempts))
	}
	if tracker.calls != 1 {
		t.Errorf("tracker calls = %d, want 1 (replay must not re-track)", tracker.calls)
	}
}

func TestRecordAttemptScheduleWriteFailureBlocksAttempt(t *testing.T) {
	r, schedules, attempts, _ := newTestRecorder()
	schedules.failWrite = errors.New("store unavailable")

	_, err := r.RecordAttempt(context.Background(), AttemptRequest{
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 2,
	})
	if err == nil {
		t.Fatal("expected error from schedule write failure")
	}
	if len(attempts.attempts) != 0 {
		t.Error("attempt appended before schedule write succeeded")
	}
}

func TestRecordAttemptTrackerFailureIsDegraded(t *testing.T) {
	r, _, attempts, tracker := newTestRecorder()
	tracker.fail = errors.New("streak table locked")

	res, err := r.RecordAttempt(context.Background(), AttemptRequest{
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 2,
	})
	if err != nil {
		t.Fatalf("record attempt: %v (tracker failure must not fail the attempt)", err)
	}
	if !res.Degraded {
		t.Error("degraded = false, want true")
	}
	if len(attempts.attempts) != 1 {
		t.Error("scheduling write lost on tracker failure")
	}
}

func TestRecordAttemptSurfacesUnlocks(t *testing.T) {
	r, _, _, tracker := newTestRecorder()
	tracker.unlocked = []string{"mastered_10"}

	res, err := r.RecordAttempt(context.Background(), AttemptRequest{
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0] != "mastered_10" {
		t.Errorf("unlocked = %v, want [mastered_10]", res.Unlocked)
	}
}

func TestInitializeScheduleIdempotent(t *testing.T) {
	r, schedules, _, _ := newTestRecorder()
	ctx := context.Background()

	first, err := r.InitializeSchedule(ctx, "lea", "item-1")
	if err != nil {
		t.Fatalf("first init: %v", err)
	}
	if first.Repetitions != 0 || first.IntervalDays != 1 {
		t.Errorf("fresh state = reps %d / interval %d, want 0/1", first.Repetitions, first.IntervalDays)
	}

	// Mutate through a review so the second init has something to preserve.
	reviewed, err := sm2.Review(first, sm2.QualityEasy, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if err := schedules.Upsert(ctx, "lea", "item-1", reviewed); err != nil {
		t.Fatal(err)
	}

	second, err := r.InitializeSchedule(ctx, "lea", "item-1")
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if second != reviewed {
		t.Errorf("second init returned %+v, want existing state %+v", second, reviewed)
	}
}

func TestInitializeScheduleUnknownPair(t *testing.T) {
	r, _, _, _ := newTestRecorder()
	ctx := context.Background()

	if _, err := r.InitializeSchedule(ctx, "ghost", "item-1"); !errors.Is(err, ErrLearnerNotFound) {
		t.Errorf("unknown learner error = %v, want ErrLearnerNotFound", err)
	}
	if _, err := r.InitializeSchedule(ctx, "lea", "nope"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unknown item error = %v, want ErrItemNotFound", err)
	}
}
