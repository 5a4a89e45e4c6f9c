package review

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lexora/srs/internal/sm2"
)

// Resolver answers "what is due now" and "how much is due over the next N
// days". Read-only: it may run concurrently with writes and tolerates
// slightly stale due counts.
type Resolver struct {
	schedules ScheduleStore
}

// NewResolver creates a Resolver over a schedule store.
func NewResolver(schedules ScheduleStore) *Resolver {
	return &Resolver{schedules: schedules}
}

// DueNow returns the IDs of every item due for the learner as of asOf,
// most overdue first. The boundary is inclusive: next_review == asOf is due.
// Callers must not rely on the ordering; it is a display convenience.
func (r *Resolver) DueNow(ctx context.Context, learnerID string, asOf time.Time) ([]string, error) {
	schedules, err := r.schedules.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	type dueItem struct {
		id      string
		overdue float64
	}
	var due []dueItem
	for itemID, s := range schedules {
		if s.IsDue(asOf) {
			due = append(due, dueItem{id: itemID, overdue: s.OverdueDays(asOf)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids, nil
}

// ForecastBucket is the due count for one calendar day.
type ForecastBucket struct {
	Date  time.Time
	Count int
}

// Forecast buckets the learner's schedules by the calendar day of their next
// review over [today, today+horizonDays). The result is dense: exactly
// horizonDays entries, zero-filled, so callers can render a calendar without
// gap handling. Items already overdue count toward day 0.
func (r *Resolver) Forecast(ctx context.Context, learnerID string, horizonDays int, now time.Time) ([]ForecastBucket, error) {
	if horizonDays < 0 {
		return nil, &ValidationError{Field: "horizon_days", Reason: "must be non-negative"}
	}

	schedules, err := r.schedules.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	today := startOfDay(now)
	buckets := make([]ForecastBucket, horizonDays)
	for i := range buckets {
		buckets[i] = ForecastBucket{Date: today.AddDate(0, 0, i)}
	}

	for _, s := range schedules {
		day := calendarDaysBetween(today, startOfDay(s.NextReview))
		if day < 0 {
			day = 0 // overdue items land on today
		}
		if day >= horizonDays {
			continue
		}
		buckets[day].Count++
	}
	return buckets, nil
}

// calendarDaysBetween counts calendar days from one local midnight to
// another. Rounding absorbs the 23h/25h days around DST transitions, which
// plain truncation would shift into the wrong bucket.
func calendarDaysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// CountByClassification scans a learner's schedules and tallies them by
// mastery classification. Recomputed from a full scan on every call rather
// than incrementally maintained, so the counts cannot drift.
func (r *Resolver) CountByClassification(ctx context.Context, learnerID string) (map[sm2.Classification]int, error) {
	schedules, err := r.schedules.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	counts := make(map[sm2.Classification]int)
	for _, s := range schedules {
		counts[s.Classify()]++
	}
	return counts, nil
}

// startOfDay returns local midnight of the day containing t.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
