// Package digest runs the daily due-review digest: a scheduled scan over all
// learners that reports how many items each has waiting. The platform uses
// the output to drive reminder notifications; the engine itself only
// produces the counts.
package digest

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// DueCounter answers how many items a learner has due right now.
type DueCounter interface {
	DueCount(ctx context.Context, learnerID string, asOf time.Time) (int, error)
}

// LearnerLister enumerates every learner to scan.
type LearnerLister interface {
	ListLearners(ctx context.Context) ([]string, error)
}

// Sink receives one digest entry per learner with due items.
type Sink func(learnerID string, dueCount int)

// Digest schedules the daily scan.
type Digest struct {
	scheduler *gocron.Scheduler
	counter   DueCounter
	learners  LearnerLister
	sink      Sink
}

// New creates a digest runner. sink is called once per learner with a
// non-zero due count on every scan.
func New(counter DueCounter, learners LearnerLister, sink Sink) *Digest {
	return &Digest{
		scheduler: gocron.NewScheduler(time.UTC),
		counter:   counter,
		learners:  learners,
		sink:      sink,
	}
}

// Start schedules the scan at the given local time (HH:MM) every day and
// begins running in the background.
func (d *Digest) Start(at string) error {
	if _, err := d.scheduler.Every(1).Day().At(at).Do(d.Scan); err != nil {
		return err
	}
	d.scheduler.StartAsync()
	return nil
}

// Stop terminates the scheduled scans.
func (d *Digest) Stop() {
	d.scheduler.Stop()
}

// Scan runs one digest pass immediately. Per-learner failures are logged
// and skipped; one broken learner must not silence everyone else's digest.
func (d *Digest) Scan() {
	ctx := context.Background()
	now := time.Now()

	learners, err := d.learners.ListLearners(ctx)
	if err != nil {
		log.Printf("digest: list learners: %v", err)
		return
	}

	for _, learnerID := range learners {
		n, err := d.counter.DueCount(ctx, learnerID, now)
		if err != nil {
			log.Printf("digest: due count for %s: %v", learnerID, err)
			continue
		}
		if n > 0 {
			d.sink(learnerID, n)
		}
	}
}
