package streaks

import "time"

// Streak is a learner's daily-practice record. Mutated only by the Tracker,
// at most once per calendar day per learner.
type Streak struct {
	LearnerID        string
	CurrentDays      int
	LongestDays      int
	LastPracticeDate *time.Time
	TotalLearned     int
	TotalMastered    int
}

// advance applies the daily streak rule for a practice at now and reports
// whether anything changed. Practicing again on the same calendar day is a
// no-op, so the rule is idempotent within a day.
func (s *Streak) advance(now time.Time) bool {
	today := startOfDay(now)

	if s.LastPracticeDate != nil {
		last := startOfDay(*s.LastPracticeDate)
		switch {
		case last.Equal(today):
			return false
		case last.Equal(today.AddDate(0, 0, -1)):
			s.CurrentDays++
		default:
			// Gap of two or more days: streak restarts.
			s.CurrentDays = 1
		}
	} else {
		s.CurrentDays = 1
	}

	if s.CurrentDays > s.LongestDays {
		s.LongestDays = s.CurrentDays
	}
	s.LastPracticeDate = &today
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
