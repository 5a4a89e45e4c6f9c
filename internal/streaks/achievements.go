package streaks

// Metric identifies the counter an achievement threshold watches.
type Metric string

const (
	MetricMastered Metric = "mastered"
	MetricStreak   Metric = "streak"
	MetricAttempts Metric = "attempts"
)

// Threshold maps a metric crossing to an achievement identifier.
type Threshold struct {
	ID     string
	Metric Metric
	Value  int
}

// Thresholds is the fixed achievement table, evaluated in order after every
// streak update. Each identifier is granted at most once per learner; the
// store's existence check is authoritative, never a counter.
var Thresholds = []Threshold{
	{ID: "mastered_10", Metric: MetricMastered, Value: 10},
	{ID: "mastered_50", Metric: MetricMastered, Value: 50},
	{ID: "mastered_100", Metric: MetricMastered, Value: 100},
	{ID: "streak_7", Metric: MetricStreak, Value: 7},
	{ID: "streak_30", Metric: MetricStreak, Value: 30},
	{ID: "attempts_1000", Metric: MetricAttempts, Value: 1000},
}

// crossed reports which thresholds the given counters satisfy.
func crossed(mastered, streakDays, attempts int) []Threshold {
	var out []Threshold
	for _, th := range Thresholds {
		var current int
		switch th.Metric {
		case MetricMastered:
			current = mastered
		case MetricStreak:
			current = streakDays
		case MetricAttempts:
			current = attempts
		}
		if current >= th.Value {
			out = append(out, th)
		}
	}
	return out
}
