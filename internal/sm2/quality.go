package sm2

// Quality is a 1-5 rating summarizing how well a single review went.
type Quality int

const (
	// QualityAgain is a failed recall (lapse).
	QualityAgain Quality = 1
	// QualityHesitant is a failed recall where the answer felt familiar.
	QualityHesitant Quality = 2
	// QualityHard is a correct but slow recall.
	QualityHard Quality = 3
	// QualityGood is a correct recall at a normal pace.
	QualityGood Quality = 4
	// QualityEasy is a fast, confident recall.
	QualityEasy Quality = 5
)

// Valid reports whether q is inside the documented [1,5] domain.
func (q Quality) Valid() bool {
	return q >= QualityAgain && q <= QualityEasy
}

// Passing reports whether q counts as a successful recall. Ratings below
// QualityHard are lapses and reset learning progress.
func (q Quality) Passing() bool {
	return q >= QualityHard
}

// Response-time cutoffs for classification, in milliseconds.
const (
	easyCutoffMs = 5000
	goodCutoffMs = 10000
)

// Classify maps a raw answer outcome to a quality rating. responseTimeMs is
// ignored unless hasTiming is true (not every client captures timing).
// Classify is the sole producer of scheduler input; no other signal reaches
// the scheduler.
func Classify(correct bool, responseTimeMs int, hasTiming bool) Quality {
	if !correct {
		return QualityAgain
	}
	if !hasTiming {
		return QualityGood
	}
	switch {
	case responseTimeMs < easyCutoffMs:
		return QualityEasy
	case responseTimeMs < goodCutoffMs:
		return QualityGood
	default:
		return QualityHard
	}
}
