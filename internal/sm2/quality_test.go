package sm2

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		correct   bool
		timeMs    int
		hasTiming bool
		want      Quality
	}{
		{"incorrect fast", false, 100, true, QualityAgain},
		{"incorrect slow", false, 60000, true, QualityAgain},
		{"incorrect no timing", false, 0, false, QualityAgain},
		{"correct no timing", true, 0, false, QualityGood},
		{"correct fast", true, 3000, true, QualityEasy},
		{"correct just under easy cutoff", true, 4999, true, QualityEasy},
		{"correct at easy cutoff", true, 5000, true, QualityGood},
		{"correct just under good cutoff", true, 9999, true, QualityGood},
		{"correct at good cutoff", true, 10000, true, QualityHard},
		{"correct slow", true, 45000, true, QualityHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.correct, tt.timeMs, tt.hasTiming)
			if got != tt.want {
				t.Errorf("Classify(%v, %d, %v) = %d, want %d",
					tt.correct, tt.timeMs, tt.hasTiming, got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("Classify produced out-of-domain rating %d", got)
			}
		})
	}
}

func TestQualityValid(t *testing.T) {
	for q := Quality(-2); q <= 7; q++ {
		want := q >= 1 && q <= 5
		if q.Valid() != want {
			t.Errorf("Quality(%d).Valid() = %v, want %v", q, q.Valid(), want)
		}
	}
}

func TestQualityPassing(t *testing.T) {
	passing := map[Quality]bool{
		QualityAgain:    false,
		QualityHesitant: false,
		QualityHard:     true,
		QualityGood:     true,
		QualityEasy:     true,
	}
	for q, want := range passing {
		if q.Passing() != want {
			t.Errorf("Quality(%d).Passing() = %v, want %v", q, q.Passing(), want)
		}
	}
}
