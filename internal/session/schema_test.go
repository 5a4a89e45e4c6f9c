package session

import (
	"encoding/json"
	"testing"
	"time"
)

func toBlob(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var blob any
	if err := json.Unmarshal(b, &blob); err != nil {
		t.Fatal(err)
	}
	return blob
}

func TestValidateAcceptsWellFormedState(t *testing.T) {
	s := State{
		SessionID:    "sess-1",
		LearnerID:    "lea",
		SetID:        "set-1",
		CurrentIndex: 3,
		Completed: []ItemResult{
			{ItemID: "item-1", Correct: true, TimeMs: 4200},
			{ItemID: "item-2", Correct: false, TimeMs: 9100},
		},
		StartedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := Validate(toBlob(t, s)); err != nil {
		t.Errorf("well-formed state rejected: %v", err)
	}
}

func TestValidateRejectsCorruptBlobs(t *testing.T) {
	tests := []struct {
		name string
		blob any
	}{
		{"missing session id", map[string]any{
			"learner_id": "lea", "set_id": "s", "current_index": 0,
		}},
		{"negative index", map[string]any{
			"session_id": "x", "learner_id": "lea", "set_id": "s", "current_index": -1,
		}},
		{"index as string", map[string]any{
			"session_id": "x", "learner_id": "lea", "set_id": "s", "current_index": "2",
		}},
		{"unknown field", map[string]any{
			"session_id": "x", "learner_id": "lea", "set_id": "s", "current_index": 0,
			"score": 99,
		}},
		{"completed entry missing correctness", map[string]any{
			"session_id": "x", "learner_id": "lea", "set_id": "s", "current_index": 1,
			"completed": []any{map[string]any{"item_id": "i"}},
		}},
		{"not an object", "just a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(toBlob(t, tt.blob)); err == nil {
				t.Error("corrupt blob accepted")
			}
		})
	}
}
