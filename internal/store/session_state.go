package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lexora/srs/ent"
	"github.com/lexora/srs/ent/sessionstate"
	"github.com/lexora/srs/internal/session"
)

// sessionRepo implements session.Store over the ent client. One row per
// (learner, set); Save is an upsert, so resuming twice never duplicates a
// session.
type sessionRepo struct {
	client *ent.Client
}

// Sessions returns the session state holder backed by this Store.
func (s *Store) Sessions() session.Store {
	return &sessionRepo{client: s.client}
}

func (r *sessionRepo) Save(ctx context.Context, s session.State) error {
	data, err := stateToMap(s)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	row, err := r.client.SessionState.Query().
		Where(
			sessionstate.LearnerID(s.LearnerID),
			sessionstate.SetID(s.SetID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query session: %w", err)
		}
		_, err = r.client.SessionState.Create().
			SetLearnerID(s.LearnerID).
			SetSetID(s.SetID).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	}

	if _, err := row.Update().SetData(data).Save(ctx); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Load(ctx context.Context, learnerID, setID string) (*session.State, error) {
	row, err := r.client.SessionState.Query().
		Where(
			sessionstate.LearnerID(learnerID),
			sessionstate.SetID(setID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	// A blob that fails schema validation is treated as no session: better
	// to restart the set than resume from corrupt progress.
	if err := session.Validate(normalize(row.Data)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding invalid session for %s/%s: %v\n", learnerID, setID, err)
		return nil, nil
	}

	state, err := mapToState(row.Data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	return state, nil
}

func (r *sessionRepo) Clear(ctx context.Context, learnerID, setID string) error {
	_, err := r.client.SessionState.Delete().
		Where(
			sessionstate.LearnerID(learnerID),
			sessionstate.SetID(setID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (r *sessionRepo) DeleteByLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.SessionState.Delete().
		Where(sessionstate.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

// stateToMap converts session.State to map[string]any for ent JSON storage.
func stateToMap(s session.State) (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func mapToState(m map[string]any) (*session.State, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var s session.State
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// normalize round-trips the stored map through JSON so the validator sees
// plain JSON values rather than whatever concrete types ent decoded into.
func normalize(m map[string]any) any {
	b, err := json.Marshal(m)
	if err != nil {
		return m
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return m
	}
	return v
}
