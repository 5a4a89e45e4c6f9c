// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/achievement"
	"github.com/lexora/srs/ent/attemptevent"
	"github.com/lexora/srs/ent/item"
	"github.com/lexora/srs/ent/learner"
	"github.com/lexora/srs/ent/predicate"
	"github.com/lexora/srs/ent/schedule"
	"github.com/lexora/srs/ent/sessionstate"
	"github.com/lexora/srs/ent/streak"
	"github.com/lexora/srs/ent/studyplan"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAchievement  = "Achievement"
	TypeAttemptEvent = "AttemptEvent"
	TypeItem         = "Item"
	TypeLearner      = "Learner"
	TypeSchedule     = "Schedule"
	TypeSessionState = "SessionState"
	TypeStreak       = "Streak"
	TypeStudyPlan    = "StudyPlan"
)

// AchievementMutation represents an operation that mutates the Achievement nodes in the graph.
type AchievementMutation struct {
	config
	op               Op
	typ              string
	id               *int
	learner_id       *string
	achievement_type *string
	awarded_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Achievement, error)
	predicates       []predicate.Achievement
}

var _ ent.Mutation = (*AchievementMutation)(nil)

// achievementOption allows management of the mutation configuration using functional options.
type achievementOption func(*AchievementMutation)

// newAchievementMutation creates new mutation for the Achievement entity.
func newAchievementMutation(c config, op Op, opts ...achievementOption) *AchievementMutation {
	m := &AchievementMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementID sets the ID field of the mutation.
func withAchievementID(id int) achievementOption {
	return func(m *AchievementMutation) {
		var (
			err   error
			once  sync.Once
			value *Achievement
		)
		m.oldValue = func(ctx context.Context) (*Achievement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Achievement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievement sets the old Achievement of the mutation.
func withAchievement(node *Achievement) achievementOption {
	return func(m *AchievementMutation) {
		m.oldValue = func(context.Context) (*Achievement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Achievement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *AchievementMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AchievementMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AchievementMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetAchievementType sets the "achievement_type" field.
func (m *AchievementMutation) SetAchievementType(s string) {
	m.achievement_type = &s
}

// AchievementType returns the value of the "achievement_type" field in the mutation.
func (m *AchievementMutation) AchievementType() (r string, exists bool) {
	v := m.achievement_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementType returns the old "achievement_type" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldAchievementType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementType: %w", err)
	}
	return oldValue.AchievementType, nil
}

// ResetAchievementType resets all changes to the "achievement_type" field.
func (m *AchievementMutation) ResetAchievementType() {
	m.achievement_type = nil
}

// SetAwardedAt sets the "awarded_at" field.
func (m *AchievementMutation) SetAwardedAt(t time.Time) {
	m.awarded_at = &t
}

// AwardedAt returns the value of the "awarded_at" field in the mutation.
func (m *AchievementMutation) AwardedAt() (r time.Time, exists bool) {
	v := m.awarded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedAt returns the old "awarded_at" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldAwardedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedAt: %w", err)
	}
	return oldValue.AwardedAt, nil
}

// ResetAwardedAt resets all changes to the "awarded_at" field.
func (m *AchievementMutation) ResetAwardedAt() {
	m.awarded_at = nil
}

// Where appends a list predicates to the AchievementMutation builder.
func (m *AchievementMutation) Where(ps ...predicate.Achievement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Achievement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Achievement).
func (m *AchievementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.learner_id != nil {
		fields = append(fields, achievement.FieldLearnerID)
	}
	if m.achievement_type != nil {
		fields = append(fields, achievement.FieldAchievementType)
	}
	if m.awarded_at != nil {
		fields = append(fields, achievement.FieldAwardedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievement.FieldLearnerID:
		return m.LearnerID()
	case achievement.FieldAchievementType:
		return m.AchievementType()
	case achievement.FieldAwardedAt:
		return m.AwardedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievement.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case achievement.FieldAchievementType:
		return m.OldAchievementType(ctx)
	case achievement.FieldAwardedAt:
		return m.OldAwardedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Achievement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievement.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case achievement.FieldAchievementType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementType(v)
		return nil
	case achievement.FieldAwardedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Achievement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Achievement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementMutation) ResetField(name string) error {
	switch name {
	case achievement.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case achievement.FieldAchievementType:
		m.ResetAchievementType()
		return nil
	case achievement.FieldAwardedAt:
		m.ResetAwardedAt()
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Achievement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Achievement edge %s", name)
}

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	attempt_id        *string
	learner_id        *string
	item_id           *string
	selected_index    *int
	addselected_index *int
	correct           *bool
	time_ms           *int
	addtime_ms        *int
	quality           *int
	addquality        *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AttemptEvent, error)
	predicates        []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *AttemptEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AttemptEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AttemptEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *AttemptEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AttemptEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AttemptEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetItemID sets the "item_id" field.
func (m *AttemptEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AttemptEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AttemptEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetSelectedIndex sets the "selected_index" field.
func (m *AttemptEventMutation) SetSelectedIndex(i int) {
	m.selected_index = &i
	m.addselected_index = nil
}

// SelectedIndex returns the value of the "selected_index" field in the mutation.
func (m *AttemptEventMutation) SelectedIndex() (r int, exists bool) {
	v := m.selected_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedIndex returns the old "selected_index" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSelectedIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedIndex: %w", err)
	}
	return oldValue.SelectedIndex, nil
}

// AddSelectedIndex adds i to the "selected_index" field.
func (m *AttemptEventMutation) AddSelectedIndex(i int) {
	if m.addselected_index != nil {
		*m.addselected_index += i
	} else {
		m.addselected_index = &i
	}
}

// AddedSelectedIndex returns the value that was added to the "selected_index" field in this mutation.
func (m *AttemptEventMutation) AddedSelectedIndex() (r int, exists bool) {
	v := m.addselected_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSelectedIndex resets all changes to the "selected_index" field.
func (m *AttemptEventMutation) ResetSelectedIndex() {
	m.selected_index = nil
	m.addselected_index = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetTimeMs sets the "time_ms" field.
func (m *AttemptEventMutation) SetTimeMs(i int) {
	m.time_ms = &i
	m.addtime_ms = nil
}

// TimeMs returns the value of the "time_ms" field in the mutation.
func (m *AttemptEventMutation) TimeMs() (r int, exists bool) {
	v := m.time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeMs returns the old "time_ms" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeMs: %w", err)
	}
	return oldValue.TimeMs, nil
}

// AddTimeMs adds i to the "time_ms" field.
func (m *AttemptEventMutation) AddTimeMs(i int) {
	if m.addtime_ms != nil {
		*m.addtime_ms += i
	} else {
		m.addtime_ms = &i
	}
}

// AddedTimeMs returns the value that was added to the "time_ms" field in this mutation.
func (m *AttemptEventMutation) AddedTimeMs() (r int, exists bool) {
	v := m.addtime_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeMs resets all changes to the "time_ms" field.
func (m *AttemptEventMutation) ResetTimeMs() {
	m.time_ms = nil
	m.addtime_ms = nil
}

// SetQuality sets the "quality" field.
func (m *AttemptEventMutation) SetQuality(i int) {
	m.quality = &i
	m.addquality = nil
}

// Quality returns the value of the "quality" field in the mutation.
func (m *AttemptEventMutation) Quality() (r int, exists bool) {
	v := m.quality
	if v == nil {
		return
	}
	return *v, true
}

// OldQuality returns the old "quality" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldQuality(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuality: %w", err)
	}
	return oldValue.Quality, nil
}

// AddQuality adds i to the "quality" field.
func (m *AttemptEventMutation) AddQuality(i int) {
	if m.addquality != nil {
		*m.addquality += i
	} else {
		m.addquality = &i
	}
}

// AddedQuality returns the value that was added to the "quality" field in this mutation.
func (m *AttemptEventMutation) AddedQuality() (r int, exists bool) {
	v := m.addquality
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuality resets all changes to the "quality" field.
func (m *AttemptEventMutation) ResetQuality() {
	m.quality = nil
	m.addquality = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, attemptevent.FieldAttemptID)
	}
	if m.learner_id != nil {
		fields = append(fields, attemptevent.FieldLearnerID)
	}
	if m.item_id != nil {
		fields = append(fields, attemptevent.FieldItemID)
	}
	if m.selected_index != nil {
		fields = append(fields, attemptevent.FieldSelectedIndex)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.time_ms != nil {
		fields = append(fields, attemptevent.FieldTimeMs)
	}
	if m.quality != nil {
		fields = append(fields, attemptevent.FieldQuality)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldAttemptID:
		return m.AttemptID()
	case attemptevent.FieldLearnerID:
		return m.LearnerID()
	case attemptevent.FieldItemID:
		return m.ItemID()
	case attemptevent.FieldSelectedIndex:
		return m.SelectedIndex()
	case attemptevent.FieldCorrect:
		return m.Correct()
	case attemptevent.FieldTimeMs:
		return m.TimeMs()
	case attemptevent.FieldQuality:
		return m.Quality()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case attemptevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case attemptevent.FieldItemID:
		return m.OldItemID(ctx)
	case attemptevent.FieldSelectedIndex:
		return m.OldSelectedIndex(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case attemptevent.FieldTimeMs:
		return m.OldTimeMs(ctx)
	case attemptevent.FieldQuality:
		return m.OldQuality(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case attemptevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case attemptevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case attemptevent.FieldSelectedIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedIndex(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attemptevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeMs(v)
		return nil
	case attemptevent.FieldQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuality(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.addselected_index != nil {
		fields = append(fields, attemptevent.FieldSelectedIndex)
	}
	if m.addtime_ms != nil {
		fields = append(fields, attemptevent.FieldTimeMs)
	}
	if m.addquality != nil {
		fields = append(fields, attemptevent.FieldQuality)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldSelectedIndex:
		return m.AddedSelectedIndex()
	case attemptevent.FieldTimeMs:
		return m.AddedTimeMs()
	case attemptevent.FieldQuality:
		return m.AddedQuality()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldSelectedIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelectedIndex(v)
		return nil
	case attemptevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeMs(v)
		return nil
	case attemptevent.FieldQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuality(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case attemptevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case attemptevent.FieldItemID:
		m.ResetItemID()
		return nil
	case attemptevent.FieldSelectedIndex:
		m.ResetSelectedIndex()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attemptevent.FieldTimeMs:
		m.ResetTimeMs()
		return nil
	case attemptevent.FieldQuality:
		m.ResetQuality()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op               Op
	typ              string
	id               *int
	item_id          *string
	set_id           *string
	prompt           *string
	choices          *[]string
	appendchoices    []string
	correct_index    *int
	addcorrect_index *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Item, error)
	predicates       []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id int) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *ItemMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ItemMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ItemMutation) ResetItemID() {
	m.item_id = nil
}

// SetSetID sets the "set_id" field.
func (m *ItemMutation) SetSetID(s string) {
	m.set_id = &s
}

// SetID returns the value of the "set_id" field in the mutation.
func (m *ItemMutation) SetID() (r string, exists bool) {
	v := m.set_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSetID returns the old "set_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSetID: %w", err)
	}
	return oldValue.SetID, nil
}

// ResetSetID resets all changes to the "set_id" field.
func (m *ItemMutation) ResetSetID() {
	m.set_id = nil
}

// SetPrompt sets the "prompt" field.
func (m *ItemMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ItemMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ItemMutation) ResetPrompt() {
	m.prompt = nil
}

// SetChoices sets the "choices" field.
func (m *ItemMutation) SetChoices(s []string) {
	m.choices = &s
	m.appendchoices = nil
}

// Choices returns the value of the "choices" field in the mutation.
func (m *ItemMutation) Choices() (r []string, exists bool) {
	v := m.choices
	if v == nil {
		return
	}
	return *v, true
}

// OldChoices returns the old "choices" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldChoices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoices: %w", err)
	}
	return oldValue.Choices, nil
}

// AppendChoices adds s to the "choices" field.
func (m *ItemMutation) AppendChoices(s []string) {
	m.appendchoices = append(m.appendchoices, s...)
}

// AppendedChoices returns the list of values that were appended to the "choices" field in this mutation.
func (m *ItemMutation) AppendedChoices() ([]string, bool) {
	if len(m.appendchoices) == 0 {
		return nil, false
	}
	return m.appendchoices, true
}

// ClearChoices clears the value of the "choices" field.
func (m *ItemMutation) ClearChoices() {
	m.choices = nil
	m.appendchoices = nil
	m.clearedFields[item.FieldChoices] = struct{}{}
}

// ChoicesCleared returns if the "choices" field was cleared in this mutation.
func (m *ItemMutation) ChoicesCleared() bool {
	_, ok := m.clearedFields[item.FieldChoices]
	return ok
}

// ResetChoices resets all changes to the "choices" field.
func (m *ItemMutation) ResetChoices() {
	m.choices = nil
	m.appendchoices = nil
	delete(m.clearedFields, item.FieldChoices)
}

// SetCorrectIndex sets the "correct_index" field.
func (m *ItemMutation) SetCorrectIndex(i int) {
	m.correct_index = &i
	m.addcorrect_index = nil
}

// CorrectIndex returns the value of the "correct_index" field in the mutation.
func (m *ItemMutation) CorrectIndex() (r int, exists bool) {
	v := m.correct_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectIndex returns the old "correct_index" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCorrectIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectIndex: %w", err)
	}
	return oldValue.CorrectIndex, nil
}

// AddCorrectIndex adds i to the "correct_index" field.
func (m *ItemMutation) AddCorrectIndex(i int) {
	if m.addcorrect_index != nil {
		*m.addcorrect_index += i
	} else {
		m.addcorrect_index = &i
	}
}

// AddedCorrectIndex returns the value that was added to the "correct_index" field in this mutation.
func (m *ItemMutation) AddedCorrectIndex() (r int, exists bool) {
	v := m.addcorrect_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectIndex resets all changes to the "correct_index" field.
func (m *ItemMutation) ResetCorrectIndex() {
	m.correct_index = nil
	m.addcorrect_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.item_id != nil {
		fields = append(fields, item.FieldItemID)
	}
	if m.set_id != nil {
		fields = append(fields, item.FieldSetID)
	}
	if m.prompt != nil {
		fields = append(fields, item.FieldPrompt)
	}
	if m.choices != nil {
		fields = append(fields, item.FieldChoices)
	}
	if m.correct_index != nil {
		fields = append(fields, item.FieldCorrectIndex)
	}
	if m.created_at != nil {
		fields = append(fields, item.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldItemID:
		return m.ItemID()
	case item.FieldSetID:
		return m.SetID()
	case item.FieldPrompt:
		return m.Prompt()
	case item.FieldChoices:
		return m.Choices()
	case item.FieldCorrectIndex:
		return m.CorrectIndex()
	case item.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldItemID:
		return m.OldItemID(ctx)
	case item.FieldSetID:
		return m.OldSetID(ctx)
	case item.FieldPrompt:
		return m.OldPrompt(ctx)
	case item.FieldChoices:
		return m.OldChoices(ctx)
	case item.FieldCorrectIndex:
		return m.OldCorrectIndex(ctx)
	case item.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case item.FieldSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSetID(v)
		return nil
	case item.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case item.FieldChoices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoices(v)
		return nil
	case item.FieldCorrectIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectIndex(v)
		return nil
	case item.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	var fields []string
	if m.addcorrect_index != nil {
		fields = append(fields, item.FieldCorrectIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case item.FieldCorrectIndex:
		return m.AddedCorrectIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case item.FieldCorrectIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(item.FieldChoices) {
		fields = append(fields, item.FieldChoices)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	switch name {
	case item.FieldChoices:
		m.ClearChoices()
		return nil
	}
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldItemID:
		m.ResetItemID()
		return nil
	case item.FieldSetID:
		m.ResetSetID()
		return nil
	case item.FieldPrompt:
		m.ResetPrompt()
		return nil
	case item.FieldChoices:
		m.ResetChoices()
		return nil
	case item.FieldCorrectIndex:
		m.ResetCorrectIndex()
		return nil
	case item.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Item edge %s", name)
}

// LearnerMutation represents an operation that mutates the Learner nodes in the graph.
type LearnerMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner_id    *string
	display_name  *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Learner, error)
	predicates    []predicate.Learner
}

var _ ent.Mutation = (*LearnerMutation)(nil)

// learnerOption allows management of the mutation configuration using functional options.
type learnerOption func(*LearnerMutation)

// newLearnerMutation creates new mutation for the Learner entity.
func newLearnerMutation(c config, op Op, opts ...learnerOption) *LearnerMutation {
	m := &LearnerMutation{
		config:        c,
		op:            op,
		typ:           TypeLearner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerID sets the ID field of the mutation.
func withLearnerID(id int) learnerOption {
	return func(m *LearnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Learner
		)
		m.oldValue = func(ctx context.Context) (*Learner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Learner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearner sets the old Learner of the mutation.
func withLearner(node *Learner) learnerOption {
	return func(m *LearnerMutation) {
		m.oldValue = func(context.Context) (*Learner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Learner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *LearnerMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *LearnerMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *LearnerMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearnerMutation builder.
func (m *LearnerMutation) Where(ps ...predicate.Learner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Learner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Learner).
func (m *LearnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.learner_id != nil {
		fields = append(fields, learner.FieldLearnerID)
	}
	if m.display_name != nil {
		fields = append(fields, learner.FieldDisplayName)
	}
	if m.created_at != nil {
		fields = append(fields, learner.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldLearnerID:
		return m.LearnerID()
	case learner.FieldDisplayName:
		return m.DisplayName()
	case learner.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learner.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learner.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case learner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Learner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learner.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learner.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case learner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Learner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Learner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerMutation) ResetField(name string) error {
	switch name {
	case learner.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learner.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case learner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Learner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Learner edge %s", name)
}

// ScheduleMutation represents an operation that mutates the Schedule nodes in the graph.
type ScheduleMutation struct {
	config
	op               Op
	typ              string
	id               *int
	learner_id       *string
	item_id          *string
	ease_factor      *float64
	addease_factor   *float64
	interval_days    *int
	addinterval_days *int
	repetitions      *int
	addrepetitions   *int
	next_review_date *time.Time
	last_reviewed_at *time.Time
	last_quality     *int
	addlast_quality  *int
	last_attempt_id  *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Schedule, error)
	predicates       []predicate.Schedule
}

var _ ent.Mutation = (*ScheduleMutation)(nil)

// scheduleOption allows management of the mutation configuration using functional options.
type scheduleOption func(*ScheduleMutation)

// newScheduleMutation creates new mutation for the Schedule entity.
func newScheduleMutation(c config, op Op, opts ...scheduleOption) *ScheduleMutation {
	m := &ScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleID sets the ID field of the mutation.
func withScheduleID(id int) scheduleOption {
	return func(m *ScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *Schedule
		)
		m.oldValue = func(ctx context.Context) (*Schedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Schedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedule sets the old Schedule of the mutation.
func withSchedule(node *Schedule) scheduleOption {
	return func(m *ScheduleMutation) {
		m.oldValue = func(context.Context) (*Schedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Schedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *ScheduleMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ScheduleMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ScheduleMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetItemID sets the "item_id" field.
func (m *ScheduleMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ScheduleMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ScheduleMutation) ResetItemID() {
	m.item_id = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *ScheduleMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *ScheduleMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *ScheduleMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *ScheduleMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *ScheduleMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ScheduleMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ScheduleMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ScheduleMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ScheduleMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ScheduleMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *ScheduleMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *ScheduleMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *ScheduleMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *ScheduleMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *ScheduleMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetNextReviewDate sets the "next_review_date" field.
func (m *ScheduleMutation) SetNextReviewDate(t time.Time) {
	m.next_review_date = &t
}

// NextReviewDate returns the value of the "next_review_date" field in the mutation.
func (m *ScheduleMutation) NextReviewDate() (r time.Time, exists bool) {
	v := m.next_review_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewDate returns the old "next_review_date" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldNextReviewDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewDate: %w", err)
	}
	return oldValue.NextReviewDate, nil
}

// ResetNextReviewDate resets all changes to the "next_review_date" field.
func (m *ScheduleMutation) ResetNextReviewDate() {
	m.next_review_date = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *ScheduleMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *ScheduleMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLastReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *ScheduleMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[schedule.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *ScheduleMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *ScheduleMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, schedule.FieldLastReviewedAt)
}

// SetLastQuality sets the "last_quality" field.
func (m *ScheduleMutation) SetLastQuality(i int) {
	m.last_quality = &i
	m.addlast_quality = nil
}

// LastQuality returns the value of the "last_quality" field in the mutation.
func (m *ScheduleMutation) LastQuality() (r int, exists bool) {
	v := m.last_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldLastQuality returns the old "last_quality" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLastQuality(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastQuality: %w", err)
	}
	return oldValue.LastQuality, nil
}

// AddLastQuality adds i to the "last_quality" field.
func (m *ScheduleMutation) AddLastQuality(i int) {
	if m.addlast_quality != nil {
		*m.addlast_quality += i
	} else {
		m.addlast_quality = &i
	}
}

// AddedLastQuality returns the value that was added to the "last_quality" field in this mutation.
func (m *ScheduleMutation) AddedLastQuality() (r int, exists bool) {
	v := m.addlast_quality
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastQuality resets all changes to the "last_quality" field.
func (m *ScheduleMutation) ResetLastQuality() {
	m.last_quality = nil
	m.addlast_quality = nil
}

// SetLastAttemptID sets the "last_attempt_id" field.
func (m *ScheduleMutation) SetLastAttemptID(s string) {
	m.last_attempt_id = &s
}

// LastAttemptID returns the value of the "last_attempt_id" field in the mutation.
func (m *ScheduleMutation) LastAttemptID() (r string, exists bool) {
	v := m.last_attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptID returns the old "last_attempt_id" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLastAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptID: %w", err)
	}
	return oldValue.LastAttemptID, nil
}

// ResetLastAttemptID resets all changes to the "last_attempt_id" field.
func (m *ScheduleMutation) ResetLastAttemptID() {
	m.last_attempt_id = nil
}

// Where appends a list predicates to the ScheduleMutation builder.
func (m *ScheduleMutation) Where(ps ...predicate.Schedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Schedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Schedule).
func (m *ScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.learner_id != nil {
		fields = append(fields, schedule.FieldLearnerID)
	}
	if m.item_id != nil {
		fields = append(fields, schedule.FieldItemID)
	}
	if m.ease_factor != nil {
		fields = append(fields, schedule.FieldEaseFactor)
	}
	if m.interval_days != nil {
		fields = append(fields, schedule.FieldIntervalDays)
	}
	if m.repetitions != nil {
		fields = append(fields, schedule.FieldRepetitions)
	}
	if m.next_review_date != nil {
		fields = append(fields, schedule.FieldNextReviewDate)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, schedule.FieldLastReviewedAt)
	}
	if m.last_quality != nil {
		fields = append(fields, schedule.FieldLastQuality)
	}
	if m.last_attempt_id != nil {
		fields = append(fields, schedule.FieldLastAttemptID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldLearnerID:
		return m.LearnerID()
	case schedule.FieldItemID:
		return m.ItemID()
	case schedule.FieldEaseFactor:
		return m.EaseFactor()
	case schedule.FieldIntervalDays:
		return m.IntervalDays()
	case schedule.FieldRepetitions:
		return m.Repetitions()
	case schedule.FieldNextReviewDate:
		return m.NextReviewDate()
	case schedule.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case schedule.FieldLastQuality:
		return m.LastQuality()
	case schedule.FieldLastAttemptID:
		return m.LastAttemptID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedule.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case schedule.FieldItemID:
		return m.OldItemID(ctx)
	case schedule.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case schedule.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case schedule.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case schedule.FieldNextReviewDate:
		return m.OldNextReviewDate(ctx)
	case schedule.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case schedule.FieldLastQuality:
		return m.OldLastQuality(ctx)
	case schedule.FieldLastAttemptID:
		return m.OldLastAttemptID(ctx)
	}
	return nil, fmt.Errorf("unknown Schedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case schedule.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case schedule.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case schedule.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case schedule.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case schedule.FieldNextReviewDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewDate(v)
		return nil
	case schedule.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case schedule.FieldLastQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastQuality(v)
		return nil
	case schedule.FieldLastAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptID(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleMutation) AddedFields() []string {
	var fields []string
	if m.addease_factor != nil {
		fields = append(fields, schedule.FieldEaseFactor)
	}
	if m.addinterval_days != nil {
		fields = append(fields, schedule.FieldIntervalDays)
	}
	if m.addrepetitions != nil {
		fields = append(fields, schedule.FieldRepetitions)
	}
	if m.addlast_quality != nil {
		fields = append(fields, schedule.FieldLastQuality)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldEaseFactor:
		return m.AddedEaseFactor()
	case schedule.FieldIntervalDays:
		return m.AddedIntervalDays()
	case schedule.FieldRepetitions:
		return m.AddedRepetitions()
	case schedule.FieldLastQuality:
		return m.AddedLastQuality()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case schedule.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case schedule.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case schedule.FieldLastQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastQuality(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedule.FieldLastReviewedAt) {
		fields = append(fields, schedule.FieldLastReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleMutation) ClearField(name string) error {
	switch name {
	case schedule.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Schedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleMutation) ResetField(name string) error {
	switch name {
	case schedule.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case schedule.FieldItemID:
		m.ResetItemID()
		return nil
	case schedule.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case schedule.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case schedule.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case schedule.FieldNextReviewDate:
		m.ResetNextReviewDate()
		return nil
	case schedule.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case schedule.FieldLastQuality:
		m.ResetLastQuality()
		return nil
	case schedule.FieldLastAttemptID:
		m.ResetLastAttemptID()
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Schedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Schedule edge %s", name)
}

// SessionStateMutation represents an operation that mutates the SessionState nodes in the graph.
type SessionStateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner_id    *string
	set_id        *string
	data          *map[string]interface{}
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SessionState, error)
	predicates    []predicate.SessionState
}

var _ ent.Mutation = (*SessionStateMutation)(nil)

// sessionstateOption allows management of the mutation configuration using functional options.
type sessionstateOption func(*SessionStateMutation)

// newSessionStateMutation creates new mutation for the SessionState entity.
func newSessionStateMutation(c config, op Op, opts ...sessionstateOption) *SessionStateMutation {
	m := &SessionStateMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionStateID sets the ID field of the mutation.
func withSessionStateID(id int) sessionstateOption {
	return func(m *SessionStateMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionState
		)
		m.oldValue = func(ctx context.Context) (*SessionState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionState sets the old SessionState of the mutation.
func withSessionState(node *SessionState) sessionstateOption {
	return func(m *SessionStateMutation) {
		m.oldValue = func(context.Context) (*SessionState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *SessionStateMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *SessionStateMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the SessionState entity.
// If the SessionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionStateMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *SessionStateMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetSetID sets the "set_id" field.
func (m *SessionStateMutation) SetSetID(s string) {
	m.set_id = &s
}

// SetID returns the value of the "set_id" field in the mutation.
func (m *SessionStateMutation) SetID() (r string, exists bool) {
	v := m.set_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSetID returns the old "set_id" field's value of the SessionState entity.
// If the SessionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionStateMutation) OldSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSetID: %w", err)
	}
	return oldValue.SetID, nil
}

// ResetSetID resets all changes to the "set_id" field.
func (m *SessionStateMutation) ResetSetID() {
	m.set_id = nil
}

// SetData sets the "data" field.
func (m *SessionStateMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SessionStateMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the SessionState entity.
// If the SessionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionStateMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SessionStateMutation) ResetData() {
	m.data = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionState entity.
// If the SessionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SessionStateMutation builder.
func (m *SessionStateMutation) Where(ps ...predicate.SessionState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionState).
func (m *SessionStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.learner_id != nil {
		fields = append(fields, sessionstate.FieldLearnerID)
	}
	if m.set_id != nil {
		fields = append(fields, sessionstate.FieldSetID)
	}
	if m.data != nil {
		fields = append(fields, sessionstate.FieldData)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionstate.FieldLearnerID:
		return m.LearnerID()
	case sessionstate.FieldSetID:
		return m.SetID()
	case sessionstate.FieldData:
		return m.Data()
	case sessionstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionstate.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case sessionstate.FieldSetID:
		return m.OldSetID(ctx)
	case sessionstate.FieldData:
		return m.OldData(ctx)
	case sessionstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionstate.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case sessionstate.FieldSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSetID(v)
		return nil
	case sessionstate.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case sessionstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionStateMutation) ResetField(name string) error {
	switch name {
	case sessionstate.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case sessionstate.FieldSetID:
		m.ResetSetID()
		return nil
	case sessionstate.FieldData:
		m.ResetData()
		return nil
	case sessionstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionState edge %s", name)
}

// StreakMutation represents an operation that mutates the Streak nodes in the graph.
type StreakMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	learner_id         *string
	current_days       *int
	addcurrent_days    *int
	longest_days       *int
	addlongest_days    *int
	last_practice_date *time.Time
	total_learned      *int
	addtotal_learned   *int
	total_mastered     *int
	addtotal_mastered  *int
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Streak, error)
	predicates         []predicate.Streak
}

var _ ent.Mutation = (*StreakMutation)(nil)

// streakOption allows management of the mutation configuration using functional options.
type streakOption func(*StreakMutation)

// newStreakMutation creates new mutation for the Streak entity.
func newStreakMutation(c config, op Op, opts ...streakOption) *StreakMutation {
	m := &StreakMutation{
		config:        c,
		op:            op,
		typ:           TypeStreak,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStreakID sets the ID field of the mutation.
func withStreakID(id int) streakOption {
	return func(m *StreakMutation) {
		var (
			err   error
			once  sync.Once
			value *Streak
		)
		m.oldValue = func(ctx context.Context) (*Streak, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Streak.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStreak sets the old Streak of the mutation.
func withStreak(node *Streak) streakOption {
	return func(m *StreakMutation) {
		m.oldValue = func(context.Context) (*Streak, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StreakMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StreakMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StreakMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StreakMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Streak.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *StreakMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *StreakMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Streak entity.
// If the Streak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *StreakMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetCurrentDays sets the "current_days" field.
func (m *StreakMutation) SetCurrentDays(i int) {
	m.current_days = &i
	m.addcurrent_days = nil
}

// CurrentDays returns the value of the "current_days" field in the mutation.
func (m *StreakMutation) CurrentDays() (r int, exists bool) {
	v := m.current_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentDays returns the old "current_days" field's value of the Streak entity.
// If the Streak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakMutation) OldCurrentDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentDays: %w", err)
	}
	return oldValue.CurrentDays, nil
}

// AddCurrentDays adds i to the "current_days" field.
func (m *StreakMutation) AddCurrentDays(i int) {
	if m.addcurrent_days != nil {
		*m.addcurrent_days += i
	} else {
		m.addcurrent_days = &i
	}
}

// AddedCurrentDays returns the value that was added to the "current_days" field in this mutation.
func (m *StreakMutation) AddedCurrentDays() (r int, exists bool) {
	v := m.addcurrent_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentDays resets all changes to the "current_days" field.
func (m *StreakMutation) ResetCurrentDays() {
	m.current_days = nil
	m.addcurrent_days = nil
}

// SetLongestDays sets the "longest_days" field.
func (m *StreakMutation) SetLongestDays(i int) {
	m.longest_days = &i
	m.addlongest_days = nil
}

// LongestDays returns the value of the "longest_days" field in the mutation.
func (m *StreakMutation) LongestDays() (r int, exists bool) {
	v := m.longest_days
	if v == nil {
		return
	}
	return *v, true
}

// OldLongestDays returns the old "longest_days" field's value of the Streak entity.
// If the Streak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakMutation) OldLongestDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongestDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongestDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongestDays: %w", err)
	}
	return oldValue.LongestDays, nil
}

// AddLongestDays adds i to the "longest_days" field.
func (m *StreakMutation) AddLongestDays(i int) {
	if m.addlongest_days != nil {
		*m.addlongest_days += i
	} else {
		m.addlongest_days = &i
	}
}

// AddedLongestDays returns the value that was added to the "longest_days" field in this mutation.
func (m *StreakMutation) AddedLongestDays() (r int, exists bool) {
	v := m.addlongest_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongestDays resets all changes to the "longest_days" field.
func (m *StreakMutation) ResetLongestDays() {
	m.longest_days = nil
	m.addlongest_days = nil
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (m *StreakMutation) SetLastPracticeDate(t time.Time) {
	m.last_practice_date = &t
}

// LastPracticeDate returns the value of the "last_practice_date" field in the mutation.
func (m *StreakMutation) LastPracticeDate() (r time.Time, exists bool) {
	v := m.last_practice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticeDate returns the old "last_practice_date" field's value of the Streak entity.
// If the Streak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakMutation) OldLastPracticeDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticeDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticeDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticeDate: %w", err)
	}
	return oldValue.LastPracticeDate, nil
}

// ClearLastPracticeDate clears the value of the "last_practice_date" field.
func (m *StreakMutation) ClearLastPracticeDate() {
	m.last_practice_date = nil
	m.clearedFields[streak.FieldLastPracticeDate] = struct{}{}
}

// LastPracticeDateCleared returns if the "last_practice_date" field was cleared in this mutation.
func (m *StreakMutation) LastPracticeDateCleared() bool {
	_, ok := m.clearedFields[streak.FieldLastPracticeDate]
	return ok
}

// ResetLastPracticeDate resets all changes to the "last_practice_date" field.
func (m *StreakMutation) ResetLastPracticeDate() {
	m.last_practice_date = nil
	delete(m.clearedFields, streak.FieldLastPracticeDate)
}

// SetTotalLearned sets the "total_learned" field.
func (m *StreakMutation) SetTotalLearned(i int) {
	m.total_learned = &i
	m.addtotal_learned = nil
}

// TotalLearned returns the value of the "total_learned" field in the mutation.
func (m *StreakMutation) TotalLearned() (r int, exists bool) {
	v := m.total_learned
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLearned returns the old "total_learned" field's value of the Streak entity.
// If the Streak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakMutation) OldTotalLearned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLearned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLearned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLearned: %w", err)
	}
	return oldValue.TotalLearned, nil
}

// AddTotalLearned adds i to the "total_learned" field.
func (m *StreakMutation) AddTotalLearned(i int) {
	if m.addtotal_learned != nil {
		*m.addtotal_learned += i
	} else {
		m.addtotal_learned = &i
	}
}

// AddedTotalLearned returns the value that was added to the "total_learned" field in this mutation.
func (m *StreakMutation) AddedTotalLearned() (r int, exists bool) {
	v := m.addtotal_learned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLearned resets all changes to the "total_learned" field.
func (m *StreakMutation) ResetTotalLearned() {
	m.total_learned = nil
	m.addtotal_learned = nil
}

// SetTotalMastered sets the "total_mastered" field.
func (m *StreakMutation) SetTotalMastered(i int) {
	m.total_mastered = &i
	m.addtotal_mastered = nil
}

// TotalMastered returns the value of the "total_mastered" field in the mutation.
func (m *StreakMutation) TotalMastered() (r int, exists bool) {
	v := m.total_mastered
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMastered returns the old "total_mastered" field's value of the Streak entity.
// If the Streak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakMutation) OldTotalMastered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMastered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMastered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMastered: %w", err)
	}
	return oldValue.TotalMastered, nil
}

// AddTotalMastered adds i to the "total_mastered" field.
func (m *StreakMutation) AddTotalMastered(i int) {
	if m.addtotal_mastered != nil {
		*m.addtotal_mastered += i
	} else {
		m.addtotal_mastered = &i
	}
}

// AddedTotalMastered returns the value that was added to the "total_mastered" field in this mutation.
func (m *StreakMutation) AddedTotalMastered() (r int, exists bool) {
	v := m.addtotal_mastered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMastered resets all changes to the "total_mastered" field.
func (m *StreakMutation) ResetTotalMastered() {
	m.total_mastered = nil
	m.addtotal_mastered = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StreakMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StreakMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Streak entity.
// If the Streak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StreakMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StreakMutation builder.
func (m *StreakMutation) Where(ps ...predicate.Streak) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StreakMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StreakMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Streak, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StreakMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StreakMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Streak).
func (m *StreakMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StreakMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.learner_id != nil {
		fields = append(fields, streak.FieldLearnerID)
	}
	if m.current_days != nil {
		fields = append(fields, streak.FieldCurrentDays)
	}
	if m.longest_days != nil {
		fields = append(fields, streak.FieldLongestDays)
	}
	if m.last_practice_date != nil {
		fields = append(fields, streak.FieldLastPracticeDate)
	}
	if m.total_learned != nil {
		fields = append(fields, streak.FieldTotalLearned)
	}
	if m.total_mastered != nil {
		fields = append(fields, streak.FieldTotalMastered)
	}
	if m.updated_at != nil {
		fields = append(fields, streak.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StreakMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case streak.FieldLearnerID:
		return m.LearnerID()
	case streak.FieldCurrentDays:
		return m.CurrentDays()
	case streak.FieldLongestDays:
		return m.LongestDays()
	case streak.FieldLastPracticeDate:
		return m.LastPracticeDate()
	case streak.FieldTotalLearned:
		return m.TotalLearned()
	case streak.FieldTotalMastered:
		return m.TotalMastered()
	case streak.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StreakMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case streak.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case streak.FieldCurrentDays:
		return m.OldCurrentDays(ctx)
	case streak.FieldLongestDays:
		return m.OldLongestDays(ctx)
	case streak.FieldLastPracticeDate:
		return m.OldLastPracticeDate(ctx)
	case streak.FieldTotalLearned:
		return m.OldTotalLearned(ctx)
	case streak.FieldTotalMastered:
		return m.OldTotalMastered(ctx)
	case streak.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Streak field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreakMutation) SetField(name string, value ent.Value) error {
	switch name {
	case streak.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case streak.FieldCurrentDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentDays(v)
		return nil
	case streak.FieldLongestDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongestDays(v)
		return nil
	case streak.FieldLastPracticeDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticeDate(v)
		return nil
	case streak.FieldTotalLearned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLearned(v)
		return nil
	case streak.FieldTotalMastered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMastered(v)
		return nil
	case streak.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Streak field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StreakMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_days != nil {
		fields = append(fields, streak.FieldCurrentDays)
	}
	if m.addlongest_days != nil {
		fields = append(fields, streak.FieldLongestDays)
	}
	if m.addtotal_learned != nil {
		fields = append(fields, streak.FieldTotalLearned)
	}
	if m.addtotal_mastered != nil {
		fields = append(fields, streak.FieldTotalMastered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StreakMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case streak.FieldCurrentDays:
		return m.AddedCurrentDays()
	case streak.FieldLongestDays:
		return m.AddedLongestDays()
	case streak.FieldTotalLearned:
		return m.AddedTotalLearned()
	case streak.FieldTotalMastered:
		return m.AddedTotalMastered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreakMutation) AddField(name string, value ent.Value) error {
	switch name {
	case streak.FieldCurrentDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentDays(v)
		return nil
	case streak.FieldLongestDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongestDays(v)
		return nil
	case streak.FieldTotalLearned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLearned(v)
		return nil
	case streak.FieldTotalMastered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMastered(v)
		return nil
	}
	return fmt.Errorf("unknown Streak numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StreakMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(streak.FieldLastPracticeDate) {
		fields = append(fields, streak.FieldLastPracticeDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StreakMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StreakMutation) ClearField(name string) error {
	switch name {
	case streak.FieldLastPracticeDate:
		m.ClearLastPracticeDate()
		return nil
	}
	return fmt.Errorf("unknown Streak nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StreakMutation) ResetField(name string) error {
	switch name {
	case streak.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case streak.FieldCurrentDays:
		m.ResetCurrentDays()
		return nil
	case streak.FieldLongestDays:
		m.ResetLongestDays()
		return nil
	case streak.FieldLastPracticeDate:
		m.ResetLastPracticeDate()
		return nil
	case streak.FieldTotalLearned:
		m.ResetTotalLearned()
		return nil
	case streak.FieldTotalMastered:
		m.ResetTotalMastered()
		return nil
	case streak.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Streak field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StreakMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StreakMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StreakMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StreakMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StreakMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StreakMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StreakMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Streak unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StreakMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Streak edge %s", name)
}

// StudyPlanMutation represents an operation that mutates the StudyPlan nodes in the graph.
type StudyPlanMutation struct {
	config
	op            Op
	typ           string
	id            *int
	plan_id       *string
	name          *string
	set_ids       *[]string
	appendset_ids []string
	target_date   *time.Time
	strategy      *string
	created_by    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StudyPlan, error)
	predicates    []predicate.StudyPlan
}

var _ ent.Mutation = (*StudyPlanMutation)(nil)

// studyplanOption allows management of the mutation configuration using functional options.
type studyplanOption func(*StudyPlanMutation)

// newStudyPlanMutation creates new mutation for the StudyPlan entity.
func newStudyPlanMutation(c config, op Op, opts ...studyplanOption) *StudyPlanMutation {
	m := &StudyPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyPlanID sets the ID field of the mutation.
func withStudyPlanID(id int) studyplanOption {
	return func(m *StudyPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyPlan
		)
		m.oldValue = func(ctx context.Context) (*StudyPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyPlan sets the old StudyPlan of the mutation.
func withStudyPlan(node *StudyPlan) studyplanOption {
	return func(m *StudyPlanMutation) {
		m.oldValue = func(context.Context) (*StudyPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyPlanMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyPlanMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *StudyPlanMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *StudyPlanMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *StudyPlanMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetName sets the "name" field.
func (m *StudyPlanMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StudyPlanMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StudyPlanMutation) ResetName() {
	m.name = nil
}

// SetSetIds sets the "set_ids" field.
func (m *StudyPlanMutation) SetSetIds(s []string) {
	m.set_ids = &s
	m.appendset_ids = nil
}

// SetIds returns the value of the "set_ids" field in the mutation.
func (m *StudyPlanMutation) SetIds() (r []string, exists bool) {
	v := m.set_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSetIds returns the old "set_ids" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldSetIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSetIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSetIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSetIds: %w", err)
	}
	return oldValue.SetIds, nil
}

// AppendSetIds adds s to the "set_ids" field.
func (m *StudyPlanMutation) AppendSetIds(s []string) {
	m.appendset_ids = append(m.appendset_ids, s...)
}

// AppendedSetIds returns the list of values that were appended to the "set_ids" field in this mutation.
func (m *StudyPlanMutation) AppendedSetIds() ([]string, bool) {
	if len(m.appendset_ids) == 0 {
		return nil, false
	}
	return m.appendset_ids, true
}

// ResetSetIds resets all changes to the "set_ids" field.
func (m *StudyPlanMutation) ResetSetIds() {
	m.set_ids = nil
	m.appendset_ids = nil
}

// SetTargetDate sets the "target_date" field.
func (m *StudyPlanMutation) SetTargetDate(t time.Time) {
	m.target_date = &t
}

// TargetDate returns the value of the "target_date" field in the mutation.
func (m *StudyPlanMutation) TargetDate() (r time.Time, exists bool) {
	v := m.target_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDate returns the old "target_date" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldTargetDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDate: %w", err)
	}
	return oldValue.TargetDate, nil
}

// ResetTargetDate resets all changes to the "target_date" field.
func (m *StudyPlanMutation) ResetTargetDate() {
	m.target_date = nil
}

// SetStrategy sets the "strategy" field.
func (m *StudyPlanMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *StudyPlanMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *StudyPlanMutation) ResetStrategy() {
	m.strategy = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *StudyPlanMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *StudyPlanMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *StudyPlanMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StudyPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudyPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudyPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StudyPlanMutation builder.
func (m *StudyPlanMutation) Where(ps ...predicate.StudyPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyPlan).
func (m *StudyPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyPlanMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.plan_id != nil {
		fields = append(fields, studyplan.FieldPlanID)
	}
	if m.name != nil {
		fields = append(fields, studyplan.FieldName)
	}
	if m.set_ids != nil {
		fields = append(fields, studyplan.FieldSetIds)
	}
	if m.target_date != nil {
		fields = append(fields, studyplan.FieldTargetDate)
	}
	if m.strategy != nil {
		fields = append(fields, studyplan.FieldStrategy)
	}
	if m.created_by != nil {
		fields = append(fields, studyplan.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, studyplan.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyplan.FieldPlanID:
		return m.PlanID()
	case studyplan.FieldName:
		return m.Name()
	case studyplan.FieldSetIds:
		return m.SetIds()
	case studyplan.FieldTargetDate:
		return m.TargetDate()
	case studyplan.FieldStrategy:
		return m.Strategy()
	case studyplan.FieldCreatedBy:
		return m.CreatedBy()
	case studyplan.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyplan.FieldPlanID:
		return m.OldPlanID(ctx)
	case studyplan.FieldName:
		return m.OldName(ctx)
	case studyplan.FieldSetIds:
		return m.OldSetIds(ctx)
	case studyplan.FieldTargetDate:
		return m.OldTargetDate(ctx)
	case studyplan.FieldStrategy:
		return m.OldStrategy(ctx)
	case studyplan.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case studyplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudyPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyplan.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case studyplan.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case studyplan.FieldSetIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSetIds(v)
		return nil
	case studyplan.FieldTargetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDate(v)
		return nil
	case studyplan.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case studyplan.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case studyplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudyPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyPlanMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyPlanMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StudyPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyPlanMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyPlanMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudyPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyPlanMutation) ResetField(name string) error {
	switch name {
	case studyplan.FieldPlanID:
		m.ResetPlanID()
		return nil
	case studyplan.FieldName:
		m.ResetName()
		return nil
	case studyplan.FieldSetIds:
		m.ResetSetIds()
		return nil
	case studyplan.FieldTargetDate:
		m.ResetTargetDate()
		return nil
	case studyplan.FieldStrategy:
		m.ResetStrategy()
		return nil
	case studyplan.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case studyplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudyPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudyPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudyPlan edge %s", name)
}
