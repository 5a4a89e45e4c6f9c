package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answer event. Append-only; never mutated.
// Used for analytics and achievement counting, not for scheduling state.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Idempotency key for the attempt (UUID)"),
		field.String("learner_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty(),
		field.Int("selected_index").
			NonNegative().
			Comment("Answer choice the learner picked"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer; 0 when no timing was captured"),
		field.Int("quality").
			Comment("Derived quality rating in [1,5]"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("item_id"),
		index.Fields("correct"),
	}
}
