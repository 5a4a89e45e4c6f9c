package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Schedule holds the spaced-repetition state for one (learner, item) pair.
// Mutated exclusively by the review scheduler after each attempt.
type Schedule struct {
	ent.Schema
}

func (Schedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("item_id").
			NotEmpty().
			Immutable(),
		field.Float("ease_factor").
			Comment("Interval growth multiplier, floored at 1.3"),
		field.Int("interval_days").
			NonNegative().
			Comment("Days until the next review once due"),
		field.Int("repetitions").
			NonNegative().
			Comment("Consecutive successful reviews since the last lapse"),
		field.Time("next_review_date").
			Comment("When the item is next due"),
		field.Time("last_reviewed_at").
			Optional().
			Nillable().
			Comment("Audit field, not used in computation"),
		field.Int("last_quality").
			Default(0).
			Comment("Quality rating of the most recent review (audit)"),
		field.String("last_attempt_id").
			Default("").
			Comment("Idempotency key of the attempt that produced this state"),
	}
}

func (Schedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "item_id").Unique(),
		index.Fields("learner_id", "next_review_date"),
	}
}
