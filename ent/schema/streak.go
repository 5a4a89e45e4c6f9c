package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Streak tracks a learner's daily-practice streak and cumulative mastery
// totals. One row per learner, updated at most once per calendar day.
type Streak struct {
	ent.Schema
}

func (Streak) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.Int("current_days").
			NonNegative().
			Default(0),
		field.Int("longest_days").
			NonNegative().
			Default(0),
		field.Time("last_practice_date").
			Optional().
			Nillable().
			Comment("Calendar day of the most recent counted practice"),
		field.Int("total_learned").
			NonNegative().
			Default(0).
			Comment("Schedules classified learning or mastered, recomputed on update"),
		field.Int("total_mastered").
			NonNegative().
			Default(0).
			Comment("Schedules classified mastered, recomputed on update"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
