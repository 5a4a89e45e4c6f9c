package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionState persists an in-progress practice session so a learner can
// resume after interruption. One row per (learner, set); saving is an upsert,
// never an insert of a second session.
type SessionState struct {
	ent.Schema
}

func (SessionState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("set_id").
			NotEmpty().
			Immutable(),
		field.JSON("data", map[string]any{}).
			Comment("Session progress as JSON, validated on load"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SessionState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "set_id").Unique(),
	}
}
