package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement is a threshold award. Created once when the threshold is first
// crossed, immutable afterward. The unique (learner, type) index is the
// authoritative duplicate guard.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("achievement_type").
			NotEmpty().
			Immutable(),
		field.Time("awarded_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "achievement_type").Unique(),
	}
}
