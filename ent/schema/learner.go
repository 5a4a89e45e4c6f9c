package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Learner is a platform user whose review schedules the engine manages.
// The surrounding platform owns profile data; only the identity and a
// display name live here.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("External learner identity from the platform"),
		field.String("display_name").
			Default("").
			Comment("Optional display name for CLI output"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
