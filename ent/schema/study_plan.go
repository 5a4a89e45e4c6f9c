package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StudyPlan is a forecast template: an item-set selection plus a target date
// and distribution strategy. Owned by its creator (a teacher), referenced by
// assignments, never owned by learners.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("name").
			Default(""),
		field.JSON("set_ids", []string{}).
			Comment("Item sets the plan distributes"),
		field.Time("target_date").
			Comment("Deadline the backlog should be mastered by"),
		field.String("strategy").
			Default("balanced").
			Comment("balanced or sequential"),
		field.String("created_by").
			Default("").
			Comment("Creator identity from the platform"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
