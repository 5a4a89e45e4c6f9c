package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is a single learnable question. The engine only needs the correct
// answer index and set membership; question content is carried for the CLI.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("External item identity from the platform"),
		field.String("set_id").
			NotEmpty().
			Comment("Item set (deck) this item belongs to"),
		field.String("prompt").
			Default("").
			Comment("Question text shown to the learner"),
		field.JSON("choices", []string{}).
			Optional().
			Comment("Answer choices in display order"),
		field.Int("correct_index").
			NonNegative().
			Comment("Index of the correct answer in choices"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("set_id"),
	}
}
