// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "achievement_type", Type: field.TypeString},
		{Name: "awarded_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_learner_id_achievement_type",
				Unique:  true,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "selected_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
		{Name: "quality", Type: field.TypeInt},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[7]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "set_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Default: ""},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_set_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[2]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
	}
	// SchedulesColumns holds the columns for the "schedules" table.
	SchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "repetitions", Type: field.TypeInt},
		{Name: "next_review_date", Type: field.TypeTime},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_quality", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt_id", Type: field.TypeString, Default: ""},
	}
	// SchedulesTable holds the schema information for the "schedules" table.
	SchedulesTable = &schema.Table{
		Name:       "schedules",
		Columns:    SchedulesColumns,
		PrimaryKey: []*schema.Column{SchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedule_learner_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{SchedulesColumns[1], SchedulesColumns[2]},
			},
			{
				Name:    "schedule_learner_id_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[1], SchedulesColumns[6]},
			},
		},
	}
	// SessionStatesColumns holds the columns for the "session_states" table.
	SessionStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "set_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionStatesTable holds the schema information for the "session_states" table.
	SessionStatesTable = &schema.Table{
		Name:       "session_states",
		Columns:    SessionStatesColumns,
		PrimaryKey: []*schema.Column{SessionStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionstate_learner_id_set_id",
				Unique:  true,
				Columns: []*schema.Column{SessionStatesColumns[1], SessionStatesColumns[2]},
			},
		},
	}
	// StreaksColumns holds the columns for the "streaks" table.
	StreaksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "current_days", Type: field.TypeInt, Default: 0},
		{Name: "longest_days", Type: field.TypeInt, Default: 0},
		{Name: "last_practice_date", Type: field.TypeTime, Nullable: true},
		{Name: "total_learned", Type: field.TypeInt, Default: 0},
		{Name: "total_mastered", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StreaksTable holds the schema information for the "streaks" table.
	StreaksTable = &schema.Table{
		Name:       "streaks",
		Columns:    StreaksColumns,
		PrimaryKey: []*schema.Column{StreaksColumns[0]},
	}
	// StudyPlansColumns holds the columns for the "study_plans" table.
	StudyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "set_ids", Type: field.TypeJSON},
		{Name: "target_date", Type: field.TypeTime},
		{Name: "strategy", Type: field.TypeString, Default: "balanced"},
		{Name: "created_by", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudyPlansTable holds the schema information for the "study_plans" table.
	StudyPlansTable = &schema.Table{
		Name:       "study_plans",
		Columns:    StudyPlansColumns,
		PrimaryKey: []*schema.Column{StudyPlansColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		AttemptEventsTable,
		ItemsTable,
		LearnersTable,
		SchedulesTable,
		SessionStatesTable,
		StreaksTable,
		StudyPlansTable,
	}
)

func init() {
}
