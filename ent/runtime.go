// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lexora/srs/ent/achievement"
	"github.com/lexora/srs/ent/attemptevent"
	"github.com/lexora/srs/ent/item"
	"github.com/lexora/srs/ent/learner"
	"github.com/lexora/srs/ent/schedule"
	"github.com/lexora/srs/ent/schema"
	"github.com/lexora/srs/ent/sessionstate"
	"github.com/lexora/srs/ent/streak"
	"github.com/lexora/srs/ent/studyplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescLearnerID is the schema descriptor for learner_id field.
	achievementDescLearnerID := achievementFields[0].Descriptor()
	// achievement.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	achievement.LearnerIDValidator = achievementDescLearnerID.Validators[0].(func(string) error)
	// achievementDescAchievementType is the schema descriptor for achievement_type field.
	achievementDescAchievementType := achievementFields[1].Descriptor()
	// achievement.AchievementTypeValidator is a validator for the "achievement_type" field. It is called by the builders before save.
	achievement.AchievementTypeValidator = achievementDescAchievementType.Validators[0].(func(string) error)
	// achievementDescAwardedAt is the schema descriptor for awarded_at field.
	achievementDescAwardedAt := achievementFields[2].Descriptor()
	// achievement.DefaultAwardedAt holds the default value on creation for the awarded_at field.
	achievement.DefaultAwardedAt = achievementDescAwardedAt.Default.(func() time.Time)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[1].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[2].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescSelectedIndex is the schema descriptor for selected_index field.
	attempteventDescSelectedIndex := attempteventFields[3].Descriptor()
	// attemptevent.SelectedIndexValidator is a validator for the "selected_index" field. It is called by the builders before save.
	attemptevent.SelectedIndexValidator = attempteventDescSelectedIndex.Validators[0].(func(int) error)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[5].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescItemID is the schema descriptor for item_id field.
	itemDescItemID := itemFields[0].Descriptor()
	// item.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	item.ItemIDValidator = itemDescItemID.Validators[0].(func(string) error)
	// itemDescSetID is the schema descriptor for set_id field.
	itemDescSetID := itemFields[1].Descriptor()
	// item.SetIDValidator is a validator for the "set_id" field. It is called by the builders before save.
	item.SetIDValidator = itemDescSetID.Validators[0].(func(string) error)
	// itemDescPrompt is the schema descriptor for prompt field.
	itemDescPrompt := itemFields[2].Descriptor()
	// item.DefaultPrompt holds the default value on creation for the prompt field.
	item.DefaultPrompt = itemDescPrompt.Default.(string)
	// itemDescCorrectIndex is the schema descriptor for correct_index field.
	itemDescCorrectIndex := itemFields[4].Descriptor()
	// item.CorrectIndexValidator is a validator for the "correct_index" field. It is called by the builders before save.
	item.CorrectIndexValidator = itemDescCorrectIndex.Validators[0].(func(int) error)
	// itemDescCreatedAt is the schema descriptor for created_at field.
	itemDescCreatedAt := itemFields[5].Descriptor()
	// item.DefaultCreatedAt holds the default value on creation for the created_at field.
	item.DefaultCreatedAt = itemDescCreatedAt.Default.(func() time.Time)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescLearnerID is the schema descriptor for learner_id field.
	learnerDescLearnerID := learnerFields[0].Descriptor()
	// learner.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learner.LearnerIDValidator = learnerDescLearnerID.Validators[0].(func(string) error)
	// learnerDescDisplayName is the schema descriptor for display_name field.
	learnerDescDisplayName := learnerFields[1].Descriptor()
	// learner.DefaultDisplayName holds the default value on creation for the display_name field.
	learner.DefaultDisplayName = learnerDescDisplayName.Default.(string)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[2].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
	scheduleFields := schema.Schedule{}.Fields()
	_ = scheduleFields
	// scheduleDescLearnerID is the schema descriptor for learner_id field.
	scheduleDescLearnerID := scheduleFields[0].Descriptor()
	// schedule.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	schedule.LearnerIDValidator = scheduleDescLearnerID.Validators[0].(func(string) error)
	// scheduleDescItemID is the schema descriptor for item_id field.
	scheduleDescItemID := scheduleFields[1].Descriptor()
	// schedule.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	schedule.ItemIDValidator = scheduleDescItemID.Validators[0].(func(string) error)
	// scheduleDescIntervalDays is the schema descriptor for interval_days field.
	scheduleDescIntervalDays := scheduleFields[3].Descriptor()
	// schedule.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	schedule.IntervalDaysValidator = scheduleDescIntervalDays.Validators[0].(func(int) error)
	// scheduleDescRepetitions is the schema descriptor for repetitions field.
	scheduleDescRepetitions := scheduleFields[4].Descriptor()
	// schedule.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	schedule.RepetitionsValidator = scheduleDescRepetitions.Validators[0].(func(int) error)
	// scheduleDescLastQuality is the schema descriptor for last_quality field.
	scheduleDescLastQuality := scheduleFields[7].Descriptor()
	// schedule.DefaultLastQuality holds the default value on creation for the last_quality field.
	schedule.DefaultLastQuality = scheduleDescLastQuality.Default.(int)
	// scheduleDescLastAttemptID is the schema descriptor for last_attempt_id field.
	scheduleDescLastAttemptID := scheduleFields[8].Descriptor()
	// schedule.DefaultLastAttemptID holds the default value on creation for the last_attempt_id field.
	schedule.DefaultLastAttemptID = scheduleDescLastAttemptID.Default.(string)
	sessionstateFields := schema.SessionState{}.Fields()
	_ = sessionstateFields
	// sessionstateDescLearnerID is the schema descriptor for learner_id field.
	sessionstateDescLearnerID := sessionstateFields[0].Descriptor()
	// sessionstate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionstate.LearnerIDValidator = sessionstateDescLearnerID.Validators[0].(func(string) error)
	// sessionstateDescSetID is the schema descriptor for set_id field.
	sessionstateDescSetID := sessionstateFields[1].Descriptor()
	// sessionstate.SetIDValidator is a validator for the "set_id" field. It is called by the builders before save.
	sessionstate.SetIDValidator = sessionstateDescSetID.Validators[0].(func(string) error)
	// sessionstateDescUpdatedAt is the schema descriptor for updated_at field.
	sessionstateDescUpdatedAt := sessionstateFields[3].Descriptor()
	// sessionstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionstate.DefaultUpdatedAt = sessionstateDescUpdatedAt.Default.(func() time.Time)
	// sessionstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionstate.UpdateDefaultUpdatedAt = sessionstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	streakFields := schema.Streak{}.Fields()
	_ = streakFields
	// streakDescLearnerID is the schema descriptor for learner_id field.
	streakDescLearnerID := streakFields[0].Descriptor()
	// streak.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	streak.LearnerIDValidator = streakDescLearnerID.Validators[0].(func(string) error)
	// streakDescCurrentDays is the schema descriptor for current_days field.
	streakDescCurrentDays := streakFields[1].Descriptor()
	// streak.DefaultCurrentDays holds the default value on creation for the current_days field.
	streak.DefaultCurrentDays = streakDescCurrentDays.Default.(int)
	// streak.CurrentDaysValidator is a validator for the "current_days" field. It is called by the builders before save.
	streak.CurrentDaysValidator = streakDescCurrentDays.Validators[0].(func(int) error)
	// streakDescLongestDays is the schema descriptor for longest_days field.
	streakDescLongestDays := streakFields[2].Descriptor()
	// streak.DefaultLongestDays holds the default value on creation for the longest_days field.
	streak.DefaultLongestDays = streakDescLongestDays.Default.(int)
	// streak.LongestDaysValidator is a validator for the "longest_days" field. It is called by the builders before save.
	streak.LongestDaysValidator = streakDescLongestDays.Validators[0].(func(int) error)
	// streakDescTotalLearned is the schema descriptor for total_learned field.
	streakDescTotalLearned := streakFields[4].Descriptor()
	// streak.DefaultTotalLearned holds the default value on creation for the total_learned field.
	streak.DefaultTotalLearned = streakDescTotalLearned.Default.(int)
	// streak.TotalLearnedValidator is a validator for the "total_learned" field. It is called by the builders before save.
	streak.TotalLearnedValidator = streakDescTotalLearned.Validators[0].(func(int) error)
	// streakDescTotalMastered is the schema descriptor for total_mastered field.
	streakDescTotalMastered := streakFields[5].Descriptor()
	// streak.DefaultTotalMastered holds the default value on creation for the total_mastered field.
	streak.DefaultTotalMastered = streakDescTotalMastered.Default.(int)
	// streak.TotalMasteredValidator is a validator for the "total_mastered" field. It is called by the builders before save.
	streak.TotalMasteredValidator = streakDescTotalMastered.Validators[0].(func(int) error)
	// streakDescUpdatedAt is the schema descriptor for updated_at field.
	streakDescUpdatedAt := streakFields[6].Descriptor()
	// streak.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	streak.DefaultUpdatedAt = streakDescUpdatedAt.Default.(func() time.Time)
	// streak.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	streak.UpdateDefaultUpdatedAt = streakDescUpdatedAt.UpdateDefault.(func() time.Time)
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescPlanID is the schema descriptor for plan_id field.
	studyplanDescPlanID := studyplanFields[0].Descriptor()
	// studyplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	studyplan.PlanIDValidator = studyplanDescPlanID.Validators[0].(func(string) error)
	// studyplanDescName is the schema descriptor for name field.
	studyplanDescName := studyplanFields[1].Descriptor()
	// studyplan.DefaultName holds the default value on creation for the name field.
	studyplan.DefaultName = studyplanDescName.Default.(string)
	// studyplanDescStrategy is the schema descriptor for strategy field.
	studyplanDescStrategy := studyplanFields[4].Descriptor()
	// studyplan.DefaultStrategy holds the default value on creation for the strategy field.
	studyplan.DefaultStrategy = studyplanDescStrategy.Default.(string)
	// studyplanDescCreatedBy is the schema descriptor for created_by field.
	studyplanDescCreatedBy := studyplanFields[5].Descriptor()
	// studyplan.DefaultCreatedBy holds the default value on creation for the created_by field.
	studyplan.DefaultCreatedBy = studyplanDescCreatedBy.Default.(string)
	// studyplanDescCreatedAt is the schema descriptor for created_at field.
	studyplanDescCreatedAt := studyplanFields[6].Descriptor()
	// studyplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyplan.DefaultCreatedAt = studyplanDescCreatedAt.Default.(func() time.Time)
}
