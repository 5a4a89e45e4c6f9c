// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// Schedule is the predicate function for schedule builders.
type Schedule func(*sql.Selector)

// SessionState is the predicate function for sessionstate builders.
type SessionState func(*sql.Selector)

// Streak is the predicate function for streak builders.
type Streak func(*sql.Selector)

// StudyPlan is the predicate function for studyplan builders.
type StudyPlan func(*sql.Selector)
