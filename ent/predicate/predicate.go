// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// FeedbackRecord is the predicate function for feedbackrecord builders.
type FeedbackRecord func(*sql.Selector)

// KnowledgeUnit is the predicate function for knowledgeunit builders.
type KnowledgeUnit func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningPlan is the predicate function for learningplan builders.
type LearningPlan func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)
