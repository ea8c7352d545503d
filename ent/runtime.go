// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/recall/ent/document"
	"github.com/abhisek/recall/ent/feedbackrecord"
	"github.com/abhisek/recall/ent/knowledgeunit"
	"github.com/abhisek/recall/ent/learningplan"
	"github.com/abhisek/recall/ent/llmrequestevent"
	"github.com/abhisek/recall/ent/masteryevent"
	"github.com/abhisek/recall/ent/masteryrecord"
	"github.com/abhisek/recall/ent/question"
	"github.com/abhisek/recall/ent/schema"
	"github.com/abhisek/recall/ent/sessionevent"
	"github.com/abhisek/recall/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[1].Descriptor()
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = documentDescTitle.Validators[0].(func(string) error)
	// documentDescContent is the schema descriptor for content field.
	documentDescContent := documentFields[2].Descriptor()
	// document.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	document.ContentValidator = documentDescContent.Validators[0].(func(string) error)
	// documentDescSource is the schema descriptor for source field.
	documentDescSource := documentFields[3].Descriptor()
	// document.DefaultSource holds the default value on creation for the source field.
	document.DefaultSource = documentDescSource.Default.(string)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[4].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.IDValidator is a validator for the "id" field. It is called by the builders before save.
	document.IDValidator = documentDescID.Validators[0].(func(string) error)
	feedbackrecordFields := schema.FeedbackRecord{}.Fields()
	_ = feedbackrecordFields
	// feedbackrecordDescSessionID is the schema descriptor for session_id field.
	feedbackrecordDescSessionID := feedbackrecordFields[0].Descriptor()
	// feedbackrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	feedbackrecord.SessionIDValidator = feedbackrecordDescSessionID.Validators[0].(func(string) error)
	// feedbackrecordDescQuestionID is the schema descriptor for question_id field.
	feedbackrecordDescQuestionID := feedbackrecordFields[1].Descriptor()
	// feedbackrecord.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	feedbackrecord.QuestionIDValidator = feedbackrecordDescQuestionID.Validators[0].(func(string) error)
	// feedbackrecordDescComment is the schema descriptor for comment field.
	feedbackrecordDescComment := feedbackrecordFields[4].Descriptor()
	// feedbackrecord.DefaultComment holds the default value on creation for the comment field.
	feedbackrecord.DefaultComment = feedbackrecordDescComment.Default.(string)
	// feedbackrecordDescCreatedAt is the schema descriptor for created_at field.
	feedbackrecordDescCreatedAt := feedbackrecordFields[5].Descriptor()
	// feedbackrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbackrecord.DefaultCreatedAt = feedbackrecordDescCreatedAt.Default.(func() time.Time)
	knowledgeunitFields := schema.KnowledgeUnit{}.Fields()
	_ = knowledgeunitFields
	// knowledgeunitDescPlanID is the schema descriptor for plan_id field.
	knowledgeunitDescPlanID := knowledgeunitFields[1].Descriptor()
	// knowledgeunit.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	knowledgeunit.PlanIDValidator = knowledgeunitDescPlanID.Validators[0].(func(string) error)
	// knowledgeunitDescDocumentID is the schema descriptor for document_id field.
	knowledgeunitDescDocumentID := knowledgeunitFields[2].Descriptor()
	// knowledgeunit.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	knowledgeunit.DocumentIDValidator = knowledgeunitDescDocumentID.Validators[0].(func(string) error)
	// knowledgeunitDescText is the schema descriptor for text field.
	knowledgeunitDescText := knowledgeunitFields[4].Descriptor()
	// knowledgeunit.TextValidator is a validator for the "text" field. It is called by the builders before save.
	knowledgeunit.TextValidator = knowledgeunitDescText.Validators[0].(func(string) error)
	// knowledgeunitDescSourceClaim is the schema descriptor for source_claim field.
	knowledgeunitDescSourceClaim := knowledgeunitFields[5].Descriptor()
	// knowledgeunit.DefaultSourceClaim holds the default value on creation for the source_claim field.
	knowledgeunit.DefaultSourceClaim = knowledgeunitDescSourceClaim.Default.(string)
	// knowledgeunitDescRetired is the schema descriptor for retired field.
	knowledgeunitDescRetired := knowledgeunitFields[7].Descriptor()
	// knowledgeunit.DefaultRetired holds the default value on creation for the retired field.
	knowledgeunit.DefaultRetired = knowledgeunitDescRetired.Default.(bool)
	// knowledgeunitDescCreatedAt is the schema descriptor for created_at field.
	knowledgeunitDescCreatedAt := knowledgeunitFields[8].Descriptor()
	// knowledgeunit.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgeunit.DefaultCreatedAt = knowledgeunitDescCreatedAt.Default.(func() time.Time)
	// knowledgeunitDescID is the schema descriptor for id field.
	knowledgeunitDescID := knowledgeunitFields[0].Descriptor()
	// knowledgeunit.IDValidator is a validator for the "id" field. It is called by the builders before save.
	knowledgeunit.IDValidator = knowledgeunitDescID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learningplanFields := schema.LearningPlan{}.Fields()
	_ = learningplanFields
	// learningplanDescCreatedAt is the schema descriptor for created_at field.
	learningplanDescCreatedAt := learningplanFields[2].Descriptor()
	// learningplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningplan.DefaultCreatedAt = learningplanDescCreatedAt.Default.(func() time.Time)
	// learningplanDescID is the schema descriptor for id field.
	learningplanDescID := learningplanFields[0].Descriptor()
	// learningplan.IDValidator is a validator for the "id" field. It is called by the builders before save.
	learningplan.IDValidator = learningplanDescID.Validators[0].(func(string) error)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescPlanID is the schema descriptor for plan_id field.
	masteryeventDescPlanID := masteryeventFields[0].Descriptor()
	// masteryevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	masteryevent.PlanIDValidator = masteryeventDescPlanID.Validators[0].(func(string) error)
	// masteryeventDescUnitID is the schema descriptor for unit_id field.
	masteryeventDescUnitID := masteryeventFields[1].Descriptor()
	// masteryevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	masteryevent.UnitIDValidator = masteryeventDescUnitID.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[4].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescPlanID is the schema descriptor for plan_id field.
	masteryrecordDescPlanID := masteryrecordFields[0].Descriptor()
	// masteryrecord.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	masteryrecord.PlanIDValidator = masteryrecordDescPlanID.Validators[0].(func(string) error)
	// masteryrecordDescUnitID is the schema descriptor for unit_id field.
	masteryrecordDescUnitID := masteryrecordFields[1].Descriptor()
	// masteryrecord.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	masteryrecord.UnitIDValidator = masteryrecordDescUnitID.Validators[0].(func(string) error)
	// masteryrecordDescLevel is the schema descriptor for level field.
	masteryrecordDescLevel := masteryrecordFields[2].Descriptor()
	// masteryrecord.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	masteryrecord.LevelValidator = func() func(float64) error {
		validators := masteryrecordDescLevel.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(level float64) error {
			for _, fn := range fns {
				if err := fn(level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescSessionID is the schema descriptor for session_id field.
	questionDescSessionID := questionFields[1].Descriptor()
	// question.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	question.SessionIDValidator = questionDescSessionID.Validators[0].(func(string) error)
	// questionDescUnitID is the schema descriptor for unit_id field.
	questionDescUnitID := questionFields[2].Descriptor()
	// question.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	question.UnitIDValidator = questionDescUnitID.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[4].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[5].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(int) error)
	// questionDescCanonicalAnswer is the schema descriptor for canonical_answer field.
	questionDescCanonicalAnswer := questionFields[6].Descriptor()
	// question.DefaultCanonicalAnswer holds the default value on creation for the canonical_answer field.
	question.DefaultCanonicalAnswer = questionDescCanonicalAnswer.Default.(string)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[10].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[11].Descriptor()
	// question.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	question.DefaultCorrectAnswer = questionDescCorrectAnswer.Default.(string)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescPlanID is the schema descriptor for plan_id field.
	sessioneventDescPlanID := sessioneventFields[0].Descriptor()
	// sessionevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	sessionevent.PlanIDValidator = sessioneventDescPlanID.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[1].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionCount is the schema descriptor for question_count field.
	sessioneventDescQuestionCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionevent.DefaultQuestionCount = sessioneventDescQuestionCount.Default.(int)
	// sessioneventDescCorrectCount is the schema descriptor for correct_count field.
	sessioneventDescCorrectCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	sessionevent.DefaultCorrectCount = sessioneventDescCorrectCount.Default.(int)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescPlanID is the schema descriptor for plan_id field.
	studysessionDescPlanID := studysessionFields[1].Descriptor()
	// studysession.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	studysession.PlanIDValidator = studysessionDescPlanID.Validators[0].(func(string) error)
	// studysessionDescMaxQuestions is the schema descriptor for max_questions field.
	studysessionDescMaxQuestions := studysessionFields[2].Descriptor()
	// studysession.MaxQuestionsValidator is a validator for the "max_questions" field. It is called by the builders before save.
	studysession.MaxQuestionsValidator = studysessionDescMaxQuestions.Validators[0].(func(int) error)
	// studysessionDescCreatedAt is the schema descriptor for created_at field.
	studysessionDescCreatedAt := studysessionFields[3].Descriptor()
	// studysession.DefaultCreatedAt holds the default value on creation for the created_at field.
	studysession.DefaultCreatedAt = studysessionDescCreatedAt.Default.(func() time.Time)
	// studysessionDescID is the schema descriptor for id field.
	studysessionDescID := studysessionFields[0].Descriptor()
	// studysession.IDValidator is a validator for the "id" field. It is called by the builders before save.
	studysession.IDValidator = studysessionDescID.Validators[0].(func(string) error)
}
