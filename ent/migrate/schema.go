// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
	}
	// FeedbackRecordsColumns holds the columns for the "feedback_records" table.
	FeedbackRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"question_helpfulness", "assessment_agreement"}},
		{Name: "flag", Type: field.TypeBool},
		{Name: "comment", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FeedbackRecordsTable holds the schema information for the "feedback_records" table.
	FeedbackRecordsTable = &schema.Table{
		Name:       "feedback_records",
		Columns:    FeedbackRecordsColumns,
		PrimaryKey: []*schema.Column{FeedbackRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackrecord_session_id_question_id_kind",
				Unique:  true,
				Columns: []*schema.Column{FeedbackRecordsColumns[1], FeedbackRecordsColumns[2], FeedbackRecordsColumns[3]},
			},
		},
	}
	// KnowledgeUnitsColumns holds the columns for the "knowledge_units" table.
	KnowledgeUnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"claim", "skill"}},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "source_claim", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "position", Type: field.TypeInt},
		{Name: "retired", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// KnowledgeUnitsTable holds the schema information for the "knowledge_units" table.
	KnowledgeUnitsTable = &schema.Table{
		Name:       "knowledge_units",
		Columns:    KnowledgeUnitsColumns,
		PrimaryKey: []*schema.Column{KnowledgeUnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeunit_plan_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeUnitsColumns[1]},
			},
			{
				Name:    "knowledgeunit_plan_id_position",
				Unique:  true,
				Columns: []*schema.Column{KnowledgeUnitsColumns[1], KnowledgeUnitsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningPlansColumns holds the columns for the "learning_plans" table.
	LearningPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "document_ids", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// LearningPlansTable holds the schema information for the "learning_plans" table.
	LearningPlansTable = &schema.Table{
		Name:       "learning_plans",
		Columns:    LearningPlansColumns,
		PrimaryKey: []*schema.Column{LearningPlansColumns[0]},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "from_level", Type: field.TypeFloat64},
		{Name: "to_level", Type: field.TypeFloat64},
		{Name: "trigger", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_plan_id_unit_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3], MasteryEventsColumns[4]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeFloat64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_plan_id_unit_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "canonical_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "user_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answered_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_correct", Type: field.TypeBool, Nullable: true},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "assessed_at", Type: field.TypeTime, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_session_id_position",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "max_questions", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_plan_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		FeedbackRecordsTable,
		KnowledgeUnitsTable,
		LlmRequestEventsTable,
		LearningPlansTable,
		MasteryEventsTable,
		MasteryRecordsTable,
		QuestionsTable,
		SessionEventsTable,
		StudySessionsTable,
	}
)

func init() {
}
