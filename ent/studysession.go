// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/recall/ent/studysession"
)

// StudySession is the model entity for the StudySession schema.
type StudySession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// MaxQuestions holds the value of the "max_questions" field.
	MaxQuestions int `json:"max_questions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studysession.FieldMaxQuestions:
			values[i] = new(sql.NullInt64)
		case studysession.FieldID, studysession.FieldPlanID:
			values[i] = new(sql.NullString)
		case studysession.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySession fields.
func (_m *StudySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case studysession.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case studysession.FieldMaxQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_questions", values[i])
			} else if value.Valid {
				_m.MaxQuestions = int(value.Int64)
			}
		case studysession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySession.
// This includes values selected through modifiers, order, etc.
func (_m *StudySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudySession.
// Note that you need to call StudySession.Unwrap() before calling this method if this StudySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySession) Update() *StudySessionUpdateOne {
	return NewStudySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySession) Unwrap() *StudySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySession) String() string {
	var builder strings.Builder
	builder.WriteString("StudySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("max_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxQuestions))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudySessions is a parsable slice of StudySession.
type StudySessions []*StudySession
