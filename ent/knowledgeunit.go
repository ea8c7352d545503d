// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/recall/ent/knowledgeunit"
)

// KnowledgeUnit is the model entity for the KnowledgeUnit schema.
type KnowledgeUnit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// claim = verifiable from the text; skill = requires applying a rule beyond it
	Kind knowledgeunit.Kind `json:"kind,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Optional quote of the source passage the unit was derived from
	SourceClaim string `json:"source_claim,omitempty"`
	// Creation order within the plan; the deterministic selection tiebreaker
	Position int `json:"position,omitempty"`
	// Retired holds the value of the "retired" field.
	Retired bool `json:"retired,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeUnit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgeunit.FieldRetired:
			values[i] = new(sql.NullBool)
		case knowledgeunit.FieldPosition:
			values[i] = new(sql.NullInt64)
		case knowledgeunit.FieldID, knowledgeunit.FieldPlanID, knowledgeunit.FieldDocumentID, knowledgeunit.FieldKind, knowledgeunit.FieldText, knowledgeunit.FieldSourceClaim:
			values[i] = new(sql.NullString)
		case knowledgeunit.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeUnit fields.
func (_m *KnowledgeUnit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgeunit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowledgeunit.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case knowledgeunit.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case knowledgeunit.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = knowledgeunit.Kind(value.String)
			}
		case knowledgeunit.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case knowledgeunit.FieldSourceClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_claim", values[i])
			} else if value.Valid {
				_m.SourceClaim = value.String
			}
		case knowledgeunit.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case knowledgeunit.FieldRetired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field retired", values[i])
			} else if value.Valid {
				_m.Retired = value.Bool
			}
		case knowledgeunit.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeUnit.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeUnit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KnowledgeUnit.
// Note that you need to call KnowledgeUnit.Unwrap() before calling this method if this KnowledgeUnit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeUnit) Update() *KnowledgeUnitUpdateOne {
	return NewKnowledgeUnitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeUnit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeUnit) Unwrap() *KnowledgeUnit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeUnit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeUnit) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeUnit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("source_claim=")
	builder.WriteString(_m.SourceClaim)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("retired=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retired))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeUnits is a parsable slice of KnowledgeUnit.
type KnowledgeUnits []*KnowledgeUnit
