// Code generated by ent, DO NOT EDIT.

package knowledgeunit

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the knowledgeunit type in the database.
	Label = "knowledge_unit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldSourceClaim holds the string denoting the source_claim field in the database.
	FieldSourceClaim = "source_claim"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldRetired holds the string denoting the retired field in the database.
	FieldRetired = "retired"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the knowledgeunit in the database.
	Table = "knowledge_units"
)

// Columns holds all SQL columns for knowledgeunit fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldDocumentID,
	FieldKind,
	FieldText,
	FieldSourceClaim,
	FieldPosition,
	FieldRetired,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	DocumentIDValidator func(string) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultSourceClaim holds the default value on creation for the "source_claim" field.
	DefaultSourceClaim string
	// DefaultRetired holds the default value on creation for the "retired" field.
	DefaultRetired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindClaim Kind = "claim"
	KindSkill Kind = "skill"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindClaim, KindSkill:
		return nil
	default:
		return fmt.Errorf("knowledgeunit: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the KnowledgeUnit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// BySourceClaim orders the results by the source_claim field.
func BySourceClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceClaim, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByRetired orders the results by the retired field.
func ByRetired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetired, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
