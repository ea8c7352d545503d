// Code generated by ent, DO NOT EDIT.

package knowledgeunit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/recall/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContainsFold(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldPlanID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldDocumentID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldText, v))
}

// SourceClaim applies equality check predicate on the "source_claim" field. It's identical to SourceClaimEQ.
func SourceClaim(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldSourceClaim, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldPosition, v))
}

// Retired applies equality check predicate on the "retired" field. It's identical to RetiredEQ.
func Retired(v bool) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldRetired, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldCreatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContainsFold(FieldPlanID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContainsFold(FieldDocumentID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNotIn(FieldKind, vs...))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContainsFold(FieldText, v))
}

// SourceClaimEQ applies the EQ predicate on the "source_claim" field.
func SourceClaimEQ(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldSourceClaim, v))
}

// SourceClaimNEQ applies the NEQ predicate on the "source_claim" field.
func SourceClaimNEQ(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldSourceClaim, v))
}

// SourceClaimIn applies the In predicate on the "source_claim" field.
func SourceClaimIn(vs ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldIn(FieldSourceClaim, vs...))
}

// SourceClaimNotIn applies the NotIn predicate on the "source_claim" field.
func SourceClaimNotIn(vs ...string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNotIn(FieldSourceClaim, vs...))
}

// SourceClaimGT applies the GT predicate on the "source_claim" field.
func SourceClaimGT(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGT(FieldSourceClaim, v))
}

// SourceClaimGTE applies the GTE predicate on the "source_claim" field.
func SourceClaimGTE(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGTE(FieldSourceClaim, v))
}

// SourceClaimLT applies the LT predicate on the "source_claim" field.
func SourceClaimLT(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLT(FieldSourceClaim, v))
}

// SourceClaimLTE applies the LTE predicate on the "source_claim" field.
func SourceClaimLTE(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLTE(FieldSourceClaim, v))
}

// SourceClaimContains applies the Contains predicate on the "source_claim" field.
func SourceClaimContains(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContains(FieldSourceClaim, v))
}

// SourceClaimHasPrefix applies the HasPrefix predicate on the "source_claim" field.
func SourceClaimHasPrefix(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldHasPrefix(FieldSourceClaim, v))
}

// SourceClaimHasSuffix applies the HasSuffix predicate on the "source_claim" field.
func SourceClaimHasSuffix(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldHasSuffix(FieldSourceClaim, v))
}

// SourceClaimEqualFold applies the EqualFold predicate on the "source_claim" field.
func SourceClaimEqualFold(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEqualFold(FieldSourceClaim, v))
}

// SourceClaimContainsFold applies the ContainsFold predicate on the "source_claim" field.
func SourceClaimContainsFold(v string) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldContainsFold(FieldSourceClaim, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLTE(FieldPosition, v))
}

// RetiredEQ applies the EQ predicate on the "retired" field.
func RetiredEQ(v bool) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldRetired, v))
}

// RetiredNEQ applies the NEQ predicate on the "retired" field.
func RetiredNEQ(v bool) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldRetired, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeUnit) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeUnit) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeUnit) predicate.KnowledgeUnit {
	return predicate.KnowledgeUnit(sql.NotPredicates(p))
}
