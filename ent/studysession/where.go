// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/recall/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldPlanID, v))
}

// MaxQuestions applies equality check predicate on the "max_questions" field. It's identical to MaxQuestionsEQ.
func MaxQuestions(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldMaxQuestions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCreatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldPlanID, v))
}

// MaxQuestionsEQ applies the EQ predicate on the "max_questions" field.
func MaxQuestionsEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldMaxQuestions, v))
}

// MaxQuestionsNEQ applies the NEQ predicate on the "max_questions" field.
func MaxQuestionsNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldMaxQuestions, v))
}

// MaxQuestionsIn applies the In predicate on the "max_questions" field.
func MaxQuestionsIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldMaxQuestions, vs...))
}

// MaxQuestionsNotIn applies the NotIn predicate on the "max_questions" field.
func MaxQuestionsNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldMaxQuestions, vs...))
}

// MaxQuestionsGT applies the GT predicate on the "max_questions" field.
func MaxQuestionsGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldMaxQuestions, v))
}

// MaxQuestionsGTE applies the GTE predicate on the "max_questions" field.
func MaxQuestionsGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldMaxQuestions, v))
}

// MaxQuestionsLT applies the LT predicate on the "max_questions" field.
func MaxQuestionsLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldMaxQuestions, v))
}

// MaxQuestionsLTE applies the LTE predicate on the "max_questions" field.
func MaxQuestionsLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldMaxQuestions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.NotPredicates(p))
}
