// Code generated by ent, DO NOT EDIT.

package listmembership

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/GitNimay/lumino-crm-vc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldContainsFold(FieldID, id))
}

// ListID applies equality check predicate on the "list_id" field. It's identical to ListIDEQ.
func ListID(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEQ(FieldListID, v))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEQ(FieldLeadID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEQ(FieldCreatedAt, v))
}

// ListIDEQ applies the EQ predicate on the "list_id" field.
func ListIDEQ(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEQ(FieldListID, v))
}

// ListIDNEQ applies the NEQ predicate on the "list_id" field.
func ListIDNEQ(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldNEQ(FieldListID, v))
}

// ListIDIn applies the In predicate on the "list_id" field.
func ListIDIn(vs ...string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldIn(FieldListID, vs...))
}

// ListIDNotIn applies the NotIn predicate on the "list_id" field.
func ListIDNotIn(vs ...string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldNotIn(FieldListID, vs...))
}

// ListIDGT applies the GT predicate on the "list_id" field.
func ListIDGT(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldGT(FieldListID, v))
}

// ListIDGTE applies the GTE predicate on the "list_id" field.
func ListIDGTE(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldGTE(FieldListID, v))
}

// ListIDLT applies the LT predicate on the "list_id" field.
func ListIDLT(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldLT(FieldListID, v))
}

// ListIDLTE applies the LTE predicate on the "list_id" field.
func ListIDLTE(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldLTE(FieldListID, v))
}

// ListIDContains applies the Contains predicate on the "list_id" field.
func ListIDContains(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldContains(FieldListID, v))
}

// ListIDHasPrefix applies the HasPrefix predicate on the "list_id" field.
func ListIDHasPrefix(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldHasPrefix(FieldListID, v))
}

// ListIDHasSuffix applies the HasSuffix predicate on the "list_id" field.
func ListIDHasSuffix(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldHasSuffix(FieldListID, v))
}

// ListIDEqualFold applies the EqualFold predicate on the "list_id" field.
func ListIDEqualFold(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEqualFold(FieldListID, v))
}

// ListIDContainsFold applies the ContainsFold predicate on the "list_id" field.
func ListIDContainsFold(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldContainsFold(FieldListID, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldLTE(FieldLeadID, v))
}

// LeadIDContains applies the Contains predicate on the "lead_id" field.
func LeadIDContains(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldContains(FieldLeadID, v))
}

// LeadIDHasPrefix applies the HasPrefix predicate on the "lead_id" field.
func LeadIDHasPrefix(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldHasPrefix(FieldLeadID, v))
}

// LeadIDHasSuffix applies the HasSuffix predicate on the "lead_id" field.
func LeadIDHasSuffix(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldHasSuffix(FieldLeadID, v))
}

// LeadIDEqualFold applies the EqualFold predicate on the "lead_id" field.
func LeadIDEqualFold(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEqualFold(FieldLeadID, v))
}

// LeadIDContainsFold applies the ContainsFold predicate on the "lead_id" field.
func LeadIDContainsFold(v string) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldContainsFold(FieldLeadID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ListMembership {
	return predicate.ListMembership(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ListMembership) predicate.ListMembership {
	return predicate.ListMembership(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ListMembership) predicate.ListMembership {
	return predicate.ListMembership(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ListMembership) predicate.ListMembership {
	return predicate.ListMembership(sql.NotPredicates(p))
}
