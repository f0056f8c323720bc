// Code generated by ent, DO NOT EDIT.

package crmsynclog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldContainsFold(FieldID, id))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldPlatform, v))
}

// Processed applies equality check predicate on the "processed" field. It's identical to ProcessedEQ.
func Processed(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldProcessed, v))
}

// Created applies equality check predicate on the "created" field. It's identical to CreatedEQ.
func Created(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldCreated, v))
}

// Updated applies equality check predicate on the "updated" field. It's identical to UpdatedEQ.
func Updated(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldUpdated, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldFailed, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldCompletedAt, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldContainsFold(FieldPlatform, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldDirection, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldStatus, vs...))
}

// ProcessedEQ applies the EQ predicate on the "processed" field.
func ProcessedEQ(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedNEQ applies the NEQ predicate on the "processed" field.
func ProcessedNEQ(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldProcessed, v))
}

// ProcessedIn applies the In predicate on the "processed" field.
func ProcessedIn(vs ...int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldProcessed, vs...))
}

// ProcessedNotIn applies the NotIn predicate on the "processed" field.
func ProcessedNotIn(vs ...int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldProcessed, vs...))
}

// ProcessedGT applies the GT predicate on the "processed" field.
func ProcessedGT(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGT(FieldProcessed, v))
}

// ProcessedGTE applies the GTE predicate on the "processed" field.
func ProcessedGTE(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGTE(FieldProcessed, v))
}

// ProcessedLT applies the LT predicate on the "processed" field.
func ProcessedLT(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLT(FieldProcessed, v))
}

// ProcessedLTE applies the LTE predicate on the "processed" field.
func ProcessedLTE(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLTE(FieldProcessed, v))
}

// CreatedEQ applies the EQ predicate on the "created" field.
func CreatedEQ(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldCreated, v))
}

// CreatedNEQ applies the NEQ predicate on the "created" field.
func CreatedNEQ(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldCreated, v))
}

// CreatedIn applies the In predicate on the "created" field.
func CreatedIn(vs ...int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldCreated, vs...))
}

// CreatedNotIn applies the NotIn predicate on the "created" field.
func CreatedNotIn(vs ...int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldCreated, vs...))
}

// CreatedGT applies the GT predicate on the "created" field.
func CreatedGT(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGT(FieldCreated, v))
}

// CreatedGTE applies the GTE predicate on the "created" field.
func CreatedGTE(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGTE(FieldCreated, v))
}

// CreatedLT applies the LT predicate on the "created" field.
func CreatedLT(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLT(FieldCreated, v))
}

// CreatedLTE applies the LTE predicate on the "created" field.
func CreatedLTE(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLTE(FieldCreated, v))
}

// UpdatedEQ applies the EQ predicate on the "updated" field.
func UpdatedEQ(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldUpdated, v))
}

// UpdatedNEQ applies the NEQ predicate on the "updated" field.
func UpdatedNEQ(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldUpdated, v))
}

// UpdatedIn applies the In predicate on the "updated" field.
func UpdatedIn(vs ...int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldUpdated, vs...))
}

// UpdatedNotIn applies the NotIn predicate on the "updated" field.
func UpdatedNotIn(vs ...int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldUpdated, vs...))
}

// UpdatedGT applies the GT predicate on the "updated" field.
func UpdatedGT(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGT(FieldUpdated, v))
}

// UpdatedGTE applies the GTE predicate on the "updated" field.
func UpdatedGTE(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGTE(FieldUpdated, v))
}

// UpdatedLT applies the LT predicate on the "updated" field.
func UpdatedLT(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLT(FieldUpdated, v))
}

// UpdatedLTE applies the LTE predicate on the "updated" field.
func UpdatedLTE(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLTE(FieldUpdated, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLTE(FieldFailed, v))
}

// ErrorsIsNil applies the IsNil predicate on the "errors" field.
func ErrorsIsNil() predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIsNull(FieldErrors))
}

// ErrorsNotNil applies the NotNil predicate on the "errors" field.
func ErrorsNotNil() predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotNull(FieldErrors))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CRMSyncLog) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CRMSyncLog) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CRMSyncLog) predicate.CRMSyncLog {
	return predicate.CRMSyncLog(sql.NotPredicates(p))
}
